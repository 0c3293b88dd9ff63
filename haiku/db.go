package haiku

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hashiku/hashiku-go/core"
)

// A SignedHaiku is one row of the signature log.
type SignedHaiku struct {
	ID        int64
	Haiku     string
	Digest    string
	Signature string
	Pubkey    string
	Timestamp uint64
}

func dbGetVersion(db *sql.DB) (int, error) {
	row := db.QueryRow("SELECT version FROM hashiku_version ORDER BY version DESC LIMIT 1")
	if err := row.Err(); err != nil {
		return -1, fmt.Errorf("error checking database version: %s", err)
	}

	databaseVersion := -1
	row.Scan(&databaseVersion)

	return databaseVersion, nil
}

func dbMigrate(db *sql.DB, migrationIndex int, migrateFn func(tx *sql.Tx) error) error {
	logger := core.NewLogger("db")

	version, err := dbGetVersion(db)
	if err != nil {
		return err
	}

	// Skip migration if the database is already at the target version.
	if migrationIndex <= version {
		logger.Printf("Skipping migration: %d\n", migrationIndex)
		return nil
	}

	logger.Printf("Running migration: %d\n", migrationIndex)
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	err = migrateFn(tx)
	if err != nil {
		tx.Rollback()
		return err
	}

	_, err = tx.Exec("insert into hashiku_version (version) values (?)", migrationIndex)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// OpenDB opens the signature log, creating and migrating it if needed.
func OpenDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec("create table if not exists hashiku_version (version int)")
	if err != nil {
		return nil, fmt.Errorf("error checking database version: %s", err)
	}

	err = dbMigrate(db, 1, func(tx *sql.Tx) error {
		_, err := tx.Exec(`create table signed_haikus (
			id integer primary key autoincrement,
			haiku text not null,
			digest text not null,
			signature text not null default '',
			pubkey text not null default '',
			timestamp integer not null
		)`)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error migrating database: %s", err)
	}

	return db, nil
}

// LogSignedHaiku appends one signed haiku to the log, stamping it with the
// current time when the timestamp is unset.
func LogSignedHaiku(db *sql.DB, sh SignedHaiku) (int64, error) {
	if sh.Timestamp == 0 {
		sh.Timestamp = core.Timestamp()
	}
	res, err := db.Exec(
		"insert into signed_haikus (haiku, digest, signature, pubkey, timestamp) values (?, ?, ?, ?, ?)",
		sh.Haiku, sh.Digest, sh.Signature, sh.Pubkey, sh.Timestamp,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListSignedHaikus returns the full log, oldest first.
func ListSignedHaikus(db *sql.DB) ([]SignedHaiku, error) {
	rows, err := db.Query("select id, haiku, digest, signature, pubkey, timestamp from signed_haikus order by id asc")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	log := []SignedHaiku{}
	for rows.Next() {
		sh := SignedHaiku{}
		err := rows.Scan(&sh.ID, &sh.Haiku, &sh.Digest, &sh.Signature, &sh.Pubkey, &sh.Timestamp)
		if err != nil {
			return nil, err
		}
		log = append(log, sh)
	}
	return log, rows.Err()
}
