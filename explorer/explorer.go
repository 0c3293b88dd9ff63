package explorer

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/fatih/color"
	"github.com/gorilla/mux"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hashiku/hashiku-go/core"
)

//go:embed templates/*.html
var embedFS embed.FS

type MerkleExplorerServer struct {
	router *mux.Router
	log    *log.Logger

	host        string
	port        int
	environment string

	hash core.HashFunc
}

type localDirFS struct {
	baseDir string
}

func (fs localDirFS) Open(name string) (fs.File, error) {
	return os.Open(filepath.Join(fs.baseDir, name))
}

func (expl *MerkleExplorerServer) getFS() *fs.FS {
	_, currentFile, _, _ := runtime.Caller(0)
	baseDir := filepath.Dir(currentFile)

	fs := map[string]fs.FS{
		"dev":  localDirFS{baseDir: baseDir},
		"test": embedFS,
		"live": embedFS,
	}[expl.environment]

	return &fs
}

var numberPrinter = message.NewPrinter(language.English)

func formatCount(n int) string {
	return numberPrinter.Sprintf("%d", n)
}

func (expl *MerkleExplorerServer) getTemplates(patterns ...string) *template.Template {
	fs := *expl.getFS()
	funcMap := template.FuncMap{
		"shortHash":   func(d core.Digest) string { return d.Short() },
		"formatCount": formatCount,
	}
	return template.Must(template.New("").Funcs(funcMap).ParseFS(fs, patterns...))
}

func NewMerkleExplorerServer(port int, hash core.HashFunc) *MerkleExplorerServer {
	log := NewLogger("explorer", "")
	environment := os.Getenv("ENV")
	if environment == "" {
		environment = "dev"
	}
	if !(environment == "dev" || environment == "test" || environment == "live") {
		log.Fatalf("Invalid environment %s, must be one of (dev, test, live)", environment)
	}

	log.Println("Environment:", environment)
	host := map[string]string{
		"dev":  "127.0.0.1",
		"test": "0.0.0.0",
		"live": "0.0.0.0",
	}[environment]

	router := mux.NewRouter()

	expl := &MerkleExplorerServer{
		router:      router,
		log:         log,
		host:        host,
		port:        port,
		environment: environment,
		hash:        hash,
	}

	expl.router.HandleFunc("/", expl.homePage)
	expl.router.HandleFunc("/tree/", expl.getTree)
	expl.router.HandleFunc("/api/tree", expl.getTreeJSON)

	return expl
}

func (expl *MerkleExplorerServer) Start() {
	expl.log.Println("Starting explorer server...")
	listenAddr := fmt.Sprintf("%s:%d", expl.host, expl.port)
	expl.log.Printf("Listening on http://%s", listenAddr)

	err := http.ListenAndServe(listenAddr, expl.router)
	if err != nil {
		expl.log.Fatal("ListenAndServe: ", err)
	}
}

// buildTree derives leaves from the request's comma-separated data parameter
// and builds the tree. A nil tree with a nil error means no data was given.
func (expl *MerkleExplorerServer) buildTree(r *http.Request) (*core.MerkleTree, []string, error) {
	data := r.URL.Query().Get("data")
	items := core.ParseItems(data)
	if len(items) == 0 {
		return nil, nil, nil
	}

	leaves := core.LeavesFromItems(items, expl.hash)
	tree, err := core.BuildMerkleTreeWithHash(leaves, expl.hash)
	if err != nil {
		return nil, nil, err
	}
	return tree, items, nil
}

func (expl *MerkleExplorerServer) homePage(w http.ResponseWriter, r *http.Request) {
	tmpl := expl.getTemplates("templates/index.html", "templates/_base_layout.html")
	err := tmpl.ExecuteTemplate(w, "index.html", map[string]interface{}{
		"Title": "Home",
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (expl *MerkleExplorerServer) getTree(w http.ResponseWriter, r *http.Request) {
	tree, items, err := expl.buildTree(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if tree == nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	// Layers reversed for display, root at the top.
	displayLayers := make([][]core.Digest, 0, len(tree.Layers))
	for i := len(tree.Layers) - 1; i >= 0; i-- {
		displayLayers = append(displayLayers, tree.Layers[i])
	}

	tmpl := expl.getTemplates("templates/tree.html", "templates/_base_layout.html")
	err = tmpl.ExecuteTemplate(w, "tree.html", map[string]interface{}{
		"Title":     "Merkle Tree",
		"Items":     items,
		"NumLeaves": formatCount(tree.NumLeaves()),
		"Layers":    displayLayers,
		"Root":      tree.Root().String(),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (expl *MerkleExplorerServer) getTreeJSON(w http.ResponseWriter, r *http.Request) {
	tree, _, err := expl.buildTree(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if tree == nil {
		http.Error(w, "No data provided", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(core.ExportTree(tree))
	if err != nil {
		expl.log.Printf("Failed to encode tree: %s", err)
	}
}

func NewLogger(prefix string, prefix2 string) *log.Logger {
	prefixFull := color.HiGreenString(fmt.Sprintf("[%s] ", prefix))
	if prefix2 != "" {
		prefixFull += color.HiYellowString(fmt.Sprintf("(%s) ", prefix2))
	}
	return log.New(os.Stdout, prefixFull, log.Ldate|log.Ltime|log.Lmsgprefix)
}
