package haiku

import "github.com/hashiku/hashiku-go/core"

// SignHaiku hashes the haiku text and returns the hex digest.
func SignHaiku(h Haiku) string {
	return core.Hash([]byte(h.String())).String()
}
