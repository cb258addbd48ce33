// Package web carries the embedded single-page client. The page is plain
// HTML and vanilla JavaScript so the binary stays self-contained; it talks to
// the JSON API on the same origin.
package web

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var indexHTML []byte

// Index serves the embedded client page.
func Index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(indexHTML)
	}
}
