package http

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/quizcraft/quizcraft/internal/loader"
)

// MountStatic serves the question directory's JSON files at the root, the
// static path the client tries before the /api/questions fallback. Only
// exact basenames resolve here; the fuzzy lookup stays behind the API.
func MountStatic(r chi.Router, files *loader.FileSource) {
	r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
		key := strings.TrimPrefix(chi.URLParam(req, "*"), "/")
		if key == "" || filepath.Ext(key) != ".json" {
			http.NotFound(w, req)
			return
		}
		name, err := files.Resolve(key)
		if err != nil || name != filepath.Base(key) {
			http.NotFound(w, req)
			return
		}
		data, err := files.Fetch(req.Context(), name)
		if err != nil || !json.Valid(data) {
			http.NotFound(w, req)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	})
}
