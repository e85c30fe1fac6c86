package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/quizcraft/quizcraft/internal/loader"
)

// QuestionsHandler serves a raw question-set file by name. This is the
// fallback the client reaches when the static path 404s: the lookup is
// traversal-safe and tolerates case and whitespace variants of the filename.
func QuestionsHandler(files *loader.FileSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file := r.URL.Query().Get("file")
		if file == "" {
			writeError(w, http.StatusBadRequest, "file parameter is required")
			return
		}
		if !strings.HasSuffix(file, ".json") {
			file += ".json"
		}

		data, err := files.Fetch(r.Context(), file)
		if err != nil {
			writeError(w, http.StatusNotFound, "question set not found")
			return
		}
		if !json.Valid(data) {
			writeError(w, http.StatusInternalServerError, "failed to load questions")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	}
}
