package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/quizcraft/quizcraft/internal/results"
)

// ResultsHandler serves stored attempts. With ?file= it returns the latest
// attempt for that set; without, the full log (the landing page decorates
// the set list with it). Storage read failures degrade to "nothing stored".
func ResultsHandler(store results.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file := r.URL.Query().Get("file")
		if file == "" {
			all, err := store.All(r.Context())
			if err != nil {
				log.Printf("results: read failed: %v", err)
				all = nil
			}
			if all == nil {
				all = []results.StoredResult{}
			}
			writeJSON(w, http.StatusOK, all)
			return
		}

		res, err := store.Latest(r.Context(), file)
		if err != nil {
			if !errors.Is(err, results.ErrNotFound) {
				log.Printf("results: read failed for %s: %v", file, err)
			}
			writeError(w, http.StatusNotFound, "no result stored")
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}
