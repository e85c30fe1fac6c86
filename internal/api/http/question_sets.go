package http

import (
	"net/http"

	"github.com/quizcraft/quizcraft/internal/registry"
)

// QuestionSetsHandler lists the discoverable question sets. Always 200; a
// missing question directory is just an empty catalogue.
func QuestionSetsHandler(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sets := reg.ListSets()
		if sets == nil {
			sets = []registry.SetDescriptor{}
		}
		writeJSON(w, http.StatusOK, sets)
	}
}
