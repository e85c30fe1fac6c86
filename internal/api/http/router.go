package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/quizcraft/quizcraft/internal/loader"
	"github.com/quizcraft/quizcraft/internal/registry"
	"github.com/quizcraft/quizcraft/internal/results"
	"github.com/quizcraft/quizcraft/internal/session"
)

// Deps carries everything the API needs; main wires the concrete backends.
type Deps struct {
	Registry  *registry.Registry
	Files     *loader.FileSource
	Loader    *loader.Loader
	Sessions  *session.Manager
	Results   results.Store
	ChunkSize int
}

// Mount attaches the quiz API to a router, typically under /api.
func Mount(r chi.Router, d Deps) {
	r.Get("/question-sets", QuestionSetsHandler(d.Registry))
	r.Get("/questions", QuestionsHandler(d.Files))
	r.Get("/results", ResultsHandler(d.Results))

	r.Route("/sessions", func(sr chi.Router) {
		sr.Post("/", CreateSessionHandler(d.Sessions, d.Loader, d.ChunkSize))
		sr.Get("/{sessionID}", GetSessionHandler(d.Sessions))
		sr.Post("/{sessionID}/answers", AnswerHandler(d.Sessions))
		sr.Post("/{sessionID}/advance", AdvanceHandler(d.Sessions))
		sr.Post("/{sessionID}/next-chunk", NextChunkHandler(d.Sessions))
		sr.Post("/{sessionID}/submit", SubmitSessionHandler(d.Sessions, d.Results))
	})
}
