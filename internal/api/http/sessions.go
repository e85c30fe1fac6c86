package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/quizcraft/quizcraft/internal/loader"
	"github.com/quizcraft/quizcraft/internal/question"
	"github.com/quizcraft/quizcraft/internal/results"
	"github.com/quizcraft/quizcraft/internal/scoring"
	"github.com/quizcraft/quizcraft/internal/session"
)

type sessionView struct {
	ID           string              `json:"id"`
	State        session.State       `json:"state"`
	File         string              `json:"file,omitempty"`
	ChunkIndex   int                 `json:"chunkIndex"`
	ChunkCount   int                 `json:"chunkCount"`
	HasNextChunk bool                `json:"hasNextChunk"`
	CurrentIndex int                 `json:"currentIndex"`
	Questions    []question.Question `json:"questions"`
	Answers      map[int]string      `json:"answers"`
}

func viewOf(s *session.Session) sessionView {
	return sessionView{
		ID:           s.ID,
		State:        s.State(),
		File:         s.File,
		ChunkIndex:   s.ChunkIndex(),
		ChunkCount:   s.ChunkCount(),
		HasNextChunk: s.HasNextChunk(),
		CurrentIndex: s.CurrentIndex(),
		Questions:    sanitize(s.Questions()),
		Answers:      s.Answers(),
	}
}

// sanitize strips answer keys and explanations from questions served to an
// active session, the same way exam stores hide keys from students.
func sanitize(qs []question.Question) []question.Question {
	out := make([]question.Question, len(qs))
	copy(out, qs)
	for i := range out {
		out[i].Answer = ""
		out[i].Explanation = ""
	}
	return out
}

// CreateSessionHandler starts a session. With a file it loads that set; with
// no file it aggregates every registered set and partitions it into chunks.
// A failed load still yields a ready session with zero questions.
func CreateSessionHandler(mgr *session.Manager, ldr *loader.Loader, chunkSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			File string `json:"file"`
		}
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, "bad json")
				return
			}
		}

		s := mgr.Create(req.File, chunkSize)

		var (
			qs  []question.Question
			err error
		)
		if req.File != "" {
			qs, err = ldr.Load(r.Context(), req.File)
		} else {
			qs, err = ldr.LoadAll(r.Context())
		}
		if err != nil {
			if r.Context().Err() != nil {
				// The requester is gone; discard the half-built session
				// instead of committing a result nobody will read.
				mgr.Delete(s.ID)
				return
			}
			log.Printf("session %s: load failed: %v", s.ID, err)
		}

		var view sessionView
		_ = mgr.Do(s.ID, func(s *session.Session) error {
			s.Ready(qs)
			view = viewOf(s)
			return nil
		})
		writeJSON(w, http.StatusCreated, view)
	}
}

// GetSessionHandler returns the current view of a session.
func GetSessionHandler(mgr *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withSession(w, r, mgr, func(s *session.Session) (any, int, error) {
			return viewOf(s), http.StatusOK, nil
		})
	}
}

// AnswerHandler upserts one answer. The index does not move.
func AnswerHandler(mgr *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			QuestionID int    `json:"questionId"`
			Value      string `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json")
			return
		}
		withSession(w, r, mgr, func(s *session.Session) (any, int, error) {
			if err := s.SetAnswer(req.QuestionID, req.Value); err != nil {
				return nil, http.StatusConflict, err
			}
			return viewOf(s), http.StatusOK, nil
		})
	}
}

// AdvanceHandler moves the question index by a delta, clamped in bounds.
func AdvanceHandler(mgr *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Delta int `json:"delta"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json")
			return
		}
		withSession(w, r, mgr, func(s *session.Session) (any, int, error) {
			s.Advance(req.Delta)
			return viewOf(s), http.StatusOK, nil
		})
	}
}

// NextChunkHandler activates the next chunk of an aggregate session,
// clearing the answers accumulated in the current one.
func NextChunkHandler(mgr *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withSession(w, r, mgr, func(s *session.Session) (any, int, error) {
			if !s.NextChunk() {
				return nil, http.StatusConflict, errors.New("no next session")
			}
			return viewOf(s), http.StatusOK, nil
		})
	}
}

type submitResponse struct {
	SessionFilename string           `json:"sessionFilename,omitempty"`
	Score           int              `json:"score"`
	Total           int              `json:"total"`
	Percentage      int              `json:"percentage"`
	Date            time.Time        `json:"date"`
	Reviews         []scoring.Review `json:"reviews"`
}

// SubmitSessionHandler scores the session and appends the attempt for named
// sets. A failed append is logged and swallowed; the response still carries
// the scored result.
func SubmitSessionHandler(mgr *session.Manager, store results.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withSession(w, r, mgr, func(s *session.Session) (any, int, error) {
			snap, err := s.Submit()
			if err != nil {
				return nil, http.StatusConflict, err
			}

			result, reviews := scoring.ScoreWithReview(snap.Questions, snap.Answers)
			resp := submitResponse{
				SessionFilename: snap.File,
				Score:           result.Correct,
				Total:           result.Total,
				Percentage:      result.Percentage,
				Date:            time.Now().UTC(),
				Reviews:         reviews,
			}
			if snap.File != "" {
				stored := results.StoredResult{
					SessionFilename: snap.File,
					Score:           result.Correct,
					Total:           result.Total,
					Percentage:      result.Percentage,
					Date:            resp.Date,
					Answers:         snap.Answers,
				}
				if err := store.Append(r.Context(), stored); err != nil {
					log.Printf("results: append failed for %s: %v", snap.File, err)
				}
			}
			return resp, http.StatusOK, nil
		})
	}
}

// withSession resolves the sessionID route param and runs fn under the
// manager's lock, translating ErrNoSession to a 404.
func withSession(w http.ResponseWriter, r *http.Request, mgr *session.Manager, fn func(*session.Session) (any, int, error)) {
	id := chi.URLParam(r, "sessionID")
	var (
		payload any
		status  int
	)
	err := mgr.Do(id, func(s *session.Session) error {
		var err error
		payload, status, err = fn(s)
		return err
	})
	switch {
	case errors.Is(err, session.ErrNoSession):
		writeError(w, http.StatusNotFound, "session not found")
	case err != nil:
		if status == 0 {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
	default:
		writeJSON(w, status, payload)
	}
}
