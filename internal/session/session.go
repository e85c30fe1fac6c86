// Package session holds the state of one active pass through a question set.
package session

import (
	"errors"

	"github.com/quizcraft/quizcraft/internal/question"
)

// State of a session. Load failure still lands in StateReady with zero
// questions; the consumer renders that as "no questions available".
type State string

const (
	StateLoading   State = "loading"
	StateReady     State = "ready"
	StateSubmitted State = "submitted"
)

// DefaultChunkSize partitions aggregated question sequences.
const DefaultChunkSize = 20

var (
	ErrNotReady  = errors.New("session not ready")
	ErrSubmitted = errors.New("session already submitted")
)

// Session tracks the current question index and the per-question answer map.
// Chunking is active only for aggregate sessions (no explicit source file):
// the full sequence is partitioned into fixed-size chunks and one chunk is
// live at a time.
type Session struct {
	ID   string
	File string // "" for an aggregate session

	state      State
	questions  []question.Question
	chunkSize  int // 0 disables chunking
	chunkIndex int
	current    int
	answers    map[int]string
}

// New creates a session in StateLoading. chunkSize applies only when file is
// empty (aggregate mode).
func New(id, file string, chunkSize int) *Session {
	if file != "" {
		chunkSize = 0
	}
	return &Session{
		ID:        id,
		File:      file,
		state:     StateLoading,
		chunkSize: chunkSize,
		answers:   map[int]string{},
	}
}

// Ready attaches the loaded questions and transitions to StateReady. Called
// with nil on load failure; the session is then an explicit empty state.
func (s *Session) Ready(qs []question.Question) {
	s.questions = qs
	s.state = StateReady
}

func (s *Session) State() State { return s.state }

// Questions returns the active slice: the live chunk in aggregate mode, the
// whole sequence otherwise.
func (s *Session) Questions() []question.Question {
	if s.chunkSize <= 0 {
		return s.questions
	}
	start := s.chunkIndex * s.chunkSize
	if start >= len(s.questions) {
		return nil
	}
	end := start + s.chunkSize
	if end > len(s.questions) {
		end = len(s.questions)
	}
	return s.questions[start:end]
}

func (s *Session) CurrentIndex() int { return s.current }

// Current returns the active question, if any.
func (s *Session) Current() (question.Question, bool) {
	qs := s.Questions()
	if s.current < 0 || s.current >= len(qs) {
		return question.Question{}, false
	}
	return qs[s.current], true
}

// Advance moves the index by delta, clamped to the active slice. Out-of-range
// moves are no-ops, never wraps.
func (s *Session) Advance(delta int) {
	if s.state != StateReady {
		return
	}
	next := s.current + delta
	if max := len(s.Questions()) - 1; next > max {
		next = max
	}
	if next < 0 {
		next = 0
	}
	s.current = next
}

// SetAnswer upserts into the answer map without moving the index.
func (s *Session) SetAnswer(questionID int, value string) error {
	switch s.state {
	case StateSubmitted:
		return ErrSubmitted
	case StateReady:
		s.answers[questionID] = value
		return nil
	default:
		return ErrNotReady
	}
}

// Answers returns a copy of the answer map.
func (s *Session) Answers() map[int]string {
	out := make(map[int]string, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// ChunkCount reports how many chunks the full sequence partitions into.
func (s *Session) ChunkCount() int {
	if s.chunkSize <= 0 || len(s.questions) == 0 {
		return 1
	}
	return (len(s.questions) + s.chunkSize - 1) / s.chunkSize
}

func (s *Session) ChunkIndex() int { return s.chunkIndex }

// HasNextChunk reports whether another chunk follows the live one.
func (s *Session) HasNextChunk() bool {
	return s.chunkIndex < s.ChunkCount()-1
}

// NextChunk activates the following chunk, resetting the index and clearing
// the answer map. Answers do not survive a chunk boundary.
func (s *Session) NextChunk() bool {
	if s.state != StateReady || !s.HasNextChunk() {
		return false
	}
	s.chunkIndex++
	s.current = 0
	s.answers = map[int]string{}
	return true
}

// Snapshot is the submit-time view consumed by the scorer.
type Snapshot struct {
	File      string
	Questions []question.Question
	Answers   map[int]string
}

// Submit transitions to StateSubmitted and returns the scoring snapshot.
// Permitted at any index; terminal.
func (s *Session) Submit() (Snapshot, error) {
	switch s.state {
	case StateSubmitted:
		return Snapshot{}, ErrSubmitted
	case StateLoading:
		return Snapshot{}, ErrNotReady
	}
	s.state = StateSubmitted
	return Snapshot{
		File:      s.File,
		Questions: s.Questions(),
		Answers:   s.Answers(),
	}, nil
}
