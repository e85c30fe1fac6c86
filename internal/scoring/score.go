// Package scoring grades a finished question list against an answer map.
package scoring

import (
	"math"
	"strings"

	"github.com/quizcraft/quizcraft/internal/question"
)

// Result aggregates a scored session.
type Result struct {
	Correct    int `json:"correct"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// Review is the per-question breakdown rendered on the results screen.
type Review struct {
	ID          int    `json:"id"`
	Question    string `json:"question"`
	Type        string `json:"type"`
	Answer      string `json:"answer"`
	UserAnswer  string `json:"userAnswer"`
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation,omitempty"`
}

// Correct reports whether an answer matches the question's canonical answer,
// case-insensitively. A question with no canonical answer never scores.
func Correct(q question.Question, answer string, answered bool) bool {
	if !answered || q.Answer == "" {
		return false
	}
	return strings.EqualFold(answer, q.Answer)
}

// Score computes the aggregate result. Total is the count of questions in
// the session slice, and an empty slice scores 0% rather than dividing by
// zero.
func Score(qs []question.Question, answers map[int]string) Result {
	r := Result{Total: len(qs)}
	for _, q := range qs {
		ans, ok := answers[q.ID]
		if Correct(q, ans, ok) {
			r.Correct++
		}
	}
	r.Percentage = percentage(r.Correct, r.Total)
	return r
}

// ScoreWithReview also returns the per-question rows.
func ScoreWithReview(qs []question.Question, answers map[int]string) (Result, []Review) {
	r := Result{Total: len(qs)}
	reviews := make([]Review, 0, len(qs))
	for _, q := range qs {
		ans, ok := answers[q.ID]
		correct := Correct(q, ans, ok)
		if correct {
			r.Correct++
		}
		reviews = append(reviews, Review{
			ID:          q.ID,
			Question:    q.Question,
			Type:        q.Type,
			Answer:      q.Answer,
			UserAnswer:  ans,
			Correct:     correct,
			Explanation: q.Explanation,
		})
	}
	r.Percentage = percentage(r.Correct, r.Total)
	return r, reviews
}

// percentage rounds half-up.
func percentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(100*float64(correct)/float64(total) + 0.5))
}
