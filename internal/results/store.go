// Package results is the append-only log of past quiz attempts.
package results

import (
	"context"
	"errors"
	"time"
)

// StorageKey is the key past attempts live under in key-value style backends
// (file, redis). It matches the browser localStorage layout the web client
// used.
const StorageKey = "quizcraft_results"

// ErrNotFound reports that no attempt exists for the requested set.
var ErrNotFound = errors.New("result not found")

// StoredResult is one finished attempt. Never mutated after creation.
type StoredResult struct {
	SessionFilename string         `json:"sessionFilename"`
	Score           int            `json:"score"`
	Total           int            `json:"total"`
	Percentage      int            `json:"percentage"`
	Date            time.Time      `json:"date"`
	Answers         map[int]string `json:"answers"`
}

// Store is the persistence capability injected into the API layer. Append-
// only with read-then-write semantics; lost updates under true concurrent
// access are tolerated since one client drives one session at a time.
type Store interface {
	Append(ctx context.Context, r StoredResult) error
	Latest(ctx context.Context, sessionFilename string) (StoredResult, error)
	All(ctx context.Context) ([]StoredResult, error)
}

func timeFromNanos(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

// latest picks the entry with the newest Date for a set; later insertion
// wins a timestamp tie.
func latest(all []StoredResult, sessionFilename string) (StoredResult, error) {
	var best StoredResult
	found := false
	for _, r := range all {
		if r.SessionFilename != sessionFilename {
			continue
		}
		if !found || !r.Date.Before(best.Date) {
			best = r
			found = true
		}
	}
	if !found {
		return StoredResult{}, ErrNotFound
	}
	return best, nil
}
