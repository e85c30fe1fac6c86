// Package loader resolves question-set identifiers against an ordered list
// of sources and normalizes whatever they return.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/quizcraft/quizcraft/internal/question"
	"github.com/quizcraft/quizcraft/internal/registry"
)

// ErrNotFound reports that every source in the chain was exhausted.
var ErrNotFound = errors.New("question set not found")

// SetLister is the registry capability the loader needs.
type SetLister interface {
	ListSets() []registry.SetDescriptor
}

// Loader tries sources in order, short-circuiting on the first success.
// Each fallback depends on the prior failing; attempts are never parallel.
type Loader struct {
	sets    SetLister
	sources []Source
}

func New(sets SetLister, sources ...Source) *Loader {
	return &Loader{sets: sets, sources: sources}
}

// Load fetches and normalizes one question set. A ".json" suffix is appended
// when absent. Malformed payloads normalize to an empty slice; only an
// exhausted source chain is an error.
func (l *Loader) Load(ctx context.Context, sourceID string) ([]question.Question, error) {
	filename := sourceID
	if !strings.HasSuffix(filename, ".json") {
		filename += ".json"
	}

	var lastErr error
	for _, src := range l.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := src.Fetch(ctx, filename)
		if err != nil {
			lastErr = err
			continue
		}
		return question.Normalize(data), nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("%q: no sources configured", filename)
	}
	return nil, fmt.Errorf("%w: %v", ErrNotFound, lastErr)
}

// LoadAll aggregates every registered set in registry order, reassigning ids
// sequentially across the concatenation. Zero registered sets yields an
// empty result; a set that fails to load is logged and skipped.
func (l *Loader) LoadAll(ctx context.Context) ([]question.Question, error) {
	sets := l.sets.ListSets()
	if len(sets) == 0 {
		return nil, nil
	}

	var all []question.Question
	for _, set := range sets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		qs, err := l.Load(ctx, set.Filename)
		if err != nil {
			log.Printf("loader: skipping %s: %v", set.Filename, err)
			continue
		}
		all = append(all, qs...)
	}
	question.Renumber(all)
	return all, nil
}
