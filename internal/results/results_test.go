package results

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func sample(file string, pct int, at time.Time) StoredResult {
	return StoredResult{
		SessionFilename: file,
		Score:           pct / 10,
		Total:           10,
		Percentage:      pct,
		Date:            at,
		Answers:         map[int]string{1: "A"},
	}
}

// TestMemoryLatest verifies the later date wins across multiple appends for
// the same set.
func TestMemoryLatest(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := s.Append(ctx, sample("part1.json", 40, base)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append(ctx, sample("part1.json", 90, base.Add(time.Hour))); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append(ctx, sample("part2.json", 10, base.Add(2*time.Hour))); err != nil {
		t.Fatalf("append: %v", err)
	}

	r, err := s.Latest(ctx, "part1.json")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if r.Percentage != 90 {
		t.Fatalf("expected later attempt (90%%), got %d%%", r.Percentage)
	}

	if _, err := s.Latest(ctx, "missing.json"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	all, err := s.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("append-only log must keep every attempt, got %d", len(all))
	}
}

// TestFileStoreRoundTrip verifies persistence across store instances.
func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := s.Append(ctx, sample("part1.json", 70, at)); err != nil {
		t.Fatalf("append: %v", err)
	}

	reopened, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	r, err := reopened.Latest(ctx, "part1.json")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if r.Percentage != 70 || r.Answers[1] != "A" {
		t.Fatalf("unexpected result %#v", r)
	}
	if !r.Date.Equal(at) {
		t.Fatalf("expected date %v, got %v", at, r.Date)
	}
}

// TestFileStoreCorrupt verifies a corrupt log reads as empty and new appends
// still land.
func TestFileStoreCorrupt(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, StorageKey+".json")
	if err := os.WriteFile(path, []byte("{not an array"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := s.Latest(ctx, "part1.json"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on corrupt file, got %v", err)
	}
	if err := s.Append(ctx, sample("part1.json", 50, time.Now().UTC())); err != nil {
		t.Fatalf("append after corruption: %v", err)
	}
	all, err := s.All(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("expected 1 entry, got %d (err %v)", len(all), err)
	}
}

// TestLatestTieBreak verifies a timestamp tie goes to the later append.
func TestLatestTieBreak(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	all := []StoredResult{
		sample("s.json", 10, at),
		sample("s.json", 20, at),
	}
	r, err := latest(all, "s.json")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if r.Percentage != 20 {
		t.Fatalf("expected later append to win the tie, got %d%%", r.Percentage)
	}
}
