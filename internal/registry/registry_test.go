package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// TestListSetsOrderingAndFiltering verifies natural ordering, manifest
// exclusion, and title extraction with filename fallback.
func TestListSetsOrderingAndFiltering(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Part 10.json", `{"title": "Part Ten", "questions": []}`)
	writeFile(t, dir, "Part 2.json", `{"questions": []}`)
	writeFile(t, dir, "package.json", `{"name": "app"}`)
	writeFile(t, dir, "notes.txt", "not json")

	sets := New(dir).ListSets()
	if len(sets) != 2 {
		t.Fatalf("expected 2 sets, got %d: %#v", len(sets), sets)
	}
	if sets[0].Filename != "Part 2.json" || sets[1].Filename != "Part 10.json" {
		t.Fatalf("natural order violated: %#v", sets)
	}
	if sets[0].Title != "Part 2" {
		t.Fatalf("expected filename-stem title, got %q", sets[0].Title)
	}
	if sets[1].Title != "Part Ten" {
		t.Fatalf("expected payload title, got %q", sets[1].Title)
	}
}

// TestListSetsSkipsUnparsable verifies invalid JSON excludes a file without
// failing the listing.
func TestListSetsSkipsUnparsable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.json", `[{"question": "q"}]`)
	writeFile(t, dir, "bad.json", `{broken`)

	sets := New(dir).ListSets()
	if len(sets) != 1 || sets[0].Filename != "good.json" {
		t.Fatalf("expected only good.json, got %#v", sets)
	}
}

// TestListSetsMissingDir verifies a missing directory yields an empty list.
func TestListSetsMissingDir(t *testing.T) {
	sets := New(filepath.Join(t.TempDir(), "nope")).ListSets()
	if len(sets) != 0 {
		t.Fatalf("expected empty list, got %#v", sets)
	}
}

// TestDirFallback verifies candidate directories are tried in order.
func TestDirFallback(t *testing.T) {
	existing := t.TempDir()
	missing := filepath.Join(existing, "missing")
	r := New(missing, existing)
	if got := r.Dir(); got != existing {
		t.Fatalf("expected %s, got %s", existing, got)
	}
}

// TestNaturalLess covers the comparator edge cases directly.
func TestNaturalLess(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Part 2.json", "Part 10.json", true},
		{"Part 10.json", "Part 2.json", false},
		{"a.json", "b.json", true},
		{"A.json", "a.json", false}, // case-insensitive: equal, not less
		{"set.json", "set2.json", true},
	}
	for _, c := range cases {
		if got := naturalLess(c.a, c.b); got != c.want {
			t.Fatalf("naturalLess(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
