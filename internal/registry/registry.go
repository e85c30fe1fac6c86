// Package registry discovers question sets in a directory of JSON files.
package registry

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SetDescriptor identifies one discoverable question set.
type SetDescriptor struct {
	Filename string `json:"filename"`
	Title    string `json:"title"`
}

// Files that live next to question sets but are not question sets.
var excluded = map[string]bool{
	"package.json":    true,
	"tsconfig.json":   true,
	"components.json": true,
}

// Registry scans the first existing of an ordered list of candidate
// directories.
type Registry struct {
	dirs []string
}

func New(dirs ...string) *Registry {
	return &Registry{dirs: dirs}
}

// Dir returns the first existing candidate directory, or the first candidate
// when none exist.
func (r *Registry) Dir() string {
	for _, d := range r.dirs {
		if st, err := os.Stat(d); err == nil && st.IsDir() {
			return d
		}
	}
	if len(r.dirs) == 0 {
		return "."
	}
	return r.dirs[0]
}

// ListSets returns the discoverable question sets in natural filename order.
// A missing directory or an unparsable file is never fatal: the former yields
// an empty list, the latter excludes the file.
func (r *Registry) ListSets() []SetDescriptor {
	entries, err := os.ReadDir(r.Dir())
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") || excluded[name] {
			continue
		}
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return naturalLess(names[i], names[j]) })

	sets := make([]SetDescriptor, 0, len(names))
	for _, name := range names {
		title, ok := r.readTitle(name)
		if !ok {
			continue
		}
		sets = append(sets, SetDescriptor{Filename: name, Title: title})
	}
	return sets
}

// readTitle parses the set file for a top-level "title", falling back to the
// filename stem. Parse failure excludes the file.
func (r *Registry) readTitle(name string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(r.Dir(), name))
	if err != nil {
		log.Printf("registry: skipping %s: %v", name, err)
		return "", false
	}
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		log.Printf("registry: skipping %s: invalid JSON: %v", name, err)
		return "", false
	}
	if obj, ok := payload.(map[string]any); ok {
		if title, ok := obj["title"].(string); ok && title != "" {
			return title, true
		}
	}
	return strings.TrimSuffix(name, ".json"), true
}

// naturalLess orders filenames case-insensitively with digit runs compared
// numerically, so "Part 2" sorts before "Part 10".
func naturalLess(a, b string) bool {
	ar, br := []rune(strings.ToLower(a)), []rune(strings.ToLower(b))
	i, j := 0, 0
	for i < len(ar) && j < len(br) {
		if isDigit(ar[i]) && isDigit(br[j]) {
			ni, ei := readNumber(ar, i)
			nj, ej := readNumber(br, j)
			if ni != nj {
				return ni < nj
			}
			i, j = ei, ej
			continue
		}
		if ar[i] != br[j] {
			return ar[i] < br[j]
		}
		i++
		j++
	}
	return len(ar)-i < len(br)-j
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func readNumber(rs []rune, i int) (int64, int) {
	var n int64
	for i < len(rs) && isDigit(rs[i]) {
		n = n*10 + int64(rs[i]-'0')
		i++
	}
	return n, i
}
