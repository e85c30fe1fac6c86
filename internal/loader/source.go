package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Source fetches the raw bytes of one question-set resource.
type Source interface {
	Fetch(ctx context.Context, filename string) ([]byte, error)
}

// FileSource reads question sets from a directory. Lookups are
// traversal-safe (basename only) and fall back to a case-insensitive,
// whitespace-normalized scan so "Part%201.json" still finds "part 1.json".
type FileSource struct {
	dir func() string
}

// NewFileSource builds a FileSource over a directory resolver, typically
// registry.Dir, so the active directory can change between calls.
func NewFileSource(dir func() string) *FileSource {
	return &FileSource{dir: dir}
}

func (s *FileSource) Fetch(_ context.Context, filename string) ([]byte, error) {
	base := filepath.Base(filename)
	dir := s.dir()

	path := filepath.Join(dir, base)
	if data, err := os.ReadFile(path); err == nil {
		return data, nil
	}

	resolved, err := s.resolve(dir, base)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(dir, resolved))
}

// Resolve returns the on-disk name matching the requested one, applying the
// normalization search when no exact match exists.
func (s *FileSource) Resolve(filename string) (string, error) {
	base := filepath.Base(filename)
	dir := s.dir()
	if _, err := os.Stat(filepath.Join(dir, base)); err == nil {
		return base, nil
	}
	return s.resolve(dir, base)
}

func (s *FileSource) resolve(dir, base string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("question set %q: %w", base, err)
	}
	want := normalizeName(base)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if normalizeName(e.Name()) == want {
			return e.Name(), nil
		}
	}
	return "", fmt.Errorf("question set %q not found", base)
}

// normalizeName lowercases and strips whitespace so filename variants that
// differ only in case or spacing compare equal.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "")
}

// HTTPSource fetches question sets from a remote base URL. Non-2xx statuses
// and non-JSON content types are errors so the chain falls through.
type HTTPSource struct {
	Base   string
	Client *http.Client
}

func NewHTTPSource(base string) *HTTPSource {
	return &HTTPSource{
		Base:   strings.TrimSuffix(base, "/"),
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *HTTPSource) Fetch(ctx context.Context, filename string) ([]byte, error) {
	u := s.Base + "/" + url.PathEscape(filename)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: HTTP %d", u, resp.StatusCode)
	}
	ct := resp.Header.Get("Content-Type")
	if ct != "" && !strings.Contains(ct, "json") {
		return nil, fmt.Errorf("fetch %s: unexpected content type %q", u, ct)
	}
	return io.ReadAll(resp.Body)
}
