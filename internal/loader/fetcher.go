package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/flashdeck/internal/assets"
)

// Fetcher retrieves the raw document for one source identifier.
// Source identifiers map to "<base>/<identifier>.json".
type Fetcher interface {
	Fetch(ctx context.Context, id string) ([]byte, error)
	// Location describes the base for messages and logs.
	Location() string
}

// Lister is implemented by fetchers that can enumerate their sources.
type Lister interface {
	List(ctx context.Context) ([]string, error)
}

// errNotFound is returned when a source does not exist at the base.
var errNotFound = errors.New("not found")

// NewFetcher picks a fetcher for base: the bundled decks when base is
// empty, HTTP for http(s) URLs, and a local directory otherwise.
func NewFetcher(base string) (Fetcher, error) {
	switch {
	case base == "":
		return &FSFetcher{FS: assets.Decks(), Name: "bundled decks"}, nil
	case strings.HasPrefix(base, "http://"), strings.HasPrefix(base, "https://"):
		return NewHTTPFetcher(base, nil)
	default:
		info, err := os.Stat(base)
		if err != nil {
			return nil, fmt.Errorf("assets directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("assets path %s is not a directory", base)
		}
		return &FSFetcher{FS: os.DirFS(base), Name: base}, nil
	}
}

// FSFetcher reads sources from a filesystem.
type FSFetcher struct {
	FS   fs.FS
	Name string
}

func (f *FSFetcher) Fetch(ctx context.Context, id string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := id + ".json"
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid source name %q", id)
	}
	data, err := fs.ReadFile(f.FS, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errNotFound
	}
	return data, err
}

func (f *FSFetcher) Location() string {
	return f.Name
}

// List returns the identifiers of every *.json file at the root, sorted.
func (f *FSFetcher) List(ctx context.Context) ([]string, error) {
	entries, err := fs.ReadDir(f.FS, ".")
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

// HTTPFetcher downloads sources relative to a base URL.
type HTTPFetcher struct {
	base   *url.URL
	client *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher. A nil client gets a 15s timeout.
func NewHTTPFetcher(base string, client *http.Client) (*HTTPFetcher, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse assets URL: %w", err)
	}
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPFetcher{base: u, client: client}, nil
}

func (h *HTTPFetcher) Fetch(ctx context.Context, id string) ([]byte, error) {
	u := h.base.JoinPath(id + ".json")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func (h *HTTPFetcher) Location() string {
	return h.base.String()
}
