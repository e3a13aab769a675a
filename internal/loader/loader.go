// Package loader fetches named deck documents and combines them into one list.
package loader

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/flashdeck/internal/deck"
)

// Result is the combined output of one load batch.
type Result struct {
	// Raw holds every element in source order, untouched, so that fields
	// other than question and answer survive the trip into the editor.
	Raw     []json.RawMessage
	Sources []string
}

// Len returns the number of combined elements.
func (r Result) Len() int {
	return len(r.Raw)
}

// Text renders the combined list as indented JSON.
func (r Result) Text() (string, error) {
	b, err := deck.Marshal(r.Raw)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Loader fetches sources one at a time through a Fetcher.
type Loader struct {
	fetcher Fetcher
	logger  *slog.Logger
}

// New creates a Loader. A nil logger uses slog.Default().
func New(fetcher Fetcher, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{fetcher: fetcher, logger: logger}
}

// Fetcher returns the underlying fetcher.
func (l *Loader) Fetcher() Fetcher {
	return l.fetcher
}

// SplitSources flattens identifiers given as separate values and/or
// space-separated lists.
func SplitSources(ids ...string) []string {
	var out []string
	for _, id := range ids {
		out = append(out, strings.Fields(id)...)
	}
	return out
}

// Load fetches every source in order and concatenates their arrays.
//
// The batch is all-or-nothing: the first source that cannot be fetched or
// decoded aborts the load and nothing from earlier sources is returned.
// A document that decodes to something other than an array is skipped with a
// warning. An empty combined list fails with *deck.ErrEmptyResult.
func (l *Loader) Load(ctx context.Context, ids ...string) (Result, error) {
	sources := SplitSources(ids...)
	var combined []json.RawMessage

	for _, id := range sources {
		start := time.Now()
		data, err := l.fetcher.Fetch(ctx, id)
		if err != nil {
			l.logger.Warn("fetch source failed",
				"source", id,
				"location", l.fetcher.Location(),
				"error", err)
			return Result{}, &deck.ErrSourceUnavailable{Source: id, Err: err}
		}

		var doc json.RawMessage
		if err := json.Unmarshal(data, &doc); err != nil {
			return Result{}, &deck.ErrMalformedJSON{Source: id, Err: err}
		}

		var elems []json.RawMessage
		if err := json.Unmarshal(doc, &elems); err != nil {
			l.logger.Warn("source is not an array, skipping", "source", id)
			continue
		}

		combined = append(combined, elems...)
		l.logger.Debug("fetched source",
			"source", id,
			"bytes", len(data),
			"items", len(elems),
			"duration_ms", time.Since(start).Milliseconds())
	}

	if len(combined) == 0 {
		return Result{}, &deck.ErrEmptyResult{Sources: sources}
	}

	l.logger.Info("load complete", "sources", sources, "items", len(combined))
	return Result{Raw: combined, Sources: sources}, nil
}

// Sources lists available identifiers when the fetcher can enumerate them.
// It returns nil for fetchers that cannot, such as HTTP.
func (l *Loader) Sources(ctx context.Context) ([]string, error) {
	lister, ok := l.fetcher.(Lister)
	if !ok {
		return nil, nil
	}
	return lister.List(ctx)
}
