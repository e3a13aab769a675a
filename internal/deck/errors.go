package deck

import (
	"fmt"
	"strings"
)

// ErrSourceUnavailable indicates a requested resource could not be fetched.
type ErrSourceUnavailable struct {
	Source string
	Err    error
}

func (e *ErrSourceUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("source %q unavailable: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("source %q unavailable", e.Source)
}

func (e *ErrSourceUnavailable) Unwrap() error { return e.Err }

// ErrEmptyResult indicates a fetch batch yielded zero combined items.
type ErrEmptyResult struct {
	Sources []string
}

func (e *ErrEmptyResult) Error() string {
	return fmt.Sprintf("no items in %s", strings.Join(e.Sources, ", "))
}

// ErrMalformedJSON indicates the input is not valid JSON.
// Source is empty for text typed into the editor.
type ErrMalformedJSON struct {
	Source string
	Err    error
}

func (e *ErrMalformedJSON) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("malformed JSON in %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("malformed JSON: %v", e.Err)
}

func (e *ErrMalformedJSON) Unwrap() error { return e.Err }

// ErrInvalidSchema indicates the decoded JSON is not an array of
// well-formed question/answer objects.
type ErrInvalidSchema struct {
	Err error
}

func (e *ErrInvalidSchema) Error() string {
	return fmt.Sprintf("invalid deck format: %v", e.Err)
}

func (e *ErrInvalidSchema) Unwrap() error { return e.Err }

// ErrInvalidCount indicates a requested card count outside [1, Max].
type ErrInvalidCount struct {
	Requested int
	Max       int
}

func (e *ErrInvalidCount) Error() string {
	return fmt.Sprintf("count %d out of range: enter a number from 1 to %d", e.Requested, e.Max)
}
