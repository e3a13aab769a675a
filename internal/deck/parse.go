package deck

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// errNoInput is wrapped in ErrMalformedJSON when the text is blank.
var errNoInput = errors.New("no input")

// schemaURL names the compiled deck schema resource.
const schemaURL = "schema://flash-deck.json"

// DeckSchema is the JSON schema every deck document must satisfy: an array
// of objects carrying non-empty string question and answer fields. Other
// fields are allowed and ignored.
var DeckSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{"type": "string", "minLength": 1},
			"answer":   map[string]any{"type": "string", "minLength": 1},
		},
		"required": []any{"question", "answer"},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func deckSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, DeckSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Parse decodes raw deck text into an ItemSet. Validation is all-or-nothing:
// one malformed element rejects the whole batch.
//
// An empty array is valid and yields an empty set.
func Parse(raw []byte) (ItemSet, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ItemSet{}, &ErrMalformedJSON{Err: errNoInput}
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ItemSet{}, &ErrMalformedJSON{Err: err}
	}

	if err := Validate(doc); err != nil {
		return ItemSet{}, err
	}

	var items []FlashItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return ItemSet{}, &ErrInvalidSchema{Err: err}
	}
	return NewItemSet(items), nil
}

// Validate checks an already decoded JSON value against DeckSchema.
func Validate(doc any) error {
	sch, err := deckSchema()
	if err != nil {
		return fmt.Errorf("compile deck schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return &ErrInvalidSchema{Err: err}
	}
	return nil
}

// Marshal renders items as indented JSON text, the format the editor shows.
func Marshal[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.MarshalIndent(items, "", "  ")
}
