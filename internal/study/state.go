// Package study holds the viewer's application state and the transitions
// triggered by user actions. It has no UI dependencies; screens call these
// methods and render the result.
package study

import (
	"errors"
	"math/rand/v2"

	"github.com/abhisek/flashdeck/internal/card"
	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/loader"
	"github.com/abhisek/flashdeck/internal/selector"
	"github.com/abhisek/flashdeck/internal/status"
)

// State is the whole mutable state of one viewing session. Every mutation
// replaces a field wholesale.
type State struct {
	// Text is the shared raw JSON buffer shown in the editor.
	Text string

	Items deck.ItemSet
	Mode  selector.Mode
	// Count is the requested number of cards in ModeCount.
	Count int
	// CountMax bounds Count; it follows the loaded item count.
	CountMax int

	// ControlsVisible mirrors whether the mode controls are shown.
	ControlsVisible bool

	// Cards is the current display selection.
	Cards []*card.Card

	Status status.Reporter

	rng *rand.Rand
}

// New creates an empty state. A nil rng is replaced by a clock-seeded one.
func New(rng *rand.Rand) *State {
	if rng == nil {
		rng = selector.NewRand()
	}
	return &State{
		Mode:  selector.ModeRandom,
		Count: 1,
		rng:   rng,
	}
}

// CountEnabled reports whether the count input accepts edits.
func (s *State) CountEnabled() bool {
	return s.Mode == selector.ModeCount
}

// SetMode switches the display mode.
func (s *State) SetMode(m selector.Mode) {
	s.Mode = m
}

// SetCount stores the requested count. Range is checked on Generate.
func (s *State) SetCount(n int) {
	s.Count = n
}

// LoadText parses Text and replaces the item set.
//
// On failure the item set is cleared and the controls hidden.
func (s *State) LoadText() error {
	s.Cards = nil

	items, err := deck.Parse([]byte(s.Text))
	if err != nil {
		s.Items = deck.ItemSet{}
		s.CountMax = 0
		s.ControlsVisible = false
		s.Status.Error(err)
		return err
	}

	s.Items = items
	s.CountMax = items.Len()
	if s.Count > s.CountMax {
		s.Count = s.CountMax
	}
	s.ControlsVisible = true
	s.Status.Success("Loaded %d items.", items.Len())
	return nil
}

// ApplyLoad consumes the outcome of a Data Loader batch.
//
// A failed batch leaves the state untouched apart from the status line. A
// successful one refills Text and runs it through LoadText.
func (s *State) ApplyLoad(res loader.Result, loadErr error) error {
	if loadErr != nil {
		s.Status.Error(loadErr)
		return loadErr
	}

	text, err := res.Text()
	if err != nil {
		s.Status.Error(err)
		return err
	}
	s.Text = text
	if err := s.LoadText(); err != nil {
		return err
	}
	s.Status.Success("Loaded %d items from %d sources.", res.Len(), len(res.Sources))
	return nil
}

// ErrCannotGenerate is returned by Generate when items are loaded but the
// settings select nothing.
var ErrCannotGenerate = errors.New("cannot generate with the current settings")

// Generate replaces the display set with a fresh selection of hidden cards.
//
// With nothing loaded the display is simply cleared. With items loaded but
// an out-of-range count the display is cleared and both the settings hint
// and the count range are reported.
func (s *State) Generate() error {
	items, err := selector.Select(s.Items, s.Mode, s.Count, s.rng)
	s.Cards = card.FromItems(items)
	if err == nil {
		return nil
	}

	s.Status.Report("Cannot generate: check the settings. "+status.Describe(err), status.SeverityError)
	return errors.Join(ErrCannotGenerate, err)
}

// Click forwards a click to card i. A click on an already revealed card
// regenerates the whole display set. Out-of-range indexes are ignored.
func (s *State) Click(i int) (card.Outcome, error) {
	if i < 0 || i >= len(s.Cards) {
		return card.OutcomeNone, nil
	}
	outcome := s.Cards[i].Click()
	if outcome == card.OutcomeAdvance {
		return outcome, s.Generate()
	}
	return outcome, nil
}
