package study

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/flashdeck/internal/card"
	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/loader"
	"github.com/abhisek/flashdeck/internal/logging"
	"github.com/abhisek/flashdeck/internal/selector"
	"github.com/abhisek/flashdeck/internal/status"
)

const twoItems = `[{"question":"Q1","answer":"A1"},{"question":"Q2","answer":"A2"}]`

func newState() *State {
	return New(rand.New(rand.NewPCG(7, 11)))
}

func loaded(t *testing.T, text string) *State {
	t.Helper()
	s := newState()
	s.Text = text
	require.NoError(t, s.LoadText())
	return s
}

func testLoader() *loader.Loader {
	fsys := fstest.MapFS{
		"a.json":   {Data: []byte(`[{"question":"QA","answer":"AA"}]`)},
		"b.json":   {Data: []byte(`[{"question":"QB1","answer":"AB1"},{"question":"QB2","answer":"AB2"}]`)},
		"bad.json": {Data: []byte(`[{"question":"no answer"}]`)},
	}
	return loader.New(&loader.FSFetcher{FS: fsys, Name: "test"}, logging.Discard())
}

func TestLoadText_Success(t *testing.T) {
	s := loaded(t, twoItems)

	assert.Equal(t, 2, s.Items.Len())
	assert.Equal(t, 2, s.CountMax)
	assert.True(t, s.ControlsVisible)
	msg, sev := s.Status.Last()
	assert.Equal(t, status.SeveritySuccess, sev)
	assert.Contains(t, msg, "2 items")
}

func TestLoadText_ClampsCount(t *testing.T) {
	s := newState()
	s.SetCount(10)
	s.Text = twoItems
	require.NoError(t, s.LoadText())
	assert.Equal(t, 2, s.Count)

	s.SetCount(1)
	require.NoError(t, s.LoadText())
	assert.Equal(t, 1, s.Count, "counts within bounds are kept")
}

func TestLoadText_FailureClearsState(t *testing.T) {
	s := loaded(t, twoItems)
	require.NoError(t, s.Generate())

	s.Text = "{oops"
	err := s.LoadText()
	var malformed *deck.ErrMalformedJSON
	require.True(t, errors.As(err, &malformed))

	assert.True(t, s.Items.Empty())
	assert.Zero(t, s.CountMax)
	assert.False(t, s.ControlsVisible)
	assert.Empty(t, s.Cards)
	_, sev := s.Status.Last()
	assert.Equal(t, status.SeverityError, sev)
}

func TestLoadText_SchemaFailure(t *testing.T) {
	s := loaded(t, twoItems)
	s.Text = `[{"question":"Q1","answer":"A1"},{"question":"Q2"}]`
	err := s.LoadText()
	var invalid *deck.ErrInvalidSchema
	require.True(t, errors.As(err, &invalid))
	assert.True(t, s.Items.Empty())
}

func TestLoadText_EmptyArrayIsValid(t *testing.T) {
	s := loaded(t, `[]`)
	assert.True(t, s.ControlsVisible)
	assert.Zero(t, s.CountMax)

	require.NoError(t, s.Generate(), "empty set generates nothing without error")
	assert.Empty(t, s.Cards)
}

func TestApplyLoad_Success(t *testing.T) {
	s := newState()
	res, err := testLoader().Load(context.Background(), "a b")
	require.NoError(t, s.ApplyLoad(res, err))

	assert.Equal(t, 3, s.Items.Len())
	assert.Contains(t, s.Text, "QB2")
	msg, _ := s.Status.Last()
	assert.Contains(t, msg, "3 items from 2 sources")
}

func TestApplyLoad_FailureLeavesStateUntouched(t *testing.T) {
	s := loaded(t, twoItems)
	before := s.Text

	res, err := testLoader().Load(context.Background(), "a", "missing")
	require.Error(t, s.ApplyLoad(res, err))

	assert.Equal(t, 2, s.Items.Len(), "existing items must survive a failed fetch")
	assert.Equal(t, before, s.Text)
	assert.True(t, s.ControlsVisible)
	msg, sev := s.Status.Last()
	assert.Equal(t, status.SeverityError, sev)
	assert.Contains(t, msg, "missing.json")
}

func TestApplyLoad_InvalidFetchedDeckClears(t *testing.T) {
	s := loaded(t, twoItems)
	res, err := testLoader().Load(context.Background(), "bad")
	require.NoError(t, err)

	err = s.ApplyLoad(res, nil)
	var invalid *deck.ErrInvalidSchema
	require.True(t, errors.As(err, &invalid))
	assert.True(t, s.Items.Empty())
	_, sev := s.Status.Last()
	assert.Equal(t, status.SeverityError, sev)
}

func TestGenerate_Random(t *testing.T) {
	s := loaded(t, twoItems)
	s.SetMode(selector.ModeRandom)
	require.NoError(t, s.Generate())
	require.Len(t, s.Cards, 1)
	assert.False(t, s.Cards[0].Revealed())
}

func TestGenerate_CountBothItems(t *testing.T) {
	s := loaded(t, twoItems)
	s.SetMode(selector.ModeCount)
	s.SetCount(2)
	require.NoError(t, s.Generate())
	require.Len(t, s.Cards, 2)
	assert.NotEqual(t, s.Cards[0].Item, s.Cards[1].Item)
}

func TestGenerate_BadCountIsDistinctFromNoData(t *testing.T) {
	s := loaded(t, twoItems)
	s.SetMode(selector.ModeCount)
	s.SetCount(0)

	err := s.Generate()
	assert.ErrorIs(t, err, ErrCannotGenerate)
	var badCount *deck.ErrInvalidCount
	assert.True(t, errors.As(err, &badCount))
	assert.Empty(t, s.Cards)
	msg, sev := s.Status.Last()
	assert.Equal(t, status.SeverityError, sev)
	assert.Equal(t, "Cannot generate: check the settings. Enter a count from 1 to 2.", msg)

	empty := newState()
	empty.SetMode(selector.ModeCount)
	empty.SetCount(0)
	assert.NoError(t, empty.Generate(), "no data loaded is not an error")
}

func TestClick_RevealThenAdvance(t *testing.T) {
	s := loaded(t, twoItems)
	s.SetMode(selector.ModeCount)
	s.SetCount(2)
	require.NoError(t, s.Generate())
	first := s.Cards[0]

	outcome, err := s.Click(0)
	require.NoError(t, err)
	assert.Equal(t, card.OutcomeRevealed, outcome)
	assert.True(t, first.Revealed())
	assert.Same(t, first, s.Cards[0], "revealing must not rebuild the display")

	outcome, err = s.Click(0)
	require.NoError(t, err)
	assert.Equal(t, card.OutcomeAdvance, outcome)
	require.Len(t, s.Cards, 2)
	for _, c := range s.Cards {
		assert.False(t, c.Revealed(), "regenerated cards start hidden")
		assert.NotEqual(t, first.ID, c.ID)
	}
	assert.True(t, first.Revealed(), "the old card never reverts")
}

func TestClick_OutOfRange(t *testing.T) {
	s := loaded(t, twoItems)
	outcome, err := s.Click(3)
	assert.NoError(t, err)
	assert.Equal(t, card.OutcomeNone, outcome)
}

func TestCountEnabled(t *testing.T) {
	s := newState()
	assert.False(t, s.CountEnabled())
	s.SetMode(selector.ModeCount)
	assert.True(t, s.CountEnabled())
}
