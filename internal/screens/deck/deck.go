// Package deck implements the main flashcard screen: the JSON editor, source
// filters, display controls and the card list.
package deck

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/card"
	"github.com/abhisek/flashdeck/internal/loader"
	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screen"
	"github.com/abhisek/flashdeck/internal/screens/help"
	"github.com/abhisek/flashdeck/internal/selector"
	"github.com/abhisek/flashdeck/internal/study"
	"github.com/abhisek/flashdeck/internal/ui/components"
	"github.com/abhisek/flashdeck/internal/ui/layout"
)

// zone is a focusable area of the screen, in Tab order.
type zone int

const (
	zoneEditor zone = iota
	zoneFilters
	zoneMode
	zoneCount
	zoneGenerate
	zoneCards
)

var modeOptions = []selector.Mode{selector.ModeRandom, selector.ModeCount}

// Options configures a DeckScreen.
type Options struct {
	Loader  *loader.Loader
	State   *study.State
	Filters []components.Filter

	// InitialSources are fetched when the screen starts.
	InitialSources []string
	// InitialText is placed in the editor and loaded when the screen starts.
	InitialText string
}

// DeckScreen implements screen.Screen for the flashcard viewer.
type DeckScreen struct {
	state  *study.State
	loader *loader.Loader

	editor   textarea.Model
	filters  components.FilterList
	mode     components.ModeToggle
	count    components.CountInput
	generate components.Button

	focus     zone
	cardFocus int

	initialSources []string
}

var _ screen.Screen = (*DeckScreen)(nil)
var _ screen.KeyHintProvider = (*DeckScreen)(nil)
var _ screen.DeckInfo = (*DeckScreen)(nil)
var _ screen.Resumer = (*DeckScreen)(nil)

// New creates the screen. A nil State starts from study.New(nil).
func New(opts Options) *DeckScreen {
	st := opts.State
	if st == nil {
		st = study.New(nil)
	}

	ed := textarea.New()
	ed.Placeholder = `[{"question": "...", "answer": "..."}]`
	ed.ShowLineNumbers = false
	ed.CharLimit = 0

	s := &DeckScreen{
		state:          st,
		loader:         opts.Loader,
		editor:         ed,
		initialSources: opts.InitialSources,
	}

	s.filters = components.NewFilterList(opts.Filters, func(f components.Filter) tea.Cmd {
		sources := f.Sources
		return func() tea.Msg { return loadRequestMsg{Sources: sources} }
	})

	options := make([]string, len(modeOptions))
	for i, m := range modeOptions {
		options[i] = m.String()
	}
	s.mode = components.NewModeToggle(options, func(i int) tea.Cmd {
		s.state.SetMode(modeOptions[i])
		s.syncControls()
		return nil
	})
	for i, m := range modeOptions {
		if m == st.Mode {
			s.mode.Selected = i
		}
	}

	s.count = components.NewCountInput(st.Count)
	s.generate = components.NewButton("Generate", func() tea.Cmd {
		s.runGenerate()
		return nil
	})

	if opts.InitialText != "" {
		s.editor.SetValue(opts.InitialText)
		s.loadEditor()
	}
	s.syncControls()

	return s
}

func (s *DeckScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.applyFocus()}
	if len(s.initialSources) > 0 {
		cmds = append(cmds, s.startLoad(s.initialSources))
	}
	return tea.Batch(cmds...)
}

func (s *DeckScreen) Title() string {
	return "Deck"
}

// Counts reports the loaded item count and the number of cards on display.
func (s *DeckScreen) Counts() (loaded, shown int) {
	return s.state.Items.Len(), len(s.state.Cards)
}

// State exposes the study state the screen renders.
func (s *DeckScreen) State() *study.State {
	return s.state
}

// Resume restores keyboard focus after the help screen closes.
func (s *DeckScreen) Resume() tea.Cmd {
	return s.applyFocus()
}

func (s *DeckScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "Next panel"}}
	switch s.focus {
	case zoneEditor:
		hints = append(hints,
			layout.KeyHint{Key: "Ctrl+L", Description: "Load"},
			layout.KeyHint{Key: "F1", Description: "Help"})
		return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	case zoneFilters:
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Select"},
			layout.KeyHint{Key: "Enter", Description: "Fetch"})
	case zoneMode:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Mode"})
	case zoneCount:
		hints = append(hints, layout.KeyHint{Key: "0-9", Description: "Count"})
	case zoneGenerate:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Generate"})
	case zoneCards:
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Card"},
			layout.KeyHint{Key: "Enter", Description: s.focusedPrompt()})
	}
	return append(hints,
		layout.KeyHint{Key: "?", Description: "Help"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (s *DeckScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadRequestMsg:
		return s, s.startLoad(msg.Sources)

	case loadDoneMsg:
		return s.handleLoadDone(msg)

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	// Cursor blink and other widget messages.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	s.editor, cmd = s.editor.Update(msg)
	cmds = append(cmds, cmd)
	s.count, cmd = s.count.Update(msg)
	cmds = append(cmds, cmd)
	return s, tea.Batch(cmds...)
}

func (s *DeckScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return s, s.moveFocus(1)
	case "shift+tab":
		return s, s.moveFocus(-1)
	case "ctrl+l":
		s.loadEditor()
		return s, nil
	case "f1":
		return s, openHelp()
	case "?":
		if s.focus != zoneEditor {
			return s, openHelp()
		}
	}

	prev := s.focus
	var cmd tea.Cmd
	switch s.focus {
	case zoneEditor:
		s.editor, cmd = s.editor.Update(msg)
	case zoneFilters:
		s.filters, cmd = s.filters.Update(msg)
	case zoneMode:
		s.mode, cmd = s.mode.Update(msg)
	case zoneCount:
		s.count, cmd = s.count.Update(msg)
		s.state.SetCount(s.count.Value())
	case zoneGenerate:
		s.generate, cmd = s.generate.Update(msg)
	case zoneCards:
		s.handleCardKey(msg)
	}

	if s.focus != prev {
		return s, tea.Batch(cmd, s.applyFocus())
	}
	s.syncFocusFlags()
	return s, cmd
}

func (s *DeckScreen) handleCardKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "up", "k":
		if s.cardFocus > 0 {
			s.cardFocus--
		}
	case "down", "j":
		if s.cardFocus < len(s.state.Cards)-1 {
			s.cardFocus++
		}
	case "enter", "space":
		outcome, _ := s.state.Click(s.cardFocus)
		if outcome == card.OutcomeAdvance {
			s.cardFocus = 0
			s.settleFocus()
		}
	}
}

// startLoad fetches sources off the UI goroutine. Loads are not
// de-duplicated; the last one to finish wins.
func (s *DeckScreen) startLoad(sources []string) tea.Cmd {
	if s.loader == nil {
		return nil
	}
	s.filters.Pending++
	s.state.Status.Info("Loading %s...", strings.Join(sources, " "))

	ld := s.loader
	return func() tea.Msg {
		res, err := ld.Load(context.Background(), sources...)
		return loadDoneMsg{Sources: sources, Result: res, Err: err}
	}
}

func (s *DeckScreen) handleLoadDone(msg loadDoneMsg) (screen.Screen, tea.Cmd) {
	if s.filters.Pending > 0 {
		s.filters.Pending--
	}
	_ = s.state.ApplyLoad(msg.Result, msg.Err)
	if msg.Err == nil {
		s.editor.SetValue(s.state.Text)
	}
	s.syncControls()
	return s, nil
}

// loadEditor runs the editor text through the parser.
func (s *DeckScreen) loadEditor() {
	s.state.Text = s.editor.Value()
	_ = s.state.LoadText()
	s.syncControls()
}

func (s *DeckScreen) runGenerate() {
	_ = s.state.Generate()
	s.cardFocus = 0
	s.syncControls()
	if len(s.state.Cards) > 0 {
		s.focus = zoneCards
	}
}

// syncControls copies state into the widgets after a state change.
func (s *DeckScreen) syncControls() {
	s.count.Max = s.state.CountMax
	s.count.Disabled = !s.state.CountEnabled()
	if s.count.Value() != s.state.Count {
		s.count.SetValue(s.state.Count)
	}
	if s.cardFocus >= len(s.state.Cards) {
		s.cardFocus = 0
	}
	s.settleFocus()
}

// available reports whether z can take focus in the current state.
func (s *DeckScreen) available(z zone) bool {
	switch z {
	case zoneEditor, zoneFilters:
		return true
	case zoneMode, zoneGenerate:
		return s.state.ControlsVisible
	case zoneCount:
		return s.state.ControlsVisible && s.state.CountEnabled()
	case zoneCards:
		return len(s.state.Cards) > 0
	}
	return false
}

// settleFocus moves focus back to the nearest earlier zone when the
// focused one disappears. The editor and filters are always available, so
// focus never lands on the editor this way.
func (s *DeckScreen) settleFocus() {
	for !s.available(s.focus) {
		s.focus--
	}
	s.syncFocusFlags()
	if s.focus != zoneCount {
		s.count.Blur()
	}
}

func (s *DeckScreen) moveFocus(dir int) tea.Cmd {
	const zones = int(zoneCards) + 1
	next := int(s.focus)
	for range zones {
		next = (next + dir + zones) % zones
		if s.available(zone(next)) {
			break
		}
	}
	s.focus = zone(next)
	return s.applyFocus()
}

func (s *DeckScreen) syncFocusFlags() {
	s.filters.Focused = s.focus == zoneFilters
	s.mode.Focused = s.focus == zoneMode
	s.generate.Focused = s.focus == zoneGenerate
}

// applyFocus hands keyboard focus to the widget in s.focus.
func (s *DeckScreen) applyFocus() tea.Cmd {
	s.syncFocusFlags()

	var cmds []tea.Cmd
	if s.focus == zoneEditor {
		cmds = append(cmds, s.editor.Focus())
	} else {
		s.editor.Blur()
	}
	if s.focus == zoneCount {
		cmds = append(cmds, s.count.Focus())
	} else {
		s.count.Blur()
	}
	return tea.Batch(cmds...)
}

func (s *DeckScreen) focusedPrompt() string {
	if s.cardFocus < len(s.state.Cards) {
		return s.state.Cards[s.cardFocus].Prompt()
	}
	return ""
}

func openHelp() tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: help.New()} }
}
