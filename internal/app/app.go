// Package app hosts the root Bubble Tea model.
package app

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/loader"
	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screen"
	"github.com/abhisek/flashdeck/internal/screens/deck"
	"github.com/abhisek/flashdeck/internal/study"
	"github.com/abhisek/flashdeck/internal/ui/components"
	"github.com/abhisek/flashdeck/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Loader  *loader.Loader
	State   *study.State
	Filters []components.Filter
	Logger  *slog.Logger

	InitialSources []string
	InitialText    string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	logger *slog.Logger
	width  int
	height int
}

// NewAppModel creates the root model with the deck screen at the bottom of
// the stack.
func NewAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	root := deck.New(deck.Options{
		Loader:         opts.Loader,
		State:          opts.State,
		Filters:        opts.Filters,
		InitialSources: opts.InitialSources,
		InitialText:    opts.InitialText,
	})
	return AppModel{
		router: router.New(root),
		logger: logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.logger.Info("quit")
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
		return m, m.router.Update(msg)

	case router.PushScreenMsg:
		m.logger.Debug("push screen", "screen", msg.Screen.Title())
	}

	cmd := m.router.Update(msg)
	if m.router.Depth() > 1 && !isNavigation(msg) {
		// Loads started on the deck screen may finish while help is open.
		cmd = tea.Batch(cmd, m.router.UpdateRoot(msg))
	}
	return m, cmd
}

func isNavigation(msg tea.Msg) bool {
	switch msg.(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		return true
	}
	return false
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var loaded, shown int
	if info, ok := m.router.Root().(screen.DeckInfo); ok {
		loaded, shown = info.Counts()
	}
	header := layout.RenderHeader(active.Title(), loaded, shown, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Tab", Description: "Next panel"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(NewAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
