// Package help implements the key binding reference screen.
package help

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screen"
	"github.com/abhisek/flashdeck/internal/ui/layout"
	"github.com/abhisek/flashdeck/internal/ui/theme"
)

// Section groups the bindings of one focus zone.
type Section struct {
	Name     string
	Bindings []layout.KeyHint
}

// Sections is the reference shown by the screen.
var Sections = []Section{
	{Name: "Anywhere", Bindings: []layout.KeyHint{
		{Key: "Tab / Shift+Tab", Description: "Move between panels"},
		{Key: "F1, ?", Description: "This help (? outside the editor)"},
		{Key: "Ctrl+C", Description: "Quit"},
	}},
	{Name: "JSON editor", Bindings: []layout.KeyHint{
		{Key: "Ctrl+L", Description: "Load the editor text"},
	}},
	{Name: "Sources", Bindings: []layout.KeyHint{
		{Key: "↑↓", Description: "Pick a filter"},
		{Key: "Enter", Description: "Fetch its sources"},
	}},
	{Name: "Mode and count", Bindings: []layout.KeyHint{
		{Key: "←→ / Space", Description: "Switch between random and count"},
		{Key: "0-9", Description: "Number of cards in count mode"},
	}},
	{Name: "Generate", Bindings: []layout.KeyHint{
		{Key: "Enter", Description: "Draw a new selection"},
	}},
	{Name: "Cards", Bindings: []layout.KeyHint{
		{Key: "↑↓", Description: "Focus a card"},
		{Key: "Enter / Space", Description: "Reveal, then draw again"},
	}},
}

// HelpScreen lists every key binding.
type HelpScreen struct{}

var _ screen.Screen = (*HelpScreen)(nil)
var _ screen.KeyHintProvider = (*HelpScreen)(nil)

func New() *HelpScreen {
	return &HelpScreen{}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Title() string {
	return "Help"
}

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Update closes the screen on q or ?. Esc is handled by the app.
func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "q", "?", "f1":
			return h, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	keyWidth := 0
	for _, s := range Sections {
		for _, b := range s.Bindings {
			keyWidth = max(keyWidth, lipgloss.Width(b.Key))
		}
	}

	var b strings.Builder
	for i, s := range Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(theme.Label.Render(s.Name) + "\n")
		for _, kb := range s.Bindings {
			key := kb.Key + strings.Repeat(" ", keyWidth-lipgloss.Width(kb.Key))
			b.WriteString("  " + theme.Body.Bold(true).Render(key) + "  " + theme.Hint.Render(kb.Description) + "\n")
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.Panel.Render(strings.TrimRight(b.String(), "\n")))
}
