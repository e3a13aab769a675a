package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/ui/theme"
)

// ModeToggle is a mutually exclusive choice between a few options.
type ModeToggle struct {
	Options  []string
	Selected int
	Focused  bool
	OnChange func(index int) tea.Cmd
}

// NewModeToggle creates a toggle with the first option selected.
func NewModeToggle(options []string, onChange func(index int) tea.Cmd) ModeToggle {
	return ModeToggle{
		Options:  options,
		OnChange: onChange,
	}
}

// Update moves the selection with the arrow keys while focused.
func (m ModeToggle) Update(msg tea.Msg) (ModeToggle, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !m.Focused || len(m.Options) == 0 {
		return m, nil
	}

	prev := m.Selected
	switch kmsg.String() {
	case "left", "up", "h", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "right", "down", "l", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "space", "enter":
		m.Selected = (m.Selected + 1) % len(m.Options)
	}

	if m.Selected != prev && m.OnChange != nil {
		return m, m.OnChange(m.Selected)
	}
	return m, nil
}

// View renders the options as radio buttons.
func (m ModeToggle) View() string {
	parts := make([]string, 0, len(m.Options))
	for i, opt := range m.Options {
		mark := "( ) "
		if i == m.Selected {
			mark = "(•) "
		}
		style := theme.Unselected
		if i == m.Selected && m.Focused {
			style = theme.Selected
		}
		parts = append(parts, style.Render(mark+opt))
	}
	return strings.Join(parts, "   ")
}
