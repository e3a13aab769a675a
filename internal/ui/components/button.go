package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/ui/theme"
)

// Button is a styled button component.
type Button struct {
	Label   string
	Focused bool
	OnPress func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		OnPress: onPress,
	}
}

// Update presses the button on Enter or Space while focused.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Focused || b.OnPress == nil {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "space":
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	if b.Focused {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}
