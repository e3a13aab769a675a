package components

import (
	"fmt"
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/ui/theme"
)

// CountInput is a numeric input bounded to [1, Max]. It ignores keys while
// disabled.
type CountInput struct {
	Model    textinput.Model
	Max      int
	Disabled bool
}

// NewCountInput creates a count input holding value.
func NewCountInput(value int) CountInput {
	ti := textinput.New()
	ti.Placeholder = "N"
	ti.CharLimit = 6
	ti.SetValue(strconv.Itoa(value))

	return CountInput{Model: ti}
}

// Focus gives the input keyboard focus.
func (c *CountInput) Focus() tea.Cmd {
	return c.Model.Focus()
}

// Blur removes keyboard focus.
func (c *CountInput) Blur() {
	c.Model.Blur()
}

// Update filters non-digit keys and forwards the rest to the text input.
func (c CountInput) Update(msg tea.Msg) (CountInput, tea.Cmd) {
	if c.Disabled {
		return c, nil
	}
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if kmsg.Text != "" {
			for _, r := range kmsg.Text {
				if r < '0' || r > '9' {
					return c, nil
				}
			}
		}
	}

	var cmd tea.Cmd
	c.Model, cmd = c.Model.Update(msg)
	return c, cmd
}

// Value returns the entered number, or 0 when the field is empty or invalid.
func (c CountInput) Value() int {
	n, err := strconv.Atoi(c.Model.Value())
	if err != nil {
		return 0
	}
	return n
}

// SetValue replaces the field content.
func (c *CountInput) SetValue(n int) {
	c.Model.SetValue(strconv.Itoa(n))
}

// View renders the input with its allowed range.
func (c CountInput) View() string {
	if c.Disabled {
		return theme.Disabled.Render(fmt.Sprintf("%s  (disabled)", c.Model.Value()))
	}
	return c.Model.View() + theme.Hint.Render(fmt.Sprintf("  1–%d", c.Max))
}
