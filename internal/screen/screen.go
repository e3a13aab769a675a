package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/ui/layout"
)

// Screen is one page of the flashdeck UI held by the router.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// DeckInfo is implemented by screens that know how many items are loaded
// and how many cards are on display. The header shows both counts.
type DeckInfo interface {
	Counts() (loaded, shown int)
}

// Resumer is implemented by screens that need to act when they become the
// active screen again after a pop.
type Resumer interface {
	Resume() tea.Cmd
}
