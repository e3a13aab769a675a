// Package card holds one rendered flashcard and its reveal/advance interaction.
package card

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/ui/theme"
)

const (
	PromptReveal  = "click to reveal"
	PromptAdvance = "click to advance"
)

// Outcome is what a click on a card asks the caller to do.
type Outcome int

const (
	// OutcomeNone means the click hit nothing.
	OutcomeNone Outcome = iota
	// OutcomeRevealed means the card moved from hidden to revealed.
	OutcomeRevealed
	// OutcomeAdvance means the card was already revealed and the whole
	// display set should be regenerated.
	OutcomeAdvance
)

// Card is one rendered instance of a FlashItem. Revealing is one-way: a card
// never goes back to hidden; regeneration builds fresh cards instead.
type Card struct {
	ID       string
	Item     deck.FlashItem
	revealed bool
}

// New creates a hidden card for item.
func New(item deck.FlashItem) *Card {
	return &Card{
		ID:   uuid.New().String(),
		Item: item,
	}
}

// FromItems creates one hidden card per item, in order.
func FromItems(items []deck.FlashItem) []*Card {
	cards := make([]*Card, 0, len(items))
	for _, it := range items {
		cards = append(cards, New(it))
	}
	return cards
}

// Revealed reports whether the answer is shown.
func (c *Card) Revealed() bool {
	return c.revealed
}

// Click handles a click on the answer area.
func (c *Card) Click() Outcome {
	if !c.revealed {
		c.revealed = true
		return OutcomeRevealed
	}
	return OutcomeAdvance
}

// Prompt returns the hint shown under the answer.
func (c *Card) Prompt() string {
	if c.revealed {
		return PromptAdvance
	}
	return PromptReveal
}

// View renders the card at the given outer width.
func (c *Card) View(width int, focused bool) string {
	style := theme.Card
	if focused {
		style = theme.CardFocused
	}
	inner := width - style.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}

	q := theme.Question.Width(inner).Render(c.Item.Question)

	var answer string
	if c.revealed {
		answer = theme.AnswerRevealed.Width(inner).Render(c.Item.Answer)
	} else {
		answer = theme.AnswerHidden.Width(inner).Render(mask(c.Item.Answer))
	}

	prompt := theme.Prompt.Render(c.Prompt())

	return style.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, q, "", answer, prompt))
}

// mask hides the answer text while keeping its shape.
func mask(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ' ', '\n', '\t':
			b.WriteRune(r)
		default:
			b.WriteRune('░')
		}
	}
	return b.String()
}
