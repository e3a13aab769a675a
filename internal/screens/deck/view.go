package deck

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/ui/layout"
	"github.com/abhisek/flashdeck/internal/ui/theme"
)

const editorRows = 8

func (s *DeckScreen) View(width, height int) string {
	if layout.IsWide(width) {
		leftWidth := width * 2 / 5
		rightWidth := width - leftWidth - 1
		left := s.renderControls(leftWidth)
		right := s.renderStatus() + "\n" + s.renderCards(rightWidth, height-1)
		return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	}

	top := s.renderControls(width) + "\n" + s.renderStatus()
	rest := height - lipgloss.Height(top) - 1
	return top + "\n" + s.renderCards(width, rest)
}

// renderControls renders the editor, the filters and, once data is loaded,
// the display controls.
func (s *DeckScreen) renderControls(width int) string {
	inner := max(width-4, 10)
	s.editor.SetWidth(inner)
	s.editor.SetHeight(editorRows)

	parts := []string{
		panel("JSON", s.editor.View(), width, s.focus == zoneEditor),
		panel("Sources", s.filters.View(), width, s.focus == zoneFilters),
	}

	if s.state.ControlsVisible {
		var b strings.Builder
		b.WriteString(theme.Label.Render("Mode  ") + s.mode.View() + "\n")
		b.WriteString(theme.Label.Render("Count ") + s.count.View() + "\n\n")
		b.WriteString(s.generate.View())
		focused := s.focus == zoneMode || s.focus == zoneCount || s.focus == zoneGenerate
		parts = append(parts, panel("Display", b.String(), width, focused))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *DeckScreen) renderStatus() string {
	if v := s.state.Status.View(); v != "" {
		return " " + v
	}
	return ""
}

// renderCards renders as many cards as fit in height, keeping the focused
// card visible.
func (s *DeckScreen) renderCards(width, height int) string {
	if len(s.state.Cards) == 0 {
		msg := "Load a deck, then press Generate."
		if s.state.ControlsVisible {
			msg = "No cards yet. Press Generate."
		}
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("\n" + theme.Hint.Render(msg))
	}

	views := make([]string, len(s.state.Cards))
	for i, c := range s.state.Cards {
		views[i] = c.View(width-2, s.focus == zoneCards && i == s.cardFocus)
	}
	return window(views, s.cardFocus, height)
}

// window joins views starting early enough to show views[focus] within
// height rows.
func window(views []string, focus, height int) string {
	start := 0
	for start < focus && heightOf(views[start:focus+1]) > height {
		start++
	}

	var shown []string
	used := 0
	for _, v := range views[start:] {
		h := lipgloss.Height(v)
		if len(shown) > 0 && used+h > height {
			break
		}
		shown = append(shown, v)
		used += h
	}
	return strings.Join(shown, "\n")
}

func heightOf(views []string) int {
	total := 0
	for _, v := range views {
		total += lipgloss.Height(v)
	}
	return total
}

func panel(title, body string, width int, focused bool) string {
	style := theme.Panel
	if focused {
		style = theme.PanelFocused
	}
	return style.Width(width).Render(theme.Title.Render(title) + "\n" + body)
}
