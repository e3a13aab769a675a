package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/ui/theme"
)

// Filter is a named set of sources loaded together.
type Filter struct {
	Label   string
	Sources []string
}

// FilterList is a vertical list of source filters.
type FilterList struct {
	Items    []Filter
	Selected int
	Focused  bool
	// Pending counts loads started from this list that have not finished.
	Pending  int
	OnSelect func(Filter) tea.Cmd
}

// NewFilterList creates a filter list.
func NewFilterList(items []Filter, onSelect func(Filter) tea.Cmd) FilterList {
	return FilterList{
		Items:    items,
		OnSelect: onSelect,
	}
}

// Update handles keyboard navigation while focused.
func (f FilterList) Update(msg tea.Msg) (FilterList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !f.Focused || len(f.Items) == 0 {
		return f, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if f.Selected > 0 {
			f.Selected--
		}
	case "down", "j":
		if f.Selected < len(f.Items)-1 {
			f.Selected++
		}
	case "enter", "space":
		if f.OnSelect != nil {
			return f, f.OnSelect(f.Items[f.Selected])
		}
	}

	return f, nil
}

// View renders the list.
func (f FilterList) View() string {
	if len(f.Items) == 0 {
		return theme.Hint.Render("no sources found")
	}

	var b strings.Builder
	for i, item := range f.Items {
		label := "  " + theme.Unselected.Render(item.Label)
		if f.Focused && i == f.Selected {
			label = theme.Selected.Render("▸ " + item.Label)
		}
		b.WriteString(label)
		if len(item.Sources) > 1 || (len(item.Sources) == 1 && item.Sources[0] != item.Label) {
			b.WriteString(theme.Hint.Render(" (" + strings.Join(item.Sources, " ") + ")"))
		}
		if i < len(f.Items)-1 {
			b.WriteString("\n")
		}
	}
	if f.Pending > 0 {
		b.WriteString("\n" + theme.Hint.Render("loading..."))
	}
	return b.String()
}
