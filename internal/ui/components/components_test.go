package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

type pickedMsg struct{ label string }

func TestFilterList_NavigateAndSelect(t *testing.T) {
	f := NewFilterList([]Filter{
		{Label: "go", Sources: []string{"go"}},
		{Label: "web", Sources: []string{"http", "sql"}},
	}, func(f Filter) tea.Cmd {
		return func() tea.Msg { return pickedMsg{f.Label} }
	})
	f.Focused = true

	f, _ = f.Update(specialKey(tea.KeyDown))
	f, _ = f.Update(specialKey(tea.KeyDown))
	if f.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", f.Selected)
	}

	_, cmd := f.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if got := cmd().(pickedMsg).label; got != "web" {
		t.Errorf("picked %q, want %q", got, "web")
	}
}

func TestFilterList_IgnoresKeysWhenBlurred(t *testing.T) {
	f := NewFilterList([]Filter{{Label: "a"}, {Label: "b"}}, nil)
	f, _ = f.Update(specialKey(tea.KeyDown))
	if f.Selected != 0 {
		t.Errorf("Selected = %d, want 0", f.Selected)
	}
}

func TestFilterList_View(t *testing.T) {
	f := NewFilterList([]Filter{{Label: "web", Sources: []string{"http", "sql"}}}, nil)
	f.Pending = 1
	view := f.View()
	if !strings.Contains(view, "http sql") || !strings.Contains(view, "loading") {
		t.Errorf("view = %q", view)
	}

	if !strings.Contains(NewFilterList(nil, nil).View(), "no sources") {
		t.Error("expected empty list message")
	}
}

func TestModeToggle(t *testing.T) {
	var changed []int
	m := NewModeToggle([]string{"random", "count"}, func(i int) tea.Cmd {
		changed = append(changed, i)
		return nil
	})
	m.Focused = true

	m, _ = m.Update(specialKey(tea.KeyLeft))
	m, _ = m.Update(specialKey(tea.KeyRight))
	m, _ = m.Update(specialKey(tea.KeyRight))
	m, _ = m.Update(specialKey(tea.KeySpace))

	if m.Selected != 0 {
		t.Errorf("Selected = %d, want 0", m.Selected)
	}
	if len(changed) != 2 || changed[0] != 1 || changed[1] != 0 {
		t.Errorf("changes = %v, want [1 0]", changed)
	}
}

func TestCountInput_DigitsOnly(t *testing.T) {
	c := NewCountInput(1)
	c.Max = 20
	c.Focus()
	c.Model.SetValue("")

	for _, r := range "1a2" {
		c, _ = c.Update(keyPress(r))
	}
	if c.Value() != 12 {
		t.Errorf("Value = %d, want 12", c.Value())
	}
}

func TestCountInput_Disabled(t *testing.T) {
	c := NewCountInput(3)
	c.Focus()
	c.Disabled = true

	c, _ = c.Update(keyPress('9'))
	if c.Value() != 3 {
		t.Errorf("Value = %d, want 3", c.Value())
	}
	if !strings.Contains(c.View(), "disabled") {
		t.Error("expected disabled marker in view")
	}
}

func TestButton_PressWhenFocused(t *testing.T) {
	pressed := 0
	b := NewButton("Generate", func() tea.Cmd {
		pressed++
		return nil
	})

	b.Update(specialKey(tea.KeyEnter))
	if pressed != 0 {
		t.Fatal("unfocused button must not press")
	}

	b.Focused = true
	b.Update(specialKey(tea.KeyEnter))
	b.Update(specialKey(tea.KeySpace))
	if pressed != 2 {
		t.Errorf("pressed = %d, want 2", pressed)
	}
}
