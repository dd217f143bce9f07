package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMenuSkipsDisabledItems(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "first", Disabled: true},
		{Label: "second"},
		{Label: "third", Disabled: true},
		{Label: "fourth"},
	})

	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want first enabled item", m.Selected)
	}

	m, _ = m.Update(keyPress('j'))
	if m.Selected != 3 {
		t.Errorf("down landed on %d, want 3", m.Selected)
	}

	m, _ = m.Update(keyPress('k'))
	if m.Selected != 1 {
		t.Errorf("up landed on %d, want 1", m.Selected)
	}
}

func TestMenuEnterRunsSelectedAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{
		{Label: "go", Action: func() tea.Cmd {
			ran = true
			return nil
		}},
	})

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ran {
		t.Error("enter did not run the selected action")
	}
}

func TestMenuShowsSelectedHint(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "CHAT", Hint: "talk to the tutor"},
		{Label: "QUIZ", Hint: "five questions"},
	})

	view := m.View()
	if !strings.Contains(view, "talk to the tutor") {
		t.Error("selected item's hint missing from view")
	}
	if strings.Contains(view, "five questions") {
		t.Error("unselected item's hint rendered")
	}
}
