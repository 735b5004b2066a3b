package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brianjo/watchdialtools/pkg/movement"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{}
}

func testModel() MovementListModel {
	return NewMovementListModel(movement.NewRegistry().All())
}

func TestMovementListNavigation(t *testing.T) {
	m := testModel()

	// Up at the top stays put.
	next, _ := m.Update(keyMsg("up"))
	m = next.(MovementListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d after up at top, want 0", m.Cursor)
	}

	next, _ = m.Update(keyMsg("down"))
	m = next.(MovementListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.Cursor)
	}

	// Vim keys work too.
	next, _ = m.Update(keyMsg("j"))
	m = next.(MovementListModel)
	next, _ = m.Update(keyMsg("k"))
	m = next.(MovementListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d after j then k, want 1", m.Cursor)
	}

	// Down at the bottom stays put.
	for i := 0; i < len(m.Presets)+3; i++ {
		next, _ = m.Update(keyMsg("down"))
		m = next.(MovementListModel)
	}
	if m.Cursor != len(m.Presets)-1 {
		t.Errorf("cursor = %d after overshooting, want %d", m.Cursor, len(m.Presets)-1)
	}
}

func TestMovementListSelect(t *testing.T) {
	m := testModel()

	next, _ := m.Update(keyMsg("down"))
	m = next.(MovementListModel)
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(MovementListModel)

	if m.Selected == nil {
		t.Fatal("enter should select the cursor row")
	}
	if m.Selected.Name != m.Presets[1].Name {
		t.Errorf("selected %q, want %q", m.Selected.Name, m.Presets[1].Name)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestMovementListQuitWithoutSelection(t *testing.T) {
	m := testModel()
	next, cmd := m.Update(keyMsg("q"))
	m = next.(MovementListModel)

	if m.Selected != nil {
		t.Error("quit should not select anything")
	}
	if cmd == nil {
		t.Error("q should quit the program")
	}
}

func TestMovementListScrolling(t *testing.T) {
	m := testModel()
	m.Height = 2

	for i := 0; i < 3; i++ {
		next, _ := m.Update(keyMsg("down"))
		m = next.(MovementListModel)
	}
	if m.Offset == 0 {
		t.Error("cursor past the window should scroll the list")
	}
	if m.Cursor < m.Offset || m.Cursor >= m.Offset+m.Height {
		t.Errorf("cursor %d outside window [%d, %d)", m.Cursor, m.Offset, m.Offset+m.Height)
	}
}

func TestMovementListView(t *testing.T) {
	m := testModel()
	view := m.View()

	if !strings.Contains(view, "Select Movement") {
		t.Error("view missing title")
	}
	if !strings.Contains(view, "▸") {
		t.Error("view missing cursor marker")
	}
	if !strings.Contains(view, m.Presets[0].Name) {
		t.Errorf("view missing first preset %q", m.Presets[0].Name)
	}
}

func TestMovementListWindowResize(t *testing.T) {
	m := testModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	m = next.(MovementListModel)
	if m.Height != 5 {
		t.Errorf("height = %d, want clamped minimum 5", m.Height)
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = next.(MovementListModel)
	if m.Height != 24 {
		t.Errorf("height = %d, want 24", m.Height)
	}
}
