package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/games/skyshooter"
)

func TestMenuListsModes(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	ids := make(map[string]bool)
	for _, item := range m.items {
		ids[item.GameID] = true
	}
	for _, id := range []string{skyshooter.GameID, skyshooter.ClassicID} {
		if !ids[id] {
			t.Errorf("menu missing mode %q", id)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	var model tea.Model = NewMenuModel(core.DefaultConfig())
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m := model.(MenuModel)
	if cmd == nil {
		t.Error("select should end the menu program")
	}
	if m.Selected() == nil || m.Selected().GameID != skyshooter.ClassicID {
		t.Errorf("selected = %+v, want %q", m.Selected(), skyshooter.ClassicID)
	}
}

func TestMenuCursorBounds(t *testing.T) {
	var model tea.Model = NewMenuModel(core.DefaultConfig())
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	if c := model.(MenuModel).cursor; c != 0 {
		t.Errorf("cursor = %d after up at top, want 0", c)
	}
	for range 5 {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	m := model.(MenuModel)
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(m.items)-1)
	}
}

func TestSessionMenuGameMenu(t *testing.T) {
	cfg := core.DefaultConfig()
	var model tea.Model = NewSessionModel(cfg, Options{Embedded: true})

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s := model.(SessionModel)
	if s.game == nil {
		t.Fatal("enter should start a game")
	}
	if cmd == nil {
		t.Error("starting a game should schedule a tick")
	}

	model, _ = model.Update(runeKey('b'))
	s = model.(SessionModel)
	if s.game != nil {
		t.Error("b should return to the menu")
	}
	if s.quitting {
		t.Error("returning to the menu must not end the session")
	}
}
