package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/skyshooter/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

type describedGame struct{ stubGame }

func (g *describedGame) Description() string { return "described" }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz_stub_b")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "zz_stub_b" {
		t.Errorf("Create() returned %q", g.ID())
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "zz_stub_") {
			ids = append(ids, info.ID)
			if info.Title != "Stub "+info.ID {
				t.Errorf("title for %s = %q", info.ID, info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "zz_stub_a" || ids[1] != "zz_stub_b" {
		t.Errorf("List() should be sorted by ID, got %v", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game")
	if err == nil || !strings.Contains(err.Error(), `unknown game "no-such-game"`) {
		t.Errorf("Create() error = %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

func TestRegisterReadsDescription(t *testing.T) {
	Register("zz_described", func() Game { return &describedGame{stubGame{id: "zz_described"}} })

	info, ok := Lookup("zz_described")
	if !ok {
		t.Fatal("Lookup should find a registered game")
	}
	if info.Description != "described" || info.Title != "Stub zz_described" {
		t.Errorf("info = %+v", info)
	}

	if _, ok := Lookup("no-such-game"); ok {
		t.Error("Lookup of unknown id should fail")
	}
}

func TestRegisterEmptyIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("empty id should panic")
		}
	}()
	Register(" ", func() Game { return &stubGame{} })
}
