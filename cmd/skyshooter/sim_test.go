package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/skyshooter/internal/config"
	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/games/skyshooter"
)

func newSimGame() *skyshooter.Game {
	return skyshooter.NewWithConfig(config.DefaultShooterConfig(), false)
}

func TestSimulateDeterministic(t *testing.T) {
	runtime := core.RuntimeConfig{TickRate: 60, Seed: 42}
	opts := simOptions{Ticks: 1200, FireEvery: 10, Steer: "sweep"}

	a, err := simulate(newSimGame(), runtime, opts)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	b, err := simulate(newSimGame(), runtime, opts)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and script produced different results")
	}
	if a.Snapshot.Tick != 1200 {
		t.Errorf("tick = %d, want 1200", a.Snapshot.Tick)
	}
	if a.Fired != 120 {
		t.Errorf("fired = %d, want 120", a.Fired)
	}
	if a.Spawned == 0 {
		t.Error("expected targets to spawn in 20 seconds")
	}
	if a.Destroyed != a.Snapshot.Score {
		t.Errorf("destroyed %d != score %d", a.Destroyed, a.Snapshot.Score)
	}
}

func TestSimulateSteerHoldsDirection(t *testing.T) {
	res, err := simulate(newSimGame(), core.RuntimeConfig{TickRate: 60, Seed: 1}, simOptions{Ticks: 100, Steer: "right"})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	// Clamped at the right edge: field width minus half the aircraft
	if got := res.Snapshot.Aircraft.X; got != 448 {
		t.Errorf("aircraft x = %v, want 448", got)
	}
	if res.Fired != 0 || len(res.Snapshot.Projectiles) != 0 {
		t.Errorf("fired %d with fire disabled", res.Fired)
	}
}

func TestSimulateElapsedScalesFrames(t *testing.T) {
	// Half-rate frames cover the same distance in half the ticks
	game := newSimGame()
	res, err := simulate(game, core.RuntimeConfig{TickRate: 60, Seed: 1}, simOptions{
		Ticks:   5,
		Steer:   "left",
		Elapsed: 2 * (time.Second / 60),
	})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if got := res.Snapshot.Aircraft.X; got < 240-70-1e-6 || got > 240-70+1e-6 {
		t.Errorf("aircraft x = %v, want 170", got)
	}
}

func TestSimulateRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts simOptions
	}{
		{"unknown steer", simOptions{Ticks: 10, Steer: "spin"}},
		{"negative ticks", simOptions{Ticks: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := simulate(newSimGame(), core.DefaultConfig(), tt.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestWriteSimResultIsYAML(t *testing.T) {
	res, err := simulate(newSimGame(), core.RuntimeConfig{TickRate: 60, Seed: 3}, simOptions{Ticks: 30, FireEvery: 5})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	var buf bytes.Buffer
	if err := writeSimResult(&buf, res); err != nil {
		t.Fatalf("writeSimResult: %v", err)
	}
	if !strings.Contains(buf.String(), "snapshot:") {
		t.Errorf("output missing snapshot section:\n%s", buf.String())
	}

	var decoded simResult
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if decoded.Snapshot.Tick != 30 || decoded.Fired != res.Fired {
		t.Errorf("decoded tick=%d fired=%d, want 30 and %d", decoded.Snapshot.Tick, decoded.Fired, res.Fired)
	}
}
