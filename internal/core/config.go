package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for window front ends)
	ScreenH  int   // Screen height in characters
	TickRate int   // Nominal simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameInterval returns the nominal duration of one tick.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Tick     uint64
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Spawned and Destroyed count the targets created and destroyed this tick.
	Spawned   int
	Destroyed int
}
