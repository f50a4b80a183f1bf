package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to center the playfield and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the externally visible state of a session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Apples int  // Food eaten since the last reset
	Length int  // Current snake length
	Resets int  // Self-collision resets this session
	Paused bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the events that occurred this tick.
type StepResult struct {
	State GameState
	Ate   bool // Head landed on food this tick
	Reset bool // Self-collision reset the snake this tick
}
