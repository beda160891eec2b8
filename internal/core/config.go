package core

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in terminal cells
	ScreenH  int   // Screen height in terminal cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns the configuration used when the terminal size is unknown.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the coarse status a game reports back to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the simulation is paused
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState

	// Events holds short human-readable notes about what happened this tick
	// (for logging by the platform). Nil on quiet ticks.
	Events []string
}
