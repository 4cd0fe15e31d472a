package core

// RuntimeConfig holds the terminal-side settings of a play session.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	FPS     int   // Frames per second for animation and the game clock
	Seed    int64 // RNG seed; 0 means seed from the current time
	Muted   bool  // Start with sound off
}

// DefaultConfig returns a RuntimeConfig sized for a standard terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     30,
	}
}
