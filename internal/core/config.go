package core

// RuntimeConfig is passed from the platform to the game and renderer.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed, 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig for a plain 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
