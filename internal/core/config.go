package core

// RuntimeConfig carries terminal and clock settings to a game view.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second
	Seed     int64 // RNG seed, 0 means time-seeded
}

// DefaultConfig returns an 80x24 screen at 30 frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}
