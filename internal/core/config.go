package core

// RuntimeConfig contains host settings that are not part of the game rules.
type RuntimeConfig struct {
	ScreenW     int    // Terminal width in characters
	ScreenH     int    // Terminal height in characters
	Seed        int64  // RNG seed; 0 means use current time in platform layer
	Sound       bool   // Play sound cues on the local audio device
	SnapshotDir string // Where ctrl+s writes PNG snapshots
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
