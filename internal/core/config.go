package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host ticks per second (default 60)
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

// GameState is the platform-facing summary of a session.
type GameState struct {
	Score     int     // Whole points
	Distance  int     // Furthest distance reached
	Attention float32 // 0..100
	Started   bool
	Paused    bool
	GameOver  bool
	Reason    string  // Why the session ended, empty while alive
	Seed      int64   // World seed of the current session
	Elapsed   float64 // Simulated seconds survived
}

// EventKind classifies something notable that happened during a step.
type EventKind int

const (
	EventPickup EventKind = iota
	EventPowerUp
	EventChunkGenerated
	EventChunkEvicted
	EventGameOver
)

// String returns the event kind name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventPickup:
		return "pickup"
	case EventPowerUp:
		return "powerup"
	case EventChunkGenerated:
		return "chunk_generated"
	case EventChunkEvicted:
		return "chunk_evicted"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by a step for the host to log or react to.
type Event struct {
	Kind   EventKind
	ID     uint64 // Object id for pickups
	Chunk  int    // Chunk index for streaming events
	Detail string
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
