package runner

// Phase is the session's lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EndReason records which condition ended the session.
type EndReason int

const (
	ReasonNone EndReason = iota
	ReasonAttention
	ReasonCaught
	ReasonFell
)

// String returns a short human-readable reason.
func (r EndReason) String() string {
	switch r {
	case ReasonNone:
		return ""
	case ReasonAttention:
		return "attention depleted"
	case ReasonCaught:
		return "swallowed by the wave"
	case ReasonFell:
		return "fell into the void"
	default:
		return "unknown"
	}
}

// State is the score and survival state of a session.
type State struct {
	Phase     Phase
	Score     float64
	Attention float32 // Always within [0, max]
	Distance  float32 // Furthest -z reached
	Elapsed   float64 // Seconds spent running
	Reason    EndReason
}

// Running reports whether steps currently advance the simulation.
func (s State) Running() bool {
	return s.Phase == PhaseRunning
}

// Over reports whether the session has ended.
func (s State) Over() bool {
	return s.Phase == PhaseGameOver
}
