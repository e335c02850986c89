package sim

// Phase is the discrete game state.
type Phase int

const (
	PhaseBeforeStart Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseBeforeStart:
		return "BeforeStart"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// ParsePhase is the inverse of Phase.String.
func ParsePhase(s string) (Phase, bool) {
	switch s {
	case "BeforeStart":
		return PhaseBeforeStart, true
	case "Running":
		return PhaseRunning, true
	case "GameOver":
		return PhaseGameOver, true
	default:
		return 0, false
	}
}

// Input is a discrete event submitted by the shell.
type Input int

const (
	InputPrimary Input = iota + 1 // Jump / confirm
	InputQuit
)

// String returns a human-readable name for the input.
func (in Input) String() string {
	switch in {
	case InputPrimary:
		return "Primary"
	case InputQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseInput is the inverse of Input.String.
func ParseInput(s string) (Input, bool) {
	switch s {
	case "Primary":
		return InputPrimary, true
	case "Quit":
		return InputQuit, true
	default:
		return 0, false
	}
}
