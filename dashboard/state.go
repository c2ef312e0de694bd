package dashboard

import "errors"

// Phase tracks where a dashboard load is in its lifecycle
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseLoaded  Phase = "loaded"
	PhaseError   Phase = "error"
)

// validTransitions is the authoritative phase machine definition
var validTransitions = map[Phase][]Phase{
	PhaseIdle:    {PhaseLoading},
	PhaseLoading: {PhaseLoaded, PhaseError},
	PhaseLoaded:  {PhaseLoading},
	PhaseError:   {PhaseLoading},
}

// CanTransition checks whether a phase change is allowed
func CanTransition(from, to Phase) error {
	for _, next := range validTransitions[from] {
		if next == to {
			return nil
		}
	}
	return errors.New("invalid phase transition: " + string(from) + " -> " + string(to))
}
