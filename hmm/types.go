package hmm

import "errors"

// State is an opaque hidden-state label (for example a part-of-speech tag).
type State string

// Observation is an opaque token of the input sequence (for example a word).
type Observation string

// InitialTable maps a state to the weight of starting the sequence in it.
type InitialTable map[State]float64

// TransitionTable holds Transition[from][to] weights between consecutive positions.
type TransitionTable map[State]map[State]float64

// EmissionTable holds Emission[observation][state] weights.
type EmissionTable map[Observation]map[State]float64

// Sentinel errors reported by Validate. A single Validate call may return
// several of them at once; match each with errors.Is.
var (
	// ErrNoStates indicates the model declares no states.
	ErrNoStates = errors.New("hmm: model has no states")

	// ErrEmptyLabel indicates a state or observation label is the empty string.
	ErrEmptyLabel = errors.New("hmm: empty label")

	// ErrDuplicateState indicates a state appears more than once in States.
	ErrDuplicateState = errors.New("hmm: duplicate state")

	// ErrUnknownState indicates a table key references a state not in States.
	ErrUnknownState = errors.New("hmm: unknown state")

	// ErrNonFiniteWeight indicates a NaN or infinite weight.
	ErrNonFiniteWeight = errors.New("hmm: weight is not finite")

	// ErrNegativeWeight indicates a weight below zero.
	ErrNegativeWeight = errors.New("hmm: weight is negative")
)

// Model bundles everything a decode call needs.
//
// States fixes both the lattice width and the iteration order used for
// tie-breaking, so its order is significant.
type Model struct {
	States     []State         `yaml:"states" json:"states"`
	Initial    InitialTable    `yaml:"initial" json:"initial"`
	Transition TransitionTable `yaml:"transition" json:"transition"`
	Emission   EmissionTable   `yaml:"emission" json:"emission"`
}

// IndexOf returns the position of s in States, or -1.
func (m *Model) IndexOf(s State) int {
	for i, st := range m.States {
		if st == s {
			return i
		}
	}

	return -1
}
