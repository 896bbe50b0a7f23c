package viterbi

import (
	"fmt"

	"github.com/katalvlaran/viterbi/hmm"
)

// Viterbi: most probable hidden state sequence of a first-order HMM
//
// Description:
//
//	Given observations o0..oN-1 and a model over K states, find the state
//	sequence s0..sN-1 maximizing
//
//	  initial[s0]·emission[o0][s0] · Π transition[si-1][si]·emission[oi][si]
//
//	Weights are multiplied as given; they need not be normalized.
//
// Algorithm Outline:
//  1. Check options and the state set (non-empty, no duplicates).
//  2. Resolve every table lookup once into dense rows (see LookupPolicy).
//  3. Build the lattice layer by layer: layer 0 from initial weights, each
//     later node from its best predecessor (earliest wins ties).
//  4. Pick the best final node (earliest wins ties).
//  5. Backtrace along Prev links to layer 0.
//
// Complexity:
//
//	Time   = O(N·K²)
//	Memory = O(N·K) nodes + O(K²) transition weights
//
// Errors:
//   - ErrOptionViolation    - an Option was invalid.
//   - ErrEmptyStateSpace    - no states (checked before looking at observations).
//   - ErrDuplicateState     - a state label occurs twice.
//   - ErrMissingModelEntry  - Strict lookup found an absent entry.
//   - ErrInvalidWeight      - a consulted weight is NaN or ±Inf.
//
// A failed decode never returns a partial path.

// Decode returns the most probable state sequence for observations.
//
// An empty observation sequence yields an empty, non-nil path, provided the
// state set is valid.
//
// Example:
//
//	path, err := viterbi.Decode(
//	  []hmm.Observation{"iron", "shaped", "cloth"},
//	  []hmm.State{"verb", "noun", "adj"},
//	  emission, initial, transition,
//	)
func Decode(
	observations []hmm.Observation,
	states []hmm.State,
	emission hmm.EmissionTable,
	initial hmm.InitialTable,
	transition hmm.TransitionTable,
	opts ...Option,
) ([]hmm.State, error) {
	res, err := decode(observations, states, emission, initial, transition, opts)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// DecodeModel decodes observations against m and returns the path together
// with its score and, if WithLattice was given, the lattice.
func DecodeModel(m *hmm.Model, observations []hmm.Observation, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilModel
	}

	return decode(observations, m.States, m.Emission, m.Initial, m.Transition, opts)
}

func decode(
	obs []hmm.Observation,
	states []hmm.State,
	emission hmm.EmissionTable,
	initial hmm.InitialTable,
	transition hmm.TransitionTable,
	optFns []Option,
) (*Result, error) {
	opts := DefaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.err != nil {
		return nil, opts.err
	}

	if len(states) == 0 {
		return nil, ErrEmptyStateSpace
	}
	seen := make(map[hmm.State]struct{}, len(states))
	for _, s := range states {
		if _, dup := seen[s]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateState, s)
		}
		seen[s] = struct{}{}
	}

	lat := newLattice(obs, states)
	res := &Result{Path: []hmm.State{}}
	if opts.KeepLattice {
		res.Lattice = lat
	}
	if len(obs) == 0 {
		return res, nil
	}

	t, err := compileTables(obs, states, emission, initial, transition, opts.Lookup)
	if err != nil {
		return nil, err
	}
	if err = lat.build(t, &opts); err != nil {
		return nil, err
	}

	end, err := lat.Best()
	if err != nil {
		return nil, err
	}
	if res.Path, err = lat.Backtrace(end); err != nil {
		return nil, err
	}
	res.Score = lat.Layers[end.Layer][end.Index].Score

	return res, nil
}
