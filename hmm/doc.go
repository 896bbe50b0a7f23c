// Package hmm defines the model consumed by the Viterbi decoder: hidden
// states, observations and the three weight tables of a first-order
// Hidden Markov Model.
//
// 🚀 What is in a model?
//
//	States      - ordered, duplicate-free set of hidden labels (tags).
//	Initial     - Initial[s]          : weight of starting in s.
//	Transition  - Transition[from][to]: weight of moving from → to.
//	Emission    - Emission[obs][s]    : weight of s producing obs.
//
// Weights are plain non-negative scores. They are multiplied together by the
// decoder, so they do not need to be normalized probabilities.
//
// ⚙️ Usage:
//
//	m := &hmm.Model{
//	  States:     []hmm.State{"verb", "noun"},
//	  Initial:    hmm.InitialTable{"verb": 1, "noun": 2},
//	  Transition: hmm.TransitionTable{"verb": {"noun": 2}, "noun": {"verb": 2}},
//	  Emission:   hmm.EmissionTable{"iron": {"verb": 2, "noun": 3}},
//	}
//	if err := m.Validate(); err != nil {
//	  // every defect is listed, errors.Is(err, hmm.ErrNegativeWeight) etc.
//	}
//
// A Model is never mutated by the decoder; share it freely between
// goroutines as long as nobody writes to it.
package hmm
