package viterbi_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/viterbi/hmm"
)

// taggerModel is the reference part-of-speech model: three tags and a
// three-word vocabulary with hand-picked (unnormalized) weights.
func taggerModel() *hmm.Model {
	return &hmm.Model{
		States:  []hmm.State{"verb", "noun", "adj"},
		Initial: hmm.InitialTable{"verb": 1, "noun": 2, "adj": 3},
		Transition: hmm.TransitionTable{
			"adj":  {"verb": 0, "adj": 0, "noun": 5},
			"verb": {"verb": 1, "adj": 2, "noun": 2},
			"noun": {"adj": 1, "verb": 2, "noun": 0},
		},
		Emission: hmm.EmissionTable{
			"iron":   {"adj": 0, "verb": 2, "noun": 3},
			"shaped": {"adj": 2, "verb": 3, "noun": 0},
			"cloth":  {"adj": 0, "verb": 0, "noun": 1},
		},
	}
}

// sentence is the reference input for taggerModel.
var sentence = []hmm.Observation{"iron", "shaped", "cloth"}

// randomModel builds a dense model with k states and v observation symbols.
// Weights are drawn from [0, 1) with the given zero probability, using a
// fixed seed so runs are reproducible.
func randomModel(seed int64, k, v int, zeroProb float64) (*hmm.Model, []hmm.Observation) {
	rng := rand.New(rand.NewSource(seed))
	weight := func() float64 {
		if rng.Float64() < zeroProb {
			return 0
		}
		return rng.Float64()
	}

	m := &hmm.Model{
		Initial:    hmm.InitialTable{},
		Transition: hmm.TransitionTable{},
		Emission:   hmm.EmissionTable{},
	}
	for i := 0; i < k; i++ {
		m.States = append(m.States, hmm.State(fmt.Sprintf("s%d", i)))
	}
	vocab := make([]hmm.Observation, v)
	for i := range vocab {
		vocab[i] = hmm.Observation(fmt.Sprintf("o%d", i))
	}
	for _, from := range m.States {
		m.Initial[from] = weight()
		m.Transition[from] = map[hmm.State]float64{}
		for _, to := range m.States {
			m.Transition[from][to] = weight()
		}
	}
	for _, o := range vocab {
		m.Emission[o] = map[hmm.State]float64{}
		for _, s := range m.States {
			m.Emission[o][s] = weight()
		}
	}

	return m, vocab
}

// randomSequence draws n observations from vocab.
func randomSequence(seed int64, vocab []hmm.Observation, n int) []hmm.Observation {
	rng := rand.New(rand.NewSource(seed))
	seq := make([]hmm.Observation, n)
	for i := range seq {
		seq[i] = vocab[rng.Intn(len(vocab))]
	}

	return seq
}
