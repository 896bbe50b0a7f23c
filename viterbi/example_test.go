package viterbi_test

import (
	"fmt"

	"github.com/katalvlaran/viterbi/hmm"
	"github.com/katalvlaran/viterbi/viterbi"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDecode
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Tag the phrase "iron shaped cloth" with verb / noun / adj.
//	"iron" and "shaped" are ambiguous; the transition weights decide.
//
// Complexity: O(N·K²) time, O(N·K) memory
func ExampleDecode() {
	states := []hmm.State{"verb", "noun", "adj"}
	initial := hmm.InitialTable{"verb": 1, "noun": 2, "adj": 3}
	transition := hmm.TransitionTable{
		"adj":  {"verb": 0, "adj": 0, "noun": 5},
		"verb": {"verb": 1, "adj": 2, "noun": 2},
		"noun": {"adj": 1, "verb": 2, "noun": 0},
	}
	emission := hmm.EmissionTable{
		"iron":   {"adj": 0, "verb": 2, "noun": 3},
		"shaped": {"adj": 2, "verb": 3, "noun": 0},
		"cloth":  {"adj": 0, "verb": 0, "noun": 1},
	}

	path, err := viterbi.Decode(
		[]hmm.Observation{"iron", "shaped", "cloth"},
		states, emission, initial, transition,
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(path)
	// Output:
	// [noun verb noun]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDecodeModel_lattice
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Same tagging, but keep the lattice and print each node's score and the
//	state of its best predecessor.
func ExampleDecodeModel_lattice() {
	m := &hmm.Model{
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

	res, err := viterbi.DecodeModel(m, []hmm.Observation{"iron", "shaped", "cloth"}, viterbi.WithLattice())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, layer := range res.Lattice.Layers {
		for _, node := range layer {
			from := hmm.State("-")
			if node.Prev.Valid() {
				from = res.Lattice.States[node.Prev.Index]
			}
			fmt.Printf("%-6s %-4s score=%-3g from=%s\n", node.Observation, node.State, node.Score, from)
		}
	}
	fmt.Println(res.Path, res.Score)
	// Output:
	// iron   verb score=2   from=-
	// iron   noun score=6   from=-
	// iron   adj  score=0   from=-
	// shaped verb score=36  from=noun
	// shaped noun score=0   from=verb
	// shaped adj  score=12  from=noun
	// cloth  verb score=0   from=verb
	// cloth  noun score=72  from=verb
	// cloth  adj  score=0   from=verb
	// [noun verb noun] 72
}
