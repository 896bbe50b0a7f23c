// Package viterbi decodes the most probable hidden state sequence of a
// first-order Hidden Markov Model.
//
// 🚀 What is Viterbi decoding?
//
//	A dynamic-programming search over a lattice with one layer per
//	observation and one node per state. Every node remembers the best
//	score of any path ending in it and which node of the previous layer
//	that path came from. Following those links back from the best final
//	node yields the optimal labeling. It is used for:
//	  • Part-of-speech tagging & named-entity chunking
//	  • Word segmentation (B/M/E/S tagging)
//	  • Signal / symbol decoding
//	  • Map matching & other sequence alignment
//
// ✨ Key features:
//   - multiplicative scores, exactly as given (no normalization, no logs)
//   - deterministic tie-breaking: the earliest state in the state order wins
//   - arena-backed lattice with (layer, index) back-references
//   - Permissive (absent = 0) or Strict (absent = error) table lookups
//   - optional bounded parallelism inside each layer (identical results)
//   - optional lattice retention and per-layer hook for diagnostics
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/viterbi/viterbi"
//
//	path, err := viterbi.Decode(obs, states, emission, initial, transition)
//
//	res, err := viterbi.DecodeModel(model, obs,
//	  viterbi.WithStrict(),
//	  viterbi.WithWorkers(4),
//	  viterbi.WithLattice(),
//	)
//	fmt.Println(res.Path, res.Score)
//
// Performance:
//
//   - Time:   O(N·K²)
//   - Memory: O(N·K)
//
// See example_test.go for a worked tagging example.
package viterbi
