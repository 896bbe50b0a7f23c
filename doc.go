// Package viterbi is the root of a small toolkit for decoding first-order
// Hidden Markov Models: given a sequence of observations and a weighted
// model, recover the single most probable sequence of hidden states.
//
// 🚀 What is in the box?
//
//	A pure-Go, deterministic Viterbi decoder and the pieces around it:
//		• hmm/       - State, Observation, weight tables, Model & Validate
//		• viterbi/   - the decoder: lattice, best-predecessor rule, backtrace
//		• matrix/    - dense row-major weight tables used by the decoder
//		• modelfile/ - load a model from YAML or JSON
//		• cmd/viterbi - command line front end (decode, validate)
//
// ✨ Why this decoder?
//
//   - Exact fidelity – weights are multiplied as given, ties go to the
//     earliest state, every run gives the same answer
//   - Explicit lookups – absent table entries weigh 0 (Permissive) or fail
//     fast (Strict), never by accident
//   - Inspectable – keep the whole lattice, or watch it layer by layer
//
// Quick ASCII lattice (3 observations × 2 states, best path starred):
//
//	 iron      shaped     cloth
//	[noun]* ─► [verb]* ─► [noun]*
//	[verb]     [noun]     [verb]
//
// Out of scope: training, log-space arithmetic, higher-order models and
// streaming decoding.
//
//	go get github.com/katalvlaran/viterbi
package viterbi
