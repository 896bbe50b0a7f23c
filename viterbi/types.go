// Package viterbi defines options, lattice types and sentinel errors for
// first-order HMM decoding.
package viterbi

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/viterbi/hmm"
)

// Sentinel errors for decoding; match with errors.Is.
var (
	// ErrEmptyStateSpace indicates there are no candidate states to decode into.
	ErrEmptyStateSpace = errors.New("viterbi: empty state space")

	// ErrMissingModelEntry is returned under Strict lookup when an initial,
	// transition or emission entry required by the decode is absent.
	ErrMissingModelEntry = errors.New("viterbi: missing model entry")

	// ErrNilModel is returned when DecodeModel receives a nil model.
	ErrNilModel = errors.New("viterbi: model is nil")

	// ErrDuplicateState indicates a state label appears twice in the state set.
	ErrDuplicateState = errors.New("viterbi: duplicate state")

	// ErrInvalidWeight indicates a weight consulted by the decode is NaN or ±Inf.
	ErrInvalidWeight = errors.New("viterbi: weight is NaN or Inf")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("viterbi: invalid option supplied")

	// ErrBadNodeRef indicates a NodeRef that does not address the expected
	// lattice node.
	ErrBadNodeRef = errors.New("viterbi: bad node reference")
)

// LookupPolicy decides what an absent table entry means.
//
//   - Permissive - absent initial/transition/emission entries weigh 0.
//     A state with no support simply never wins.
//
//   - Strict - the first absent entry aborts the decode with
//     ErrMissingModelEntry naming the table and key.
//
// The same policy applies to all three tables.
type LookupPolicy int

const (
	// Permissive treats absent entries as weight 0 (default).
	Permissive LookupPolicy = iota

	// Strict fails with ErrMissingModelEntry on any absent entry.
	Strict
)

// String returns the policy name.
func (p LookupPolicy) String() string {
	switch p {
	case Permissive:
		return "permissive"
	case Strict:
		return "strict"
	}

	return fmt.Sprintf("LookupPolicy(%d)", int(p))
}

// Option configures decoding via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// decode starts.
type Option func(*Options)

// Options holds the parameters of a decode call.
type Options struct {
	// Lookup selects Permissive or Strict handling of absent entries.
	Lookup LookupPolicy

	// Workers bounds how many nodes of one layer are computed concurrently.
	// 1 means fully sequential.
	Workers int

	// KeepLattice retains the lattice in Result for diagnostics.
	KeepLattice bool

	// OnLayer, if set, is called after layer pos is complete, in position
	// order, on the calling goroutine. The slice must not be modified.
	OnLayer func(pos int, layer []Node)

	err error
}

// DefaultOptions returns Options with:
//   - Permissive lookups
//   - Workers = 1 (sequential)
//   - no lattice retention
//   - no layer hook
func DefaultOptions() Options {
	return Options{
		Lookup:  Permissive,
		Workers: 1,
	}
}

// WithLookupPolicy selects how absent entries are handled.
func WithLookupPolicy(p LookupPolicy) Option {
	return func(o *Options) {
		switch p {
		case Permissive, Strict:
			o.Lookup = p
		default:
			o.err = fmt.Errorf("%w: unknown lookup policy %d", ErrOptionViolation, int(p))
		}
	}
}

// WithStrict is shorthand for WithLookupPolicy(Strict).
func WithStrict() Option {
	return WithLookupPolicy(Strict)
}

// WithWorkers computes up to n nodes of each layer concurrently.
//
//	n == 1: sequential (default)
//	n > 1 : bounded parallelism inside a layer; layers stay sequential
//	n < 1 : invalid option → ErrOptionViolation
//
// The decoded path and every lattice score are identical for any n.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLattice keeps the full lattice in Result.Lattice.
func WithLattice() Option {
	return func(o *Options) {
		o.KeepLattice = true
	}
}

// WithOnLayer registers a callback invoked after each completed layer.
func WithOnLayer(fn func(pos int, layer []Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}

// NodeRef addresses a lattice node by (layer, state index).
// NoRef marks the absence of a predecessor.
type NodeRef struct {
	Layer int `yaml:"layer" json:"layer"`
	Index int `yaml:"index" json:"index"`
}

// NoRef is the back-reference of every node in layer 0.
var NoRef = NodeRef{Layer: -1, Index: -1}

// Valid reports whether r points at a node (it says nothing about bounds).
func (r NodeRef) Valid() bool {
	return r.Layer >= 0 && r.Index >= 0
}

// Node is one (position, state) cell of the lattice.
//
// Score is the best accumulated weight of any path ending here; Prev is the
// node in the previous layer that achieves it. Nodes are written once during
// construction and never modified afterwards.
type Node struct {
	State       hmm.State       `yaml:"state" json:"state"`
	Observation hmm.Observation `yaml:"observation" json:"observation"`
	Emission    float64         `yaml:"emission" json:"emission"`
	Score       float64         `yaml:"score" json:"score"`
	Prev        NodeRef         `yaml:"prev" json:"prev"`
}

// Lattice is the dynamic-programming table: one layer per observation, one
// node per state, in States order. All nodes share a single backing array
// allocated once at its final size.
type Lattice struct {
	States       []hmm.State       `yaml:"states" json:"states"`
	Observations []hmm.Observation `yaml:"observations" json:"observations"`
	Layers       [][]Node          `yaml:"layers" json:"layers"`
}

// Result is the outcome of a successful decode.
type Result struct {
	// Path holds one state per observation.
	Path []hmm.State

	// Score is the accumulated weight of Path (0 for an empty sequence).
	Score float64

	// Lattice is set only when WithLattice was given.
	Lattice *Lattice
}
