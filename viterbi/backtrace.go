package viterbi

import (
	"fmt"
	"math"

	"github.com/katalvlaran/viterbi/hmm"
)

// Node returns the node addressed by r.
// Errors: ErrBadNodeRef if r is NoRef or outside the lattice.
func (l *Lattice) Node(r NodeRef) (Node, error) {
	if !r.Valid() || r.Layer >= len(l.Layers) || r.Index >= len(l.Layers[r.Layer]) {
		return Node{}, fmt.Errorf("%w: %+v", ErrBadNodeRef, r)
	}

	return l.Layers[r.Layer][r.Index], nil
}

// Best selects the final-layer node with the highest score.
// Ties keep the first node in state order (strict '>' scan); NaN scores are
// skipped, with node 0 as the fallback.
//
// Errors:
//   - ErrBadNodeRef if the lattice has no layers (empty observation sequence).
//   - ErrEmptyStateSpace if the final layer is empty.
//
// Complexity: O(K).
func (l *Lattice) Best() (NodeRef, error) {
	if len(l.Layers) == 0 {
		return NoRef, fmt.Errorf("%w: lattice has no layers", ErrBadNodeRef)
	}
	last := len(l.Layers) - 1
	layer := l.Layers[last]
	if len(layer) == 0 {
		return NoRef, ErrEmptyStateSpace
	}

	best, bestScore := 0, math.Inf(-1)
	for j := range layer {
		if layer[j].Score > bestScore {
			best, bestScore = j, layer[j].Score
		}
	}

	return NodeRef{Layer: last, Index: best}, nil
}

// Backtrace reconstructs the path ending at the final-layer node r by
// following Prev links down to layer 0.
//
// Every link points to the layer directly below it, so the walk takes
// exactly N steps and the result has one state per observation.
//
// Errors:
//   - ErrBadNodeRef if r is not a node of the final layer, or if a link
//     does not point at the previous layer (corrupt lattice).
//
// Complexity: O(N).
func (l *Lattice) Backtrace(r NodeRef) ([]hmm.State, error) {
	n := len(l.Layers)
	if n == 0 || r.Layer != n-1 {
		return nil, fmt.Errorf("%w: %+v is not a final-layer node", ErrBadNodeRef, r)
	}

	path := make([]hmm.State, n)
	for i := n - 1; i >= 0; i-- {
		node, err := l.Node(r)
		if err != nil {
			return nil, err
		}
		path[i] = node.State
		if i == 0 {
			break
		}
		if node.Prev.Layer != i-1 {
			return nil, fmt.Errorf("%w: node %+v links to %+v", ErrBadNodeRef, r, node.Prev)
		}
		r = node.Prev
	}

	return path, nil
}
