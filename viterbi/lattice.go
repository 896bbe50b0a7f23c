package viterbi

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/viterbi/hmm"
)

// newLattice allocates an N×K lattice over a single arena of nodes.
// Layer i is the window arena[i*K : (i+1)*K]; the arena never grows, so
// back-references expressed as (layer, index) stay valid for its lifetime.
func newLattice(obs []hmm.Observation, states []hmm.State) *Lattice {
	n, k := len(obs), len(states)
	arena := make([]Node, n*k)
	layers := make([][]Node, n)
	for i := range layers {
		layers[i] = arena[i*k : (i+1)*k : (i+1)*k]
	}

	return &Lattice{
		States:       states,
		Observations: obs,
		Layers:       layers,
	}
}

// build fills every layer of l in position order.
//
// Layer 0:
//
//	Score(0,s) = emission[o0][s] · initial[s]
//
// Layer i > 0, for each state s:
//
//	Score(i,s) = emission[oi][s] · max_p ( Score(i-1,p) · transition[p][s] )
//	Prev(i,s)  = (i-1, argmax_p)
//
// Complexity: O(N·K²) time.
func (l *Lattice) build(t *tables, opts *Options) error {
	for i := range l.Layers {
		if i == 0 {
			l.fillFirst(t)
		} else if err := l.fillLayer(i, t, opts.Workers); err != nil {
			return err
		}
		if opts.OnLayer != nil {
			opts.OnLayer(i, l.Layers[i])
		}
	}

	return nil
}

// fillFirst seeds layer 0 from the initial weights. No predecessors.
func (l *Lattice) fillFirst(t *tables) {
	obs := l.Observations[0]
	em := t.emission[0]
	for j, s := range l.States {
		l.Layers[0][j] = Node{
			State:       s,
			Observation: obs,
			Emission:    em[j],
			Score:       em[j] * t.initial[j],
			Prev:        NoRef,
		}
	}
}

// fillLayer computes layer i from layer i-1. Each node reads only the
// previous layer and writes only its own slot, so with workers > 1 the K
// nodes are computed concurrently without locking.
func (l *Lattice) fillLayer(i int, t *tables, workers int) error {
	if workers <= 1 {
		for j := range l.States {
			l.fillNode(i, j, t)
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for j := range l.States {
		g.Go(func() error {
			l.fillNode(i, j, t)
			return nil
		})
	}

	return g.Wait()
}

// fillNode writes node (i, j).
func (l *Lattice) fillNode(i, j int, t *tables) {
	best, score := bestPredecessor(l.Layers[i-1], t.transition, j)
	em := t.emission[i][j]
	l.Layers[i][j] = Node{
		State:       l.States[j],
		Observation: l.Observations[i],
		Emission:    em,
		Score:       em * score,
		Prev:        NodeRef{Layer: i - 1, Index: best},
	}
}

// bestPredecessor returns the index p in prev maximizing
// prev[p].Score · transition[p][to], and that product.
//
// The scan starts below every real score and only a strictly greater
// product replaces the current best, so the earliest maximal predecessor in
// state order wins every tie and NaN products (Inf·0) are never selected.
// Index 0 is the fallback when no candidate qualifies.
func bestPredecessor(prev []Node, transition [][]float64, to int) (int, float64) {
	best := 0
	bestScore := math.Inf(-1)
	for p := range prev {
		if s := prev[p].Score * transition[p][to]; s > bestScore {
			best, bestScore = p, s
		}
	}

	return best, bestScore
}
