package viterbi

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/viterbi/hmm"
	"github.com/katalvlaran/viterbi/matrix"
)

// tables holds every weight a decode call consults, resolved once from the
// model maps into dense rows so the lattice loops never touch a map.
type tables struct {
	initial    []float64   // K
	emission   [][]float64 // N rows of K
	transition [][]float64 // K rows of K; nil when N < 2
}

// compileTables resolves the model lookups for one decode call.
//
// Stage 1: initial weights, in states order.
// Stage 2: emission weights, by position then state.
// Stage 3: transition weights, by from-state then to-state (only if N ≥ 2).
//
// The order is fixed, so under Strict lookup the reported missing entry is
// always the same one for the same input.
// Complexity: O(K + N·K + K²).
func compileTables(
	obs []hmm.Observation,
	states []hmm.State,
	emission hmm.EmissionTable,
	initial hmm.InitialTable,
	transition hmm.TransitionTable,
	policy LookupPolicy,
) (*tables, error) {
	n, k := len(obs), len(states)
	t := &tables{}

	// Stage 1: initial
	start, err := matrix.NewDense(1, k)
	if err != nil {
		return nil, err
	}
	for j, s := range states {
		w, ok := initial[s]
		if !ok && policy == Strict {
			return nil, fmt.Errorf("%w: initial[%s]", ErrMissingModelEntry, s)
		}
		if err = setWeight(start, 0, j, w); err != nil {
			return nil, fmt.Errorf("%w: initial[%s] = %v", err, s, w)
		}
	}
	if t.initial, err = start.Row(0); err != nil {
		return nil, err
	}

	// Stage 2: emission
	em, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, err
	}
	for i, o := range obs {
		row, ok := emission[o]
		if !ok && policy == Strict {
			return nil, fmt.Errorf("%w: emission[%s] (position %d)", ErrMissingModelEntry, o, i)
		}
		for j, s := range states {
			w, ok := row[s]
			if !ok && policy == Strict {
				return nil, fmt.Errorf("%w: emission[%s][%s] (position %d)", ErrMissingModelEntry, o, s, i)
			}
			if err = setWeight(em, i, j, w); err != nil {
				return nil, fmt.Errorf("%w: emission[%s][%s] = %v", err, o, s, w)
			}
		}
	}
	if t.emission, err = denseRows(em); err != nil {
		return nil, err
	}
	if n < 2 {
		return t, nil
	}

	// Stage 3: transition
	tr, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, err
	}
	for p, from := range states {
		row, ok := transition[from]
		if !ok && policy == Strict {
			return nil, fmt.Errorf("%w: transition[%s]", ErrMissingModelEntry, from)
		}
		for j, to := range states {
			w, ok := row[to]
			if !ok && policy == Strict {
				return nil, fmt.Errorf("%w: transition[%s][%s]", ErrMissingModelEntry, from, to)
			}
			if err = setWeight(tr, p, j, w); err != nil {
				return nil, fmt.Errorf("%w: transition[%s][%s] = %v", err, from, to, w)
			}
		}
	}
	if t.transition, err = denseRows(tr); err != nil {
		return nil, err
	}

	return t, nil
}

// setWeight stores w, translating the table's numeric policy into ErrInvalidWeight.
func setWeight(m *matrix.Dense, i, j int, w float64) error {
	err := m.Set(i, j, w)
	if errors.Is(err, matrix.ErrNaNInf) {
		return ErrInvalidWeight
	}

	return err
}

// denseRows returns read-only views of every row of m.
func denseRows(m *matrix.Dense) ([][]float64, error) {
	rows := make([][]float64, m.Rows())
	for i := range rows {
		r, err := m.Row(i)
		if err != nil {
			return nil, err
		}
		rows[i] = r
	}

	return rows, nil
}
