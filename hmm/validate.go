package hmm

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/hashicorp/go-multierror"
)

// Validate checks m for structural and numeric defects and reports all of
// them at once.
//
// Checks performed:
//   - at least one state, no empty or duplicate state labels;
//   - every key of Initial, Transition (both levels) and the inner level of
//     Emission names a declared state;
//   - no empty observation label;
//   - every weight is finite and non-negative.
//
// The returned error is a *multierror.Error whose entries wrap the package
// sentinels (ErrNoStates, ErrDuplicateState, ...), so errors.Is works on the
// aggregate. Entries are produced in a deterministic order (table order,
// then sorted keys). Returns nil for a valid model.
//
// Complexity: O(|States| + entries·log(entries)).
func (m *Model) Validate() error {
	var result *multierror.Error

	if len(m.States) == 0 {
		result = multierror.Append(result, ErrNoStates)
	}
	known := make(map[State]struct{}, len(m.States))
	for i, s := range m.States {
		if s == "" {
			result = multierror.Append(result, fmt.Errorf("%w: states[%d]", ErrEmptyLabel, i))
			continue
		}
		if _, dup := known[s]; dup {
			result = multierror.Append(result, fmt.Errorf("%w: %q at states[%d]", ErrDuplicateState, s, i))
			continue
		}
		known[s] = struct{}{}
	}

	checkState := func(where string, s State) {
		if _, ok := known[s]; !ok {
			result = multierror.Append(result, fmt.Errorf("%w: %q in %s", ErrUnknownState, s, where))
		}
	}
	checkWeight := func(where string, w float64) {
		switch {
		case math.IsNaN(w) || math.IsInf(w, 0):
			result = multierror.Append(result, fmt.Errorf("%w: %s = %v", ErrNonFiniteWeight, where, w))
		case w < 0:
			result = multierror.Append(result, fmt.Errorf("%w: %s = %v", ErrNegativeWeight, where, w))
		}
	}

	for _, s := range slices.Sorted(maps.Keys(m.Initial)) {
		checkState("initial", s)
		checkWeight(fmt.Sprintf("initial[%s]", s), m.Initial[s])
	}
	for _, from := range slices.Sorted(maps.Keys(m.Transition)) {
		checkState("transition", from)
		row := m.Transition[from]
		for _, to := range slices.Sorted(maps.Keys(row)) {
			checkState(fmt.Sprintf("transition[%s]", from), to)
			checkWeight(fmt.Sprintf("transition[%s][%s]", from, to), row[to])
		}
	}
	for _, obs := range slices.Sorted(maps.Keys(m.Emission)) {
		if obs == "" {
			result = multierror.Append(result, fmt.Errorf("%w: emission observation", ErrEmptyLabel))
		}
		row := m.Emission[obs]
		for _, s := range slices.Sorted(maps.Keys(row)) {
			checkState(fmt.Sprintf("emission[%s]", obs), s)
			checkWeight(fmt.Sprintf("emission[%s][%s]", obs, s), row[s])
		}
	}

	return result.ErrorOrNil()
}
