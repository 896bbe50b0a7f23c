// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Do not %w wrap these when returning directly; Dense wraps them once with
// method and coordinates, callers match with errors.Is.
var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (Set/Row) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value was offered to Set.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
