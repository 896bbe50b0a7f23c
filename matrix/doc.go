// SPDX-License-Identifier: MIT

// Package matrix provides the dense weight tables used by the decoder.
//
// A decode call resolves every model lookup once, up front, and stores the
// results in row-major Dense tables:
//
//   - initial    - 1×K    (one weight per state)
//   - emission   - N×K    (row i: weights of every state for observation i)
//   - transition - K×K    (row p: weights of moving from state p to each state)
//
// The hot decoding loops then read whole rows through Row and never touch a
// map again.
//
// Numeric policy: Set rejects NaN and ±Inf with ErrNaNInf, so a table that
// was filled without error holds only finite values.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; Set/Row: O(1).
package matrix
