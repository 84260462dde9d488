// Package bruteforce: types.go holds the sentinel errors surfaced by the
// pairwise kernels.
package bruteforce

import "errors"

// ErrLengthMismatch indicates that positions and masses do not have the
// same length.
var ErrLengthMismatch = errors.New("bruteforce: len(positions) != len(masses)")
