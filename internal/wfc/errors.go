package wfc

import "errors"

// ErrInvalidInput covers malformed images, N < 1, non-positive output
// dimensions, zero learned patterns, or a mismatched adjacency length.
var ErrInvalidInput = errors.New("wfc: invalid input")

// ErrUnsatisfiable is returned when applying presets alone produces a
// contradiction. Presets carry no randomness, so retrying cannot help;
// the caller must change the presets or the model.
var ErrUnsatisfiable = errors.New("wfc: unsatisfiable preset constraints")

// errContradiction marks an empty cell: entropy() returns it when asked
// about one, and observe, propagate and the least-entropy scan return it
// when they meet one. It is diagnostic: Solve never lets it escape,
// converting it into a retry (or, for presets alone, ErrUnsatisfiable).
// It must never reach a caller.
var errContradiction = errors.New("wfc: contradiction")
