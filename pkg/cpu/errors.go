// Package cpu implements one combatant's machine: 256 bytes of memory,
// eight 16-bit registers, condition flags, a programmable timer, and the
// fetch/decode/execute loop that drives all of it. A CPU never holds a
// reference back to the grid it lives on; callers hand it a Neighbors view
// for the instructions that reach across cells (move and trap).
package cpu

import "errors"

// ErrOutOfBounds is returned by a Neighbors implementation when a
// relative cross-CPU address falls off the edge of the grid. The CPU
// treats it the same way it treats a decode failure: no crash, no
// effect beyond the fault.
var ErrOutOfBounds = errors.New("cpu: address out of bounds")
