// Tideland Go Outcome
//
// Copyright (C) 2025-2026 Frank Mueller / Tideland / Oldenburg / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package outcome // import "tideland.dev/go/outcome"

//--------------------
// IMPORTS
//--------------------

import (
	"fmt"
)

//--------------------
// CONSTANTS
//--------------------

const (
	// FlagWidth is the fixed number of flag positions in a FlagSet.
	FlagWidth = 64
)

//--------------------
// FLAG SET
//--------------------

// Flag is the mask of a single named condition inside a FlagSet.
// Flags are intended for conditions that are independent of each
// other and carry no payload; anything needing payload data belongs
// to a defined kind on the Result path.
type Flag uint64

// FlagAt returns the flag for the given bit position. It panics with
// a *Defect if the position is outside [0, FlagWidth).
func FlagAt(pos int) Flag {
	if pos < 0 || pos >= FlagWidth {
		panic(NewDefect("FlagAt", fmt.Errorf("flag position %d outside [0, %d)", pos, FlagWidth), DefectFlagRange))
	}
	return Flag(1) << pos
}

// FlagSet is a fixed-width set of independent conditions. It is an
// immutable value; With and Without return new sets. The zero
// FlagSet is the all-clear set.
type FlagSet uint64

// NoFlags returns the all-clear set, the identity element of
// Combine.
func NoFlags() FlagSet {
	return 0
}

// With returns a new set with the given flag set.
func (fs FlagSet) With(f Flag) FlagSet {
	return fs | FlagSet(f)
}

// Without returns a new set with the given flag cleared.
func (fs FlagSet) Without(f Flag) FlagSet {
	return fs &^ FlagSet(f)
}

// Has returns true if the given flag is set.
func (fs FlagSet) Has(f Flag) bool {
	return fs&FlagSet(f) != 0
}

// IsNone returns true if no flag is set.
func (fs FlagSet) IsNone() bool {
	return fs == 0
}

// Combine returns the union of the given sets. It is associative and
// commutative with NoFlags as identity.
func Combine(sets ...FlagSet) FlagSet {
	var combined FlagSet
	for _, fs := range sets {
		combined |= fs
	}
	return combined
}

// EOF
