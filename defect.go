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
// DEFECT TYPES
//--------------------

// DefectCode defines the type of contract violation that occurred.
type DefectCode int

const (
	// DefectNone signals no defect.
	DefectNone DefectCode = iota
	// DefectKindMismatch signals payload access under a kind that is
	// not the active one.
	DefectKindMismatch
	// DefectValidEntry signals adding a valid result to an error list.
	DefectValidEntry
	// DefectBadDefinition signals an invalid kind definition.
	DefectBadDefinition
	// DefectFlagRange signals a flag position outside the fixed width.
	DefectFlagRange
)

// String implements the Stringer interface.
func (dc DefectCode) String() string {
	switch dc {
	case DefectNone:
		return "no defect"
	case DefectKindMismatch:
		return "kind mismatch"
	case DefectValidEntry:
		return "valid entry"
	case DefectBadDefinition:
		return "bad definition"
	case DefectFlagRange:
		return "flag out of range"
	default:
		return "unknown defect"
	}
}

// Defect contains detailed information about a contract violation.
// Defects are caller bugs, not runtime contingencies; the package
// reports them by panicking with a *Defect and never recovers them
// itself.
type Defect struct {
	Op   string
	Err  error
	Code DefectCode
}

// Error implements the error interface.
func (d *Defect) Error() string {
	if d.Err != nil {
		return fmt.Sprintf("outcome %s: %v (%v)", d.Op, d.Err, d.Code)
	}
	return fmt.Sprintf("outcome %s: %v", d.Op, d.Code)
}

// Unwrap implements error unwrapping.
func (d *Defect) Unwrap() error {
	return d.Err
}

// NewDefect creates a new defect.
func NewDefect(op string, err error, code DefectCode) *Defect {
	return &Defect{
		Op:   op,
		Err:  err,
		Code: code,
	}
}

// EOF
