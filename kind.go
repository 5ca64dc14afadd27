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
// KIND
//--------------------

// Kind identifies one outcome of a closed set. Kinds are created
// exclusively through Define and DefineMarker and are compared by
// identity, never by name. The name only serves diagnostics and
// rendering.
type Kind struct {
	name string
}

// validKind is the one reserved kind of all valid results.
var validKind = &Kind{name: "valid"}

// ValidKind returns the reserved kind representing a valid outcome.
func ValidKind() *Kind {
	return validKind
}

// String implements the Stringer interface.
func (k *Kind) String() string {
	return k.name
}

// newKind validates the name and creates a fresh kind identity.
func newKind(op, name string) *Kind {
	if name == "" {
		panic(NewDefect(op, fmt.Errorf("kind name cannot be empty"), DefectBadDefinition))
	}
	return &Kind{name: name}
}

// EOF
