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
// RESULT
//--------------------

// Result is a tagged outcome container. It holds exactly one active
// kind together with the payload belonging to that kind. Results are
// immutable values; a different outcome is a different Result, never
// a mutation of an existing one. The zero Result is the valid result.
type Result struct {
	kind    *Kind
	payload any
}

// Valid returns the result representing a valid outcome. It carries
// no payload.
func Valid() Result {
	return Result{}
}

// Kind returns the active kind of the result.
func (r Result) Kind() *Kind {
	if r.kind == nil {
		return validKind
	}
	return r.kind
}

// IsValid returns true if the active kind is the valid kind.
func (r Result) IsValid() bool {
	return r.Kind() == validKind
}

// String implements the Stringer interface. It returns the name of
// the active kind.
func (r Result) String() string {
	return r.Kind().String()
}

//--------------------
// DEFINITIONS
//--------------------

// Def binds an error kind to its payload type P. It is the only way
// to construct a Result of that kind and the only way to access its
// payload, so kind and payload can never get out of sync. Definitions
// belong into package level var blocks of the code owning the
// validation rules.
type Def[P any] struct {
	kind *Kind
}

// Define creates a new error kind carrying payloads of type P. It
// panics with a *Defect if the name is empty.
func Define[P any](name string) Def[P] {
	return Def[P]{kind: newKind("Define", name)}
}

// Kind returns the kind bound by the definition.
func (d Def[P]) Kind() *Kind {
	return d.kind
}

// New returns an error result of this definition's kind carrying
// the given payload.
func (d Def[P]) New(payload P) Result {
	return Result{kind: d.kind, payload: payload}
}

// Is returns true if the result has this definition's kind.
func (d Def[P]) Is(r Result) bool {
	return r.Kind() == d.kind
}

// Payload returns the payload stored in the result. The result must
// have this definition's kind; accessing the payload under any other
// kind is a defect in the calling code and panics with a *Defect. The
// check is unconditional in all builds.
func (d Def[P]) Payload(r Result) P {
	if r.Kind() != d.kind {
		panic(NewDefect("Payload", fmt.Errorf("result has kind %q, not %q", r.Kind(), d.kind), DefectKindMismatch))
	}
	return r.payload.(P)
}

// Get returns the payload and true if the result has this
// definition's kind, otherwise the zero payload and false.
func (d Def[P]) Get(r Result) (P, bool) {
	if r.Kind() != d.kind {
		var zero P
		return zero, false
	}
	return r.payload.(P), true
}

// Marker defines an error kind carrying no payload.
type Marker struct {
	kind *Kind
}

// DefineMarker creates a new payload-free error kind. It panics with
// a *Defect if the name is empty.
func DefineMarker(name string) Marker {
	return Marker{kind: newKind("DefineMarker", name)}
}

// Kind returns the kind bound by the definition.
func (m Marker) Kind() *Kind {
	return m.kind
}

// New returns an error result of this definition's kind.
func (m Marker) New() Result {
	return Result{kind: m.kind}
}

// Is returns true if the result has this definition's kind.
func (m Marker) Is(r Result) bool {
	return r.Kind() == m.kind
}

// EOF
