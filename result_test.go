// Tideland Go Outcome - Unit Tests
//
// Copyright (C) 2025-2026 Frank Mueller / Tideland / Oldenburg / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package outcome_test

//--------------------
// IMPORTS
//--------------------

import (
	"testing"

	"tideland.dev/go/asserts/verify"

	"tideland.dev/go/outcome"
)

//--------------------
// TEST KINDS
//--------------------

// doorCount is the payload of an invalid door count.
type doorCount struct {
	Found int
}

var (
	missingName      = outcome.DefineMarker("missing name")
	invalidDoorCount = outcome.Define[doorCount]("invalid door count")
	badEngine        = outcome.Define[string]("bad engine")
)

//--------------------
// HELPERS
//--------------------

// verifyDefect verifies that f panics with a *Defect of the given code.
func verifyDefect(t *testing.T, code outcome.DefectCode, f func()) {
	t.Helper()
	defer func() {
		reason := recover()
		verify.NotNil(t, reason)
		defect, ok := reason.(*outcome.Defect)
		verify.True(t, ok, "panic reason has to be a *Defect")
		verify.Equal(t, defect.Code, code)
	}()
	f()
}

//--------------------
// TESTS
//--------------------

// TestValid verifies the valid result.
func TestValid(t *testing.T) {
	res := outcome.Valid()

	verify.True(t, res.IsValid())
	verify.Equal(t, res.Kind(), outcome.ValidKind())
	verify.Equal(t, res.Kind().String(), "valid")
}

// TestZeroValue verifies that the zero Result is the valid result.
func TestZeroValue(t *testing.T) {
	var res outcome.Result

	verify.True(t, res.IsValid())
	verify.Equal(t, res.Kind(), outcome.ValidKind())
}

// TestMarkerResult verifies construction and kind of a payload-free
// error result.
func TestMarkerResult(t *testing.T) {
	res := missingName.New()

	verify.True(t, !res.IsValid())
	verify.True(t, missingName.Is(res))
	verify.Equal(t, res.Kind(), missingName.Kind())
	verify.Equal(t, res.String(), "missing name")
}

// TestPayloadRoundTrip verifies that a constructed result returns
// exactly the stored payload.
func TestPayloadRoundTrip(t *testing.T) {
	res := invalidDoorCount.New(doorCount{Found: -1})

	verify.True(t, invalidDoorCount.Is(res))
	verify.Equal(t, invalidDoorCount.Payload(res), doorCount{Found: -1})

	eres := badEngine.New("no cylinders")

	verify.Equal(t, badEngine.Payload(eres), "no cylinders")
}

// TestPayloadIdempotence verifies that repeated reads never change
// subsequent observations.
func TestPayloadIdempotence(t *testing.T) {
	res := invalidDoorCount.New(doorCount{Found: 7})

	for range 5 {
		verify.Equal(t, res.Kind(), invalidDoorCount.Kind())
		verify.Equal(t, invalidDoorCount.Payload(res), doorCount{Found: 7})
	}
}

// TestPayloadMismatch verifies that payload access under a foreign
// kind fails loudly instead of returning storage.
func TestPayloadMismatch(t *testing.T) {
	res := missingName.New()

	verifyDefect(t, outcome.DefectKindMismatch, func() {
		invalidDoorCount.Payload(res)
	})

	// Same for the valid result.
	verifyDefect(t, outcome.DefectKindMismatch, func() {
		badEngine.Payload(outcome.Valid())
	})
}

// TestGet verifies the comma-ok payload access.
func TestGet(t *testing.T) {
	res := invalidDoorCount.New(doorCount{Found: 3})

	dc, ok := invalidDoorCount.Get(res)
	verify.True(t, ok)
	verify.Equal(t, dc, doorCount{Found: 3})

	engine, ok := badEngine.Get(res)
	verify.True(t, !ok)
	verify.Equal(t, engine, "")
}

// TestKindIdentity verifies that kinds are compared by identity,
// so equally named definitions stay distinct.
func TestKindIdentity(t *testing.T) {
	other := outcome.DefineMarker("missing name")

	verify.True(t, other.Kind() != missingName.Kind())
	verify.True(t, !other.Is(missingName.New()))
}

// TestBadDefinition verifies that defining a kind with an empty name
// is rejected.
func TestBadDefinition(t *testing.T) {
	verifyDefect(t, outcome.DefectBadDefinition, func() {
		outcome.DefineMarker("")
	})
	verifyDefect(t, outcome.DefectBadDefinition, func() {
		outcome.Define[int]("")
	})
}

// TestDefectError verifies the error output of defects.
func TestDefectError(t *testing.T) {
	defer func() {
		reason := recover()
		verify.NotNil(t, reason)
		defect := reason.(*outcome.Defect)
		verify.ErrorMatch(t, defect, "outcome Payload: .*kind mismatch.*")
	}()
	invalidDoorCount.Payload(missingName.New())
}

// EOF
