// Tideland Go Outcome
//
// Copyright (C) 2025-2026 Frank Mueller / Tideland / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

/*
Package outcome provides a type-safe discriminated result value for Go. A
Result holds exactly one of several mutually exclusive outcomes: the valid
outcome, or one of a closed set of error kinds, each carrying its own typed
payload. Reading a payload that does not belong to the currently active kind
is impossible through the API without being detected immediately - the
accessor panics with a diagnosable Defect instead of returning storage that
belongs to another kind.

The package also provides ErrorList, an ordered accumulator for validation
passes that must report every violation instead of stopping at the first
one, Collector for building such a list from concurrent workers, and
FlagSet, a small bitmask algebra for independent payload-free conditions.

# The Recommended Pattern

Error kinds are defined once, at package level, by the code that owns the
validation rules. A definition binds a kind identity to its payload type,
so construction and access cannot pair a kind with the wrong payload.

	package cars

	import "tideland.dev/go/outcome"

	// Payload of an invalid door count.
	type DoorCount struct {
		Found int
	}

	var (
		MissingName      = outcome.DefineMarker("missing name")
		InvalidDoorCount = outcome.Define[DoorCount]("invalid door count")
	)

	// Validate checks a car record and reports every violation found.
	func Validate(car Car) outcome.ErrorList {
		errs := outcome.NewErrorList()
		if car.Name == "" {
			errs = errs.Append(MissingName.New())
		}
		if car.Doors < 2 {
			errs = errs.Append(InvalidDoorCount.New(DoorCount{Found: car.Doors}))
		}
		return errs
	}

A consumer first branches on the kind, then extracts the matching payload:

	for res := range errs.All() {
		switch {
		case MissingName.Is(res):
			fmt.Println("the car has no name")
		case InvalidDoorCount.Is(res):
			dc := InvalidDoorCount.Payload(res)
			fmt.Printf("invalid door count: %d\n", dc.Found)
		}
	}

# First-Failure Reporting

When only the single most important violation matters, a validation routine
returns one Result instead of a list. The selection policy belongs to the
caller: First picks the first violation in document order, MostSevere picks
by a caller-supplied ranking.

	res := outcome.First(checkName(car), checkDoors(car))
	if !res.IsValid() {
		return res
	}

# Misuse Is a Defect

Accessing a payload under the wrong kind, appending a valid Result to an
ErrorList, or defining a kind with an empty name are defects in the calling
code, not runtime contingencies. All of them panic with a *Defect carrying
an operation name and a DefectCode. The package never recovers such a panic
itself and never degrades to returning zero values or foreign storage.

	res := MissingName.New()
	dc := InvalidDoorCount.Payload(res) // panics: kind mismatch

# Flags

For conditions that are independent rather than mutually exclusive and
carry no payload, FlagSet offers a fixed-width bitmask:

	const (
		posDirty = iota
		posImported
	)

	var (
		Dirty    = outcome.FlagAt(posDirty)
		Imported = outcome.FlagAt(posImported)
	)

	fs := outcome.NoFlags().With(Dirty)
	if fs.Has(Dirty) {
		...
	}

Once a condition needs payload data, it has outgrown FlagSet and belongs to
a defined kind on the Result path.

# Best Practices

Define Kinds at Package Level

Definitions are the closed kind set of their package. Create them once in a
var block; never create them inside request handling code. Two definitions
are never the same kind, even with equal names.

Branch Before Extracting

Call Is or Kind first, extract second. Use Get when a comma-ok flow reads
better than branch-then-Payload:

	if dc, ok := InvalidDoorCount.Get(res); ok {
		fmt.Println(dc.Found)
	}

Return Lists Through the Error Channel

ErrorList implements the error interface. Use AsError to hand a list to
callers expecting an error value; it returns nil for an empty list:

	if err := cars.Validate(car).AsError(); err != nil {
		return err
	}

# API Documentation

For a complete API reference visit https://pkg.go.dev/tideland.dev/go/outcome.
*/

package outcome
