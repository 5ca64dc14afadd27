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
	"iter"
	"strings"
)

//--------------------
// ERROR LIST
//--------------------

// ErrorList is an ordered accumulator of error results. Every entry
// is guaranteed to have a non-valid kind; insertion order is the
// order of iteration and rendering. ErrorList is a persistent value:
// Append and Concat return new lists and leave the receiver
// untouched, so lists may be shared between readers freely. The zero
// ErrorList is the empty list.
type ErrorList struct {
	entries []Result
}

// NewErrorList returns a list of the given error results. It panics
// with a *Defect if any result is valid.
func NewErrorList(results ...Result) ErrorList {
	for _, r := range results {
		guardEntry("NewErrorList", r)
	}
	entries := make([]Result, len(results))
	copy(entries, results)
	return ErrorList{entries: entries}
}

// Append returns a new list with the given error result added to the
// end. Appending a valid result is a defect in the calling code and
// panics with a *Defect; the receiver stays unchanged.
func (l ErrorList) Append(r Result) ErrorList {
	guardEntry("Append", r)
	entries := make([]Result, len(l.entries), len(l.entries)+1)
	copy(entries, l.entries)
	return ErrorList{entries: append(entries, r)}
}

// Concat returns a new list containing the entries of the receiver
// followed by the entries of the given lists in argument order.
func (l ErrorList) Concat(others ...ErrorList) ErrorList {
	total := len(l.entries)
	for _, o := range others {
		total += len(o.entries)
	}
	entries := make([]Result, 0, total)
	entries = append(entries, l.entries...)
	for _, o := range others {
		entries = append(entries, o.entries...)
	}
	return ErrorList{entries: entries}
}

// Len returns the number of entries.
func (l ErrorList) Len() int {
	return len(l.entries)
}

// IsEmpty returns true if the list contains no entries.
func (l ErrorList) IsEmpty() bool {
	return len(l.entries) == 0
}

// All returns an iterator over the entries in insertion order. The
// iterator is restartable and does not consume the list.
func (l ErrorList) All() iter.Seq[Result] {
	return func(yield func(Result) bool) {
		for _, r := range l.entries {
			if !yield(r) {
				return
			}
		}
	}
}

// Results returns a copy of the entries in insertion order.
func (l ErrorList) Results() []Result {
	entries := make([]Result, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// Render joins the entries formatted by the given function with the
// given separator.
func (l ErrorList) Render(format func(Result) string, sep string) string {
	parts := make([]string, 0, len(l.entries))
	for _, r := range l.entries {
		parts = append(parts, format(r))
	}
	return strings.Join(parts, sep)
}

// Error implements the error interface. It joins the kind names of
// all entries with a semicolon.
func (l ErrorList) Error() string {
	if l.IsEmpty() {
		return "no errors"
	}
	return l.Render(Result.String, "; ")
}

// AsError returns the list as error, or nil if the list is empty.
// This avoids handing a non-nil error value for a clean validation
// pass to callers comparing against nil.
func (l ErrorList) AsError() error {
	if l.IsEmpty() {
		return nil
	}
	return l
}

// guardEntry rejects valid results as list entries.
func guardEntry(op string, r Result) {
	if r.IsValid() {
		panic(NewDefect(op, fmt.Errorf("valid result cannot be an error list entry"), DefectValidEntry))
	}
}

// EOF
