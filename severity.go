// Tideland Go Outcome
//
// Copyright (C) 2025-2026 Frank Mueller / Tideland / Oldenburg / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package outcome // import "tideland.dev/go/outcome"

//--------------------
// SEVERITY
//--------------------

// Ranking maps a kind to its severity. Higher values are more
// severe. The ranking is a policy of the calling validation routine;
// the package imposes no ordering of its own.
type Ranking func(k *Kind) int

// First returns the first non-valid result in argument order, or the
// valid result if there is none.
func First(results ...Result) Result {
	for _, r := range results {
		if !r.IsValid() {
			return r
		}
	}
	return Valid()
}

// MostSevere returns the non-valid result with the highest rank
// according to the given ranking, or the valid result if there is
// none. Of equally ranked results the earliest wins.
func MostSevere(rank Ranking, results ...Result) Result {
	best := Valid()
	bestRank := 0
	for _, r := range results {
		if r.IsValid() {
			continue
		}
		if best.IsValid() || rank(r.Kind()) > bestRank {
			best = r
			bestRank = rank(r.Kind())
		}
	}
	return best
}

// EOF
