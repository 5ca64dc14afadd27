// Tideland Go Outcome
//
// Copyright (C) 2025-2026 Frank Mueller / Tideland / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package outcome

import (
	"slices"
	"sync"
)

// Collector accumulates error results from validation work fanned out
// over multiple goroutines. Each worker collects into its own slot;
// the final list is ordered by ascending slot and by insertion order
// within a slot, independent of the order the workers finished in.
// All methods are safe for concurrent use.
type Collector struct {
	mu    sync.Mutex
	slots map[int][]Result
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		slots: make(map[int][]Result),
	}
}

// Collect adds an error result to the given slot. Collecting a valid
// result is a defect in the calling code and panics with a *Defect.
func (c *Collector) Collect(slot int, r Result) {
	guardEntry("Collect", r)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slots[slot] = append(c.slots[slot], r)
}

// CollectList adds all entries of the given list to the given slot,
// keeping their order.
func (c *Collector) CollectList(slot int, l ErrorList) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slots[slot] = append(c.slots[slot], l.entries...)
}

// List returns the collected entries as an ErrorList, ordered by
// ascending slot and by insertion order within each slot. The
// collector stays usable afterwards.
func (c *Collector) List() ErrorList {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]int, 0, len(c.slots))
	for key := range c.slots {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	var entries []Result
	for _, key := range keys {
		entries = append(entries, c.slots[key]...)
	}
	return ErrorList{entries: entries}
}
