// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package highway

import "fmt"

// Entry pairs a block hash with a weight, the shape Tally and Tallies
// are built and extended from.
type Entry[H Hash[H]] struct {
	Hash   H
	Weight uint64
}

// Tally is the weighted vote count for every block directly endorsed at
// one height, together with a running (weight, hash) maximum broken by
// the lexicographically greater hash on ties. A Tally is never empty:
// it always holds at least one entry.
//
// The map that backs votes is unordered, but Tally's externally visible
// state — total weight, and the (max weight, max hash) pair — never
// depends on the order entries were added in: Add is commutative, and
// the running maximum is recomputed via maxPair at every step, which is
// itself commutative and associative. A sorted container (as the
// fork-choice design notes suggest) is therefore unnecessary here; it
// would only matter if something iterated votes and depended on order,
// which nothing in this package does.
type Tally[H Hash[H]] struct {
	votes map[H]uint64
	total uint64
	maxW  uint64
	maxH  H
}

// newTally builds a single-entry tally.
func newTally[H Hash[H]](bhash H, w uint64) *Tally[H] {
	return &Tally[H]{
		votes: map[H]uint64{bhash: w},
		total: w,
		maxW:  w,
		maxH:  bhash,
	}
}

// TryTallyFromEntries folds entries into a Tally via newTally+Add. It
// returns false if entries is empty.
func TryTallyFromEntries[H Hash[H]](entries []Entry[H]) (*Tally[H], bool) {
	if len(entries) == 0 {
		return nil, false
	}
	t := newTally(entries[0].Hash, entries[0].Weight)
	for _, e := range entries[1:] {
		t.Add(e.Hash, e.Weight)
	}
	return t, true
}

// Add adds weight to bhash's entry, refreshing the cached maximum.
func (t *Tally[H]) Add(bhash H, weight uint64) {
	w := t.votes[bhash] + weight
	t.votes[bhash] = w
	t.total += weight
	t.maxW, t.maxH = maxPair(t.maxW, t.maxH, w, bhash)
}

// Extend adds every entry in entries via Add.
func (t *Tally[H]) Extend(entries []Entry[H]) {
	for _, e := range entries {
		t.Add(e.Hash, e.Weight)
	}
}

// Weight returns the total weight of every vote this tally holds.
func (t *Tally[H]) Weight() uint64 {
	return t.total
}

// MaxWeight returns the highest weight any single block received.
func (t *Tally[H]) MaxWeight() uint64 {
	return t.maxW
}

// MaxHash returns the block hash with the highest weight; the greatest
// hash among those tied for it.
func (t *Tally[H]) MaxHash() H {
	return t.maxH
}

// Entries returns every (hash, weight) pair currently held, in no
// particular order — callers that need a deterministic traversal should
// sort the result themselves via Hash.Compare.
func (t *Tally[H]) Entries() []Entry[H] {
	out := make([]Entry[H], 0, len(t.votes))
	for h, w := range t.votes {
		out = append(out, Entry[H]{Hash: h, Weight: w})
	}
	return out
}

// Clone returns an independent copy of the tally.
func (t *Tally[H]) Clone() *Tally[H] {
	votes := make(map[H]uint64, len(t.votes))
	for h, w := range t.votes {
		votes[h] = w
	}
	return &Tally[H]{votes: votes, total: t.total, maxW: t.maxW, maxH: t.maxH}
}

// Parents returns a new tally one level lower: every vote for a block
// counts as a vote for that block's parent, with weights for blocks
// that share a parent collapsed together. Panics via ErrGenesisParent
// if any entry in t is a height-0 (genesis) block — callers must not
// call Parents on a tally that lives at height 0.
func (t *Tally[H]) Parents(state State[H]) *Tally[H] {
	entries := make([]Entry[H], 0, len(t.votes))
	for h, w := range t.votes {
		parent, ok := state.Block(h).Parent()
		if !ok {
			panic(fmt.Errorf("%w: block %v", ErrGenesisParent, h))
		}
		entries = append(entries, Entry[H]{Hash: parent, Weight: w})
	}
	parents, ok := TryTallyFromEntries(entries)
	if !ok {
		// t is never empty, so entries can't be either.
		panic(fmt.Errorf("highway: Parents called on an empty tally"))
	}
	return parents
}

// Filter retains only the entries that are descendants of bhash at
// height — i.e. whose ancestor at height equals bhash — and returns
// false if nothing survives.
func (t *Tally[H]) Filter(height uint64, bhash H, state State[H]) (*Tally[H], bool) {
	var entries []Entry[H]
	for h, w := range t.votes {
		if ancestor, ok := state.FindAncestor(h, height); ok && ancestor == bhash {
			entries = append(entries, Entry[H]{Hash: h, Weight: w})
		}
	}
	return TryTallyFromEntries(entries)
}
