// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package highway

// Decision is the result of FindDecided: the decided ancestor at the
// given height, and the block hash itself.
type Decision[H Hash[H]] struct {
	Height uint64
	Hash   H
}

// HeightEntry is a (height, hash, weight) triple, the shape Tallies is
// built and extended from.
type HeightEntry[H Hash[H]] struct {
	Height uint64
	Hash   H
	Weight uint64
}

// Tallies is a height-indexed collection of Tally: the tally at height h
// holds only the votes that directly endorse a block at h, never votes
// for a descendant propagated down eagerly. That laziness is the whole
// point — see the package doc.
type Tallies[H Hash[H]] struct {
	byHeight map[uint64]*Tally[H]
}

// NewTallies returns an empty Tallies.
func NewTallies[H Hash[H]]() *Tallies[H] {
	return &Tallies[H]{byHeight: make(map[uint64]*Tally[H])}
}

// TalliesFromEntries folds entries into a Tallies via Add.
func TalliesFromEntries[H Hash[H]](entries []HeightEntry[H]) *Tallies[H] {
	t := NewTallies[H]()
	for _, e := range entries {
		t.Add(e.Height, e.Hash, e.Weight)
	}
	return t
}

// Add inserts or updates the entry for bhash at height.
func (t *Tallies[H]) Add(height uint64, bhash H, weight uint64) {
	if tally, ok := t.byHeight[height]; ok {
		tally.Add(bhash, weight)
		return
	}
	t.byHeight[height] = newTally(bhash, weight)
}

// IsEmpty returns true if no height holds any tally at all.
func (t *Tallies[H]) IsEmpty() bool {
	return len(t.byHeight) == 0
}

// totalWeight sums the weight represented across every height: the
// default denominator FindDecided measures a majority against. This is
// the weight currently represented in Tallies, not necessarily the full
// validator-set weight — callers who want a majority measured against
// the full non-faulty validator set should call FindDecidedWithTotal
// with that total instead.
func (t *Tallies[H]) totalWeight() uint64 {
	var total uint64
	for _, tally := range t.byHeight {
		total += tally.Weight()
	}
	return total
}

// maxHeight returns the greatest height with a tally, and false if
// Tallies is empty.
func (t *Tallies[H]) maxHeight() (uint64, bool) {
	first := true
	var max uint64
	for h := range t.byHeight {
		if first || h > max {
			max = h
			first = false
		}
	}
	return max, !first
}

// FindDecided finds the deepest ancestor that a strict weight majority
// has committed to, together with the next-height block through which
// the decision descends into that sub-tree. It returns false only when
// Tallies is empty. The majority is measured against the weight
// currently represented in Tallies; call FindDecidedWithTotal instead
// to measure it against a different total, such as the full non-faulty
// validator set's weight.
//
// Tie-breaks are always resolved in favor of the lexicographically
// greater hash, so two nodes computing FindDecided over identical
// Tallies always agree.
func (t *Tallies[H]) FindDecided(state State[H]) (Decision[H], bool) {
	if t.IsEmpty() {
		return Decision[H]{}, false
	}
	return t.FindDecidedWithTotal(state, t.totalWeight())
}

// FindDecidedWithTotal runs the same algorithm as FindDecided, but
// measures the majority condition against total instead of the weight
// currently represented in Tallies. total must be at least
// Tallies.totalWeight() for the result to mean a genuine majority; it is
// the caller's responsibility to supply a sound denominator (e.g. the
// full non-faulty validator set's weight). Returns false only when
// Tallies is empty.
func (t *Tallies[H]) FindDecidedWithTotal(state State[H], total uint64) (Decision[H], bool) {
	maxH, ok := t.maxHeight()
	if !ok {
		return Decision[H]{}, false
	}

	// prevTally is, at every step of the loop below, the aggregate of
	// every vote at a height strictly greater than the level currently
	// being examined.
	prevTally := t.byHeight[maxH].Clone()

	for h := maxH; h > 0; h-- {
		height := h - 1
		hTally := prevTally.Parents(state)
		if tally, ok := t.byHeight[height]; ok {
			hTally.Extend(tally.Entries())
		}
		if hTally.MaxWeight()*2 > total {
			bstar := hTally.MaxHash()
			if filtered, ok := prevTally.Filter(height, bstar, state); ok {
				return Decision[H]{Height: height + 1, Hash: filtered.MaxHash()}, true
			}
			return Decision[H]{Height: height, Hash: bstar}, true
		}
		prevTally = hTally
	}
	// No block reached a majority even at height 0; the highest-weight
	// block there is, in practice, always genesis.
	return Decision[H]{Height: 0, Hash: prevTally.MaxHash()}, true
}

// Filter drops every tally at a height <= height (they can no longer
// distinguish bhash's descendants from its siblings once we've
// committed to bhash's sub-tree), then filters the remaining tallies to
// keep only entries whose ancestor at height is bhash, dropping any
// that become empty as a result. It returns a new Tallies; the receiver
// is left unmodified.
func (t *Tallies[H]) Filter(height uint64, bhash H, state State[H]) *Tallies[H] {
	out := NewTallies[H]()
	for h, tally := range t.byHeight {
		if h <= height {
			continue
		}
		if filtered, ok := tally.Filter(height, bhash, state); ok {
			out.byHeight[h] = filtered
		}
	}
	return out
}
