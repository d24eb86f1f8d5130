// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package highway

import (
	"fmt"
	"math/bits"
)

// Vote is a validator's endorsement of a block, as stored once
// accepted. Votes are created once and never mutated.
type Vote[H Hash[H]] struct {
	// Panorama is the sender's snapshot of observed behavior at the
	// time this vote was cast.
	Panorama Panorama[H]
	// SeqNumber is the number of earlier votes by Sender.
	SeqNumber uint64
	// Sender is the validator who cast this vote.
	Sender ValidatorIndex
	// Block is the hash of the block this vote endorses. Either it, or
	// its parent, is the fork choice at the time the vote was cast.
	Block H
	// SkipIdx is a skip-list index into Sender's prior votes: entry i
	// points to the vote with SeqNumber - (1 << i). Empty when
	// SeqNumber == 0 (the sender's first vote).
	SkipIdx []H
}

// WireVote is the vote as received from the network, before it has been
// resolved against State into a stored Vote. V is the consensus-value
// payload type the wire format carries when this vote introduces a new
// block.
type WireVote[H Hash[H], V any] struct {
	// Hash is this vote's own hash (also the new block's hash, when
	// Values is non-nil).
	Hash H
	// Panorama is the sender's snapshot of observed behavior.
	Panorama Panorama[H]
	// SeqNumber is the number of earlier votes by Sender.
	SeqNumber uint64
	// Sender is the validator who cast this vote.
	Sender ValidatorIndex
	// Values, when non-nil, means this vote introduces a new block
	// whose hash equals Hash and whose content is Values.
	Values []V
}

// NewVote resolves a WireVote into a stored Vote plus the new block's
// values, if any. forkChoice/forkChoicePresent is the current fork
// choice; it must be present whenever wvote.Values is nil — callers
// guarantee a non-empty panorama always implies a non-empty fork choice,
// and NewVote panics with ErrNoForkChoice otherwise, since that would be
// a bug above this core.
func NewVote[H Hash[H], V any](
	wvote WireVote[H, V],
	forkChoice H,
	forkChoicePresent bool,
	state State[H],
) (Vote[H], []V) {
	var block H
	if wvote.Values != nil {
		// A vote that introduces a new block votes for itself. Values
		// being present (even an empty, non-nil slice — an otherwise
		// empty block) is what marks the introduction, not its length.
		block = wvote.Hash
	} else {
		if !forkChoicePresent {
			panic(fmt.Errorf("%w", ErrNoForkChoice))
		}
		block = forkChoice
	}

	var skipIdx []H
	if prev, ok := wvote.Panorama.Get(wvote.Sender).CorrectHash(); ok {
		skipIdx = append(skipIdx, prev)
		tz := trailingZeros(wvote.SeqNumber)
		for i := 0; i < tz; i++ {
			oldVote := state.Vote(skipIdx[i])
			skipIdx = append(skipIdx, oldVote.SkipIdx[i])
		}
	}

	vote := Vote[H]{
		Panorama:  wvote.Panorama,
		SeqNumber: wvote.SeqNumber,
		Sender:    wvote.Sender,
		Block:     block,
		SkipIdx:   skipIdx,
	}
	return vote, wvote.Values
}

// trailingZeros counts the trailing zero bits of n, with the
// understanding that trailingZeros(0) is conventionally 0 here (a first
// vote, SeqNumber 0, never reaches this helper since its panorama slot
// is ObsNone).
func trailingZeros(n uint64) int {
	if n == 0 {
		return 0
	}
	return bits.TrailingZeros64(n)
}

// NthAncestorVote walks vote's skip-list to find the sender's earlier
// vote with sequence number vote.SeqNumber-k, in O(log k) state lookups.
// It returns false if k is 0 (vote itself, trivially) is not requested
// through this helper, or if k exceeds vote.SeqNumber.
//
// The walk is the standard binary-lifting technique also used to find
// an ancestor at a target height over block parent edges: descend one
// skip-list level at a time, always taking the largest power-of-two
// step that is both available at the current vote and no larger than
// what remains of k.
func NthAncestorVote[H Hash[H]](state State[H], vote Vote[H], k uint64) (Vote[H], bool) {
	if k == 0 || k > vote.SeqNumber {
		return Vote[H]{}, false
	}
	current := vote
	remaining := k
	for remaining > 0 {
		// The current vote's skip-list only ever has entries for steps
		// that divide its own sequence number (length trailingZeros+1),
		// so the usable step at each hop is the larger power of two
		// that is both available here and no bigger than what's left.
		avail := trailingZeros(current.SeqNumber)
		want := bits.Len64(remaining) - 1
		level := want
		if avail < level {
			level = avail
		}
		if level < 0 || level >= len(current.SkipIdx) {
			return Vote[H]{}, false
		}
		step := uint64(1) << level
		current = state.Vote(current.SkipIdx[level])
		remaining -= step
	}
	return current, true
}
