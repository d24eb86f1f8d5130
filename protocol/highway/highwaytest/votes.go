// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package highwaytest

import (
	"github.com/luxfi/ids"

	"github.com/luxfi/highway/protocol/highway"
)

// Validator tracks one validator's casting state across a test: its
// seat, the panorama it has observed so far, and its own sequence
// number, so a test can cast a sequence of votes without hand-threading
// skip-list bookkeeping.
type Validator struct {
	Index     highway.ValidatorIndex
	panorama  highway.Panorama[ids.ID]
	seqNumber uint64
	hasVoted  bool
}

// NewValidator returns a fresh Validator for seat idx, observing
// numValidators seats, none of which have voted yet.
func NewValidator(idx highway.ValidatorIndex, numValidators int) *Validator {
	return &Validator{
		Index:    idx,
		panorama: highway.NewPanorama[ids.ID](numValidators),
	}
}

// Observe records that validator other's latest vote is otherVoteHash,
// as seen from v's point of view — the bookkeeping a real node would do
// upon receiving and validating a peer's vote.
func (v *Validator) Observe(other highway.ValidatorIndex, otherVoteHash ids.ID) {
	v.panorama.Update(other, highway.Correct[ids.ID](otherVoteHash))
}

// CastBlock builds, resolves and registers a new WireVote that
// introduces a brand-new block with the given values, updating v's own
// panorama entry to point at the result. forkChoice/forkChoicePresent is
// the fork choice in effect at the moment of casting.
func CastBlock(s *State, v *Validator, blk *Block, values []byte, forkChoice ids.ID, forkChoicePresent bool) highway.Vote[ids.ID] {
	s.AddBlock(blk)
	wvote := highway.WireVote[ids.ID, byte]{
		Hash:      blk.IDV,
		Panorama:  v.panorama.Clone(),
		SeqNumber: v.seqNumber,
		Sender:    v.Index,
		Values:    values,
	}
	vote, _ := highway.NewVote(wvote, forkChoice, forkChoicePresent, s)
	s.AddVote(blk.IDV, vote)
	v.panorama.Update(v.Index, highway.Correct[ids.ID](blk.IDV))
	v.seqNumber++
	v.hasVoted = true
	return vote
}

// CastEndorsement builds, resolves and registers a WireVote that simply
// endorses the current fork choice (no new block), the common case once
// genesis has at least one descendant.
func CastEndorsement(s *State, v *Validator, forkChoice ids.ID) highway.Vote[ids.ID] {
	voteHash := ids.GenerateTestID()
	wvote := highway.WireVote[ids.ID, byte]{
		Hash:      voteHash,
		Panorama:  v.panorama.Clone(),
		SeqNumber: v.seqNumber,
		Sender:    v.Index,
	}
	vote, _ := highway.NewVote(wvote, forkChoice, true, s)
	s.AddVote(voteHash, vote)
	v.panorama.Update(v.Index, highway.Correct[ids.ID](voteHash))
	v.seqNumber++
	v.hasVoted = true
	return vote
}
