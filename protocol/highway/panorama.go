// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package highway

import "fmt"

// ObservationKind tags the three ways a validator can be observed to
// behave as of some point in time.
type ObservationKind uint8

const (
	// ObsNone means no vote by that validator has been observed yet.
	ObsNone ObservationKind = iota
	// ObsCorrect means the validator's latest vote is known; the
	// Observation's Hash field names it.
	ObsCorrect
	// ObsFaulty means the validator has been observed equivocating.
	// highway never sets this itself — detecting equivocation and
	// deciding to mark a validator faulty is the caller's decision;
	// this core only carries the tag through the panorama, and it is
	// the caller's job to exclude faulty weight from a Tallies before
	// computing a decision.
	ObsFaulty
)

// Observation is the observed behavior of a single validator at the
// time some vote was cast.
type Observation[H Hash[H]] struct {
	Kind ObservationKind
	Hash H // meaningful only when Kind == ObsCorrect
}

// None is the zero Observation: no vote seen yet.
func None[H Hash[H]]() Observation[H] {
	return Observation[H]{Kind: ObsNone}
}

// Correct builds an Observation naming the validator's latest vote.
func Correct[H Hash[H]](hash H) Observation[H] {
	return Observation[H]{Kind: ObsCorrect, Hash: hash}
}

// Faulty is the Observation recorded once a validator has been seen
// equivocating.
func Faulty[H Hash[H]]() Observation[H] {
	return Observation[H]{Kind: ObsFaulty}
}

// CorrectHash returns the observed vote hash and true, if this is a
// correct observation.
func (o Observation[H]) CorrectHash() (H, bool) {
	if o.Kind == ObsCorrect {
		return o.Hash, true
	}
	var zero H
	return zero, false
}

// Panorama is an ordered, per-validator snapshot of observed behavior,
// attached to every vote: it records which validators were "live", and
// what they'd last said, at the moment the vote was cast.
type Panorama[H Hash[H]] struct {
	observations []Observation[H]
}

// NewPanorama creates an empty panorama sized for numValidators seats,
// all initialized to ObsNone.
func NewPanorama[H Hash[H]](numValidators int) Panorama[H] {
	obs := make([]Observation[H], numValidators)
	return Panorama[H]{observations: obs}
}

// Len returns the number of validator seats this panorama covers.
func (p Panorama[H]) Len() int {
	return len(p.observations)
}

// Get returns the observation for the given validator. Panics if idx is
// out of range.
func (p Panorama[H]) Get(idx ValidatorIndex) Observation[H] {
	if int(idx) >= len(p.observations) {
		panic(fmt.Errorf("%w: index %d, %d validators", ErrValidatorIndexRange, idx, len(p.observations)))
	}
	return p.observations[idx]
}

// IsEmpty returns true if no validator has been observed yet: every
// seat is ObsNone. A Faulty observation makes the panorama non-empty.
func (p Panorama[H]) IsEmpty() bool {
	for _, o := range p.observations {
		if o.Kind != ObsNone {
			return false
		}
	}
	return true
}

// PanoramaEntry pairs a validator index with its observation, as
// returned by Enumerate.
type PanoramaEntry[H Hash[H]] struct {
	Index       ValidatorIndex
	Observation Observation[H]
}

// Enumerate returns every (validator index, observation) pair in seat
// order.
func (p Panorama[H]) Enumerate() []PanoramaEntry[H] {
	entries := make([]PanoramaEntry[H], len(p.observations))
	for i, o := range p.observations {
		entries[i] = PanoramaEntry[H]{Index: ValidatorIndex(i), Observation: o}
	}
	return entries
}

// Update sets the observation at idx. Assumes all of obs's
// justifications are already reflected in state — callers update a
// panorama only when adding the vote that makes obs current. Panics if
// idx is out of range.
func (p *Panorama[H]) Update(idx ValidatorIndex, obs Observation[H]) {
	if int(idx) >= len(p.observations) {
		panic(fmt.Errorf("%w: index %d, %d validators", ErrValidatorIndexRange, idx, len(p.observations)))
	}
	p.observations[idx] = obs
}

// Clone returns a deep copy of the panorama, safe to mutate
// independently of the original.
func (p Panorama[H]) Clone() Panorama[H] {
	obs := make([]Observation[H], len(p.observations))
	copy(obs, p.observations)
	return Panorama[H]{observations: obs}
}
