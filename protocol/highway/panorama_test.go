// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package highway

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPanoramaEmpty(t *testing.T) {
	require := require.New(t)

	p := NewPanorama[testHash](3)
	require.Equal(3, p.Len())
	require.True(p.IsEmpty())
	require.Equal(ObsNone, p.Get(0).Kind)
}

func TestPanoramaUpdate(t *testing.T) {
	require := require.New(t)

	p := NewPanorama[testHash](2)
	p.Update(0, Correct[testHash](h("a")))
	require.False(p.IsEmpty())

	hash, ok := p.Get(0).CorrectHash()
	require.True(ok)
	require.Equal(h("a"), hash)

	_, ok = p.Get(1).CorrectHash()
	require.False(ok)
}

func TestPanoramaFaultyNotCorrect(t *testing.T) {
	require := require.New(t)

	p := NewPanorama[testHash](1)
	p.Update(0, Faulty[testHash]())
	require.False(p.IsEmpty()) // has an observation, just not a Correct one
	_, ok := p.Get(0).CorrectHash()
	require.False(ok)
}

func TestPanoramaGetOutOfRangePanics(t *testing.T) {
	require := require.New(t)

	p := NewPanorama[testHash](1)
	require.Panics(func() { p.Get(1) })
}

func TestPanoramaUpdateOutOfRangePanics(t *testing.T) {
	require := require.New(t)

	p := NewPanorama[testHash](1)
	require.Panics(func() { p.Update(5, Correct[testHash](h("a"))) })
}

func TestPanoramaCloneIndependent(t *testing.T) {
	require := require.New(t)

	p := NewPanorama[testHash](1)
	clone := p.Clone()
	clone.Update(0, Correct[testHash](h("a")))

	require.True(p.IsEmpty())
	require.False(clone.IsEmpty())
}

func TestPanoramaEnumerate(t *testing.T) {
	require := require.New(t)

	p := NewPanorama[testHash](2)
	p.Update(1, Correct[testHash](h("z")))

	entries := p.Enumerate()
	require.Len(entries, 2)
	require.Equal(ValidatorIndex(0), entries[0].Index)
	require.Equal(ValidatorIndex(1), entries[1].Index)
	hash, ok := entries[1].Observation.CorrectHash()
	require.True(ok)
	require.Equal(h("z"), hash)
}
