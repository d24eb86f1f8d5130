// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package highway

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTryTallyFromEntriesEmpty(t *testing.T) {
	require := require.New(t)

	_, ok := TryTallyFromEntries[testHash](nil)
	require.False(ok)
}

func TestTallyAddAccumulatesAndTracksMax(t *testing.T) {
	require := require.New(t)

	tally := newTally(h("a"), 3)
	tally.Add(h("b"), 5)
	tally.Add(h("a"), 4)

	require.Equal(uint64(12), tally.Weight())
	require.Equal(uint64(7), tally.MaxWeight())
	require.Equal(h("a"), tally.MaxHash())
}

func TestTallyMaxTieBreaksOnHash(t *testing.T) {
	require := require.New(t)

	tally := newTally(h("a"), 5)
	tally.Add(h("z"), 5)

	require.Equal(uint64(5), tally.MaxWeight())
	require.Equal(h("z"), tally.MaxHash())
}

func TestTallyOrderIndependent(t *testing.T) {
	require := require.New(t)

	t1, _ := TryTallyFromEntries([]Entry[testHash]{
		{Hash: h("a"), Weight: 3}, {Hash: h("b"), Weight: 5}, {Hash: h("a"), Weight: 2},
	})
	t2, _ := TryTallyFromEntries([]Entry[testHash]{
		{Hash: h("a"), Weight: 2}, {Hash: h("a"), Weight: 3}, {Hash: h("b"), Weight: 5},
	})

	require.Equal(t1.Weight(), t2.Weight())
	require.Equal(t1.MaxWeight(), t2.MaxWeight())
	require.Equal(t1.MaxHash(), t2.MaxHash())
}

func TestTallyCloneIsIndependent(t *testing.T) {
	require := require.New(t)

	original := newTally(h("a"), 1)
	clone := original.Clone()
	clone.Add(h("b"), 10)

	require.Equal(uint64(1), original.Weight())
	require.Equal(uint64(11), clone.Weight())
}

func TestTallyParentsCollapsesSiblings(t *testing.T) {
	require := require.New(t)

	state := newTestState()
	genesis := testBlock{hash: h("g"), height: 0}
	state.addBlock(genesis)
	left := testBlock{hash: h("l"), height: 1, parent: h("g"), hasParent: true}
	right := testBlock{hash: h("r"), height: 1, parent: h("g"), hasParent: true}
	state.addBlock(left)
	state.addBlock(right)

	tally, _ := TryTallyFromEntries([]Entry[testHash]{
		{Hash: h("l"), Weight: 2}, {Hash: h("r"), Weight: 3},
	})
	parents := tally.Parents(state)
	require.Equal(uint64(5), parents.Weight())
	require.Equal(h("g"), parents.MaxHash())
}

func TestTallyParentsPanicsAtGenesis(t *testing.T) {
	require := require.New(t)

	state := newTestState()
	genesis := testBlock{hash: h("g"), height: 0}
	state.addBlock(genesis)

	tally := newTally(h("g"), 1)
	require.Panics(func() { tally.Parents(state) })
}

func TestTallyFilterKeepsOnlyMatchingDescendants(t *testing.T) {
	require := require.New(t)

	state := newTestState()
	genesis := testBlock{hash: h("g"), height: 0}
	state.addBlock(genesis)
	a := testBlock{hash: h("a"), height: 1, parent: h("g"), hasParent: true}
	b := testBlock{hash: h("b"), height: 1, parent: h("g"), hasParent: true}
	state.addBlock(a)
	state.addBlock(b)
	a2 := testBlock{hash: h("a2"), height: 2, parent: h("a"), hasParent: true}
	state.addBlock(a2)

	tally, _ := TryTallyFromEntries([]Entry[testHash]{
		{Hash: h("a2"), Weight: 4}, {Hash: h("b"), Weight: 6},
	})

	filtered, ok := tally.Filter(1, h("a"), state)
	require.True(ok)
	require.Equal(uint64(4), filtered.Weight())
	require.Equal(h("a2"), filtered.MaxHash())
}

func TestTallyFilterEmptyWhenNothingMatches(t *testing.T) {
	require := require.New(t)

	state := newTestState()
	genesis := testBlock{hash: h("g"), height: 0}
	state.addBlock(genesis)
	a := testBlock{hash: h("a"), height: 1, parent: h("g"), hasParent: true}
	b := testBlock{hash: h("b"), height: 1, parent: h("g"), hasParent: true}
	state.addBlock(a)
	state.addBlock(b)

	tally, _ := TryTallyFromEntries([]Entry[testHash]{{Hash: h("b"), Weight: 6}})

	_, ok := tally.Filter(1, h("a"), state)
	require.False(ok)
}
