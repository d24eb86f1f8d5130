// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package highway

import "strings"

// testHash is a minimal Hash[H] witness for this package's own tests,
// independent of highwaytest/ids.ID, so these tests exercise nothing
// but the comparable+Compare contract itself.
type testHash string

func (t testHash) Compare(other testHash) int {
	return strings.Compare(string(t), string(other))
}

func h(s string) testHash { return testHash(s) }

// testBlock and testState give this package's own tests a minimal
// State[testHash] without reaching for highwaytest, which is built
// around ids.ID for consumers outside this package.
type testBlock struct {
	hash      testHash
	height    uint64
	parent    testHash
	hasParent bool
}

func (b testBlock) Hash() testHash         { return b.hash }
func (b testBlock) Height() uint64         { return b.height }
func (b testBlock) Parent() (testHash, bool) { return b.parent, b.hasParent }

type testState struct {
	blocks map[testHash]testBlock
	votes  map[testHash]Vote[testHash]
}

func newTestState() *testState {
	return &testState{
		blocks: make(map[testHash]testBlock),
		votes:  make(map[testHash]Vote[testHash]),
	}
}

func (s *testState) addBlock(b testBlock) {
	s.blocks[b.hash] = b
}

func (s *testState) addVote(hash testHash, v Vote[testHash]) {
	s.votes[hash] = v
}

func (s *testState) Block(hash testHash) Block[testHash] {
	b, ok := s.blocks[hash]
	if !ok {
		panic("testState: unknown block " + string(hash))
	}
	return b
}

func (s *testState) Vote(hash testHash) Vote[testHash] {
	v, ok := s.votes[hash]
	if !ok {
		panic("testState: unknown vote " + string(hash))
	}
	return v
}

// FindAncestor walks Parent() links one at a time; fine for the small
// chains these tests build.
func (s *testState) FindAncestor(blockHash testHash, targetHeight uint64) (testHash, bool) {
	current := s.Block(blockHash)
	if targetHeight > current.Height() {
		return "", false
	}
	for current.Height() > targetHeight {
		parent, ok := current.Parent()
		if !ok {
			return "", false
		}
		current = s.Block(parent)
	}
	return current.Hash(), true
}

var _ State[testHash] = (*testState)(nil)
