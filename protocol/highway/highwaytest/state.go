// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package highwaytest provides an in-memory highway.State[ids.ID],
// together with block and vote builders, for tests exercising the
// fork-choice core — the ids.ID analogue of chaintest's TestBlock.
package highwaytest

import (
	"fmt"

	"golang.org/x/exp/maps"

	"github.com/luxfi/ids"

	"github.com/luxfi/highway/protocol/highway"
)

// Block is a test block: built once and never mutated, exactly like
// chaintest.TestBlock.
type Block struct {
	IDV      ids.ID
	HeightV  uint64
	ParentV  ids.ID
	HasParentV bool
}

func (b *Block) Hash() ids.ID { return b.IDV }
func (b *Block) Height() uint64 { return b.HeightV }
func (b *Block) Parent() (ids.ID, bool) { return b.ParentV, b.HasParentV }

// Genesis is a ready-made root block at height 0.
var Genesis = &Block{IDV: ids.GenerateTestID(), HeightV: 0}

// BuildChild returns a new block one height above parent.
func BuildChild(parent *Block) *Block {
	return &Block{
		IDV:        ids.GenerateTestID(),
		HeightV:    parent.HeightV + 1,
		ParentV:    parent.IDV,
		HasParentV: true,
	}
}

// State is an in-memory, append-only highway.State[ids.ID] backed by
// plain maps, plus a binary-lifted ancestor index so FindAncestor answers
// in O(log height) instead of walking parent links one at a time.
type State struct {
	blocks map[ids.ID]*Block
	votes  map[ids.ID]highway.Vote[ids.ID]
	// ancestors[h][i] is the ancestor of h at height h.Height - 2^i.
	ancestors map[ids.ID][]ids.ID
}

// NewState returns an empty State seeded with genesis.
func NewState() *State {
	s := &State{
		blocks:    make(map[ids.ID]*Block),
		votes:     make(map[ids.ID]highway.Vote[ids.ID]),
		ancestors: make(map[ids.ID][]ids.ID),
	}
	s.AddBlock(Genesis)
	return s
}

// AddBlock registers blk and extends the ancestor skip-list for it.
// Panics if blk's parent (when it has one) is unknown.
func (s *State) AddBlock(blk *Block) {
	s.blocks[blk.IDV] = blk

	if !blk.HasParentV {
		s.ancestors[blk.IDV] = nil
		return
	}
	if _, ok := s.blocks[blk.ParentV]; !ok {
		panic(fmt.Errorf("highwaytest: unknown parent %v for block %v", blk.ParentV, blk.IDV))
	}

	parentChain := s.ancestors[blk.ParentV]
	chain := make([]ids.ID, 0, len(parentChain)+1)
	chain = append(chain, blk.ParentV)
	// level i (i>=1) of blk is level i-1 of the ancestor at level i-1 of
	// blk itself, i.e. s.ancestors[chain[i-1]][i-1], the standard binary-lifting
	// construction.
	for i := 1; ; i++ {
		prev := chain[i-1]
		prevChain := s.ancestors[prev]
		if i-1 >= len(prevChain) {
			break
		}
		chain = append(chain, prevChain[i-1])
	}
	s.ancestors[blk.IDV] = chain
}

// AddVote registers vote under hash, the vote's own wire hash.
func (s *State) AddVote(hash ids.ID, vote highway.Vote[ids.ID]) {
	s.votes[hash] = vote
}

func (s *State) Block(hash ids.ID) highway.Block[ids.ID] {
	blk, ok := s.blocks[hash]
	if !ok {
		panic(fmt.Errorf("highwaytest: unknown block %v", hash))
	}
	return blk
}

func (s *State) Vote(hash ids.ID) highway.Vote[ids.ID] {
	vote, ok := s.votes[hash]
	if !ok {
		panic(fmt.Errorf("highwaytest: unknown vote %v", hash))
	}
	return vote
}

// FindAncestor walks the skip-list built in AddBlock: the standard
// binary-lifting technique, descending one level at a time by the
// largest power-of-two step available that doesn't overshoot the target
// height.
func (s *State) FindAncestor(blockHash ids.ID, targetHeight uint64) (ids.ID, bool) {
	blk, ok := s.blocks[blockHash]
	if !ok {
		panic(fmt.Errorf("highwaytest: unknown block %v", blockHash))
	}
	if targetHeight > blk.HeightV {
		return ids.Empty, false
	}
	current := blockHash
	currentHeight := blk.HeightV
	for currentHeight > targetHeight {
		diff := currentHeight - targetHeight
		level := 0
		for (uint64(1) << (level + 1)) <= diff {
			level++
		}
		chain := s.ancestors[current]
		if level >= len(chain) {
			return ids.Empty, false
		}
		current = chain[level]
		currentHeight -= uint64(1) << level
	}
	return current, true
}

// KnownBlocks returns every block hash registered so far, in no
// particular order — a debug dump for tests that want to assert on the
// shape of a built chain, mirroring utils/set.Set.List()'s own use of
// golang.org/x/exp/maps.Keys over an unordered map.
func (s *State) KnownBlocks() []ids.ID {
	return maps.Keys(s.blocks)
}

var _ highway.State[ids.ID] = (*State)(nil)
