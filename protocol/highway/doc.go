// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package highway implements the fork-choice core of a Highway-style BFT
// consensus protocol.
//
// Validators cast votes that each endorse a block somewhere in a block
// tree rooted at genesis. A vote for a block counts, implicitly, as a
// vote for every one of that block's ancestors — but highway never
// materializes those implied votes. Instead it keeps a height-indexed
// Tallies structure holding only the votes that directly endorse a block
// at each height, and folds weight downward on demand (Tally.Parents)
// when a fork-choice decision is computed (Tallies.FindDecided). A
// decided block is one whose sub-tree holds a strict majority of the
// weight currently represented in the Tallies.
//
// The package is polymorphic over the hash type used to identify blocks
// and votes (the Hash constraint), so that it can run against
// github.com/luxfi/ids.ID or any other comparable, totally ordered
// identifier. Tie-breaks between equally-weighted blocks always favor
// the lexicographically greater hash, deterministically across nodes.
//
// highway is purely computational: no operation performs I/O, blocks, or
// suspends. Callers serialize access and own the State implementation
// the core reads from; see State for the narrow contract expected of it.
//
// Key concepts:
//   - Panorama: per-validator snapshot of the latest vote observed (or
//     Faulty, or none) at the time a vote was cast.
//   - Vote: a validator's endorsement of a block, carrying its panorama
//     and a skip-list index into the sender's own prior votes.
//   - Tally / Tallies: the weighted, height-indexed accumulator that
//     FindDecided folds downward to locate the deepest decided ancestor.
//
// Skip-list navigation (NthAncestorVote) uses binary lifting: a fixed,
// power-of-two indexed ladder of back-pointers that lets the walk reach
// any earlier vote in O(log n) steps instead of O(n). Tally-folding
// (Tally.Parents) moves exactly one level per call, mapping each block
// to its direct parent.
package highway
