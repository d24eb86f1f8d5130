// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package highway

// Hash is the constraint every block and vote identifier must satisfy:
// comparable, so it can key maps, and totally, deterministically
// ordered via Compare, so that weight ties between two blocks can always
// be broken in favor of the lexicographically greater hash.
//
// github.com/luxfi/ids.ID satisfies this constraint directly — it
// already implements Compare(other ID) int, which is all this package
// needs to keep tie-breaks deterministic across nodes.
type Hash[H any] interface {
	comparable
	Compare(other H) int
}

// maxPair returns the pair that sorts greater under the (weight, hash)
// lexicographic order used throughout this package: higher weight wins;
// ties are broken by the greater hash.
func maxPair[H Hash[H]](aw uint64, ah H, bw uint64, bh H) (uint64, H) {
	if aw != bw {
		if aw > bw {
			return aw, ah
		}
		return bw, bh
	}
	if ah.Compare(bh) >= 0 {
		return aw, ah
	}
	return bw, bh
}
