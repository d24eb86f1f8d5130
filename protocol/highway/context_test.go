// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package highway

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaxPairHigherWeightWins(t *testing.T) {
	require := require.New(t)

	w, hash := maxPair(1, h("a"), 2, h("b"))
	require.Equal(uint64(2), w)
	require.Equal(h("b"), hash)
}

func TestMaxPairTieBreaksOnGreaterHash(t *testing.T) {
	require := require.New(t)

	w, hash := maxPair(5, h("a"), 5, h("z"))
	require.Equal(uint64(5), w)
	require.Equal(h("z"), hash)

	w, hash = maxPair(5, h("z"), 5, h("a"))
	require.Equal(uint64(5), w)
	require.Equal(h("z"), hash)
}

func TestMaxPairCommutative(t *testing.T) {
	require := require.New(t)

	w1, h1 := maxPair(3, h("a"), 7, h("b"))
	w2, h2 := maxPair(7, h("b"), 3, h("a"))
	require.Equal(w1, w2)
	require.Equal(h1, h2)
}
