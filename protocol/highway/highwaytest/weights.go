// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package highwaytest

import "github.com/luxfi/highway/protocol/highway"

// Weights is a fixed-size highway.WeightTable backed by a plain slice,
// the minimal stand-in for a real validator set in tests.
type Weights []uint64

func (w Weights) Weight(idx highway.ValidatorIndex) uint64 {
	return w[idx]
}

// Equal weights returns a Weights table where every one of n validators
// carries weight 1 — the common case exercised by the majority-finding
// scenarios.
func EqualWeights(n int) Weights {
	w := make(Weights, n)
	for i := range w {
		w[i] = 1
	}
	return w
}
