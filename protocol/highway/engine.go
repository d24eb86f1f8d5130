// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package highway

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/luxfi/log"
)

// Context carries the ambient collaborators Engine logs through and
// reports metrics to.
type Context struct {
	Log        log.Logger
	Registerer prometheus.Registerer
}

// WeightTable answers how much weight a validator carries.
type WeightTable interface {
	Weight(idx ValidatorIndex) uint64
}

// TotalWeightPolicy selects the denominator Engine's fork-choice
// decisions measure a majority against.
type TotalWeightPolicy uint8

const (
	// TotalWeightRepresented measures a majority against the sum of
	// weight currently represented in the working Tallies, recomputed
	// fresh after every vote and every Filter. This is Engine's default.
	TotalWeightRepresented TotalWeightPolicy = iota
	// TotalWeightValidatorSet measures a majority against a fixed total
	// supplied via Config.TotalWeight (typically the full non-faulty
	// validator set's weight) instead of whatever subset of votes
	// happens to be represented in Tallies at decision time.
	TotalWeightValidatorSet
)

// Config configures optional Engine policy. The zero Config selects
// TotalWeightRepresented.
type Config struct {
	// TotalWeightPolicy selects the fork-choice majority denominator.
	TotalWeightPolicy TotalWeightPolicy
	// TotalWeight is the fixed denominator used when TotalWeightPolicy
	// is TotalWeightValidatorSet. Ignored otherwise.
	TotalWeight uint64
}

// Engine wires vote construction, tally maintenance and re-filtering
// together the way a consensus driver applying one wire vote at a time
// would: it is not part of the narrow core (Panorama/Vote/Tallies), but
// the thin piece of glue a caller would otherwise have to write itself
// every time.
//
// Engine does not exclude faulty validators' weight on the caller's
// behalf — marking and excluding faulty validators is the caller's
// responsibility; Engine expects weights already reflect only
// non-faulty validators.
type Engine[H Hash[H]] struct {
	ctx     *Context
	cfg     Config
	state   State[H]
	weights WeightTable
	metrics *highwayMetrics

	forkChoice        H
	forkChoicePresent bool
	tallies           *Tallies[H]
}

// NewEngine constructs an Engine over state, using weights to translate
// a vote's sender into the weight it contributes to Tallies. ctx may be
// nil, in which case logging and metrics are skipped. cfg selects the
// fork-choice majority policy; the zero Config is TotalWeightRepresented.
func NewEngine[H Hash[H]](state State[H], weights WeightTable, ctx *Context, cfg Config) (*Engine[H], error) {
	e := &Engine[H]{
		ctx:     ctx,
		cfg:     cfg,
		state:   state,
		weights: weights,
		tallies: NewTallies[H](),
	}
	if ctx != nil && ctx.Registerer != nil {
		m, err := newHighwayMetrics(ctx.Registerer)
		if err != nil {
			return nil, fmt.Errorf("highway: registering metrics: %w", err)
		}
		e.metrics = m
	}
	return e, nil
}

// findDecided applies e.cfg's total-weight policy to the working
// Tallies.
func (e *Engine[H]) findDecided() (Decision[H], bool) {
	if e.cfg.TotalWeightPolicy == TotalWeightValidatorSet {
		return e.tallies.FindDecidedWithTotal(e.state, e.cfg.TotalWeight)
	}
	return e.tallies.FindDecided(e.state)
}

// ForkChoice returns the engine's current fork-choice tip, and false if
// no vote has been observed yet.
func (e *Engine[H]) ForkChoice() (H, bool) {
	return e.forkChoice, e.forkChoicePresent
}

// AddWireVote resolves wvote into a stored Vote via NewVote, folds its
// weight into the working Tallies at the endorsed block's height, and
// recomputes the fork choice as the decided ancestor's descendant chain
// would determine it. It returns the constructed Vote and, when wvote
// introduced a new block, its values.
func (e *Engine[H]) AddWireVote(wvote WireVote[H, any]) (Vote[H], []any) {
	vote, values := NewVote(wvote, e.forkChoice, e.forkChoicePresent, e.state)

	weight := e.weights.Weight(vote.Sender)
	height := e.state.Block(vote.Block).Height()
	e.tallies.Add(height, vote.Block, weight)

	if e.metrics != nil {
		e.metrics.votesTallied.Inc()
	}
	if e.ctx != nil && e.ctx.Log != nil {
		e.ctx.Log.Debug("tallied vote",
			zap.Uint64("height", height),
			zap.Uint64("seqNumber", vote.SeqNumber),
		)
	}

	if decision, ok := e.findDecided(); ok {
		e.forkChoice = decision.Hash
		e.forkChoicePresent = true
		if e.metrics != nil {
			e.metrics.decisionsReached.Inc()
			e.metrics.decidedHeight.Set(float64(decision.Height))
		}
	}

	return vote, values
}

// Finalize applies the configured fork-choice decision and, when it
// yields a decision, shrinks the working Tallies via Filter to discard
// votes outside the decided sub-tree. It returns the decision reached,
// if any.
func (e *Engine[H]) Finalize() (Decision[H], bool) {
	decision, ok := e.findDecided()
	if !ok {
		return Decision[H]{}, false
	}
	e.tallies = e.tallies.Filter(decision.Height, decision.Hash, e.state)
	if e.metrics != nil {
		e.metrics.filterCalls.Inc()
	}
	if e.ctx != nil && e.ctx.Log != nil {
		e.ctx.Log.Debug("finalized ancestor",
			zap.Uint64("height", decision.Height),
		)
	}
	return decision, true
}
