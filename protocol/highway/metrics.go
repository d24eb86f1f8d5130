// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package highway

import "github.com/prometheus/client_golang/prometheus"

// highwayMetrics is optional instrumentation for Engine; the pure
// Tally/Tallies/Vote types stay free of it — they perform no I/O and
// take no ambient collaborators.
type highwayMetrics struct {
	votesTallied     prometheus.Counter
	decisionsReached prometheus.Counter
	decidedHeight    prometheus.Gauge
	filterCalls      prometheus.Counter
}

func newHighwayMetrics(registerer prometheus.Registerer) (*highwayMetrics, error) {
	m := &highwayMetrics{
		votesTallied: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "highway_votes_tallied",
			Help: "Number of votes folded into the fork-choice tallies",
		}),
		decisionsReached: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "highway_decisions_reached",
			Help: "Number of times FindDecided returned a decision",
		}),
		decidedHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "highway_decided_height",
			Help: "Height of the most recently decided ancestor",
		}),
		filterCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "highway_filter_calls",
			Help: "Number of times Tallies.Filter was applied to shrink the working set",
		}),
	}

	if registerer == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{
		m.votesTallied,
		m.decisionsReached,
		m.decidedHeight,
		m.filterCalls,
	} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
