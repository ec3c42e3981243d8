// Package chart translates aggregated data into the declarative series
// descriptions consumed by a drawing sink. The sink's drawing engine is
// opaque to this package; the only contract is carrying labels, values and
// colors index-for-index.
package chart

import (
	"github.com/retainops/churnview/internal/aggregate"
	"github.com/retainops/churnview/internal/model"
	"github.com/retainops/churnview/internal/risk"
)

// Kind identifies the series shape the sink should draw.
type Kind string

const (
	KindDoughnut     Kind = "doughnut"
	KindBar          Kind = "bar"
	KindHalfDoughnut Kind = "half_doughnut"
)

// Fixed palette shared with the risk badges, plus chart-only fills.
const (
	ColorPriority = "#8b5cf6"
	ColorNeutral  = "rgba(148, 163, 184, 0.2)"
)

// Series is one declarative dataset for the sink.
type Series struct {
	Kind   Kind
	Labels []string
	Values []float64
	Colors []string
}

// RiskDoughnut builds the three-slice risk distribution from a tally,
// always in HIGH, MEDIUM, LOW order.
func RiskDoughnut(t aggregate.Tally) Series {
	return Series{
		Kind:   KindDoughnut,
		Labels: []string{"HIGH", "MEDIUM", "LOW"},
		Values: []float64{float64(t.High), float64(t.Medium), float64(t.Low)},
		Colors: []string{risk.ColorHigh, risk.ColorMedium, risk.ColorLow},
	}
}

// DistributionDoughnut builds a doughnut from backend-grouped bucket counts,
// keeping the entries' own order and coloring each slice by its bucket.
func DistributionDoughnut(entries []model.RiskDistributionEntry) Series {
	s := Series{Kind: KindDoughnut}
	for _, e := range entries {
		badge := risk.ForBucket(e.RiskBucket)
		s.Labels = append(s.Labels, badge.Label)
		s.Values = append(s.Values, float64(e.Count))
		s.Colors = append(s.Colors, badge.Color)
	}
	return s
}

// PriorityBar builds the per-customer priority score bar series. Names and
// scores are positionally aligned by the aggregator.
func PriorityBar(names []string, scores []float64) Series {
	colors := make([]string, len(names))
	for i := range colors {
		colors[i] = ColorPriority
	}
	return Series{
		Kind:   KindBar,
		Labels: names,
		Values: scores,
		Colors: colors,
	}
}

// SegmentBar builds a churn-rate bar series per segment value. Rates arrive
// as [0,1] fractions and are carried as percentages for display.
func SegmentBar(entries []model.SegmentEntry) Series {
	s := Series{Kind: KindBar}
	for _, e := range entries {
		s.Labels = append(s.Labels, e.SegmentValue)
		s.Values = append(s.Values, e.ChurnRate*100)
		s.Colors = append(s.Colors, ColorPriority)
	}
	return s
}

// GaugeChart builds the half-doughnut churn/safe gauge.
func GaugeChart(split aggregate.GaugeSplit) Series {
	return Series{
		Kind:   KindHalfDoughnut,
		Labels: []string{"Churn", "Safe"},
		Values: []float64{split.Churn, split.Safe},
		Colors: []string{risk.ColorHigh, ColorNeutral},
	}
}
