// Package aggregate derives chart- and table-ready rollups from scored
// customer records.
package aggregate

import (
	"math"

	"github.com/retainops/churnview/internal/model"
)

// Tally counts customers per risk tier for one render pass.
type Tally struct {
	High   int
	Medium int
	Low    int
}

// Total returns the number of tallied records.
func (t Tally) Total() int {
	return t.High + t.Medium + t.Low
}

// Summary is the aggregated view of a record sequence. Names and
// PriorityScores run parallel: index i of both describes the same input
// record, in input order. No sorting is applied; chart and table order
// equals fetch order.
type Summary struct {
	Tally          Tally
	Names          []string
	PriorityScores []float64
}

// Aggregate walks the records once, classifying each into the tally and
// appending its id and priority score. Records with an unrecognized or
// absent bucket have been folded into LOW at the decode boundary, so
// Tally.Low can include normalized-unknown records; that is a deliberate
// simplification of the tiering, not a bug.
func Aggregate(records []model.CustomerRecord) Summary {
	s := Summary{
		Names:          make([]string, 0, len(records)),
		PriorityScores: make([]float64, 0, len(records)),
	}

	for _, rec := range records {
		switch model.NormalizeBucket(string(rec.RiskBucket)) {
		case model.BucketHigh:
			s.Tally.High++
		case model.BucketMedium:
			s.Tally.Medium++
		default:
			s.Tally.Low++
		}
		s.Names = append(s.Names, rec.CustomerID)
		s.PriorityScores = append(s.PriorityScores, rec.PriorityScore)
	}

	return s
}

// GaugeSplit is the two-slice churn/safe view of a single percentage.
type GaugeSplit struct {
	Churn float64
	Safe  float64
}

// Gauge splits a churn rate percentage into churn and safe slices. The
// input is clamped to [0,100] first, so both slices stay in range and sum
// to 100 even for out-of-range input.
func Gauge(churnRatePct float64) GaugeSplit {
	pct := churnRatePct
	if math.IsNaN(pct) {
		pct = 0
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return GaugeSplit{Churn: pct, Safe: 100 - pct}
}
