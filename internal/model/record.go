// Package model defines the wire types consumed from the churn analytics API.
//
// Decoding applies the fallback rules exactly once, at this boundary: absent
// or null numeric fields become 0, and risk buckets are normalized to
// uppercase with unknown values folded into LOW. Code past this package can
// rely on fully-defaulted values.
package model

import (
	"encoding/json"
	"strings"
)

// RiskBucket is the backend-assigned churn-risk tier.
type RiskBucket string

const (
	BucketHigh   RiskBucket = "HIGH"
	BucketMedium RiskBucket = "MEDIUM"
	BucketLow    RiskBucket = "LOW"
)

// NormalizeBucket uppercases a raw bucket token and folds anything outside
// the known tiers into LOW. The bucket is backend-supplied and never
// re-derived from probability client-side.
func NormalizeBucket(raw string) RiskBucket {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "HIGH":
		return BucketHigh
	case "MEDIUM":
		return BucketMedium
	default:
		return BucketLow
	}
}

// UnmarshalJSON normalizes the bucket during decode. Null and non-string
// tokens fold into LOW rather than failing the record.
func (b *RiskBucket) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*b = BucketLow
		return nil
	}
	*b = NormalizeBucket(s)
	return nil
}

// CustomerRecord is an immutable per-fetch snapshot of one scored customer.
type CustomerRecord struct {
	CustomerID          string     `json:"customer_id"`
	ChurnProbability    float64    `json:"churn_probability"`
	RiskBucket          RiskBucket `json:"risk_bucket"`
	ExpectedRevenueLoss float64    `json:"expected_revenue_loss"`
	Revenue             float64    `json:"revenue"`
	PriorityScore       float64    `json:"priority_score"`
}

// UnmarshalJSON applies the absent-field defaults: a missing risk_bucket
// becomes LOW (present values are normalized by RiskBucket itself).
func (c *CustomerRecord) UnmarshalJSON(data []byte) error {
	type alias CustomerRecord
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.RiskBucket == "" {
		a.RiskBucket = BucketLow
	}
	*c = CustomerRecord(a)
	return nil
}

// KPISummary holds the dashboard tile metrics. Every field is optional on
// the wire; absent means 0. AvgChurnProbability arrives already scaled to
// percentage units (0-100).
type KPISummary struct {
	TotalPredictions    int     `json:"total_predictions"`
	AvgChurnProbability float64 `json:"avg_churn_probability"`
	HighRiskCustomers   int     `json:"high_risk_customers"`
	TotalRevenueAtRisk  float64 `json:"total_revenue_at_risk"`
}

// RiskDistributionEntry is one observed bucket with its customer count.
// Not all three tiers are necessarily present in a distribution.
type RiskDistributionEntry struct {
	RiskBucket RiskBucket `json:"risk_bucket"`
	Count      int        `json:"count"`
}

// UnmarshalJSON defaults a missing risk_bucket to LOW.
func (e *RiskDistributionEntry) UnmarshalJSON(data []byte) error {
	type alias RiskDistributionEntry
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.RiskBucket == "" {
		a.RiskBucket = BucketLow
	}
	*e = RiskDistributionEntry(a)
	return nil
}

// SegmentEntry is a per-segment churn rate, e.g. by contract type.
// ChurnRate is a [0,1] fraction.
type SegmentEntry struct {
	SegmentValue string  `json:"segment_value"`
	ChurnRate    float64 `json:"churn_rate"`
}

// KPIReport holds the business KPI rollup from /api/kpis. The rate fields
// arrive already scaled to percentage units.
type KPIReport struct {
	TotalRevenue  float64 `json:"total_revenue"`
	RevenueAtRisk float64 `json:"revenue_at_risk"`
	ChurnRatePct  float64 `json:"churn_rate_pct"`
	HighRiskPct   float64 `json:"high_risk_pct"`
}
