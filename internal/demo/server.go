// Package demo hosts a local stand-in for the churn analytics backend. It
// serves the same JSON contracts the client consumes, backed by a canned
// dataset and a deterministic scoring stub, so the dashboard can be
// exercised end to end without the real model service.
package demo

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/retainops/churnview/internal/model"
)

var customers = []model.CustomerRecord{
	{CustomerID: "CUST-1001", ChurnProbability: 0.91, RiskBucket: model.BucketHigh, ExpectedRevenueLoss: 84000, Revenue: 92000, PriorityScore: 0.97},
	{CustomerID: "CUST-1002", ChurnProbability: 0.82, RiskBucket: model.BucketHigh, ExpectedRevenueLoss: 61000, Revenue: 74000, PriorityScore: 0.91},
	{CustomerID: "CUST-1003", ChurnProbability: 0.74, RiskBucket: model.BucketHigh, ExpectedRevenueLoss: 42000, Revenue: 56500, PriorityScore: 0.83},
	{CustomerID: "CUST-1004", ChurnProbability: 0.58, RiskBucket: model.BucketMedium, ExpectedRevenueLoss: 27500, Revenue: 47000, PriorityScore: 0.66},
	{CustomerID: "CUST-1005", ChurnProbability: 0.51, RiskBucket: model.BucketMedium, ExpectedRevenueLoss: 19000, Revenue: 37000, PriorityScore: 0.58},
	{CustomerID: "CUST-1006", ChurnProbability: 0.44, RiskBucket: model.BucketMedium, ExpectedRevenueLoss: 12400, Revenue: 28000, PriorityScore: 0.49},
	{CustomerID: "CUST-1007", ChurnProbability: 0.23, RiskBucket: model.BucketLow, ExpectedRevenueLoss: 6100, Revenue: 26500, PriorityScore: 0.27},
	{CustomerID: "CUST-1008", ChurnProbability: 0.12, RiskBucket: model.BucketLow, ExpectedRevenueLoss: 2800, Revenue: 23000, PriorityScore: 0.14},
	{CustomerID: "CUST-1009", ChurnProbability: 0.07, RiskBucket: model.BucketLow, ExpectedRevenueLoss: 1500, Revenue: 21500, PriorityScore: 0.08},
	{CustomerID: "CUST-1010", ChurnProbability: 0.04, RiskBucket: model.BucketLow, ExpectedRevenueLoss: 700, Revenue: 17500, PriorityScore: 0.05},
}

var segments = []model.SegmentEntry{
	{SegmentValue: "Month-to-month", ChurnRate: 0.42},
	{SegmentValue: "One year", ChurnRate: 0.11},
	{SegmentValue: "Two year", ChurnRate: 0.03},
}

// NewMux builds the demo API routes.
func NewMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("GET /api/dashboard/summary", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, summarize())
	})

	mux.HandleFunc("GET /api/dashboard/priority_customers", func(w http.ResponseWriter, r *http.Request) {
		byPriority := append([]model.CustomerRecord(nil), customers...)
		sort.SliceStable(byPriority, func(i, j int) bool {
			return byPriority[i].PriorityScore > byPriority[j].PriorityScore
		})
		writeJSON(w, byPriority)
	})

	mux.HandleFunc("GET /api/customers", func(w http.ResponseWriter, r *http.Request) {
		byLoss := append([]model.CustomerRecord(nil), customers...)
		sort.SliceStable(byLoss, func(i, j int) bool {
			return byLoss[i].ExpectedRevenueLoss > byLoss[j].ExpectedRevenueLoss
		})
		writeJSON(w, byLoss)
	})

	mux.HandleFunc("GET /api/risk_distribution", func(w http.ResponseWriter, r *http.Request) {
		counts := map[model.RiskBucket]int{}
		for _, c := range customers {
			counts[c.RiskBucket]++
		}
		var out []model.RiskDistributionEntry
		for _, b := range []model.RiskBucket{model.BucketHigh, model.BucketMedium, model.BucketLow} {
			if counts[b] > 0 {
				out = append(out, model.RiskDistributionEntry{RiskBucket: b, Count: counts[b]})
			}
		}
		writeJSON(w, out)
	})

	mux.HandleFunc("GET /api/segments", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, segments)
	})

	mux.HandleFunc("GET /api/kpis", func(w http.ResponseWriter, r *http.Request) {
		var totalRevenue, atRisk, probSum float64
		high := 0
		for _, c := range customers {
			totalRevenue += c.Revenue
			atRisk += c.ExpectedRevenueLoss
			probSum += c.ChurnProbability
			if c.RiskBucket == model.BucketHigh {
				high++
			}
		}
		n := float64(len(customers))
		writeJSON(w, model.KPIReport{
			TotalRevenue:  totalRevenue,
			RevenueAtRisk: atRisk,
			ChurnRatePct:  probSum / n * 100,
			HighRiskPct:   float64(high) / n * 100,
		})
	})

	mux.HandleFunc("POST /predict", func(w http.ResponseWriter, r *http.Request) {
		var req model.PredictionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		writeJSON(w, Score(req))
	})

	return mux
}

// Score applies a deterministic scoring stub: longer tenure lowers risk,
// higher monthly charges raise it. The bucket thresholds mirror the
// production model service (HIGH above 0.7, MEDIUM above 0.4).
func Score(req model.PredictionRequest) model.PredictionResult {
	prob := 0.85 - 0.012*float64(req.Tenure) + 0.002*req.MonthlyCharges
	if prob < 0.02 {
		prob = 0.02
	}
	if prob > 0.97 {
		prob = 0.97
	}

	bucket := model.BucketLow
	switch {
	case prob > 0.7:
		bucket = model.BucketHigh
	case prob > 0.4:
		bucket = model.BucketMedium
	}

	return model.PredictionResult{
		ChurnProbability:    prob,
		RiskBucket:          bucket,
		ExpectedRevenueLoss: req.MonthlyCharges * 12 * prob,
	}
}

func summarize() model.KPISummary {
	var probSum, atRisk float64
	high := 0
	for _, c := range customers {
		probSum += c.ChurnProbability
		atRisk += c.ExpectedRevenueLoss
		if c.RiskBucket == model.BucketHigh {
			high++
		}
	}
	return model.KPISummary{
		TotalPredictions:    len(customers),
		AvgChurnProbability: probSum / float64(len(customers)) * 100,
		HighRiskCustomers:   high,
		TotalRevenueAtRisk:  atRisk,
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}
