package demo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retainops/churnview/internal/fetch"
	"github.com/retainops/churnview/internal/model"
)

func newTestClient(t *testing.T) (fetch.Client, func()) {
	t.Helper()
	srv := httptest.NewServer(NewMux())
	return fetch.NewClient(srv.URL), srv.Close
}

func TestDemo_SummaryMatchesDataset(t *testing.T) {
	t.Parallel()

	client, done := newTestClient(t)
	defer done()

	summary, err := client.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(customers), summary.TotalPredictions)
	assert.Equal(t, 3, summary.HighRiskCustomers)
	assert.Greater(t, summary.TotalRevenueAtRisk, 0.0)
	assert.Greater(t, summary.AvgChurnProbability, 0.0)
	assert.Less(t, summary.AvgChurnProbability, 100.0)
}

func TestDemo_PriorityCustomersSorted(t *testing.T) {
	t.Parallel()

	client, done := newTestClient(t)
	defer done()

	records, err := client.PriorityCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, records, len(customers))

	for i := 1; i < len(records); i++ {
		assert.GreaterOrEqual(t, records[i-1].PriorityScore, records[i].PriorityScore)
	}
}

func TestDemo_RiskDistributionOrdered(t *testing.T) {
	t.Parallel()

	client, done := newTestClient(t)
	defer done()

	entries, err := client.RiskDistribution(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, model.BucketHigh, entries[0].RiskBucket)
	assert.Equal(t, model.BucketMedium, entries[1].RiskBucket)
	assert.Equal(t, model.BucketLow, entries[2].RiskBucket)

	total := 0
	for _, e := range entries {
		total += e.Count
	}
	assert.Equal(t, len(customers), total)
}

func TestDemo_Segments(t *testing.T) {
	t.Parallel()

	client, done := newTestClient(t)
	defer done()

	entries, err := client.Segments(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.GreaterOrEqual(t, e.ChurnRate, 0.0)
		assert.LessOrEqual(t, e.ChurnRate, 1.0)
	}
}

func TestDemo_KPIReport(t *testing.T) {
	t.Parallel()

	client, done := newTestClient(t)
	defer done()

	report, err := client.KPIReport(context.Background())
	require.NoError(t, err)
	assert.Greater(t, report.TotalRevenue, report.RevenueAtRisk)
	assert.Greater(t, report.ChurnRatePct, 0.0)
	assert.LessOrEqual(t, report.HighRiskPct, 100.0)
}

func TestScore_Thresholds(t *testing.T) {
	t.Parallel()

	high := Score(model.PredictionRequest{Tenure: 2, MonthlyCharges: 100})
	assert.Equal(t, model.BucketHigh, high.RiskBucket)
	assert.Greater(t, high.ChurnProbability, 0.7)

	medium := Score(model.PredictionRequest{Tenure: 30, MonthlyCharges: 50})
	assert.Equal(t, model.BucketMedium, medium.RiskBucket)

	low := Score(model.PredictionRequest{Tenure: 60, MonthlyCharges: 20})
	assert.Equal(t, model.BucketLow, low.RiskBucket)
	assert.LessOrEqual(t, low.ChurnProbability, 0.4)
}

func TestScore_BoundedAndDeterministic(t *testing.T) {
	t.Parallel()

	req := model.PredictionRequest{Tenure: 1, MonthlyCharges: 500}
	first := Score(req)
	assert.Equal(t, first, Score(req))
	assert.LessOrEqual(t, first.ChurnProbability, 0.97)

	safe := Score(model.PredictionRequest{Tenure: 120})
	assert.GreaterOrEqual(t, safe.ChurnProbability, 0.02)

	assert.InDelta(t, req.MonthlyCharges*12*first.ChurnProbability, first.ExpectedRevenueLoss, 1e-9)
}

func TestDemo_PredictEndToEnd(t *testing.T) {
	t.Parallel()

	client, done := newTestClient(t)
	defer done()

	result, err := client.Predict(context.Background(), model.PredictionRequest{
		CustomerID:     "C1",
		Tenure:         2,
		MonthlyCharges: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, model.BucketHigh, result.RiskBucket)
}

func TestDemo_PredictRejectsInvalidBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(NewMux())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/predict", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
