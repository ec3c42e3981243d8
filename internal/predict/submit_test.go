package predict

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retainops/churnview/internal/fetch"
	"github.com/retainops/churnview/internal/format"
	"github.com/retainops/churnview/internal/model"
	"github.com/retainops/churnview/internal/render"
)

type fakeClient struct {
	fetch.Client
	predict func(ctx context.Context, req model.PredictionRequest) (model.PredictionResult, error)
}

func (f *fakeClient) Predict(ctx context.Context, req model.PredictionRequest) (model.PredictionResult, error) {
	return f.predict(ctx, req)
}

type fakeSurface struct {
	mu          sync.Mutex
	predictions []render.PredictionView
	alerts      []string
}

func (f *fakeSurface) SetText(target, value string)                        {}
func (f *fakeSurface) SetTable(target string, header []string, rows [][]string) {}
func (f *fakeSurface) ShowBanner(msg string)                               {}
func (f *fakeSurface) HideBanner()                                         {}

func (f *fakeSurface) ShowPrediction(v render.PredictionView) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.predictions = append(f.predictions, v)
}

func (f *fakeSurface) Alert(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alerts = append(f.alerts, msg)
}

func newFormatter(t *testing.T) *format.Formatter {
	t.Helper()
	fm, err := format.New("en-IN")
	require.NoError(t, err)
	return fm
}

func TestParseForm_Coercion(t *testing.T) {
	t.Parallel()

	req := ParseForm(FormInput{
		CustomerID:     " C1 ",
		Tenure:         "abc",
		MonthlyCharges: "79.5",
		TotalCharges:   "not-a-number",
		Contract:       "Month-to-month",
		PaymentMethod:  "Credit card",
	})

	// Invalid numeric text coerces to 0 instead of rejecting the submission.
	assert.Equal(t, "C1", req.CustomerID)
	assert.Equal(t, 0, req.Tenure)
	assert.Equal(t, 79.5, req.MonthlyCharges)
	assert.Equal(t, 0.0, req.TotalCharges)
	assert.Equal(t, "Month-to-month", req.Contract)
}

func TestParseForm_ValidNumbers(t *testing.T) {
	t.Parallel()

	req := ParseForm(FormInput{Tenure: " 24 ", MonthlyCharges: "99", TotalCharges: "2376.5"})
	assert.Equal(t, 24, req.Tenure)
	assert.Equal(t, 99.0, req.MonthlyCharges)
	assert.Equal(t, 2376.5, req.TotalCharges)
}

func TestRecommendedAction(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Immediate retention action required", RecommendedAction(model.BucketHigh))
	assert.Equal(t, "Schedule retention campaign", RecommendedAction(model.BucketMedium))
	assert.Equal(t, "Monitor customer", RecommendedAction(model.BucketLow))
	assert.Equal(t, "Monitor customer", RecommendedAction("unknown"))
}

func TestSubmit_Success(t *testing.T) {
	t.Parallel()

	client := &fakeClient{predict: func(_ context.Context, req model.PredictionRequest) (model.PredictionResult, error) {
		assert.Equal(t, "C1", req.CustomerID)
		return model.PredictionResult{
			ChurnProbability:    0.82,
			RiskBucket:          model.BucketHigh,
			ExpectedRevenueLoss: 5000,
		}, nil
	}}
	surface := &fakeSurface{}
	s := NewSubmitter(client, surface, newFormatter(t))

	result, err := s.Submit(context.Background(), FormInput{CustomerID: "C1", Tenure: "12"})
	require.NoError(t, err)
	assert.Equal(t, model.BucketHigh, result.RiskBucket)

	require.Len(t, surface.predictions, 1)
	view := surface.predictions[0]
	assert.Equal(t, "82.0%", view.Probability)
	assert.Equal(t, "HIGH", view.RiskLabel)
	assert.Equal(t, "#ef4444", view.RiskColor)
	assert.Equal(t, Confidence, view.Confidence)
	assert.Equal(t, "Immediate retention action required", view.Action)
	assert.Empty(t, surface.alerts)
}

func TestSubmit_FailureAlertsAndHidesPanel(t *testing.T) {
	t.Parallel()

	client := &fakeClient{predict: func(context.Context, model.PredictionRequest) (model.PredictionResult, error) {
		return model.PredictionResult{}, &fetch.FetchError{Endpoint: fetch.PathPredict, Status: 500}
	}}
	surface := &fakeSurface{}
	s := NewSubmitter(client, surface, newFormatter(t))

	_, err := s.Submit(context.Background(), FormInput{CustomerID: "C1"})
	require.Error(t, err)

	var subErr *SubmissionError
	assert.True(t, errors.As(err, &subErr))
	assert.Equal(t, []string{AlertMessage}, surface.alerts)
	assert.Empty(t, surface.predictions, "no partial panel update on failure")
}

func TestSubmit_RefusesOverlappingSubmission(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	client := &fakeClient{predict: func(context.Context, model.PredictionRequest) (model.PredictionResult, error) {
		close(entered)
		<-release
		return model.PredictionResult{RiskBucket: model.BucketLow}, nil
	}}
	surface := &fakeSurface{}
	s := NewSubmitter(client, surface, newFormatter(t))

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background(), FormInput{CustomerID: "C1"})
		done <- err
	}()
	<-entered

	// A second submission while one is in flight fails instead of issuing
	// a duplicate POST.
	_, err := s.Submit(context.Background(), FormInput{CustomerID: "C1"})
	require.Error(t, err)
	var subErr *SubmissionError
	assert.True(t, errors.As(err, &subErr))

	close(release)
	require.NoError(t, <-done)
}
