// Package predict handles the single-customer scoring flow: coerce form
// input, post it, and interpret the scored result into a recommended action.
package predict

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/rotisserie/eris"

	"github.com/retainops/churnview/internal/fetch"
	"github.com/retainops/churnview/internal/format"
	"github.com/retainops/churnview/internal/model"
	"github.com/retainops/churnview/internal/render"
	"github.com/retainops/churnview/internal/risk"
)

// Confidence is a fixed display placeholder; the backend does not report a
// confidence value.
const Confidence = "95%"

// AlertMessage is shown on any failed submission.
const AlertMessage = "Prediction failed. Check backend."

// SubmissionError is a failed scoring submission. Unlike a metrics fetch it
// is fatal to the flow: no partial panel update happens and nothing is
// retried.
type SubmissionError struct {
	cause error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("prediction submission failed: %v", e.cause)
}

func (e *SubmissionError) Unwrap() error {
	return e.cause
}

// FormInput carries the raw user-entered field values.
type FormInput struct {
	CustomerID     string
	Tenure         string
	MonthlyCharges string
	TotalCharges   string
	Contract       string
	PaymentMethod  string
}

// ParseForm coerces raw form values into a request. Numeric fields that do
// not parse become 0 rather than rejecting the submission.
func ParseForm(in FormInput) model.PredictionRequest {
	return model.PredictionRequest{
		CustomerID:     strings.TrimSpace(in.CustomerID),
		Tenure:         coerceInt(in.Tenure),
		MonthlyCharges: coerceFloat(in.MonthlyCharges),
		TotalCharges:   coerceFloat(in.TotalCharges),
		Contract:       strings.TrimSpace(in.Contract),
		PaymentMethod:  strings.TrimSpace(in.PaymentMethod),
	}
}

func coerceInt(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

func coerceFloat(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return f
}

// RecommendedAction maps the backend-assigned bucket to the retention
// guidance shown with the result.
func RecommendedAction(b model.RiskBucket) string {
	switch b {
	case model.BucketHigh:
		return "Immediate retention action required"
	case model.BucketMedium:
		return "Schedule retention campaign"
	default:
		return "Monitor customer"
	}
}

// Submitter runs prediction submissions against the scoring endpoint and
// renders the outcome.
type Submitter struct {
	client   fetch.Client
	surface  render.Surface
	fm       *format.Formatter
	inFlight atomic.Bool
}

// NewSubmitter creates a submitter rendering into the given surface.
func NewSubmitter(client fetch.Client, surface render.Surface, fm *format.Formatter) *Submitter {
	return &Submitter{client: client, surface: surface, fm: fm}
}

// Submit posts one scoring request. Only a single submission may be in
// flight at a time; overlapping calls fail instead of issuing a duplicate
// POST. On failure the panel stays hidden and a user alert is raised.
func (s *Submitter) Submit(ctx context.Context, in FormInput) (model.PredictionResult, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return model.PredictionResult{}, &SubmissionError{cause: eris.New("submission already in flight")}
	}
	defer s.inFlight.Store(false)

	result, err := s.client.Predict(ctx, ParseForm(in))
	if err != nil {
		s.surface.Alert(AlertMessage)
		return model.PredictionResult{}, &SubmissionError{cause: err}
	}

	badge := risk.ForBucket(result.RiskBucket)
	s.surface.ShowPrediction(render.PredictionView{
		Probability: s.fm.PercentFromFraction(result.ChurnProbability, 1),
		RiskLabel:   badge.Label,
		RiskColor:   badge.Color,
		Confidence:  Confidence,
		Action:      RecommendedAction(result.RiskBucket),
	})

	return result, nil
}
