package model

import "encoding/json"

// PredictionRequest is the payload posted to /predict. It is built from
// user-entered form values; numeric coercion happens before construction,
// so the fields here are already typed.
type PredictionRequest struct {
	CustomerID     string  `json:"customer_id"`
	Tenure         int     `json:"tenure"`
	MonthlyCharges float64 `json:"monthly_charges"`
	TotalCharges   float64 `json:"total_charges"`
	Contract       string  `json:"contract"`
	PaymentMethod  string  `json:"payment_method"`
}

// PredictionResult is the scored outcome returned by the backend model.
type PredictionResult struct {
	ChurnProbability    float64    `json:"churn_probability"`
	RiskBucket          RiskBucket `json:"risk_bucket"`
	ExpectedRevenueLoss float64    `json:"expected_revenue_loss"`
}

// UnmarshalJSON defaults a missing risk_bucket to LOW.
func (p *PredictionResult) UnmarshalJSON(data []byte) error {
	type alias PredictionResult
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.RiskBucket == "" {
		a.RiskBucket = BucketLow
	}
	*p = PredictionResult(a)
	return nil
}
