// Package render abstracts the widget surface the pipeline writes into.
// Target names mirror the dashboard's widget ids; implementations decide
// how a target is actually drawn.
package render

// Widget render targets.
const (
	TargetTotalPredictions = "totalPredictions"
	TargetAvgChurn         = "avgChurn"
	TargetHighRisk         = "highRisk"
	TargetRevenueRisk      = "revenueRisk"
	TargetTotalRevenue     = "totalRevenue"
	TargetHighRiskPct      = "highRiskPct"
	TargetCustomerTable    = "customerTable"
	TargetSegmentTable     = "segmentTable"

	TargetRiskChart     = "riskChart"
	TargetPriorityChart = "priorityChart"
	TargetSegmentChart  = "segmentChart"
	TargetGaugeChart    = "gaugeChart"
)

// BannerMessage is the fixed text shown when any metrics fetch fails.
const BannerMessage = "Some dashboard data failed to load. Check the backend connection."

// PredictionView is the fully formatted prediction result panel.
type PredictionView struct {
	Probability string
	RiskLabel   string
	RiskColor   string
	Confidence  string
	Action      string
}

// Surface receives formatted values for named widgets. Writers of distinct
// targets never contend on shared widget state, so concurrent pipelines can
// render independently.
type Surface interface {
	// SetText writes a single formatted value into a counter widget.
	SetText(target, value string)
	// SetTable replaces the rows of a table widget.
	SetTable(target string, header []string, rows [][]string)
	// ShowPrediction reveals the prediction result panel.
	ShowPrediction(v PredictionView)
	// ShowBanner makes the error banner visible with the given message.
	// It stays visible until HideBanner.
	ShowBanner(msg string)
	// HideBanner hides the error banner.
	HideBanner()
	// Alert raises a blocking user alert, used for submission failures.
	Alert(msg string)
}
