// Package risk maps customer records to display badges. Bucket assignment
// itself is a backend trust boundary: this package only normalizes and looks
// up presentation attributes, it never recomputes a tier from probability.
package risk

import "github.com/retainops/churnview/internal/model"

// Badge is the presentation mapping for a risk bucket.
type Badge struct {
	Bucket model.RiskBucket
	Color  string
	Label  string
}

// Fixed badge palette, matching the chart series colors.
const (
	ColorHigh   = "#ef4444"
	ColorMedium = "#f59e0b"
	ColorLow    = "#10b981"
)

var badges = map[model.RiskBucket]Badge{
	model.BucketHigh:   {Bucket: model.BucketHigh, Color: ColorHigh, Label: "HIGH"},
	model.BucketMedium: {Bucket: model.BucketMedium, Color: ColorMedium, Label: "MEDIUM"},
	model.BucketLow:    {Bucket: model.BucketLow, Color: ColorLow, Label: "LOW"},
}

// Classify returns the badge for a customer record. Records decoded through
// the model boundary already carry a normalized bucket; anything else folds
// into LOW.
func Classify(rec model.CustomerRecord) Badge {
	return ForBucket(rec.RiskBucket)
}

// ForBucket returns the badge for a bucket, normalizing defensively so an
// unrecognized value can never yield an empty badge.
func ForBucket(b model.RiskBucket) Badge {
	if badge, ok := badges[b]; ok {
		return badge
	}
	return badges[model.NormalizeBucket(string(b))]
}
