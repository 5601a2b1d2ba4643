// Package summary condenses long model output into short bullet lists
// for dashboard display, with deterministic fallbacks when the model is
// unavailable or returns something unusable.
package summary

// Kind selects the summary flavor. Each kind has its own bullet budget
// and sampling temperature.
type Kind string

const (
	KindAssessment Kind = "assessment"
	KindTips       Kind = "tips"
	KindChat       Kind = "chat"
	KindProgress   Kind = "progress"
)

type kindSpec struct {
	maxBullets  int
	temperature float64
}

var kindSpecs = map[Kind]kindSpec{
	KindAssessment: {maxBullets: 4, temperature: 0.3},
	KindTips:       {maxBullets: 4, temperature: 0.4},
	KindChat:       {maxBullets: 3, temperature: 0.3},
	KindProgress:   {maxBullets: 3, temperature: 0.4},
}
