package domain

import "math"

// Tier is the human-facing relevance bucket for a similarity score.
type Tier string

// Relevance tiers. Band boundaries (30/50/70%) are fixed design constants
// carried through from the product's result presentation; the configurable
// knob is the minimum threshold, not the bands.
const (
	TierHigh    Tier = "high"
	TierMedium  Tier = "medium"
	TierLow     Tier = "low"
	TierMinimal Tier = "minimal"
)

// Band boundaries as display percentages.
const (
	highBand   = 70
	mediumBand = 50
	lowBand    = 30
)

// Emoji returns the marker shown next to a result of this tier.
func (t Tier) Emoji() string {
	switch t {
	case TierHigh:
		return "🟢"
	case TierMedium:
		return "🔵"
	case TierLow:
		return "🟠"
	default:
		return "⚪"
	}
}

// Percentage converts a raw cosine similarity to a display percentage:
// round(score*100), clamped to [0, 100]. Raw scores may sit slightly
// outside [0, 1] for unnormalized text, so the clamp keeps the displayed
// value sane.
func Percentage(score float64) int {
	pct := int(math.Round(score * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// ClassifyScore maps a raw similarity score to its tier.
func ClassifyScore(score float64) Tier {
	return ClassifyPercentage(Percentage(score))
}

// ClassifyPercentage maps a display percentage to its tier.
func ClassifyPercentage(pct int) Tier {
	switch {
	case pct >= highBand:
		return TierHigh
	case pct >= mediumBand:
		return TierMedium
	case pct >= lowBand:
		return TierLow
	default:
		return TierMinimal
	}
}

// PassesThreshold reports whether a score's display percentage meets the
// inclusive minimum threshold.
func PassesThreshold(score float64, minPct int) bool {
	return Percentage(score) >= minPct
}
