package domain

// OutcomeTier buckets a final score ratio.
type OutcomeTier string

const (
	TierPerfect   OutcomeTier = "Perfect"
	TierExcellent OutcomeTier = "Excellent"
	TierGood      OutcomeTier = "Good"
	TierPoor      OutcomeTier = "Poor"
)

// ComputeOutcomeTier applies inclusive thresholds in order, first match wins.
func ComputeOutcomeTier(score, total int) OutcomeTier {
	s, t := float64(score), float64(total)
	switch {
	case score == total:
		return TierPerfect
	case s >= 0.75*t:
		return TierExcellent
	case s >= 0.5*t:
		return TierGood
	default:
		return TierPoor
	}
}

// Message is the line shown under the final score.
func (t OutcomeTier) Message() string {
	switch t {
	case TierPerfect:
		return "Perfect score! You can always tell who wrote it."
	case TierExcellent:
		return "Excellent! Your detector is finely tuned."
	case TierGood:
		return "Good job. Better than a coin flip."
	default:
		return "The machines fooled you this time. Try again!"
	}
}
