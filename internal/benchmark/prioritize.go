package benchmark

import (
	"sort"

	"github.com/gapscan/gapscan/internal/models"
)

var timeframeByCriticality = map[models.Criticality]string{
	models.CriticalityCritical: "0-30 days",
	models.CriticalityHigh:     "30-90 days",
	models.CriticalityMedium:   "90-180 days",
	models.CriticalityLow:      "180+ days",
}

var businessImpactByCriticality = map[models.Criticality]string{
	models.CriticalityCritical: "Severe regulatory exposure requiring immediate attention",
	models.CriticalityHigh:     "Material compliance risk likely to affect audit outcomes",
	models.CriticalityMedium:   "Moderate risk to address within the normal planning cycle",
	models.CriticalityLow:      "Minor improvement opportunity",
}

// Prioritize orders gaps into a global action list: criticality rank
// first, then gap count descending, then current score ascending so
// the worst-performing rule surfaces first. Ordering is deterministic
// for a given input order.
func Prioritize(gaps []models.GapRecommendation) []models.PrioritizedRecommendation {
	ordered := make([]models.GapRecommendation, len(gaps))
	copy(ordered, gaps)

	sort.SliceStable(ordered, func(i, j int) bool {
		ri, rj := ordered[i].Criticality.Rank(), ordered[j].Criticality.Rank()
		if ri != rj {
			return ri < rj
		}
		if len(ordered[i].Gaps) != len(ordered[j].Gaps) {
			return len(ordered[i].Gaps) > len(ordered[j].Gaps)
		}
		return ordered[i].CurrentScore < ordered[j].CurrentScore
	})

	out := make([]models.PrioritizedRecommendation, 0, len(ordered))
	for i, gap := range ordered {
		out = append(out, models.PrioritizedRecommendation{
			GapRecommendation: gap,
			Priority:          i + 1,
			EstimatedEffort:   estimateEffort(gap),
			Timeframe:         timeframeByCriticality[gap.Criticality],
			BusinessImpact:    businessImpactByCriticality[gap.Criticality],
		})
	}
	return out
}

func estimateEffort(gap models.GapRecommendation) models.Effort {
	switch {
	case gap.CurrentScore < 30 || len(gap.Gaps) >= 4:
		return models.EffortHigh
	case gap.CurrentScore < 60 || len(gap.Gaps) >= 2:
		return models.EffortMedium
	default:
		return models.EffortLow
	}
}
