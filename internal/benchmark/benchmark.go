package benchmark

import (
	"errors"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/gapscan/gapscan/internal/catalog"
	"github.com/gapscan/gapscan/internal/evaluator"
	"github.com/gapscan/gapscan/internal/models"
)

// DefaultFrameworks is used when a request names no frameworks.
var DefaultFrameworks = []string{"GDPR", "HIPAA", "SOX"}

const topStrengthLimit = 5

// Orchestrator runs framework evaluations over a requested set of
// frameworks and assembles the posture report.
type Orchestrator struct {
	catalog   *catalog.Catalog
	evaluator *evaluator.Evaluator
	logger    *slog.Logger
}

func New(cat *catalog.Catalog, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		catalog:   cat,
		evaluator: evaluator.New(cat),
		logger:    logger,
	}
}

// Benchmark evaluates the document against each requested framework.
// Unknown frameworks are skipped with a warning; a run where nothing
// evaluated still returns a report with an average score of zero.
func (o *Orchestrator) Benchmark(text string, frameworkIDs []string, industry string) models.BenchmarkReport {
	ids := normalizeFrameworkIDs(frameworkIDs)

	report := models.BenchmarkReport{
		Industry:          industry,
		IndustryBenchmark: o.catalog.IndustryBenchmark(industry),
	}

	var allGaps []models.GapRecommendation
	var allStrengths []models.Strength
	scoreSum := 0

	for _, id := range ids {
		result, err := o.evaluator.EvaluateFramework(text, id)
		if err != nil {
			if errors.Is(err, evaluator.ErrUnknownFramework) {
				o.logger.Warn("skipping unknown framework", "framework", id)
				report.SkippedFrameworks = append(report.SkippedFrameworks, id)
				continue
			}
			o.logger.Error("framework evaluation failed", "framework", id, "error", err)
			report.SkippedFrameworks = append(report.SkippedFrameworks, id)
			continue
		}

		report.Frameworks = append(report.Frameworks, result)
		scoreSum += result.OverallScore
		allGaps = append(allGaps, result.Recommendations...)
		allStrengths = append(allStrengths, result.Strengths...)

		report.ComplianceMatrix = append(report.ComplianceMatrix, models.MatrixRow{
			FrameworkID:    result.FrameworkID,
			Name:           result.Name,
			Score:          result.OverallScore,
			Maturity:       result.Maturity,
			CriticalIssues: countGapsBySeverity(result.Recommendations, models.CriticalityCritical),
			HighIssues:     countGapsBySeverity(result.Recommendations, models.CriticalityHigh),
		})
	}

	if len(report.Frameworks) > 0 {
		report.AverageScore = int(math.Round(float64(scoreSum) / float64(len(report.Frameworks))))
	}

	report.Comparison = compareToIndustry(report.AverageScore, report.IndustryBenchmark)
	report.Gaps = tallyGaps(allGaps)
	report.TopStrengths = topStrengths(allStrengths)
	report.PrioritizedActions = Prioritize(allGaps)

	return report
}

func normalizeFrameworkIDs(ids []string) []string {
	var out []string
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		return DefaultFrameworks
	}
	return out
}

func countGapsBySeverity(gaps []models.GapRecommendation, c models.Criticality) int {
	n := 0
	for _, g := range gaps {
		if g.Criticality == c {
			n++
		}
	}
	return n
}

// tallyGaps counts gaps by criticality. Low-criticality gaps fold
// into the Medium bucket.
func tallyGaps(gaps []models.GapRecommendation) models.GapSummary {
	var summary models.GapSummary
	for _, g := range gaps {
		switch g.Criticality {
		case models.CriticalityCritical:
			summary.Critical++
		case models.CriticalityHigh:
			summary.High++
		default:
			summary.Medium++
		}
	}
	return summary
}

func topStrengths(strengths []models.Strength) []models.Strength {
	out := make([]models.Strength, len(strengths))
	copy(out, strengths)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > topStrengthLimit {
		out = out[:topStrengthLimit]
	}
	return out
}

func compareToIndustry(score int, bench models.IndustryBenchmark) string {
	switch {
	case score >= bench.Top10:
		return "Top 10% performer"
	case score >= bench.Average:
		return "Above average"
	case score >= bench.Median:
		return "Below average"
	default:
		return "Significant improvement needed"
	}
}
