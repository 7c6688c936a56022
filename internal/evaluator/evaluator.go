package evaluator

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/gapscan/gapscan/internal/catalog"
	"github.com/gapscan/gapscan/internal/models"
)

// ErrUnknownFramework is returned when a framework id is not in the
// catalog. Orchestration treats it as per-framework, not fatal.
var ErrUnknownFramework = errors.New("unknown framework")

const (
	keywordWeight  = 40.0
	criteriaWeight = 60.0
	ruleMaxScore   = 100

	// A criterion is met when at least half of its extracted keywords
	// appear in the document.
	criterionMatchRatio = 0.5
	criterionMaxTokens  = 6

	recommendationCutoff = 0.7
	strengthCutoff       = 0.8
)

// Evaluator scores documents against the rule catalog. It is
// stateless beyond the read-only catalog and safe for concurrent use.
type Evaluator struct {
	catalog *catalog.Catalog
}

func New(cat *catalog.Catalog) *Evaluator {
	return &Evaluator{catalog: cat}
}

// EvaluateRule scores one rule against document text. A rule with no
// keywords or no criteria contributes zero for that component rather
// than failing.
func (e *Evaluator) EvaluateRule(text string, rule models.Rule) models.RuleEvaluation {
	lower := strings.ToLower(text)

	eval := models.RuleEvaluation{
		RuleID:        rule.ID,
		Title:         rule.Title,
		Category:      rule.Category,
		Criticality:   rule.Criticality,
		MaxScore:      ruleMaxScore,
		TotalKeywords: len(rule.Keywords),
	}

	var keywordScore float64
	if len(rule.Keywords) > 0 {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				eval.MatchedKeywords++
			}
		}
		keywordScore = float64(eval.MatchedKeywords) / float64(len(rule.Keywords)) * keywordWeight
	}

	var criteriaScore float64
	if len(rule.BenchmarkCriteria) > 0 {
		perCriterion := criteriaWeight / float64(len(rule.BenchmarkCriteria))
		for _, criterion := range rule.BenchmarkCriteria {
			if criterionMet(lower, criterion) {
				criteriaScore += perCriterion
			} else {
				eval.Gaps = append(eval.Gaps, criterion)
				eval.Recommendations = append(eval.Recommendations, "Implement: "+criterion)
			}
		}
	}

	eval.Score = clampScore(int(math.Round(keywordScore + criteriaScore)))
	return eval
}

// EvaluateFramework runs every rule of a framework and aggregates the
// results.
func (e *Evaluator) EvaluateFramework(text, frameworkID string) (models.FrameworkResult, error) {
	fw, ok := e.catalog.Framework(frameworkID)
	if !ok {
		return models.FrameworkResult{}, fmt.Errorf("%w: %s", ErrUnknownFramework, frameworkID)
	}

	result := models.FrameworkResult{
		FrameworkID:  fw.ID,
		Name:         fw.Name,
		Jurisdiction: fw.Jurisdiction,
	}

	total := 0
	maxTotal := 0
	for _, rule := range fw.Rules {
		eval := e.EvaluateRule(text, rule)
		result.Rules = append(result.Rules, eval)
		total += eval.Score
		maxTotal += eval.MaxScore

		if float64(eval.Score) < recommendationCutoff*float64(eval.MaxScore) {
			result.Recommendations = append(result.Recommendations, models.GapRecommendation{
				FrameworkID:  fw.ID,
				RuleID:       rule.ID,
				Title:        rule.Title,
				Category:     rule.Category,
				Criticality:  rule.Criticality,
				CurrentScore: eval.Score,
				MaxScore:     eval.MaxScore,
				Gaps:         eval.Gaps,
				Actions:      eval.Recommendations,
			})
		}
		if float64(eval.Score) >= strengthCutoff*float64(eval.MaxScore) {
			result.Strengths = append(result.Strengths, models.Strength{
				FrameworkID: fw.ID,
				RuleID:      rule.ID,
				Title:       rule.Title,
				Score:       eval.Score,
			})
		}
	}

	if maxTotal > 0 {
		result.OverallScore = clampScore(int(math.Round(float64(total) / float64(maxTotal) * 100)))
	}
	result.Maturity = MaturityForScore(result.OverallScore)

	return result, nil
}

// MaturityForScore maps an aggregate score to a maturity level.
func MaturityForScore(score int) models.Maturity {
	switch {
	case score >= 90:
		return models.MaturityAdvanced
	case score >= 75:
		return models.MaturityIntermediate
	case score >= 60:
		return models.MaturityDeveloping
	case score >= 40:
		return models.MaturityBasic
	default:
		return models.MaturityInitial
	}
}

func criterionMet(lowerText, criterion string) bool {
	tokens := criterionKeywords(criterion)
	if len(tokens) == 0 {
		return false
	}
	matched := 0
	for _, tok := range tokens {
		if strings.Contains(lowerText, tok) {
			matched++
		}
	}
	return float64(matched) >= criterionMatchRatio*float64(len(tokens))
}

// criterionKeywords extracts the meaningful tokens of a criterion:
// stop-words removed, tokens longer than two characters, first six.
func criterionKeywords(criterion string) []string {
	fields := strings.FieldsFunc(strings.ToLower(criterion), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var tokens []string
	for _, f := range fields {
		if len(f) <= 2 || stopWords[f] {
			continue
		}
		tokens = append(tokens, f)
		if len(tokens) == criterionMaxTokens {
			break
		}
	}
	return tokens
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > ruleMaxScore {
		return ruleMaxScore
	}
	return score
}

var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "from": true, "are": true, "each": true, "its": true,
	"any": true, "all": true, "not": true, "has": true, "have": true,
	"was": true, "were": true, "will": true, "been": true, "being": true,
	"their": true, "they": true, "them": true, "when": true, "where": true,
	"which": true, "who": true, "whose": true, "can": true, "may": true,
	"must": true, "should": true, "would": true, "could": true,
	"other": true, "than": true, "then": true, "upon": true, "into": true,
	"about": true, "between": true, "during": true, "before": true,
	"after": true, "over": true, "under": true, "out": true, "off": true,
	"only": true, "own": true, "same": true, "too": true, "very": true,
	"used": true, "uses": true, "using": true, "per": true, "via": true,
	"such": true, "these": true, "those": true, "also": true, "how": true,
}
