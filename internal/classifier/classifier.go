package classifier

import (
	"math"
	"strings"

	"github.com/gapscan/gapscan/internal/models"
)

const (
	minTextLength        = 1000
	minEssentialSections = 4

	baseThresholdWithPrivacy = 25
	baseThresholdDefault     = 35
	lengthScaleDivisor       = 3000.0
	maxLengthScale           = 1.5
)

// Decision reasons surfaced to callers. An invalid result is a normal
// outcome, not an error.
const (
	ReasonInsufficientContent        = "insufficient_content"
	ReasonInsufficientPrivacyContent = "insufficient_privacy_content"
	ReasonStrongPolicyIndicator      = "strong_policy_indicator"
	ReasonNonPolicyDocument          = "non_policy_document"
	ReasonMeetsThreshold             = "meets_threshold"
	ReasonScoreBelowThreshold        = "score_below_threshold"
	ReasonPDFBusinessDocument        = "pdf_business_document"
)

// Classifier decides whether input text is a policy document and of
// what kind. It holds no state and is safe for concurrent use.
type Classifier struct{}

func New() *Classifier {
	return &Classifier{}
}

// Classify validates a document. PDF-sourced text gets a permissive
// pass because extraction noise makes strict scoring unreliable.
func (c *Classifier) Classify(text string, pdfSource bool) models.ClassificationResult {
	if pdfSource {
		return c.classifyPDF(text)
	}
	return c.classifyStrict(text)
}

func (c *Classifier) classifyPDF(text string) models.ClassificationResult {
	lower := strings.ToLower(text)

	generic := 0
	for _, p := range pdfNonBusinessPatterns {
		if strings.Contains(lower, p) {
			generic++
		}
	}
	strong := 0
	for _, p := range pdfStrongResumePatterns {
		if strings.Contains(lower, p) {
			strong++
		}
	}

	if strong >= 1 || generic >= 3 {
		hits := generic + strong
		return models.ClassificationResult{
			Valid:      false,
			Type:       "resume",
			Confidence: min(90, hits*25),
			Reason:     ReasonNonPolicyDocument,
		}
	}

	return models.ClassificationResult{
		Valid:      true,
		Type:       "business_document",
		Confidence: 90,
		Reason:     ReasonPDFBusinessDocument,
	}
}

func (c *Classifier) classifyStrict(text string) models.ClassificationResult {
	if len(text) < minTextLength {
		return models.ClassificationResult{
			Valid:      false,
			Type:       "unknown",
			Confidence: 95,
			Reason:     ReasonInsufficientContent,
		}
	}

	lower := strings.ToLower(text)

	found, missing := c.matchEssentialSections(lower)
	completeness := int(math.Round(float64(len(found)) / float64(len(essentialSections)) * 100))

	if len(found) < minEssentialSections {
		// Before reporting thin privacy content, check whether this is
		// recognizably a non-policy document; that gives callers a more
		// specific rejection.
		if typ, hits := c.matchNonPolicyCategory(lower); hits >= 2 {
			return models.ClassificationResult{
				Valid:               false,
				Type:                typ,
				Confidence:          min(90, hits*25),
				Reason:              ReasonNonPolicyDocument,
				SectionsFound:       found,
				SectionsMissing:     missing,
				SectionCompleteness: completeness,
			}
		}
		return models.ClassificationResult{
			Valid:               false,
			Type:                "unknown",
			Confidence:          80,
			Reason:              ReasonInsufficientPrivacyContent,
			SectionsFound:       found,
			SectionsMissing:     missing,
			SectionCompleteness: completeness,
		}
	}

	privacyScore := c.privacyScore(lower)
	structureScore := c.countMatches(lower, structuralPhrases) * structuralPhrasePoints
	qualityScore := c.countMatches(lower, qualityIndicators) * qualityIndicatorPoints

	if indicator := c.matchStrongIndicator(lower); indicator != "" {
		return models.ClassificationResult{
			Valid:      true,
			Type:       "policy_document",
			SubType:    strings.ReplaceAll(indicator, " ", "_"),
			Confidence: 98,
			Reason:     ReasonStrongPolicyIndicator,
			Scores: models.ClassificationScores{
				Privacy:   privacyScore,
				Structure: structureScore,
				Quality:   qualityScore,
				Final:     privacyScore + structureScore + qualityScore,
			},
			SectionsFound:       found,
			SectionsMissing:     missing,
			SectionCompleteness: completeness,
		}
	}

	if typ, hits := c.matchNonPolicyCategory(lower); hits >= 2 {
		return models.ClassificationResult{
			Valid:               false,
			Type:                typ,
			Confidence:          min(90, hits*25),
			Reason:              ReasonNonPolicyDocument,
			SectionsFound:       found,
			SectionsMissing:     missing,
			SectionCompleteness: completeness,
		}
	}

	contentScore := 0
	for _, re := range genericPolicyPatterns {
		if re.MatchString(text) {
			contentScore += genericPolicyPoints
		}
	}
	for _, re := range structuralIndicatorPatterns {
		if re.MatchString(text) {
			contentScore += structuralIndicatorPoints
		}
	}

	finalScore := privacyScore + structureScore + qualityScore + contentScore

	base := baseThresholdDefault
	if privacyScore > 0 {
		base = baseThresholdWithPrivacy
	}
	scale := math.Min(maxLengthScale, float64(len(text))/lengthScaleDivisor)
	threshold := float64(base) * scale

	scores := models.ClassificationScores{
		Privacy:   privacyScore,
		Structure: structureScore,
		Quality:   qualityScore,
		Content:   contentScore,
		Final:     finalScore,
		Threshold: threshold,
	}

	if float64(finalScore) >= threshold {
		return models.ClassificationResult{
			Valid:               true,
			Type:                "policy_document",
			Confidence:          min(95, 60+finalScore/10),
			Reason:              ReasonMeetsThreshold,
			Scores:              scores,
			SectionsFound:       found,
			SectionsMissing:     missing,
			SectionCompleteness: completeness,
		}
	}

	return models.ClassificationResult{
		Valid:               false,
		Type:                "unknown",
		Confidence:          70,
		Reason:              ReasonScoreBelowThreshold,
		Scores:              scores,
		SectionsFound:       found,
		SectionsMissing:     missing,
		SectionCompleteness: completeness,
	}
}

func (c *Classifier) matchEssentialSections(lower string) (found, missing []string) {
	for _, section := range essentialSections {
		matched := false
		for _, p := range section.Patterns {
			if strings.Contains(lower, p) {
				matched = true
				break
			}
		}
		if matched {
			found = append(found, section.Name)
		} else {
			missing = append(missing, section.Name)
		}
	}
	return found, missing
}

func (c *Classifier) privacyScore(lower string) int {
	score := 0
	for _, tier := range privacyTiers {
		for _, term := range tier.Terms {
			if strings.Contains(lower, term) {
				score += tier.Points
			}
		}
	}
	return score
}

func (c *Classifier) countMatches(lower string, terms []string) int {
	n := 0
	for _, t := range terms {
		if strings.Contains(lower, t) {
			n++
		}
	}
	return n
}

func (c *Classifier) matchStrongIndicator(lower string) string {
	for _, indicator := range strongPolicyIndicators {
		if strings.Contains(lower, indicator) {
			return indicator
		}
	}
	return ""
}

// matchNonPolicyCategory returns the category with the most strong
// hits. Earlier categories win ties so results stay deterministic.
func (c *Classifier) matchNonPolicyCategory(lower string) (string, int) {
	bestType := ""
	bestHits := 0
	for _, cat := range nonPolicyCategories {
		hits := c.countMatches(lower, cat.Patterns)
		if hits > bestHits {
			bestType = cat.Type
			bestHits = hits
		}
	}
	return bestType, bestHits
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
