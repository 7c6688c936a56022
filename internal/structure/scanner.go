package structure

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/gapscan/gapscan/internal/models"
)

const (
	typeDetectionThreshold    = 25
	sectionDetectionThreshold = 30
	completenessTarget        = 70
	lowCompletenessCutoff     = 40
	minCitationCount          = 3
	maxHeaders                = 50
	maxMetadataFields         = 20
)

// Scanner measures document structure against per-type section models,
// independently of the rule catalog. Stateless and safe for
// concurrent use.
type Scanner struct{}

func New() *Scanner {
	return &Scanner{}
}

// Scan detects the document format, the policy types present, their
// section completeness, structural metadata and framework citations.
func (s *Scanner) Scan(text string) models.StructureScanResult {
	lower := strings.ToLower(text)

	result := models.StructureScanResult{
		Format:   detectFormat(text),
		Metadata: extractMetadata(text),
	}

	completenessSum := 0
	for _, tmpl := range policyTemplates {
		confidence := keywordConfidence(lower, tmpl.Keywords)
		if confidence <= typeDetectionThreshold {
			continue
		}

		match := models.PolicyTypeMatch{
			Type:       tmpl.Type,
			Name:       tmpl.Name,
			Confidence: confidence,
		}

		foundSections := 0
		for _, sec := range tmpl.Sections {
			secResult := models.SectionResult{
				Name:       sec.Name,
				Confidence: keywordConfidence(lower, sec.Keywords),
			}
			secResult.Found = secResult.Confidence > sectionDetectionThreshold
			if secResult.Found {
				foundSections++
			}
			for _, element := range sec.RequiredElements {
				if !elementPresent(lower, element) {
					secResult.MissingElements = append(secResult.MissingElements, element)
					match.MissingElements = append(match.MissingElements, element)
				}
			}
			match.Sections = append(match.Sections, secResult)
		}

		if len(tmpl.Sections) > 0 {
			match.Completeness = int(math.Round(float64(foundSections) / float64(len(tmpl.Sections)) * 100))
		}
		completenessSum += match.Completeness
		result.DetectedTypes = append(result.DetectedTypes, match)
	}

	if len(result.DetectedTypes) > 0 {
		result.OverallCompleteness = int(math.Round(float64(completenessSum) / float64(len(result.DetectedTypes))))
	}

	result.FrameworkSignals = scanCitations(text)
	result.Recommendations = buildRecommendations(result)

	return result
}

func detectFormat(text string) models.DocumentFormat {
	switch {
	case strings.HasPrefix(text, "%PDF-"):
		return models.FormatPDF
	case strings.HasPrefix(text, "PK\x03\x04"):
		return models.FormatDOCX
	case strings.HasPrefix(text, "\xD0\xCF\x11\xE0"):
		return models.FormatDOC
	case htmlMarkerRe.MatchString(text):
		return models.FormatHTML
	case markdownHeaderRe.MatchString(text):
		return models.FormatMarkdown
	default:
		return models.FormatText
	}
}

func keywordConfidence(lower string, keywords []string) int {
	if len(keywords) == 0 {
		return 0
	}
	matched := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			matched++
		}
	}
	return int(math.Round(float64(matched) / float64(len(keywords)) * 100))
}

// elementPresent matches a required element by trying the literal
// phrase plus space-removed, hyphenated, underscored and
// singular/plural variations.
func elementPresent(lower, element string) bool {
	for _, v := range phraseVariations(element) {
		if strings.Contains(lower, v) {
			return true
		}
	}
	return false
}

func phraseVariations(phrase string) []string {
	phrase = strings.ToLower(phrase)

	bases := []string{phrase}
	if strings.HasSuffix(phrase, "s") {
		bases = append(bases, strings.TrimSuffix(phrase, "s"))
	} else {
		bases = append(bases, phrase+"s")
	}

	var variations []string
	for _, base := range bases {
		variations = append(variations,
			base,
			strings.ReplaceAll(base, " ", ""),
			strings.ReplaceAll(base, " ", "-"),
			strings.ReplaceAll(base, " ", "_"),
		)
	}
	return variations
}

var (
	htmlMarkerRe     = regexp.MustCompile(`(?i)<html\b|<!doctype html`)
	markdownHeaderRe = regexp.MustCompile(`(?m)^#{1,6}\s+\S`)
	htmlHeaderRe     = regexp.MustCompile(`(?is)<h[1-6][^>]*>(.*?)</h[1-6]>`)
	mdHeaderLineRe   = regexp.MustCompile(`(?m)^#{1,6}\s+(.+?)\s*#*\s*$`)
	metadataFieldRe  = regexp.MustCompile(`(?m)^([A-Za-z][A-Za-z /-]{1,29}):[ \t]*(\S.*)$`)
	versionRe        = regexp.MustCompile(`(?i)version[:\s]+([0-9][0-9.]*)`)
	effectiveDateRe  = regexp.MustCompile(`(?i)effective[^0-9]{0,20}(\d{4}-\d{2}-\d{2})`)
	tagStripRe       = regexp.MustCompile(`<[^>]+>`)
)

func extractMetadata(text string) models.DocumentMetadata {
	var meta models.DocumentMetadata

	for _, m := range mdHeaderLineRe.FindAllStringSubmatch(text, maxHeaders) {
		meta.Headers = append(meta.Headers, strings.TrimSpace(m[1]))
	}
	if len(meta.Headers) < maxHeaders {
		for _, m := range htmlHeaderRe.FindAllStringSubmatch(text, maxHeaders-len(meta.Headers)) {
			header := strings.TrimSpace(tagStripRe.ReplaceAllString(m[1], ""))
			if header != "" {
				meta.Headers = append(meta.Headers, header)
			}
		}
	}

	for _, m := range metadataFieldRe.FindAllStringSubmatch(text, maxMetadataFields) {
		key := strings.TrimSpace(m[1])
		value := strings.TrimSpace(m[2])
		if len(value) > 80 {
			continue
		}
		if meta.Fields == nil {
			meta.Fields = make(map[string]string)
		}
		if _, exists := meta.Fields[key]; !exists {
			meta.Fields[key] = value
		}
	}

	if m := versionRe.FindStringSubmatch(text); m != nil {
		meta.Version = m[1]
	}
	if m := effectiveDateRe.FindStringSubmatch(text); m != nil {
		meta.EffectiveDate = m[1]
	}

	return meta
}

func scanCitations(text string) []models.FrameworkSignal {
	lower := strings.ToLower(text)

	var signals []models.FrameworkSignal
	for _, tmpl := range citationTemplates {
		if !tmpl.Mention.MatchString(text) {
			continue
		}

		seen := make(map[string]bool)
		var citations []string
		if tmpl.Citations != nil {
			for _, c := range tmpl.Citations.FindAllString(text, -1) {
				c = strings.ToLower(strings.Join(strings.Fields(c), " "))
				if !seen[c] {
					seen[c] = true
					citations = append(citations, c)
				}
			}
		}
		for _, lit := range tmpl.Literals {
			if strings.Contains(lower, lit) && !seen[lit] {
				seen[lit] = true
				citations = append(citations, lit)
			}
		}
		sort.Strings(citations)

		signals = append(signals, models.FrameworkSignal{
			Framework: tmpl.Framework,
			Citations: citations,
			Count:     len(citations),
		})
	}
	return signals
}

func buildRecommendations(result models.StructureScanResult) []models.StructureRecommendation {
	var recs []models.StructureRecommendation

	for _, match := range result.DetectedTypes {
		if match.Completeness >= completenessTarget {
			continue
		}
		priority := models.EffortMedium
		if match.Completeness < lowCompletenessCutoff {
			priority = models.EffortHigh
		}
		recs = append(recs, models.StructureRecommendation{
			Priority: priority,
			Message:  "Expand the " + match.Name + ": expected sections are missing or underdeveloped",
		})
	}

	for _, signal := range result.FrameworkSignals {
		if signal.Count < minCitationCount {
			recs = append(recs, models.StructureRecommendation{
				Priority: models.EffortMedium,
				Message:  "Add specific " + signal.Framework + " citations to strengthen compliance references",
			})
		}
	}

	if result.Metadata.Version == "" {
		recs = append(recs, models.StructureRecommendation{
			Priority: models.EffortLow,
			Message:  "Add a version number to support change tracking",
		})
	}
	if result.Metadata.EffectiveDate == "" {
		recs = append(recs, models.StructureRecommendation{
			Priority: models.EffortLow,
			Message:  "Add an effective date so readers know which revision applies",
		})
	}

	return recs
}
