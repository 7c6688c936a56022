package models

type Criticality string

const (
	CriticalityCritical Criticality = "Critical"
	CriticalityHigh     Criticality = "High"
	CriticalityMedium   Criticality = "Medium"
	CriticalityLow      Criticality = "Low"
)

// Rank returns the sort rank of a criticality, lower is more severe.
// Unknown values sort last.
func (c Criticality) Rank() int {
	switch c {
	case CriticalityCritical:
		return 1
	case CriticalityHigh:
		return 2
	case CriticalityMedium:
		return 3
	case CriticalityLow:
		return 4
	default:
		return 5
	}
}

type Maturity string

const (
	MaturityInitial      Maturity = "Initial"
	MaturityBasic        Maturity = "Basic"
	MaturityDeveloping   Maturity = "Developing"
	MaturityIntermediate Maturity = "Intermediate"
	MaturityAdvanced     Maturity = "Advanced"
)

type Effort string

const (
	EffortLow    Effort = "Low"
	EffortMedium Effort = "Medium"
	EffortHigh   Effort = "High"
)

type DocumentFormat string

const (
	FormatPDF      DocumentFormat = "pdf"
	FormatDOCX     DocumentFormat = "docx"
	FormatDOC      DocumentFormat = "doc"
	FormatMarkdown DocumentFormat = "markdown"
	FormatHTML     DocumentFormat = "html"
	FormatText     DocumentFormat = "text"
)

// Rule is one compliance requirement within a framework. Catalog rules
// are loaded once at startup and never mutated.
type Rule struct {
	ID                string      `json:"id"`
	Title             string      `json:"title"`
	Category          string      `json:"category"`
	Criticality       Criticality `json:"criticality"`
	BenchmarkCriteria []string    `json:"benchmark_criteria"`
	Keywords          []string    `json:"keywords"`
}

// Framework is a named regulatory standard composed of ordered rules.
type Framework struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Jurisdiction string `json:"jurisdiction"`
	Rules        []Rule `json:"rules"`
}

// IndustryBenchmark holds reference scores for a named industry.
type IndustryBenchmark struct {
	Average int `json:"average"`
	Median  int `json:"median"`
	Top10   int `json:"top_10_percent"`
}

// RuleEvaluation is the outcome of scoring a single rule against a
// document. Created fresh per call, never persisted.
type RuleEvaluation struct {
	RuleID          string      `json:"rule_id"`
	Title           string      `json:"title"`
	Category        string      `json:"category"`
	Criticality     Criticality `json:"criticality"`
	Score           int         `json:"score"`
	MaxScore        int         `json:"max_score"`
	Gaps            []string    `json:"gaps"`
	Recommendations []string    `json:"recommendations"`
	MatchedKeywords int         `json:"matched_keywords"`
	TotalKeywords   int         `json:"total_keywords"`
}

// GapRecommendation is a low-scoring rule surfaced for remediation.
type GapRecommendation struct {
	FrameworkID  string      `json:"framework_id"`
	RuleID       string      `json:"rule_id"`
	Title        string      `json:"title"`
	Category     string      `json:"category"`
	Criticality  Criticality `json:"criticality"`
	CurrentScore int         `json:"current_score"`
	MaxScore     int         `json:"max_score"`
	Gaps         []string    `json:"gaps"`
	Actions      []string    `json:"actions"`
}

// Strength is a rule the document already covers well.
type Strength struct {
	FrameworkID string `json:"framework_id"`
	RuleID      string `json:"rule_id"`
	Title       string `json:"title"`
	Score       int    `json:"score"`
}

// FrameworkResult aggregates rule evaluations for one framework.
type FrameworkResult struct {
	FrameworkID     string              `json:"framework_id"`
	Name            string              `json:"name"`
	Jurisdiction    string              `json:"jurisdiction"`
	OverallScore    int                 `json:"overall_score"`
	Maturity        Maturity            `json:"maturity"`
	Rules           []RuleEvaluation    `json:"rules"`
	Recommendations []GapRecommendation `json:"recommendations"`
	Strengths       []Strength          `json:"strengths"`
}

// PrioritizedRecommendation wraps a gap with its global rank and
// remediation annotations.
type PrioritizedRecommendation struct {
	GapRecommendation
	Priority        int    `json:"priority"`
	EstimatedEffort Effort `json:"estimated_effort"`
	Timeframe       string `json:"timeframe"`
	BusinessImpact  string `json:"business_impact"`
}

// GapSummary tallies surfaced gaps by criticality. Low-criticality
// gaps are counted in the Medium bucket.
type GapSummary struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
}

// MatrixRow is one framework line of the compliance matrix.
type MatrixRow struct {
	FrameworkID    string   `json:"framework_id"`
	Name           string   `json:"name"`
	Score          int      `json:"score"`
	Maturity       Maturity `json:"maturity"`
	CriticalIssues int      `json:"critical_issues"`
	HighIssues     int      `json:"high_issues"`
}

// BenchmarkReport is the cross-framework posture report.
type BenchmarkReport struct {
	AverageScore       int                         `json:"average_score"`
	Industry           string                      `json:"industry"`
	IndustryBenchmark  IndustryBenchmark           `json:"industry_benchmark"`
	Comparison         string                      `json:"comparison"`
	Gaps               GapSummary                  `json:"gaps"`
	TopStrengths       []Strength                  `json:"top_strengths"`
	ComplianceMatrix   []MatrixRow                 `json:"compliance_matrix"`
	Frameworks         []FrameworkResult           `json:"frameworks"`
	PrioritizedActions []PrioritizedRecommendation `json:"prioritized_actions"`
	SkippedFrameworks  []string                    `json:"skipped_frameworks,omitempty"`
}

// ClassificationScores exposes the classifier's sub-scores for
// observability. Privacy is an uncapped point total used only for
// thresholding; it is not a percentage.
type ClassificationScores struct {
	Privacy   int     `json:"privacy"`
	Structure int     `json:"structure"`
	Quality   int     `json:"quality"`
	Content   int     `json:"content"`
	Final     int     `json:"final"`
	Threshold float64 `json:"threshold"`
}

// ClassificationResult is the outcome of document validation. An
// invalid document is a normal result, not an error.
type ClassificationResult struct {
	Valid               bool                 `json:"valid"`
	Type                string               `json:"type"`
	SubType             string               `json:"sub_type,omitempty"`
	Confidence          int                  `json:"confidence"`
	Reason              string               `json:"reason"`
	Scores              ClassificationScores `json:"scores"`
	SectionsFound       []string             `json:"sections_found,omitempty"`
	SectionsMissing     []string             `json:"sections_missing,omitempty"`
	SectionCompleteness int                  `json:"section_completeness"`
}

// SectionResult is one named section of a policy-type template.
type SectionResult struct {
	Name            string   `json:"name"`
	Found           bool     `json:"found"`
	Confidence      int      `json:"confidence"`
	MissingElements []string `json:"missing_elements,omitempty"`
}

// PolicyTypeMatch is one detected policy type with its completeness.
type PolicyTypeMatch struct {
	Type            string          `json:"type"`
	Name            string          `json:"name"`
	Confidence      int             `json:"confidence"`
	Completeness    int             `json:"completeness"`
	Sections        []SectionResult `json:"sections"`
	MissingElements []string        `json:"missing_elements,omitempty"`
}

// DocumentMetadata holds structural metadata lifted from the text.
type DocumentMetadata struct {
	Headers       []string          `json:"headers,omitempty"`
	Fields        map[string]string `json:"fields,omitempty"`
	Version       string            `json:"version,omitempty"`
	EffectiveDate string            `json:"effective_date,omitempty"`
}

// FrameworkSignal records specific regulatory citations found in the
// text, independent of the rule catalog.
type FrameworkSignal struct {
	Framework string   `json:"framework"`
	Citations []string `json:"citations,omitempty"`
	Count     int      `json:"count"`
}

// StructureRecommendation is a structural improvement suggestion.
type StructureRecommendation struct {
	Priority Effort `json:"priority"`
	Message  string `json:"message"`
}

// StructureScanResult is the outcome of the catalog-independent
// structure scan.
type StructureScanResult struct {
	Format              DocumentFormat            `json:"format"`
	DetectedTypes       []PolicyTypeMatch         `json:"detected_types"`
	OverallCompleteness int                       `json:"overall_completeness"`
	Metadata            DocumentMetadata          `json:"metadata"`
	FrameworkSignals    []FrameworkSignal         `json:"framework_signals"`
	Recommendations     []StructureRecommendation `json:"recommendations"`
}

// Report merges the classification, benchmarking and structure-scan
// branches into the single document consumed by report clients.
type Report struct {
	Classification ClassificationResult `json:"classification"`
	Benchmark      *BenchmarkReport     `json:"benchmark,omitempty"`
	Structure      StructureScanResult  `json:"structure"`
}
