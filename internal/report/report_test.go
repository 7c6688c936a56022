package report

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/gapscan/gapscan/internal/catalog"
)

// fullPolicy covers the GDPR and HIPAA vocabularies well enough to
// score as a mature program.
const fullPolicy = `Privacy Policy

Version 3.2, effective date 2024-06-01.

This privacy policy describes how we handle personal data and protected
health information.

Lawful basis. We identify a lawful basis for each processing activity,
including consent, contract, and legitimate interest. We document consent
collection, and withdrawal of consent mechanisms are available at any
time. Legitimate interest assessments are performed and recorded. Our
processing purposes are described in specific terms.

Your rights. You have the right to access your personal data, the right
to rectification of inaccurate data, the right to erasure, and the right
to data portability. Every data subject may object to processing or
restrict it. Patients have the right to access medical records, request
amendment of records, and receive an accounting of disclosures. We honor
all patient rights requests.

International transfers. We disclose transfers of personal data outside
the EEA. Safeguards applied to international transfers include standard
contractual clauses and adequacy decisions.

Breach response. We commit to notifying the supervisory authority within
72 hours of a personal data breach. Affected individuals are informed of
breaches without unreasonable delay, and we notify the Department of
Health and Human Services (HHS) of unsecured breaches within 60 days. We
maintain a record of every incident and follow our breach notification
procedures.

Governance. Contact details for our data protection officer are listed
below. We maintain records of processing activities and conduct a data
protection impact assessment for high-risk processing.

Retention. We state retention periods and the criteria used to set them,
observing storage limitation. At the end of retention we delete or
anonymize data; deletion and anonymization are verified.

Health information safeguards. Permitted uses and disclosures of
protected health information follow the minimum necessary standard. We
provide a notice of privacy practices. Administrative safeguards include
workforce training. Physical safeguards protect systems holding health
data. Technical safeguards include encryption and access control. We
conduct periodic risk analysis of health data systems.

Business associates. We require a business associate agreement (BAA)
with every covered entity partner and subcontractor before sharing
health data, and we describe the obligations imposed on business
associates.
`

func testEngine() *Engine {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	return NewEngine(catalog.Default(), logger)
}

func TestAnalyze_ValidPolicy(t *testing.T) {
	e := testEngine()

	result := e.Analyze(fullPolicy, Options{
		Frameworks: []string{"GDPR", "HIPAA"},
		Industry:   "Technology",
	})

	if !result.Classification.Valid {
		t.Fatalf("expected valid classification, got reason %q", result.Classification.Reason)
	}
	if result.Benchmark == nil {
		t.Fatal("expected a benchmark for a valid document")
	}

	if result.Benchmark.AverageScore < 60 || result.Benchmark.AverageScore > 100 {
		t.Errorf("expected average score in [60,100], got %d", result.Benchmark.AverageScore)
	}
	if result.Benchmark.Gaps.Critical >= 3 {
		t.Errorf("expected fewer than 3 critical gaps, got %d", result.Benchmark.Gaps.Critical)
	}
	if len(result.Benchmark.Frameworks) != 2 {
		t.Errorf("expected 2 frameworks, got %d", len(result.Benchmark.Frameworks))
	}
	if result.Benchmark.Comparison == "" {
		t.Error("expected an industry comparison label")
	}

	if len(result.Structure.DetectedTypes) == 0 {
		t.Error("expected the structure scan to detect a policy type")
	}
}

func TestAnalyze_InvalidSkipsBenchmark(t *testing.T) {
	e := testEngine()

	result := e.Analyze("too short", Options{Industry: "Technology"})

	if result.Classification.Valid {
		t.Fatal("expected invalid classification")
	}
	if result.Benchmark != nil {
		t.Error("expected no benchmark for an invalid document")
	}
	// The structure scan still runs.
	if result.Structure.Format == "" {
		t.Error("expected the structure scan to run")
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	e := testEngine()
	opts := Options{Frameworks: []string{"GDPR"}, Industry: "Healthcare"}

	first := e.Analyze(fullPolicy, opts)
	second := e.Analyze(fullPolicy, opts)

	if first.Benchmark.AverageScore != second.Benchmark.AverageScore {
		t.Error("expected identical scores across runs")
	}
	if len(first.Benchmark.PrioritizedActions) != len(second.Benchmark.PrioritizedActions) {
		t.Error("expected identical action lists across runs")
	}
}

func TestComplianceMatrixCSV(t *testing.T) {
	e := testEngine()

	bench := e.Benchmark(fullPolicy, []string{"GDPR", "HIPAA"}, "Technology")

	data, err := ComplianceMatrixCSV(&bench)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Framework,Name,Score") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "GDPR,") {
		t.Errorf("expected GDPR row first, got %q", lines[1])
	}
}

func TestPrioritizedActionsCSV(t *testing.T) {
	e := testEngine()

	// A thin document produces gaps for every rule.
	bench := e.Benchmark("short note about nothing compliance related", []string{"GDPR"}, "Default")

	data, err := PrioritizedActionsCSV(&bench)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected at least one action row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], "1,GDPR,") {
		t.Errorf("expected the first action at priority 1, got %q", lines[1])
	}
}
