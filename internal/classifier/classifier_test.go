package classifier

import (
	"strings"
	"testing"
)

const sampleResume = `
John Smith
123 Main Street, Springfield

Career Objective
Seeking a position as a senior software engineer where I can apply a
decade of experience building distributed systems.

Work Experience
Acme Corp - Senior Engineer (2018-2024)
Led a team of five engineers delivering the billing platform. Improved
deployment frequency and reduced incident rates across three product
lines. Mentored junior developers and ran the on-call rotation.

Initech - Software Engineer (2014-2018)
Built internal tooling for the finance department. Automated the
quarterly reconciliation workflow and maintained the reporting stack.

Work History Summary
Ten years of professional software development across fintech and
enterprise SaaS companies, with a focus on backend services.

Education
B.S. Computer Science, State University, 2014
Graduated with honors. Coursework in algorithms, operating systems,
and databases.

Skills
Go, Python, PostgreSQL, Kubernetes, AWS, distributed systems design,
incident response, technical writing.

References available upon request.
`

func validPolicyText() string {
	var b strings.Builder
	b.WriteString("Privacy Policy\n\n")
	b.WriteString("This privacy policy describes how we collect, use and share personal information. ")
	b.WriteString("We collect personal data such as contact details and usage records. ")
	b.WriteString("Our processing purposes are described in specific terms below, and we identify a lawful basis for each processing activity. ")
	b.WriteString("You may withdraw consent at any time; withdrawal of consent mechanisms are documented here. ")
	b.WriteString("Where we rely on legitimate interests we perform balancing assessments. ")
	b.WriteString("You have the right to access your personal data, request rectification, erasure, and data portability, and may object to or restrict processing. ")
	b.WriteString("We share information with third parties and service providers under contract. ")
	b.WriteString("We retain personal data only as long as necessary; retention periods are reviewed and data is deleted or anonymized afterwards. ")
	b.WriteString("We apply security measures including encryption and access controls to safeguard your information. ")
	b.WriteString("We comply with the GDPR and the CCPA and other applicable law. ")
	b.WriteString("In case of a personal data breach we will notify the supervisory authority within 72 hours. ")
	b.WriteString("Contact our data protection officer for questions. Effective date: 2024-03-01. Version 2.1.")
	return b.String()
}

func TestClassify_InsufficientContent(t *testing.T) {
	c := New()

	result := c.Classify("We care about privacy.", false)

	if result.Valid {
		t.Fatal("expected invalid result for short text")
	}
	if result.Reason != ReasonInsufficientContent {
		t.Errorf("expected reason %q, got %q", ReasonInsufficientContent, result.Reason)
	}
}

func TestClassify_ValidPolicyFastAccept(t *testing.T) {
	c := New()

	result := c.Classify(validPolicyText(), false)

	if !result.Valid {
		t.Fatalf("expected valid result, got reason %q", result.Reason)
	}
	if result.Reason != ReasonStrongPolicyIndicator {
		t.Errorf("expected fast-accept reason, got %q", result.Reason)
	}
	if result.Confidence != 98 {
		t.Errorf("expected confidence 98, got %d", result.Confidence)
	}
	if len(result.SectionsFound) < 4 {
		t.Errorf("expected at least 4 essential sections, found %v", result.SectionsFound)
	}
}

func TestClassify_ResumeRejected(t *testing.T) {
	c := New()

	if len(sampleResume) < minTextLength {
		t.Fatalf("fixture too short to exercise the strict path: %d chars", len(sampleResume))
	}

	result := c.Classify(sampleResume, false)

	if result.Valid {
		t.Fatal("expected resume to be rejected")
	}
	if result.Type != "resume" {
		t.Errorf("expected type resume, got %q", result.Type)
	}
	if result.Confidence < 85 {
		t.Errorf("expected confidence >= 85, got %d", result.Confidence)
	}
}

func TestClassify_InsufficientPrivacyContent(t *testing.T) {
	c := New()

	// Long enough, but neither a policy nor any recognizable
	// non-policy category.
	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 40)

	result := c.Classify(text, false)

	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if result.Reason != ReasonInsufficientPrivacyContent {
		t.Errorf("expected reason %q, got %q", ReasonInsufficientPrivacyContent, result.Reason)
	}
	if len(result.SectionsMissing) == 0 {
		t.Error("expected missing sections to be reported")
	}
}

func TestClassify_PDFPath(t *testing.T) {
	c := New()

	tests := []struct {
		name      string
		text      string
		wantValid bool
	}{
		{"short business memo accepted", "Quarterly compliance review of vendor onboarding controls.", true},
		{"strong resume marker rejected", "Professional experience: ten years in sales.", false},
		{
			"generic resume vocabulary rejected",
			"My resume. Work experience at several firms. References available.",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(tt.text, true)
			if result.Valid != tt.wantValid {
				t.Errorf("expected valid=%v, got %v (reason %q)", tt.wantValid, result.Valid, result.Reason)
			}
			if tt.wantValid && result.Confidence != 90 {
				t.Errorf("expected confidence 90 on permissive accept, got %d", result.Confidence)
			}
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	c := New()
	text := validPolicyText()

	first := c.Classify(text, false)
	second := c.Classify(text, false)

	if first.Valid != second.Valid || first.Confidence != second.Confidence ||
		first.Reason != second.Reason || first.Scores != second.Scores {
		t.Error("expected identical results for identical input")
	}
}

func TestClassify_ThresholdScalesWithLength(t *testing.T) {
	c := New()

	// A generic business policy without a strong indicator exercises
	// the composite threshold path.
	base := "All employees must follow the equipment handling rules described here. " +
		"Scope. Purpose. Definitions. Responsibilities. Enforcement. " +
		"Equipment logs may contain personal information and we disclose records only to auditors. " +
		"Retention of logs is limited and security measures are applied in accordance with applicable law. " +
		"Violations of this policy are subject to review. "
	text := strings.Repeat(base, 5)

	result := c.Classify(text, false)

	if result.Reason != ReasonMeetsThreshold {
		t.Fatalf("expected reason %q, got %q", ReasonMeetsThreshold, result.Reason)
	}
	if !result.Valid {
		t.Error("expected valid result")
	}
	if result.Scores.Threshold <= 0 {
		t.Error("expected a positive adjusted threshold")
	}
	if float64(result.Scores.Final) < result.Scores.Threshold {
		t.Errorf("final score %d below threshold %.1f", result.Scores.Final, result.Scores.Threshold)
	}
}
