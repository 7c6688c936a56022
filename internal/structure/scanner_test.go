package structure

import (
	"strings"
	"testing"

	"github.com/gapscan/gapscan/internal/models"
)

const samplePrivacyPolicy = `Privacy Policy

Version: 2.0
Effective date: 2024-05-01

We collect personal information from several sources and categories.
Our collection methods are described in this section.
We use your data only for stated processing purposes with a legal basis.
We share data with third parties and service providers and may disclose it to partners.
You have rights to access, delete, or request your data; submit an access request or opt out at any time.
We retain data for a defined retention period.
`

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.DocumentFormat
	}{
		{"pdf magic", "%PDF-1.7 binary content", models.FormatPDF},
		{"docx magic", "PK\x03\x04zipcontent", models.FormatDOCX},
		{"legacy doc magic", "\xD0\xCF\x11\xE0olecontent", models.FormatDOC},
		{"html doctype", "<!DOCTYPE html><html><body>policy</body></html>", models.FormatHTML},
		{"html tag", "preamble <HTML lang=\"en\">policy</html>", models.FormatHTML},
		{"markdown header", "# Privacy Policy\n\nsome text", models.FormatMarkdown},
		{"plain text", "Privacy Policy. We collect data.", models.FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectFormat(tt.text); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestScan_PrivacyPolicy(t *testing.T) {
	s := New()

	result := s.Scan(samplePrivacyPolicy)

	if len(result.DetectedTypes) != 1 {
		t.Fatalf("expected exactly one detected type, got %d", len(result.DetectedTypes))
	}
	match := result.DetectedTypes[0]
	if match.Type != "privacy_policy" {
		t.Fatalf("expected privacy_policy, got %q", match.Type)
	}
	if match.Confidence <= typeDetectionThreshold {
		t.Errorf("confidence %d not above detection threshold", match.Confidence)
	}
	if match.Completeness != 100 {
		t.Errorf("expected completeness 100, got %d", match.Completeness)
	}
	if len(match.MissingElements) != 0 {
		t.Errorf("expected no missing elements, got %v", match.MissingElements)
	}
	if result.OverallCompleteness != 100 {
		t.Errorf("expected overall completeness 100, got %d", result.OverallCompleteness)
	}

	if result.Metadata.Version != "2.0" {
		t.Errorf("expected version 2.0, got %q", result.Metadata.Version)
	}
	if result.Metadata.EffectiveDate != "2024-05-01" {
		t.Errorf("expected effective date 2024-05-01, got %q", result.Metadata.EffectiveDate)
	}

	if len(result.Recommendations) != 0 {
		t.Errorf("expected no recommendations for a complete document, got %v", result.Recommendations)
	}
}

func TestScan_IncompleteDocument(t *testing.T) {
	s := New()

	result := s.Scan("This privacy policy explains how we collect personal data.")

	if len(result.DetectedTypes) != 1 {
		t.Fatalf("expected one detected type, got %d", len(result.DetectedTypes))
	}
	match := result.DetectedTypes[0]
	if match.Completeness >= lowCompletenessCutoff {
		t.Fatalf("expected low completeness, got %d", match.Completeness)
	}

	var foundExpand bool
	for _, rec := range result.Recommendations {
		if strings.HasPrefix(rec.Message, "Expand the Privacy Policy") {
			foundExpand = true
			if rec.Priority != models.EffortHigh {
				t.Errorf("expected high priority, got %q", rec.Priority)
			}
		}
	}
	if !foundExpand {
		t.Errorf("expected an expand recommendation, got %v", result.Recommendations)
	}
}

func TestScan_MetadataRecommendations(t *testing.T) {
	s := New()

	result := s.Scan("Just a short note with no structure at all.")

	var wantVersion, wantDate bool
	for _, rec := range result.Recommendations {
		if strings.Contains(rec.Message, "version number") {
			wantVersion = true
		}
		if strings.Contains(rec.Message, "effective date") {
			wantDate = true
		}
	}
	if !wantVersion || !wantDate {
		t.Errorf("expected version and effective date recommendations, got %v", result.Recommendations)
	}
}

func TestScanCitations(t *testing.T) {
	text := "We comply with the GDPR, specifically Article 5, Article 17, and Article 5 again. " +
		"HIPAA administrative safeguards and the Security Rule also apply."

	signals := scanCitations(text)

	if len(signals) != 2 {
		t.Fatalf("expected 2 framework signals, got %d", len(signals))
	}

	byFramework := make(map[string]models.FrameworkSignal)
	for _, sig := range signals {
		byFramework[sig.Framework] = sig
	}

	gdpr, ok := byFramework["GDPR"]
	if !ok {
		t.Fatal("expected a GDPR signal")
	}
	if gdpr.Count != 2 {
		t.Errorf("expected 2 deduplicated GDPR citations, got %d (%v)", gdpr.Count, gdpr.Citations)
	}

	hipaa, ok := byFramework["HIPAA"]
	if !ok {
		t.Fatal("expected a HIPAA signal")
	}
	if hipaa.Count != 2 {
		t.Errorf("expected 2 HIPAA citations, got %d (%v)", hipaa.Count, hipaa.Citations)
	}
}

func TestScan_FewCitationsRecommended(t *testing.T) {
	s := New()

	result := s.Scan("We follow the GDPR, in particular Article 6.")

	var found bool
	for _, rec := range result.Recommendations {
		if strings.Contains(rec.Message, "GDPR citations") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a citation recommendation, got %v", result.Recommendations)
	}
}

func TestElementPresent(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		element string
		want    bool
	}{
		{"literal", "we use third party cookies here", "third party cookies", true},
		{"hyphenated", "we use third-party-cookies here", "third party cookies", true},
		{"underscored", "field third_party_cookies set", "third party cookies", true},
		{"space removed", "thirdpartycookies flag", "third party cookies", true},
		{"singular", "one third party cookie only", "third party cookies", true},
		{"plural from singular element", "retention periods vary", "retention period", true},
		{"absent", "nothing relevant here", "third party cookies", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := elementPresent(tt.text, tt.element); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestExtractMetadata_Headers(t *testing.T) {
	text := "# Privacy Policy\n\n## Data Collection\n\nOwner: Compliance Team\n" +
		"<h2>Data <em>Use</em></h2>\n"

	meta := extractMetadata(text)

	if len(meta.Headers) != 3 {
		t.Fatalf("expected 3 headers, got %v", meta.Headers)
	}
	if meta.Headers[0] != "Privacy Policy" || meta.Headers[1] != "Data Collection" {
		t.Errorf("unexpected markdown headers: %v", meta.Headers)
	}
	if meta.Headers[2] != "Data Use" {
		t.Errorf("expected html tags stripped, got %q", meta.Headers[2])
	}
	if meta.Fields["Owner"] != "Compliance Team" {
		t.Errorf("expected Owner field, got %v", meta.Fields)
	}
}
