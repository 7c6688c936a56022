package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gapscan/gapscan/internal/models"
)

func TestFramework_CaseInsensitiveLookup(t *testing.T) {
	c := Default()

	for _, id := range []string{"GDPR", "gdpr", "  Gdpr "} {
		fw, ok := c.Framework(id)
		if !ok {
			t.Fatalf("expected lookup %q to succeed", id)
		}
		if fw.ID != "GDPR" {
			t.Errorf("lookup %q: expected GDPR, got %s", id, fw.ID)
		}
	}

	if _, ok := c.Framework("NOT-A-FRAMEWORK"); ok {
		t.Error("expected unknown id to fail")
	}
}

func TestDefault_Frameworks(t *testing.T) {
	c := Default()

	ids := c.FrameworkIDs()
	if len(ids) < 6 {
		t.Fatalf("expected at least 6 built-in frameworks, got %d", len(ids))
	}

	for _, fw := range c.Frameworks() {
		if len(fw.Rules) == 0 {
			t.Errorf("framework %s has no rules", fw.ID)
		}
		for _, rule := range fw.Rules {
			if len(rule.Keywords) == 0 || len(rule.BenchmarkCriteria) == 0 {
				t.Errorf("rule %s/%s missing keywords or criteria", fw.ID, rule.ID)
			}
		}
	}
}

func TestIndustryBenchmark(t *testing.T) {
	c := Default()

	tech := c.IndustryBenchmark("Technology")
	def := c.IndustryBenchmark("Default")
	unknown := c.IndustryBenchmark("Interpretive Dance")

	if tech == def {
		t.Error("expected Technology to differ from the Default row")
	}
	if unknown != def {
		t.Error("expected unknown industry to fall back to Default")
	}

	// Comparison labels depend on this ordering per industry.
	for _, industry := range c.Industries() {
		b := c.IndustryBenchmark(industry)
		if !(b.Median < b.Average && b.Average < b.Top10) {
			t.Errorf("%s: expected median < average < top10, got %+v", industry, b)
		}
	}
}

func TestLoadOverlay(t *testing.T) {
	t.Setenv("TEST_RULE_TITLE", "Records of processing")

	path := filepath.Join(t.TempDir(), "overlay.yaml")
	overlay := `frameworks:
  - id: lgpd
    name: LGPD
    jurisdiction: Brazil
    rules:
      - id: lgpd-records
        title: ${TEST_RULE_TITLE}
        category: governance
        criticality: high
        criteria:
          - Maintain records of processing activities
        keywords:
          - processing records
  - id: GDPR
    name: GDPR (replaced)
    jurisdiction: EU
    rules:
      - id: gdpr-only
        title: Single rule
        criticality: critical
        criteria: [Lawful basis documented]
        keywords: [lawful basis]
`
	if err := os.WriteFile(path, []byte(overlay), 0o644); err != nil {
		t.Fatal(err)
	}

	base := Default()
	c, err := base.LoadOverlay(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lgpd, ok := c.Framework("LGPD")
	if !ok {
		t.Fatal("expected LGPD to be appended")
	}
	if lgpd.Rules[0].Title != "Records of processing" {
		t.Errorf("expected env expansion in title, got %q", lgpd.Rules[0].Title)
	}
	if lgpd.Rules[0].Criticality != models.CriticalityHigh {
		t.Errorf("expected high criticality, got %q", lgpd.Rules[0].Criticality)
	}

	gdpr, ok := c.Framework("gdpr")
	if !ok {
		t.Fatal("expected GDPR to remain")
	}
	if gdpr.Name != "GDPR (replaced)" || len(gdpr.Rules) != 1 {
		t.Errorf("expected overlay to replace GDPR, got %q with %d rules", gdpr.Name, len(gdpr.Rules))
	}

	// The base catalog is untouched.
	orig, _ := base.Framework("GDPR")
	if orig.Name == "GDPR (replaced)" {
		t.Error("overlay mutated the base catalog")
	}
}

func TestLoadOverlay_Errors(t *testing.T) {
	c := Default()

	if _, err := c.LoadOverlay(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	bad := `frameworks:
  - id: badfw
    rules:
      - id: r1
        criticality: catastrophic
`
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := c.LoadOverlay(path); err == nil {
		t.Error("expected an error for an unknown criticality")
	}
}
