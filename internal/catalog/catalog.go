package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gapscan/gapscan/internal/models"
)

// Catalog is the read-only rule catalog. It is built once at process
// start and safe for concurrent use.
type Catalog struct {
	frameworks []models.Framework
	byID       map[string]int
	benchmarks map[string]models.IndustryBenchmark
}

// Default returns a catalog with the built-in frameworks and industry
// benchmark table.
func Default() *Catalog {
	return build(defaultFrameworks(), industryBenchmarks())
}

// NewWithFrameworks returns a catalog over the given frameworks, with
// the built-in industry benchmark table.
func NewWithFrameworks(frameworks []models.Framework) *Catalog {
	return build(frameworks, industryBenchmarks())
}

func build(frameworks []models.Framework, benchmarks map[string]models.IndustryBenchmark) *Catalog {
	c := &Catalog{
		frameworks: frameworks,
		byID:       make(map[string]int, len(frameworks)),
		benchmarks: benchmarks,
	}
	for i, fw := range frameworks {
		c.byID[normalizeID(fw.ID)] = i
	}
	return c
}

// Framework looks up a framework by id, case-insensitively.
func (c *Catalog) Framework(id string) (models.Framework, bool) {
	i, ok := c.byID[normalizeID(id)]
	if !ok {
		return models.Framework{}, false
	}
	return c.frameworks[i], true
}

// Frameworks returns all frameworks in catalog order.
func (c *Catalog) Frameworks() []models.Framework {
	out := make([]models.Framework, len(c.frameworks))
	copy(out, c.frameworks)
	return out
}

// FrameworkIDs returns the catalog's framework ids in order.
func (c *Catalog) FrameworkIDs() []string {
	ids := make([]string, len(c.frameworks))
	for i, fw := range c.frameworks {
		ids[i] = fw.ID
	}
	return ids
}

// IndustryBenchmark returns the reference scores for an industry,
// falling back to the Default row for unknown industries.
func (c *Catalog) IndustryBenchmark(industry string) models.IndustryBenchmark {
	if b, ok := c.benchmarks[industry]; ok {
		return b
	}
	return c.benchmarks["Default"]
}

// Industries returns the industries with benchmark rows, sorted.
func (c *Catalog) Industries() []string {
	out := make([]string, 0, len(c.benchmarks))
	for name := range c.benchmarks {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func normalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

type overlayFile struct {
	Frameworks []overlayFramework `yaml:"frameworks"`
}

type overlayFramework struct {
	ID           string        `yaml:"id"`
	Name         string        `yaml:"name"`
	Jurisdiction string        `yaml:"jurisdiction"`
	Rules        []overlayRule `yaml:"rules"`
}

type overlayRule struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Category    string   `yaml:"category"`
	Criticality string   `yaml:"criticality"`
	Criteria    []string `yaml:"criteria"`
	Keywords    []string `yaml:"keywords"`
}

// LoadOverlay reads extra frameworks from a YAML file and returns a
// new catalog with them appended. An overlay framework whose id
// matches a built-in replaces it. Environment variables in the file
// are expanded before parsing.
func (c *Catalog) LoadOverlay(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading framework overlay: %w", err)
	}

	data = []byte(os.ExpandEnv(string(data)))

	var file overlayFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing framework overlay: %w", err)
	}

	frameworks := make([]models.Framework, len(c.frameworks))
	copy(frameworks, c.frameworks)

	for _, ofw := range file.Frameworks {
		fw, err := ofw.toFramework()
		if err != nil {
			return nil, err
		}
		if i, ok := c.byID[normalizeID(fw.ID)]; ok {
			frameworks[i] = fw
		} else {
			frameworks = append(frameworks, fw)
		}
	}

	return build(frameworks, c.benchmarks), nil
}

func (o overlayFramework) toFramework() (models.Framework, error) {
	if o.ID == "" {
		return models.Framework{}, fmt.Errorf("framework overlay entry missing id")
	}
	fw := models.Framework{
		ID:           normalizeID(o.ID),
		Name:         o.Name,
		Jurisdiction: o.Jurisdiction,
	}
	if fw.Name == "" {
		fw.Name = fw.ID
	}
	for _, or := range o.Rules {
		crit, err := parseCriticality(or.Criticality)
		if err != nil {
			return models.Framework{}, fmt.Errorf("framework %s rule %s: %w", o.ID, or.ID, err)
		}
		fw.Rules = append(fw.Rules, models.Rule{
			ID:                or.ID,
			Title:             or.Title,
			Category:          or.Category,
			Criticality:       crit,
			BenchmarkCriteria: or.Criteria,
			Keywords:          or.Keywords,
		})
	}
	return fw, nil
}

func parseCriticality(s string) (models.Criticality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return models.CriticalityCritical, nil
	case "high", "":
		return models.CriticalityHigh, nil
	case "medium":
		return models.CriticalityMedium, nil
	case "low":
		return models.CriticalityLow, nil
	default:
		return "", fmt.Errorf("unknown criticality %q", s)
	}
}
