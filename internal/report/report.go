package report

import (
	"log/slog"

	"github.com/gapscan/gapscan/internal/benchmark"
	"github.com/gapscan/gapscan/internal/catalog"
	"github.com/gapscan/gapscan/internal/classifier"
	"github.com/gapscan/gapscan/internal/models"
	"github.com/gapscan/gapscan/internal/structure"
)

// Options selects what an analysis run evaluates.
type Options struct {
	Frameworks []string
	Industry   string
	PDFSource  bool
}

// Engine ties the classifier gate, the benchmarking orchestrator and
// the structure scanner together into one report. Pure over its
// read-only catalog; safe for concurrent use.
type Engine struct {
	classifier   *classifier.Classifier
	orchestrator *benchmark.Orchestrator
	scanner      *structure.Scanner
}

func NewEngine(cat *catalog.Catalog, logger *slog.Logger) *Engine {
	return &Engine{
		classifier:   classifier.New(),
		orchestrator: benchmark.New(cat, logger),
		scanner:      structure.New(),
	}
}

// Analyze runs both branches over the text. Benchmarking only runs
// when classification accepts the document; the structure scan always
// runs so rejected documents still get structural feedback.
func (e *Engine) Analyze(text string, opts Options) models.Report {
	report := models.Report{
		Classification: e.classifier.Classify(text, opts.PDFSource),
		Structure:      e.scanner.Scan(text),
	}

	if report.Classification.Valid {
		bench := e.orchestrator.Benchmark(text, opts.Frameworks, opts.Industry)
		report.Benchmark = &bench
	}

	return report
}

// Classify exposes the classifier branch on its own.
func (e *Engine) Classify(text string, pdfSource bool) models.ClassificationResult {
	return e.classifier.Classify(text, pdfSource)
}

// Benchmark exposes the benchmarking branch on its own, without the
// classification gate.
func (e *Engine) Benchmark(text string, frameworks []string, industry string) models.BenchmarkReport {
	return e.orchestrator.Benchmark(text, frameworks, industry)
}

// Scan exposes the structure-scan branch on its own.
func (e *Engine) Scan(text string) models.StructureScanResult {
	return e.scanner.Scan(text)
}
