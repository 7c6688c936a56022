package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gapscan/gapscan/internal/catalog"
	"github.com/gapscan/gapscan/internal/extract"
	"github.com/gapscan/gapscan/internal/report"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	filePath := flag.String("file", "", "Path to the document to analyze")
	frameworks := flag.String("frameworks", "", "Comma-separated framework ids (default GDPR,HIPAA,SOX)")
	industry := flag.String("industry", "Default", "Industry for benchmark comparison")
	overlay := flag.String("overlay", "", "Optional YAML file with extra frameworks")
	pretty := flag.Bool("pretty", true, "Indent JSON output")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("GapScan v%s (built %s)\n", version, buildTime)
		os.Exit(0)
	}

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: gapscan -file <document> [-frameworks GDPR,HIPAA] [-industry Technology]")
		os.Exit(2)
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read file: %v\n", err)
		os.Exit(1)
	}

	extracted, err := extract.FromBytes(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to extract text: %v\n", err)
		os.Exit(1)
	}

	cat := catalog.Default()
	if *overlay != "" {
		cat, err = cat.LoadOverlay(*overlay)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load overlay: %v\n", err)
			os.Exit(1)
		}
	}

	var ids []string
	if *frameworks != "" {
		ids = strings.Split(*frameworks, ",")
	}

	engine := report.NewEngine(cat, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	result := engine.Analyze(extracted.Text, report.Options{
		Frameworks: ids,
		Industry:   *industry,
		PDFSource:  extracted.PDFSource,
	})

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode report: %v\n", err)
		os.Exit(1)
	}
}
