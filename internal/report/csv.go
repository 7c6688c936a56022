package report

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/gapscan/gapscan/internal/models"
)

// ComplianceMatrixCSV renders the per-framework matrix for tabular
// export.
func ComplianceMatrixCSV(bench *models.BenchmarkReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Framework", "Name", "Score", "Maturity", "Critical Issues", "High Issues"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range bench.ComplianceMatrix {
		record := []string{
			row.FrameworkID,
			row.Name,
			strconv.Itoa(row.Score),
			string(row.Maturity),
			strconv.Itoa(row.CriticalIssues),
			strconv.Itoa(row.HighIssues),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// PrioritizedActionsCSV renders the global remediation plan.
func PrioritizedActionsCSV(bench *models.BenchmarkReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Priority", "Framework", "Rule", "Criticality", "Current Score",
		"Gap Count", "Estimated Effort", "Timeframe", "Business Impact", "Actions",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, action := range bench.PrioritizedActions {
		record := []string{
			strconv.Itoa(action.Priority),
			action.FrameworkID,
			action.Title,
			string(action.Criticality),
			strconv.Itoa(action.CurrentScore),
			strconv.Itoa(len(action.Gaps)),
			string(action.EstimatedEffort),
			action.Timeframe,
			action.BusinessImpact,
			strings.Join(action.Actions, "; "),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
