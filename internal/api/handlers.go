package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gapscan/gapscan/internal/cache"
	"github.com/gapscan/gapscan/internal/extract"
	"github.com/gapscan/gapscan/internal/report"
	"github.com/gapscan/gapscan/internal/store"
)

type frameworkSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Jurisdiction string `json:"jurisdiction"`
	RuleCount    int    `json:"rule_count"`
}

func (s *Server) listFrameworks(w http.ResponseWriter, r *http.Request) {
	var out []frameworkSummary
	for _, fw := range s.catalog.Frameworks() {
		out = append(out, frameworkSummary{
			ID:           fw.ID,
			Name:         fw.Name,
			Jurisdiction: fw.Jurisdiction,
			RuleCount:    len(fw.Rules),
		})
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) listIndustries(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.catalog.Industries())
}

type classifyRequest struct {
	Text          string `json:"text" validate:"required_without=ContentBase64"`
	ContentBase64 string `json:"content_base64" validate:"required_without=Text"`
	PDFSource     bool   `json:"pdf_source"`
}

func (s *Server) classify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	text, pdfSource, ok := s.resolveText(w, req.Text, req.ContentBase64, req.PDFSource)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, s.engine.Classify(text, pdfSource))
}

type benchmarkRequest struct {
	Text       string   `json:"text" validate:"required"`
	Frameworks []string `json:"frameworks"`
	Industry   string   `json:"industry"`
}

func (s *Server) benchmark(w http.ResponseWriter, r *http.Request) {
	var req benchmarkRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	industry := req.Industry
	if industry == "" {
		industry = s.cfg.Engine.DefaultIndustry
	}

	respondJSON(w, http.StatusOK, s.engine.Benchmark(req.Text, req.Frameworks, industry))
}

type scanRequest struct {
	Text string `json:"text" validate:"required"`
}

func (s *Server) scan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	respondJSON(w, http.StatusOK, s.engine.Scan(req.Text))
}

type analyzeRequest struct {
	Text          string   `json:"text" validate:"required_without=ContentBase64"`
	ContentBase64 string   `json:"content_base64" validate:"required_without=Text"`
	Frameworks    []string `json:"frameworks"`
	Industry      string   `json:"industry"`
	PDFSource     bool     `json:"pdf_source"`
	DocumentName  string   `json:"document_name" validate:"max=255"`
	Save          bool     `json:"save"`
}

type analyzeResponse struct {
	ReportID string `json:"report_id,omitempty"`
	Cached   bool   `json:"cached"`
	Report   any    `json:"report"`
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	text, pdfSource, ok := s.resolveText(w, req.Text, req.ContentBase64, req.PDFSource)
	if !ok {
		return
	}

	industry := req.Industry
	if industry == "" {
		industry = s.cfg.Engine.DefaultIndustry
	}

	key := cache.Key(text, req.Frameworks, industry, pdfSource)
	if s.cache != nil {
		cached, err := s.cache.GetReport(r.Context(), key)
		if err != nil {
			s.logger.Warn("cache lookup failed", "error", err)
		} else if cached != nil {
			respondJSON(w, http.StatusOK, analyzeResponse{Cached: true, Report: cached})
			return
		}
	}

	result := s.engine.Analyze(text, report.Options{
		Frameworks: req.Frameworks,
		Industry:   industry,
		PDFSource:  pdfSource,
	})

	if s.cache != nil {
		if err := s.cache.SetReport(r.Context(), key, &result); err != nil {
			s.logger.Warn("cache write failed", "error", err)
		}
	}

	resp := analyzeResponse{Report: &result}
	if s.store != nil && req.Save {
		record := &store.ReportRecord{
			DocumentName: req.DocumentName,
			Industry:     industry,
			Frameworks:   req.Frameworks,
		}
		if err := s.store.SaveReport(r.Context(), record, &result); err != nil {
			s.logger.Error("saving report failed", "error", err)
		} else {
			resp.ReportID = record.ID.String()
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) listReports(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		respondError(w, http.StatusNotImplemented, "store_disabled", "Report history is not enabled")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	records, err := s.store.ListReports(r.Context(), limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "db_error", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, records)
}

func (s *Server) getReport(w http.ResponseWriter, r *http.Request) {
	record, ok := s.fetchReport(w, r)
	if !ok {
		return
	}

	full, err := record.DecodeReport()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "decode_error", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"record": record,
		"report": full,
	})
}

func (s *Server) exportReport(w http.ResponseWriter, r *http.Request) {
	record, ok := s.fetchReport(w, r)
	if !ok {
		return
	}

	full, err := record.DecodeReport()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "decode_error", err.Error())
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", "attachment; filename=report-"+record.ID.String()+".json")
		_ = json.NewEncoder(w).Encode(full)
	case "csv":
		if full.Benchmark == nil {
			respondError(w, http.StatusBadRequest, "no_benchmark", "Report has no benchmark data to export")
			return
		}
		var data []byte
		if r.URL.Query().Get("section") == "actions" {
			data, err = report.PrioritizedActionsCSV(full.Benchmark)
		} else {
			data, err = report.ComplianceMatrixCSV(full.Benchmark)
		}
		if err != nil {
			respondError(w, http.StatusInternalServerError, "export_error", err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=report-"+record.ID.String()+".csv")
		_, _ = w.Write(data)
	default:
		respondError(w, http.StatusBadRequest, "invalid_format", "Supported formats: json, csv")
	}
}

func (s *Server) fetchReport(w http.ResponseWriter, r *http.Request) (*store.ReportRecord, bool) {
	if s.store == nil {
		respondError(w, http.StatusNotImplemented, "store_disabled", "Report history is not enabled")
		return nil, false
	}

	id, err := uuid.Parse(chi.URLParam(r, "reportID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "Invalid report ID")
		return nil, false
	}

	record, err := s.store.GetReport(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "db_error", err.Error())
		return nil, false
	}
	if record == nil {
		respondError(w, http.StatusNotFound, "not_found", "Report not found")
		return nil, false
	}
	return record, true
}

func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return false
	}
	if err := s.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "validation_error", err.Error())
		return false
	}
	return true
}

// resolveText returns the plain text to analyze, extracting it from a
// base64 payload when one is supplied instead of text.
func (s *Server) resolveText(w http.ResponseWriter, text, contentBase64 string, pdfSource bool) (string, bool, bool) {
	if contentBase64 == "" {
		return text, pdfSource, true
	}

	raw, err := base64.StdEncoding.DecodeString(contentBase64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_base64", err.Error())
		return "", false, false
	}

	extracted, err := extract.FromBytes(raw)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "extraction_failed", err.Error())
		return "", false, false
	}
	return extracted.Text, extracted.PDFSource || pdfSource, true
}
