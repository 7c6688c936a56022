package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gapscan/gapscan/internal/models"
)

// Store persists analysis report history. The engine itself never
// touches it; only the serving layer does.
type Store struct {
	db *sqlx.DB
}

type Config struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

// ReportRecord is one stored analysis run.
type ReportRecord struct {
	ID           uuid.UUID      `json:"id" db:"id"`
	DocumentName string         `json:"document_name" db:"document_name"`
	Industry     string         `json:"industry" db:"industry"`
	Frameworks   pq.StringArray `json:"frameworks" db:"frameworks"`
	Valid        bool           `json:"valid" db:"valid"`
	AverageScore int            `json:"average_score" db:"average_score"`
	Report       []byte         `json:"-" db:"report"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
}

// DecodeReport unmarshals the stored report payload.
func (r *ReportRecord) DecodeReport() (*models.Report, error) {
	var report models.Report
	if err := json.Unmarshal(r.Report, &report); err != nil {
		return nil, fmt.Errorf("decoding stored report: %w", err)
	}
	return &report, nil
}

func New(cfg Config) (*Store, error) {
	db, err := sqlx.Connect("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Hour)

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Migrate creates the report history table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS analysis_reports (
			id UUID PRIMARY KEY,
			document_name TEXT NOT NULL DEFAULT '',
			industry TEXT NOT NULL DEFAULT '',
			frameworks TEXT[] NOT NULL DEFAULT '{}',
			valid BOOLEAN NOT NULL,
			average_score INTEGER NOT NULL,
			report JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_analysis_reports_created_at
			ON analysis_reports (created_at DESC);
	`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// SaveReport stores an analysis run and fills in the record id and
// timestamp.
func (s *Store) SaveReport(ctx context.Context, record *ReportRecord, report *models.Report) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	record.ID = uuid.New()
	record.CreatedAt = time.Now().UTC()
	record.Report = payload
	record.Valid = report.Classification.Valid
	if report.Benchmark != nil {
		record.AverageScore = report.Benchmark.AverageScore
	}

	query := `
		INSERT INTO analysis_reports (id, document_name, industry, frameworks, valid, average_score, report, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = s.db.ExecContext(ctx, query,
		record.ID,
		record.DocumentName,
		record.Industry,
		record.Frameworks,
		record.Valid,
		record.AverageScore,
		record.Report,
		record.CreatedAt,
	)
	return err
}

func (s *Store) GetReport(ctx context.Context, id uuid.UUID) (*ReportRecord, error) {
	var record ReportRecord
	query := `SELECT * FROM analysis_reports WHERE id = $1`
	err := s.db.GetContext(ctx, &record, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Store) ListReports(ctx context.Context, limit, offset int) ([]*ReportRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var records []*ReportRecord
	query := `
		SELECT id, document_name, industry, frameworks, valid, average_score, report, created_at
		FROM analysis_reports
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	err := s.db.SelectContext(ctx, &records, query, limit, offset)
	return records, err
}
