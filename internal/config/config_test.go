package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("expected default read timeout, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Redis.TTL != time.Hour {
		t.Errorf("expected default cache TTL, got %v", cfg.Redis.TTL)
	}
	if cfg.Engine.DefaultIndustry != "Default" {
		t.Errorf("expected Default industry, got %q", cfg.Engine.DefaultIndustry)
	}
	if cfg.Database.Enabled || cfg.Redis.Enabled {
		t.Error("expected database and redis disabled by default")
	}
}

func TestLoad_FileWithEnvExpansion(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "hunter2")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `server:
  port: 9090
database:
  enabled: true
  password: ${TEST_DB_PASSWORD}
engine:
  default_industry: Healthcare
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Database.Password != "hunter2" {
		t.Errorf("expected env expansion, got %q", cfg.Database.Password)
	}
	if cfg.Engine.DefaultIndustry != "Healthcare" {
		t.Errorf("expected Healthcare, got %q", cfg.Engine.DefaultIndustry)
	}
	// Unset fields still get defaults.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected default host, got %q", cfg.Server.Host)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("expected default database port, got %d", cfg.Database.Port)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host: "db", Port: 5433, User: "gapscan", Password: "pw",
		Database: "reports", SSLMode: "require",
	}

	want := "host=db port=5433 user=gapscan password=pw dbname=reports sslmode=require"
	if got := cfg.DSN(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRedisAddr(t *testing.T) {
	cfg := RedisConfig{Host: "cache", Port: 6380}
	if got := cfg.Addr(); got != "cache:6380" {
		t.Errorf("expected cache:6380, got %q", got)
	}
}
