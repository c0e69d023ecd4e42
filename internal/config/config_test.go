package config

import (
	"strings"
	"testing"
)

func TestNormalizeDatabaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://user:pw@host:5432/ns", "postgresql://user:pw@host:5432/ns"},
		{"postgresql://user:pw@host:5432/ns", "postgresql://user:pw@host:5432/ns"},
		{"postgres://host/db?sslmode=require", "postgresql://host/db?sslmode=require"},
	}
	for _, tt := range tests {
		if got := NormalizeDatabaseURL(tt.in); got != tt.want {
			t.Errorf("NormalizeDatabaseURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("NEUROQUERY_DB_URL", "postgres://user:pw@db:5432/ns")
	t.Setenv("NEUROQUERY_SERVER_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Legacy scheme is rewritten before use
	if cfg.Database.URL != "postgresql://user:pw@db:5432/ns" {
		t.Errorf("db url = %q", cfg.Database.URL)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d", cfg.Server.Port)
	}

	// Defaults
	if cfg.Database.SRID != 4326 {
		t.Errorf("srid = %d", cfg.Database.SRID)
	}
	if cfg.Log.Level != "INFO" || cfg.Log.Format != "json" {
		t.Errorf("log config = %+v", cfg.Log)
	}
	if cfg.Image.Path == "" {
		t.Error("image path default missing")
	}
	if cfg.Storage.Endpoint != "" {
		t.Error("storage should be disabled by default")
	}
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	t.Setenv("NEUROQUERY_DB_URL", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load should fail without a database URL")
	}
	if !strings.Contains(err.Error(), "db.url") {
		t.Errorf("error = %v", err)
	}
}
