package config

import (
	"testing"
)

func TestParseTimestampUnix(t *testing.T) {
	got, err := ParseTimestamp("1704067200")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1704067200 {
		t.Fatalf("got %d", got)
	}
}

func TestParseTimestampRFC3339(t *testing.T) {
	got, err := ParseTimestamp("2024-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1704067200 {
		t.Fatalf("got %d", got)
	}
}

func TestParseTimestampDateOnly(t *testing.T) {
	got, err := ParseTimestamp("2024-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1704067200 {
		t.Fatalf("got %d", got)
	}
}

func TestParseTimestampEmpty(t *testing.T) {
	got, err := ParseTimestamp("  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("got %d", got)
	}
}

func TestParseTimestampInvalid(t *testing.T) {
	if _, err := ParseTimestamp("yesterday"); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadDownloadDefaults(t *testing.T) {
	cfg, err := LoadDownload("", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Subgraph != "uniswap_v3_ethereum" {
		t.Fatalf("subgraph default = %s", cfg.Subgraph)
	}
	if cfg.QueryType != "swaps" {
		t.Fatalf("query-type default = %s", cfg.QueryType)
	}
	if cfg.Limit != 100 || cfg.PageSize != 100 {
		t.Fatalf("limit/page-size defaults = %d/%d", cfg.Limit, cfg.PageSize)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log-level default = %s", cfg.LogLevel)
	}
}

func TestLoadDownloadGraphAPIKeyEnv(t *testing.T) {
	t.Setenv("GRAPH_API_KEY", "env-key")

	cfg, err := LoadDownload("", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Fatalf("api key = %q", cfg.APIKey)
	}
}

func TestLoadSchemaDefaults(t *testing.T) {
	cfg, err := LoadSchema("", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JSON {
		t.Fatal("json should default to false")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log-level default = %s", cfg.LogLevel)
	}
}
