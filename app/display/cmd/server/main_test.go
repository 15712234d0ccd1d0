package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadBootstrap(t *testing.T) {
	path := writeConfig(t, `
server:
  http:
    addr: 127.0.0.1:0
data:
  database:
    driver: sqlite
    source: ":memory:"
research:
  search:
    provider: duckduckgo
    query_suffix: AI
  concurrency:
    qps: 2
`)

	bc, err := loadBootstrap(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if bc.Server.Http == nil || bc.Server.Http.Addr != "127.0.0.1:0" {
		t.Errorf("unexpected server config: %+v", bc.Server.Http)
	}
	if bc.Data.Database.Driver != "sqlite" || bc.Data.Database.Source != ":memory:" {
		t.Errorf("unexpected database config: %+v", bc.Data.Database)
	}
	if bc.Research == nil || bc.Research.Search == nil || bc.Research.Search.QuerySuffix != "AI" {
		t.Errorf("unexpected research config: %+v", bc.Research)
	}
	if bc.Research.Concurrency == nil || bc.Research.Concurrency.Qps != 2 {
		t.Errorf("unexpected concurrency config: %+v", bc.Research.Concurrency)
	}
}

func TestLoadBootstrap_MissingSections(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no server", body: "data:\n  database:\n    driver: sqlite\n    source: x\n"},
		{name: "no database", body: "server:\n  http:\n    addr: :0\ndata: {}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadBootstrap(writeConfig(t, tt.body)); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}

	if _, err := loadBootstrap(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
