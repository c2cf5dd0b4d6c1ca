package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ANTHROPIC_API_KEY", "")
	cfg, err := Load(home)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != filepath.Join(home, "petquest.db") {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("log = %+v", cfg.Log)
	}
	if cfg.Coach.Provider != ProviderNone || cfg.Coach.Timeout != 20*time.Second {
		t.Fatalf("coach = %+v", cfg.Coach)
	}
	if cfg.API.Addr != "127.0.0.1:8787" {
		t.Fatalf("api.addr = %q", cfg.API.Addr)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	home := t.TempDir()
	yaml := `
db_path: /tmp/pq.db
timezone: UTC
log:
  level: debug
  format: json
coach:
  provider: ollama
  model: llama3.2
  timeout: 5s
`
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PETQUEST_API_ADDR", ":9999")
	t.Setenv("PETQUEST_COACH_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "from-env")

	cfg, err := Load(home)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/pq.db" || cfg.Timezone != "UTC" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("log = %+v", cfg.Log)
	}
	if cfg.Coach.Provider != ProviderOllama || cfg.Coach.Model != "llama3.2" || cfg.Coach.Timeout != 5*time.Second {
		t.Fatalf("coach = %+v", cfg.Coach)
	}
	if cfg.Coach.APIKey != "from-env" {
		t.Fatalf("api key fallback = %q", cfg.Coach.APIKey)
	}
	if cfg.API.Addr != ":9999" {
		t.Fatalf("env override not applied: %q", cfg.API.Addr)
	}
	loc, err := cfg.Location()
	if err != nil || loc != time.UTC {
		t.Fatalf("Location = %v %v", loc, err)
	}
}

func TestValidate(t *testing.T) {
	home := t.TempDir()
	yaml := "log:\n  level: loud\ncoach:\n  provider: gemini\ntimezone: Mars/Olympus\n"
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := Load(home)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"log.level", "coach.provider", "timezone"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error missing %q: %v", want, err)
		}
	}
}

func TestHomeDirEnv(t *testing.T) {
	t.Setenv("PETQUEST_HOME", "/srv/pq")
	got, err := HomeDir()
	if err != nil || got != "/srv/pq" {
		t.Fatalf("HomeDir = %q %v", got, err)
	}
}
