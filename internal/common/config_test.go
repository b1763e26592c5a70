package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_DefaultPort(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port default = %d, want %d", cfg.Server.Port, 8080)
	}
}

func TestConfig_PortEnvOverride(t *testing.T) {
	t.Setenv("CSE_PORT", "9090")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d after env override, want %d", cfg.Server.Port, 9090)
	}
}

func TestConfig_DataPathEnvOverride(t *testing.T) {
	t.Setenv("CSE_DATA_PATH", "/tmp/cse-data")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Storage.Path != "/tmp/cse-data" {
		t.Errorf("Storage.Path = %q after env override, want %q", cfg.Storage.Path, "/tmp/cse-data")
	}
}

func TestConfig_APIBaseEnvOverride(t *testing.T) {
	t.Setenv("CSE_API_BASE", "http://localhost:9999/api")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Clients.CSE.BaseURL != "http://localhost:9999/api" {
		t.Errorf("Clients.CSE.BaseURL = %q, want env value", cfg.Clients.CSE.BaseURL)
	}
}

func TestConfig_DefaultThresholds(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Thresholds.PEMax != 15 {
		t.Errorf("Thresholds.PEMax = %v, want 15", cfg.Thresholds.PEMax)
	}
	if cfg.Thresholds.PBMax != 1.5 {
		t.Errorf("Thresholds.PBMax = %v, want 1.5", cfg.Thresholds.PBMax)
	}
	if cfg.Thresholds.DividendYieldMin != 4.0 {
		t.Errorf("Thresholds.DividendYieldMin = %v, want 4.0", cfg.Thresholds.DividendYieldMin)
	}
	if cfg.Thresholds.MarketCapMin != 100_000_000 {
		t.Errorf("Thresholds.MarketCapMin = %v, want 100M", cfg.Thresholds.MarketCapMin)
	}
}

func TestConfig_DefaultWeightsSumToOne(t *testing.T) {
	cfg := NewDefaultConfig()
	w := cfg.Weights
	sum := w.Value + w.Growth + w.Quality + w.Dividend + w.Momentum + w.Safety
	if sum < 0.999 || sum > 1.001 {
		t.Errorf("default weights sum = %v, want 1.0", sum)
	}
}

func TestConfig_LoadMissingFileSkipped(t *testing.T) {
	cfg, err := LoadConfig("does-not-exist.toml")
	if err != nil {
		t.Fatalf("LoadConfig with missing file returned error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default 8080", cfg.Server.Port)
	}
}

func TestConfig_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := []byte("[server]\nport = 7070\n\n[thresholds]\npe_ratio_max = 12.0\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070 from file", cfg.Server.Port)
	}
	if cfg.Thresholds.PEMax != 12.0 {
		t.Errorf("Thresholds.PEMax = %v, want 12.0 from file", cfg.Thresholds.PEMax)
	}
	// untouched sections keep defaults
	if cfg.Thresholds.PBMax != 1.5 {
		t.Errorf("Thresholds.PBMax = %v, want default 1.5", cfg.Thresholds.PBMax)
	}
}

func TestCSEConfig_GetTimeout_Default(t *testing.T) {
	cfg := &CSEConfig{Timeout: "not-a-duration"}
	if d := cfg.GetTimeout(); d != 30*time.Second {
		t.Errorf("GetTimeout() = %v, want 30s fallback", d)
	}
}

func TestCSEConfig_GetTimeout_Configured(t *testing.T) {
	cfg := &CSEConfig{Timeout: "5s"}
	if d := cfg.GetTimeout(); d != 5*time.Second {
		t.Errorf("GetTimeout() = %v, want 5s", d)
	}
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.IsProduction() {
		t.Error("default config should not be production")
	}
	cfg.Environment = "production"
	if !cfg.IsProduction() {
		t.Error("environment=production should report production")
	}
}
