// Package common provides shared utilities for the CSE research toolkit
package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the toolkit
type Config struct {
	Environment string           `toml:"environment"`
	Server      ServerConfig     `toml:"server"`
	Storage     StorageConfig    `toml:"storage"`
	Clients     ClientsConfig    `toml:"clients"`
	Logging     LoggingConfig    `toml:"logging"`
	Thresholds  ThresholdConfig  `toml:"thresholds"`
	Weights     WeightConfig     `toml:"weights"`
	Assumptions AssumptionConfig `toml:"assumptions"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig holds file storage configuration
type StorageConfig struct {
	Path     string `toml:"path"`
	Versions int    `toml:"versions"`
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	CSE CSEConfig `toml:"cse"`
}

// CSEConfig holds CSE API client configuration
type CSEConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *CSEConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level    string   `toml:"level"`
	Outputs  []string `toml:"outputs"`
	FilePath string   `toml:"file_path"`
}

// ThresholdConfig holds the valuation screening thresholds.
// Defaults reflect Colombo Stock Exchange heuristics, not universal rules.
type ThresholdConfig struct {
	PEMax            float64 `toml:"pe_ratio_max"`
	PBMax            float64 `toml:"pb_ratio_max"`
	DebtEquityMax    float64 `toml:"debt_equity_max"`
	DividendYieldMin float64 `toml:"dividend_yield_min"`
	PayoutRatioMax   float64 `toml:"payout_ratio_max"`
	EPSGrowthMin     float64 `toml:"eps_growth_min"`
	ROEMin           float64 `toml:"roe_min"`
	PEGMax           float64 `toml:"peg_ratio_max"`
	MarketCapMin     float64 `toml:"market_cap_min"`
}

// WeightConfig holds the ranker composite weights.
type WeightConfig struct {
	Value    float64 `toml:"value_score"`
	Growth   float64 `toml:"growth_score"`
	Quality  float64 `toml:"quality_score"`
	Dividend float64 `toml:"dividend_score"`
	Momentum float64 `toml:"momentum_score"`
	Safety   float64 `toml:"safety_score"`
}

// AssumptionConfig holds market-wide assumption overrides.
type AssumptionConfig struct {
	TaxRate          float64 `toml:"tax_rate"`
	RiskFreeRate     float64 `toml:"risk_free_rate"`
	BondYield        float64 `toml:"bond_yield"`
	DefaultEPSGrowth float64 `toml:"default_eps_growth"`
	DefaultPayout    float64 `toml:"default_payout"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Storage: StorageConfig{
			Path:     "data",
			Versions: 3,
		},
		Clients: ClientsConfig{
			CSE: CSEConfig{
				BaseURL:   "https://www.cse.lk/api",
				RateLimit: 2,
				Timeout:   "30s",
			},
		},
		Logging: LoggingConfig{
			Level:    "info",
			Outputs:  []string{"console"},
			FilePath: "./logs/cse-research.log",
		},
		Thresholds: ThresholdConfig{
			PEMax:            15,
			PBMax:            1.5,
			DebtEquityMax:    0.5,
			DividendYieldMin: 4.0,
			PayoutRatioMax:   70,
			EPSGrowthMin:     10,
			ROEMin:           15,
			PEGMax:           1.0,
			MarketCapMin:     100_000_000, // LKR
		},
		Weights: WeightConfig{
			Value:    0.25,
			Growth:   0.20,
			Quality:  0.20,
			Dividend: 0.15,
			Momentum: 0.10,
			Safety:   0.10,
		},
		Assumptions: AssumptionConfig{
			TaxRate:          0.24,
			RiskFreeRate:     0.10,
			BondYield:        4.4,
			DefaultEPSGrowth: 10,
			DefaultPayout:    0.4,
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("CSE_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("CSE_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("CSE_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("CSE_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if path := os.Getenv("CSE_DATA_PATH"); path != "" {
		config.Storage.Path = path
	}

	if base := os.Getenv("CSE_API_BASE"); base != "" {
		config.Clients.CSE.BaseURL = base
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

// ResolveDataPath resolves a relative storage path against a base directory.
func ResolveDataPath(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
