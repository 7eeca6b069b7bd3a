package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/sizer/trade"
)

// Config holds the calculator defaults and journal settings. Monetary values
// stay raw strings here: the form engine consumes raw field values, and
// strings round-trip through YAML and JSON without losing precision.
type Config struct {
	Account  AccountConfig  `json:"account" yaml:"account"`
	Defaults DefaultsConfig `json:"defaults" yaml:"defaults"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
}

// AccountConfig describes the trading account the sizes are computed for.
type AccountConfig struct {
	ID       string `json:"id" yaml:"id"`
	Currency string `json:"currency" yaml:"currency"`
	Size     string `json:"size" yaml:"size"`
}

// DefaultsConfig pre-selects the form when no flags are given.
type DefaultsConfig struct {
	Asset       string `json:"asset" yaml:"asset"`
	Method      string `json:"method" yaml:"method"`
	RiskPercent string `json:"risk_percent" yaml:"risk_percent"`
}

// JournalConfig controls where calculations are recorded.
type JournalConfig struct {
	Type   string `json:"type" yaml:"type"` // "csv", "sqlite" or "none"
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON based on content).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	size, err := decimal.NewFromString(c.Account.Size)
	if err != nil || !size.IsPositive() {
		return fmt.Errorf("account.size must be a positive number")
	}
	if _, ok := trade.ParseAsset(c.Defaults.Asset); !ok {
		return fmt.Errorf("unknown default asset: %s", c.Defaults.Asset)
	}
	if _, ok := trade.ParseMethod(c.Defaults.Method); !ok {
		return fmt.Errorf("unknown default method: %s", c.Defaults.Method)
	}
	pct, err := decimal.NewFromString(c.Defaults.RiskPercent)
	if err != nil || pct.LessThan(decimal.NewFromInt(1)) || pct.GreaterThan(decimal.NewFromInt(5)) {
		return fmt.Errorf("defaults.risk_percent must be between 1 and 5")
	}
	switch c.Journal.Type {
	case "none":
	case "csv":
		if c.Journal.File == "" {
			return fmt.Errorf("journal.file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'csv', 'sqlite' or 'none'")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			ID:       "ACCT-001",
			Currency: "USD",
			Size:     "10000",
		},
		Defaults: DefaultsConfig{
			Asset:       string(trade.Equity),
			Method:      string(trade.Percentage),
			RiskPercent: "2",
		},
		Journal: JournalConfig{
			Type: "csv",
			File: "./calculations.csv",
		},
	}
}
