package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Data struct {
		CSVPath    string `yaml:"csv_path"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"data"`
	Indicators struct {
		AverageWindow   int     `yaml:"average_window"`
		BollingerWindow int     `yaml:"bollinger_window"`
		BollingerStdDev float64 `yaml:"bollinger_std_dev"`
		RSIPeriod       int     `yaml:"rsi_period"`
	} `yaml:"indicators"`
	Chart struct {
		Width  string `yaml:"width"`
		Height string `yaml:"height"`
	} `yaml:"chart"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is fine: defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PRICES_CSV_PATH"); v != "" {
		cfg.Data.CSVPath = v
	}
	if v := os.Getenv("PRICES_SQLITE_PATH"); v != "" {
		cfg.Data.SQLitePath = v
	}
	if v := os.Getenv("RSI_PERIOD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Indicators.RSIPeriod = n
		}
	}
	if v := os.Getenv("BOLLINGER_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Indicators.BollingerWindow = n
		}
	}

	// Defaults
	if cfg.Data.CSVPath == "" {
		cfg.Data.CSVPath = "data/prices.csv"
	}
	if cfg.Indicators.BollingerWindow == 0 {
		cfg.Indicators.BollingerWindow = 20
	}
	if cfg.Indicators.BollingerStdDev == 0 {
		cfg.Indicators.BollingerStdDev = 2.0
	}
	if cfg.Indicators.RSIPeriod == 0 {
		cfg.Indicators.RSIPeriod = 14
	}
	if cfg.Chart.Width == "" {
		cfg.Chart.Width = "900px"
	}
	if cfg.Chart.Height == "" {
		cfg.Chart.Height = "500px"
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.Indicators.AverageWindow < 0 {
		return fmt.Errorf("indicators.average_window must not be negative")
	}
	if c.Indicators.BollingerWindow <= 0 {
		return fmt.Errorf("indicators.bollinger_window must be positive")
	}
	if c.Indicators.BollingerStdDev <= 0 {
		return fmt.Errorf("indicators.bollinger_std_dev must be positive")
	}
	if c.Indicators.RSIPeriod <= 0 {
		return fmt.Errorf("indicators.rsi_period must be positive")
	}
	return nil
}
