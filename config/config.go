// Package config loads the service configuration from the data directory
// and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"logotint/model"
)

const (
	// FileName is the config file looked up inside the data directory.
	FileName = "logotint.config"
	// EnvPrefix prefixes every environment override, e.g. LOGOTINT_LISTEN_ADDR.
	EnvPrefix = "LOGOTINT"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	DataDir       string           `json:"data_dir" mapstructure:"data_dir"`
	ListenAddr    string           `json:"listen_addr" mapstructure:"listen_addr"`
	MetricsAddr   string           `json:"metrics_addr" mapstructure:"metrics_addr"`
	LogLevel      string           `json:"log_level" mapstructure:"log_level"`
	LogFormat     string           `json:"log_format" mapstructure:"log_format"`
	PresetsFile   string           `json:"presets_file,omitempty" mapstructure:"presets_file"`
	CaseSensitive bool             `json:"case_sensitive" mapstructure:"case_sensitive"`
	ImportRate    float64          `json:"import_rate" mapstructure:"import_rate"`   // requests per second per client
	ImportBurst   int              `json:"import_burst" mapstructure:"import_burst"` // bucket size
	RetentionDays int              `json:"retention_days" mapstructure:"retention_days"`
	Schedules     []model.Schedule `json:"schedules,omitempty" mapstructure:"schedules"`
}

// DefaultDataDir is $XDG_DATA_HOME/logotint.
func DefaultDataDir() string {
	return filepath.Join(xdg.DataHome, "logotint")
}

func Default() Config {
	return Config{
		DataDir:       DefaultDataDir(),
		ListenAddr:    ":8080",
		MetricsAddr:   ":9090",
		LogLevel:      "info",
		LogFormat:     "console",
		CaseSensitive: false,
		ImportRate:    2,
		ImportBurst:   5,
		RetentionDays: 30,
		Schedules: []model.Schedule{{
			ID:        "retention",
			Name:      "Prune saved schemes",
			Enabled:   true,
			Type:      model.ScheduleDaily,
			TimeOfDay: "03:00",
		}},
	}
}

// Load reads FileName from dataDir, falling back to defaults when it does not
// exist, and applies LOGOTINT_* environment overrides on top.
func Load(dataDir string) (Config, error) {
	def := Default()
	if dataDir == "" {
		dataDir = def.DataDir
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(dataDir, FileName))
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_dir", dataDir)
	v.SetDefault("listen_addr", def.ListenAddr)
	v.SetDefault("metrics_addr", def.MetricsAddr)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)
	v.SetDefault("presets_file", def.PresetsFile)
	v.SetDefault("case_sensitive", def.CaseSensitive)
	v.SetDefault("import_rate", def.ImportRate)
	v.SetDefault("import_burst", def.ImportBurst)
	v.SetDefault("retention_days", def.RetentionDays)
	v.SetDefault("schedules", def.Schedules)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}

	return cfg, nil
}

// Validate checks the values Load cannot default.
func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("%w: listen_addr is empty", ErrInvalidConfig)
	}
	if c.ImportRate <= 0 || c.ImportBurst <= 0 {
		return fmt.Errorf("%w: import_rate and import_burst must be positive", ErrInvalidConfig)
	}
	if c.RetentionDays < 0 {
		return fmt.Errorf("%w: retention_days is negative", ErrInvalidConfig)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// Save writes cfg to its data directory, replacing any previous file atomically.
func Save(cfg Config) error {
	cfgPath := filepath.Join(cfg.DataDir, FileName)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return err
	}

	tmp := cfgPath + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		os.Remove(tmp)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, cfgPath)
}
