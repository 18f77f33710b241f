// Package config loads sensormon's runtime configuration: analyzer and
// alert thresholds, ingest mode, and sink targets, from a YAML file and
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"nrgchamp/sensormon/internal/actor"
	"nrgchamp/sensormon/internal/analyzer"
)

// Sentinel validation errors.
var (
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrInvalidWorkers  = errors.New("worker pool size must be positive")
)

// Config holds every tunable of a sensormon run.
type Config struct {
	Mode       string           `mapstructure:"mode"`
	Workers    int              `mapstructure:"workers"`
	Queue      QueueConfig      `mapstructure:"queue"`
	Thresholds ThresholdsConfig `mapstructure:"thresholds"`
	Sinks      SinksConfig      `mapstructure:"sinks"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// QueueConfig configures the streaming ingest mode's bounded channel.
type QueueConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// ThresholdsConfig overrides the analyzer and alert default thresholds.
type ThresholdsConfig struct {
	TempWarn     float64 `mapstructure:"temp_warn"`
	TempCritical float64 `mapstructure:"temp_critical"`
	TempAlertLow float64 `mapstructure:"temp_alert_low"`
	TempAlertHigh float64 `mapstructure:"temp_alert_high"`
	HumidityLow  float64 `mapstructure:"humidity_low"`
	HumidityHigh float64 `mapstructure:"humidity_high"`
	HumAlertLow  float64 `mapstructure:"hum_alert_low"`
	HumAlertHigh float64 `mapstructure:"hum_alert_high"`
	BatteryLow   float64 `mapstructure:"battery_low"`
	BatteryAlertLow float64 `mapstructure:"battery_alert_low"`
}

// SinksConfig selects which sinks are active and where the file sink
// writes.
type SinksConfig struct {
	Console bool   `mapstructure:"console"`
	JSON    bool   `mapstructure:"json"`
	File    bool   `mapstructure:"file"`
	FilePath string `mapstructure:"file_path"`
}

// LoggingConfig configures the slog handler used for the app's own logs.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from configPath (a YAML file) if given,
// falling back to ./sensormon.yaml, ./config/sensormon.yaml, and
// /etc/sensormon/, then applies SENSORMON_-prefixed environment
// overrides on top. A missing config file is not an error; only a
// malformed one is.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("sensormon")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/sensormon")
	}

	v.SetEnvPrefix("SENSORMON")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config: invalid: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "sequential")
	v.SetDefault("workers", 4)
	v.SetDefault("queue.capacity", 100)

	v.SetDefault("thresholds.temp_warn", analyzer.DefaultTempWarn)
	v.SetDefault("thresholds.temp_critical", analyzer.DefaultTempCritical)
	v.SetDefault("thresholds.temp_alert_low", 10.0)
	v.SetDefault("thresholds.temp_alert_high", 30.0)
	v.SetDefault("thresholds.humidity_low", analyzer.DefaultHumidityLow)
	v.SetDefault("thresholds.humidity_high", analyzer.DefaultHumidityHigh)
	v.SetDefault("thresholds.hum_alert_low", 20.0)
	v.SetDefault("thresholds.hum_alert_high", 80.0)
	v.SetDefault("thresholds.battery_low", analyzer.DefaultBatteryLow)
	v.SetDefault("thresholds.battery_alert_low", 30.0)

	v.SetDefault("sinks.console", true)
	v.SetDefault("sinks.json", false)
	v.SetDefault("sinks.file", false)
	v.SetDefault("sinks.file_path", "sensormon.log")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

func validate(cfg *Config) error {
	if cfg.Queue.Capacity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, cfg.Queue.Capacity)
	}
	if cfg.Workers <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, cfg.Workers)
	}
	return nil
}

// AlertThresholds renders the config's alert-side overrides as the
// default actor.Thresholds record, for wiring into
// actor.NewSubsystemWithDefaults.
func (c *Config) AlertThresholds() actor.Thresholds {
	return actor.Thresholds{
		TempHigh: c.Thresholds.TempAlertHigh,
		TempLow:  c.Thresholds.TempAlertLow,
		HumHigh:  c.Thresholds.HumAlertHigh,
		HumLow:   c.Thresholds.HumAlertLow,
		BatLow:   c.Thresholds.BatteryAlertLow,
	}
}

// AnalyzerManager builds an analyzer.Manager pre-registered with the
// three built-in analyzers at the config's thresholds.
func (c *Config) AnalyzerManager() *analyzer.Manager {
	m := analyzer.NewManager()
	m.Register("temp", analyzer.NewTemperatureAnalyzer(c.Thresholds.TempWarn, c.Thresholds.TempCritical))
	m.Register("humidity", analyzer.NewHumidityAnalyzer(c.Thresholds.HumidityLow, c.Thresholds.HumidityHigh))
	m.Register("battery", analyzer.NewBatteryAnalyzer(c.Thresholds.BatteryLow))
	return m
}
