// Package config provides configuration loading and validation for dfrgram.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidTopN      = errors.New("chart top_n must be positive")
	ErrInvalidMinCount  = errors.New("pipeline min_count must not be negative")
	ErrInvalidChartSize = errors.New("chart width and height must not be negative")
	ErrInvalidLogFormat = errors.New("logging format must be text or json")
	ErrInvalidSampling  = errors.New("telemetry sample_ratio must be within [0, 1]")
)

// Config file lookup.
const (
	configName = "dfrgram"
	configType = "yaml"
	envPrefix  = "DFRGRAM"

	keyIncludeCustom = "pipeline.include_custom"
)

// Config holds all configuration for dfrgram.
type Config struct {
	Paths     PathsConfig     `mapstructure:"paths"`
	Pipeline  PipelineConfig  `mapstructure:"pipeline"`
	Chart     ChartConfig     `mapstructure:"chart"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// PathsConfig holds input and output locations.
type PathsConfig struct {
	MetadataDir     string `mapstructure:"metadata_dir"`
	NgramDir        string `mapstructure:"ngram_dir"`
	OutputDir       string `mapstructure:"output_dir"`
	CustomStopwords string `mapstructure:"custom_stopwords"`
	LemmaDict       string `mapstructure:"lemma_dict"`
}

// PipelineConfig holds the unigram normalization settings.
type PipelineConfig struct {
	Lemmatizer      string   `mapstructure:"lemmatizer"`
	StopwordSources []string `mapstructure:"stopword_sources"`
	MinCount        int      `mapstructure:"min_count"`
	RemoveMixed     bool     `mapstructure:"remove_mixed"`

	// IncludeCustom is nil unless include_custom is set explicitly.
	// See Config.IncludeCustom for the effective value.
	IncludeCustom *bool `mapstructure:"include_custom"`
}

// ChartConfig holds top-n chart settings.
type ChartConfig struct {
	Journal string `mapstructure:"journal"`
	Theme   string `mapstructure:"theme"`
	TopN    int    `mapstructure:"top_n"`
	Width   int    `mapstructure:"width"`
	Height  int    `mapstructure:"height"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TelemetryConfig holds tracing and metrics export settings.
type TelemetryConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// OTLPHeaders holds extra exporter headers as "key=value,key=value".
	OTLPHeaders     string  `mapstructure:"otlp_headers"`
	MetricsTextfile string  `mapstructure:"metrics_textfile"`
	SampleRatio     float64 `mapstructure:"sample_ratio"`
	OTLPInsecure    bool    `mapstructure:"otlp_insecure"`
}

// LoadConfig loads configuration from file and environment variables.
// An empty configPath searches for dfrgram.yaml; a missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.SetConfigType(configType)
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")

		home, homeErr := os.UserHomeDir()
		if homeErr == nil {
			viperCfg.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	// include_custom has no default, so only a file or env value sets it.
	if viperCfg.IsSet(keyIncludeCustom) {
		include := viperCfg.GetBool(keyIncludeCustom)
		config.Pipeline.IncludeCustom = &include
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("paths.metadata_dir", DefaultMetadataDir)
	viperCfg.SetDefault("paths.ngram_dir", DefaultNgramDir)
	viperCfg.SetDefault("paths.output_dir", DefaultOutputDir)
	viperCfg.SetDefault("paths.custom_stopwords", "")
	viperCfg.SetDefault("paths.lemma_dict", "")

	viperCfg.SetDefault("pipeline.lemmatizer", DefaultLemmatizer)
	viperCfg.SetDefault("pipeline.stopword_sources", DefaultStopwordSources())
	viperCfg.SetDefault("pipeline.min_count", DefaultMinCount)
	viperCfg.SetDefault("pipeline.remove_mixed", DefaultRemoveMixed)

	viperCfg.SetDefault("chart.top_n", DefaultTopN)
	viperCfg.SetDefault("chart.journal", DefaultJournal)
	viperCfg.SetDefault("chart.theme", DefaultTheme)
	viperCfg.SetDefault("chart.width", DefaultWidth)
	viperCfg.SetDefault("chart.height", DefaultHeight)

	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.format", DefaultLogFormat)

	viperCfg.SetDefault("telemetry.otlp_endpoint", "")
	viperCfg.SetDefault("telemetry.otlp_headers", "")
	viperCfg.SetDefault("telemetry.otlp_insecure", DefaultOTLPInsecure)
	viperCfg.SetDefault("telemetry.sample_ratio", DefaultSampleRatio)
	viperCfg.SetDefault("telemetry.metrics_textfile", "")
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Chart.TopN <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTopN, config.Chart.TopN)
	}

	if config.Pipeline.MinCount < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMinCount, config.Pipeline.MinCount)
	}

	if config.Chart.Width < 0 || config.Chart.Height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidChartSize, config.Chart.Width, config.Chart.Height)
	}

	if config.Telemetry.SampleRatio < 0 || config.Telemetry.SampleRatio > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidSampling, config.Telemetry.SampleRatio)
	}

	switch strings.ToLower(config.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, config.Logging.Format)
	}

	return nil
}

// IncludeCustom reports whether the custom stopword list is applied. Unless
// include_custom is set explicitly, it is applied whenever a custom stopword
// file is configured.
func (c *Config) IncludeCustom() bool {
	if c.Pipeline.IncludeCustom != nil {
		return *c.Pipeline.IncludeCustom
	}

	return c.Paths.CustomStopwords != ""
}

// LogJSON reports whether logs should be written as JSON.
func (c *Config) LogJSON() bool {
	return strings.EqualFold(c.Logging.Format, "json")
}
