// File: internal/config/config.go
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the application configuration. Private fields enforce access
// through the getter methods, keeping the loaded config read-only.
type Config struct {
	logger    LoggerConfig
	generator GeneratorConfig
}

// fileConfig is the decode target; viper cannot populate unexported fields
// directly.
type fileConfig struct {
	Logger    LoggerConfig    `mapstructure:"logger" yaml:"logger"`
	Generator GeneratorConfig `mapstructure:"generator" yaml:"generator"`
}

// Getters.
func (c *Config) Logger() LoggerConfig       { return c.logger }
func (c *Config) Generator() GeneratorConfig { return c.generator }

// SetGeneratorOutput overrides the generator output path, for the
// command-line flag.
func (c *Config) SetGeneratorOutput(path string) { c.generator.Output = path }

// SetGeneratorPackage overrides the generated package name.
func (c *Config) SetGeneratorPackage(name string) { c.generator.Package = name }

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color codes for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// GeneratorConfig configures the stylesheet-to-Go code generator.
type GeneratorConfig struct {
	// Package is the package name of the generated file.
	Package string `mapstructure:"package" yaml:"package"`
	// Output is the path of the generated file; "-" writes to stdout.
	Output string `mapstructure:"output" yaml:"output"`
	// VarPrefix is prepended to every exported handle variable.
	VarPrefix string `mapstructure:"var_prefix" yaml:"var_prefix"`
}

// NewDefaultConfig creates a configuration populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	cfg, err := NewConfigFromViper(v)
	if err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to build default config: %v", err))
	}
	return cfg
}

// SetDefaults initializes default values for all configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "peacock")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// -- Generator --
	v.SetDefault("generator.package", "styles")
	v.SetDefault("generator.output", "-")
	v.SetDefault("generator.var_prefix", "")
}

// NewConfigFromViper creates a configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var raw fileConfig
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg := &Config{logger: raw.Logger, generator: raw.Generator}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	switch c.logger.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logger.format must be \"console\" or \"json\", got %q", c.logger.Format)
	}
	if c.generator.Package == "" {
		return fmt.Errorf("generator.package must not be empty")
	}
	if c.generator.Output == "" {
		return fmt.Errorf("generator.output must not be empty")
	}
	return nil
}
