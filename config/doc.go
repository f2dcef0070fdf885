// Package config provides configuration loading and validation for
// streamkit tools.
//
// It uses Viper to load configuration from files and environment
// variables, supporting YAML config files, .env files via godotenv, and
// environment-variable overrides with underscore-separated paths
// (e.g., LOGGING_LEVEL overrides logging.level).
//
// # Usage
//
//	type Config struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Sources []SourceConfig `yaml:"sources" mapstructure:"sources"`
//	}
//
//	var cfg Config
//	err := config.LoadConfig("logmux", &cfg)
package config
