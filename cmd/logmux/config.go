package main

import (
	"time"

	"github.com/kbukum/streamkit/config"
	"github.com/kbukum/streamkit/validation"
)

// Config drives a logmux run: which access logs to follow, how to
// filter them, and whether to ship telemetry.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	// Sources are the access-log files to follow and multiplex.
	Sources []string `yaml:"sources" mapstructure:"sources" validate:"required,min=1,dive,required"`

	// StatusFilter keeps only records with this HTTP status. Zero
	// keeps everything.
	StatusFilter int `yaml:"status_filter" mapstructure:"status_filter" validate:"gte=0,lte=599"`

	// PollInterval is the fallback re-check interval while tailing.
	PollInterval time.Duration `yaml:"poll_interval" mapstructure:"poll_interval"`

	// FromStart replays existing file content before following.
	FromStart bool `yaml:"from_start" mapstructure:"from_start"`

	// Lenient drops unparseable lines instead of stopping the run.
	Lenient bool `yaml:"lenient" mapstructure:"lenient"`

	Telemetry TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// TelemetryConfig enables OpenTelemetry export.
type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,hostname_port"`
}

func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "logmux"
	}
	c.ServiceConfig.ApplyDefaults()
	if c.StatusFilter == 0 {
		c.StatusFilter = 404
	}
	if c.PollInterval <= 0 {
		c.PollInterval = time.Second
	}
}

func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(c)
}
