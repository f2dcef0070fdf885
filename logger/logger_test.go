package logger

import (
	"errors"
	"os"
	"testing"
	"time"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNew(t *testing.T) {
	cfg := &Config{
		Level:  "debug",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg, "my-service")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "my-service" {
		t.Errorf("expected service 'my-service', got %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{
		Level:  "invalid-level",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg, "test")
	if l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer os.Unsetenv("LOG_LEVEL")
	defer os.Unsetenv("LOG_FORMAT")

	l := NewFromEnv("env-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestWithComponent(t *testing.T) {
	l := NewDefault("test")
	cl := l.WithComponent("handoff")
	if cl == nil {
		t.Fatal("expected non-nil logger")
	}
	if cl.service != "test" {
		t.Errorf("service should be preserved, got %q", cl.service)
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" || cfg.Format != "console" || cfg.Output != "stdout" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Timestamp {
		t.Error("expected Timestamp default true")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Level: "info", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	cfg.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("expected invalid level error")
	}
}

func TestFields(t *testing.T) {
	m := Fields("stream", "merged", "items", 3)
	if m["stream"] != "merged" || m["items"] != 3 {
		t.Errorf("unexpected fields: %v", m)
	}
}

func TestFields_OddArgsIgnored(t *testing.T) {
	m := Fields("only-key")
	if len(m) != 0 {
		t.Errorf("expected empty map, got %v", m)
	}
}

func TestErrorFields(t *testing.T) {
	m := ErrorFields("pump", errors.New("broken"))
	if m[FieldOperation] != "pump" || m[FieldError] != "broken" {
		t.Errorf("unexpected fields: %v", m)
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("drain", 1500*time.Millisecond)
	if m[FieldDuration] != int64(1500) {
		t.Errorf("unexpected duration field: %v", m[FieldDuration])
	}
}

func TestRegistry(t *testing.T) {
	l := NewDefault("registered")
	Register("mine", l)
	if Get("mine") != l {
		t.Error("expected registered logger back")
	}
	if Get("unknown") == nil {
		t.Error("expected fallback logger for unknown name")
	}
}
