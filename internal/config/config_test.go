package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaults(t *testing.T) {
	v, err := New("")
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutputDir != "assets/images" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.FontPath != "" || cfg.Jobs != 1 || cfg.Manifest || len(cfg.Only) != 0 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BRANDGEN_OUTPUT_DIR", "/tmp/brand")
	t.Setenv("BRANDGEN_JOBS", "4")
	t.Setenv("BRANDGEN_LOG_LEVEL", "debug")

	v, err := New("")
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutputDir != "/tmp/brand" || cfg.Jobs != 4 || cfg.Logging.Level != "debug" {
		t.Errorf("env not applied: %+v", cfg)
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brandgen.yaml")
	data := []byte(`output_dir: out
font_path: /fonts/mono.ttf
manifest: true
only: [icon, favicon]
log:
  format: json
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	v, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutputDir != "out" || cfg.FontPath != "/fonts/mono.ttf" || !cfg.Manifest {
		t.Errorf("file not applied: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Only, []string{"icon", "favicon"}) {
		t.Errorf("Only = %v", cfg.Only)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "warn" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestMissingExplicitFile(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	ok := Config{OutputDir: "x", Jobs: 1, Logging: LoggingConfig{Format: "text"}}
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"json", func(c *Config) { c.Logging.Format = "JSON" }, false},
		{"empty dir", func(c *Config) { c.OutputDir = "" }, true},
		{"zero jobs", func(c *Config) { c.Jobs = 0 }, true},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ok
			tt.mutate(&c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
