package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/msto63/dynstr/pkg/core/error"
	"github.com/msto63/dynstr/pkg/core/log"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"milliseconds", "250ms", 250 * time.Millisecond, false},
		{"invalid", "soon", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	d := Duration{5 * time.Minute}
	result, err := d.MarshalText()
	if err != nil || string(result) != "5m0s" {
		t.Errorf("MarshalText() = %q, %v", result, err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.Name != "dynstr" {
		t.Errorf("General.Name = %v, want dynstr", cfg.General.Name)
	}
	if cfg.Level() != log.LevelWarn {
		t.Errorf("Level() = %v, want warn", cfg.Level())
	}
	if cfg.Format() != log.FormatConsole {
		t.Errorf("Format() = %v, want console", cfg.Format())
	}
	if cfg.Buffer.MaxCapacity != 0 {
		t.Errorf("Buffer.MaxCapacity = %d, want unlimited", cfg.Buffer.MaxCapacity)
	}
	if cfg.REPL.History != 200 || cfg.REPL.StatusTimeout.Duration != 3*time.Second {
		t.Errorf("REPL defaults = %+v", cfg.REPL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "dynstr.toml", `
[general]
name = "test"
log_level = "debug"
log_format = "json"

[buffer]
max_capacity = 4096

[random]
seed = 42

[output]
styled = true

[repl]
history = 10
status_timeout = "500ms"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.Name != "test" || cfg.Level() != log.LevelDebug || cfg.Format() != log.FormatJSON {
		t.Errorf("General = %+v", cfg.General)
	}
	if cfg.Buffer.MaxCapacity != 4096 {
		t.Errorf("Buffer.MaxCapacity = %d", cfg.Buffer.MaxCapacity)
	}
	if cfg.Random.Seed != 42 || !cfg.Output.Styled {
		t.Errorf("Random = %+v, Output = %+v", cfg.Random, cfg.Output)
	}
	if cfg.REPL.History != 10 || cfg.REPL.StatusTimeout.Duration != 500*time.Millisecond {
		t.Errorf("REPL = %+v", cfg.REPL)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "dynstr.yml", `
general:
  log_level: trace
buffer:
  max_capacity: 128
repl:
  status_timeout: 2s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Level() != log.LevelTrace {
		t.Errorf("Level() = %v, want trace", cfg.Level())
	}
	if cfg.General.Name != "dynstr" {
		t.Errorf("defaults not applied, Name = %q", cfg.General.Name)
	}
	if cfg.Buffer.MaxCapacity != 128 {
		t.Errorf("Buffer.MaxCapacity = %d", cfg.Buffer.MaxCapacity)
	}
	if cfg.REPL.StatusTimeout.Duration != 2*time.Second {
		t.Errorf("REPL.StatusTimeout = %v", cfg.REPL.StatusTimeout)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
		code mdwerror.Code
	}{
		{"bad toml", "c.toml", "[general\nname=", mdwerror.CodeConfigError},
		{"bad yaml", "c.yaml", "general: [unclosed", mdwerror.CodeConfigError},
		{"unsupported extension", "c.json", "{}", mdwerror.CodeConfigError},
		{"unknown level", "c.toml", "[general]\nlog_level = \"loud\"\n", mdwerror.CodeInvalidConfig},
		{"unknown format", "c.toml", "[general]\nlog_format = \"xml\"\n", mdwerror.CodeInvalidConfig},
		{"negative capacity", "c.toml", "[buffer]\nmax_capacity = -1\n", mdwerror.CodeInvalidConfig},
		{"bad duration", "c.toml", "[repl]\nstatus_timeout = \"later\"\n", mdwerror.CodeConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.body))
			if got := mdwerror.GetCode(err); got != tt.code {
				t.Errorf("Load() code = %v, want %v (err %v)", got, tt.code, err)
			}
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "env.toml", "[general]\nname = \"from-env\"\n")
	t.Setenv(EnvVar, path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.Name != "from-env" {
		t.Errorf("General.Name = %q", cfg.General.Name)
	}
}

func TestLoadFromEnv_NothingFound(t *testing.T) {
	t.Setenv(EnvVar, "")
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	_, err := LoadFromEnv()
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("LoadFromEnv() error = %v, want NOT_FOUND", err)
	}
}
