package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.SourceURL == "" {
		t.Error("Default() SourceURL is empty")
	}
	if cfg.OutputFile == "" {
		t.Error("Default() OutputFile is empty")
	}
	th := cfg.Thresholds()
	if th.UVMinColumn != 35 || th.UVMaxColumn != 46 {
		t.Errorf("Thresholds() columns = (%d, %d), want (35, 46)", th.UVMinColumn, th.UVMaxColumn)
	}
	if th.FluxFloor != 0.05 {
		t.Errorf("Thresholds() FluxFloor = %v, want 0.05", th.FluxFloor)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `source_url: https://example.org/callist
parser:
  uvmin_column: 30
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SourceURL != "https://example.org/callist" {
		t.Errorf("SourceURL = %q, want the file value", cfg.SourceURL)
	}
	if cfg.Parser.UVMinColumn != 30 {
		t.Errorf("Parser.UVMinColumn = %d, want 30", cfg.Parser.UVMinColumn)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Parser.UVMaxColumn != 46 {
		t.Errorf("Parser.UVMaxColumn = %d, want default 46", cfg.Parser.UVMaxColumn)
	}
	if cfg.OutputFile != Default().OutputFile {
		t.Errorf("OutputFile = %q, want default %q", cfg.OutputFile, Default().OutputFile)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() of a missing file returned nil error")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- not yaml"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML returned nil error")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvSourceURL, "https://mirror.example.org/callist")
	t.Setenv(EnvOutputFile, "mirror.xml")

	cfg := Default()
	cfg.ApplyEnv()
	if cfg.SourceURL != "https://mirror.example.org/callist" {
		t.Errorf("SourceURL = %q, want the env value", cfg.SourceURL)
	}
	if cfg.OutputFile != "mirror.xml" {
		t.Errorf("OutputFile = %q, want the env value", cfg.OutputFile)
	}
}

func TestApplyEnvEmptyKeepsValues(t *testing.T) {
	t.Setenv(EnvSourceURL, "")
	t.Setenv(EnvOutputFile, "")

	cfg := Default()
	want := cfg
	cfg.ApplyEnv()
	if cfg != want {
		t.Errorf("ApplyEnv() with empty vars changed config: %+v", cfg)
	}
}
