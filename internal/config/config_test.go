package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// clearEnv unsets every FRG_* variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvProjectPath, EnvCasesDir, EnvOutputDir, EnvMode, EnvFramework, EnvPlatform, EnvIgnoreDirs} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestConfig_GetCasesPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default path",
			config:   &Config{ProjectPath: ".", CasesDir: "cases"},
			expected: "cases",
		},
		{
			name:     "relative to project",
			config:   &Config{ProjectPath: "/project", CasesDir: "tests/cases"},
			expected: "/project/tests/cases",
		},
		{
			name:     "absolute cases path",
			config:   &Config{ProjectPath: "/project", CasesDir: "/absolute/cases"},
			expected: "/absolute/cases",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetCasesPath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_GetOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "defaults to project path",
			config:   &Config{ProjectPath: "/project"},
			expected: "/project/unit_runner.c",
		},
		{
			name:     "relative output dir",
			config:   &Config{ProjectPath: "/project", OutputDir: "gen"},
			expected: "/project/gen/unit_runner.c",
		},
		{
			name:     "absolute output dir",
			config:   &Config{ProjectPath: "/project", OutputDir: "/tmp/out"},
			expected: "/tmp/out/unit_runner.c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetOutputPath("unit_runner.c")
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_IsApple(t *testing.T) {
	if (&Config{Platform: "darwin"}).IsApple() != true {
		t.Error("darwin should be an Apple platform")
	}
	if (&Config{Platform: "linux"}).IsApple() != false {
		t.Error("linux should not be an Apple platform")
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}
	if cfg.CasesDir != DefaultCasesDir {
		t.Errorf("expected CasesDir %s, got %s", DefaultCasesDir, cfg.CasesDir)
	}
	if cfg.Mode != DefaultMode {
		t.Errorf("expected Mode %s, got %s", DefaultMode, cfg.Mode)
	}
	if cfg.Platform != DefaultPlatform {
		t.Errorf("expected Platform %s, got %s", DefaultPlatform, cfg.Platform)
	}
	if len(cfg.IgnoreDirs) != len(DefaultIgnoreDirs) {
		t.Errorf("expected %d dirs to ignore, got %d", len(DefaultIgnoreDirs), len(cfg.IgnoreDirs))
	}
}

func TestConfig_Load(t *testing.T) {
	t.Run("precedence file < env < flags", func(t *testing.T) {
		clearEnv(t)
		project := t.TempDir()

		yamlContent := `cases_dir: tests/cases
mode: split
framework: test
platform: linux
ignore_dirs:
  - vendor
  - build
`
		if err := os.WriteFile(filepath.Join(project, DefaultConfigFile), []byte(yamlContent), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		if err := os.WriteFile(filepath.Join(project, DefaultEnvFile), []byte("FRG_FRAMEWORK=pizza\n"), 0644); err != nil {
			t.Fatalf("failed to write env file: %v", err)
		}
		t.Setenv(EnvPlatform, "darwin")

		cfg := New()
		if err := cfg.Load(Flags{ProjectPath: project, Mode: "unified"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.CasesDir != "tests/cases" {
			t.Errorf("expected cases dir from file, got %s", cfg.CasesDir)
		}
		if cfg.Mode != "unified" {
			t.Errorf("expected mode from flags, got %s", cfg.Mode)
		}
		if cfg.Framework != "pizza" {
			t.Errorf("expected framework from .env, got %s", cfg.Framework)
		}
		if cfg.Platform != "darwin" {
			t.Errorf("expected platform from environment, got %s", cfg.Platform)
		}
		if !reflect.DeepEqual(cfg.IgnoreDirs, []string{"vendor", "build"}) {
			t.Errorf("expected ignore dirs from file, got %v", cfg.IgnoreDirs)
		}
		if cfg.ConfigFile != filepath.Join(project, DefaultConfigFile) {
			t.Errorf("expected config file to be recorded, got %s", cfg.ConfigFile)
		}
		if cfg.GetCasesPath() != filepath.Join(project, "tests", "cases") {
			t.Errorf("unexpected cases path %s", cfg.GetCasesPath())
		}
	})

	t.Run("no config file keeps defaults", func(t *testing.T) {
		clearEnv(t)
		project := t.TempDir()

		cfg := New()
		if err := cfg.Load(Flags{ProjectPath: project}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Mode != DefaultMode || cfg.CasesDir != DefaultCasesDir {
			t.Errorf("expected defaults, got mode=%s cases=%s", cfg.Mode, cfg.CasesDir)
		}
		if cfg.ConfigFile != "" {
			t.Errorf("expected no config file, got %s", cfg.ConfigFile)
		}
	})

	t.Run("ignore dirs from environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvIgnoreDirs, "vendor, third_party,,")

		cfg := New()
		if err := cfg.Load(Flags{ProjectPath: t.TempDir()}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(cfg.IgnoreDirs, []string{"vendor", "third_party"}) {
			t.Errorf("unexpected ignore dirs %v", cfg.IgnoreDirs)
		}
	})

	t.Run("explicit missing config file fails", func(t *testing.T) {
		clearEnv(t)
		project := t.TempDir()

		cfg := New()
		err := cfg.Load(Flags{ProjectPath: project, ConfigFile: filepath.Join(project, "missing.yaml")})
		if err == nil {
			t.Error("expected error for missing explicit config file")
		}
	})

	t.Run("invalid yaml fails", func(t *testing.T) {
		clearEnv(t)
		project := t.TempDir()
		if err := os.WriteFile(filepath.Join(project, DefaultConfigFile), []byte("mode: [unclosed"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg := New()
		if err := cfg.Load(Flags{ProjectPath: project}); err == nil {
			t.Error("expected error for invalid yaml")
		}
	})
}
