package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv
const (
	EnvProjectPath = "FRG_PROJECT_PATH"
	EnvCasesDir    = "FRG_CASES_DIR"
	EnvOutputDir   = "FRG_OUTPUT_DIR"
	EnvMode        = "FRG_MODE"
	EnvFramework   = "FRG_FRAMEWORK"
	EnvPlatform    = "FRG_PLATFORM"
	EnvIgnoreDirs  = "FRG_IGNORE_DIRS"
)

// LoadEnvFile loads a dotenv file into the process environment. Variables
// already set are not overridden and a missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides settings with FRG_* environment variables
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvCasesDir); v != "" {
		c.CasesDir = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv(EnvMode); v != "" {
		c.Mode = v
	}
	if v := os.Getenv(EnvFramework); v != "" {
		c.Framework = v
	}
	if v := os.Getenv(EnvPlatform); v != "" {
		c.Platform = v
	}
	if v := os.Getenv(EnvIgnoreDirs); v != "" {
		c.IgnoreDirs = nil
		for _, dir := range strings.Split(v, ",") {
			if dir = strings.TrimSpace(dir); dir != "" {
				c.IgnoreDirs = append(c.IgnoreDirs, dir)
			}
		}
	}
}
