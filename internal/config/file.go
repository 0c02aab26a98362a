package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the content of a .frg.yaml file
type FileConfig struct {
	CasesDir   string   `yaml:"cases_dir"`
	OutputDir  string   `yaml:"output_dir"`
	Mode       string   `yaml:"mode"`
	Framework  string   `yaml:"framework"`
	Platform   string   `yaml:"platform"`
	IgnoreDirs []string `yaml:"ignore_dirs"`
}

// LoadFile reads a YAML config file. A missing file yields an error
// satisfying errors.Is(err, fs.ErrNotExist).
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &fc, nil
}

// ApplyFile overrides settings with the non-empty values of fc
func (c *Config) ApplyFile(fc *FileConfig) {
	if fc.CasesDir != "" {
		c.CasesDir = fc.CasesDir
	}
	if fc.OutputDir != "" {
		c.OutputDir = fc.OutputDir
	}
	if fc.Mode != "" {
		c.Mode = fc.Mode
	}
	if fc.Framework != "" {
		c.Framework = fc.Framework
	}
	if fc.Platform != "" {
		c.Platform = fc.Platform
	}
	if fc.IgnoreDirs != nil {
		c.IgnoreDirs = append([]string(nil), fc.IgnoreDirs...)
	}
}
