package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	CasesDir    string

	// Output settings; an empty OutputDir means the project path
	OutputDir string

	// Generation settings
	Mode      string
	Framework string
	Platform  string

	// Directory names to skip when scanning
	IgnoreDirs []string

	// Config file that was applied, if any
	ConfigFile string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags. Empty values leave the configuration untouched.
type Flags struct {
	ProjectPath string
	CasesDir    string
	OutputDir   string
	Mode        string
	Framework   string
	Platform    string
	ConfigFile  string
	Stdout      bool
	Verbose     bool
	Quiet       bool
	NameFilter  string
	ShowFiles   bool
	JSON        bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath: DefaultProjectPath,
		CasesDir:    DefaultCasesDir,
		Mode:        DefaultMode,
		Platform:    DefaultPlatform,
	}
	// Copy default directories to ignore
	cfg.IgnoreDirs = make([]string, len(DefaultIgnoreDirs))
	copy(cfg.IgnoreDirs, DefaultIgnoreDirs)
	return cfg
}

// Load applies, in order of increasing precedence, the config file, the
// environment (after loading the project's .env) and the command-line flags
func (c *Config) Load(flags Flags) error {
	c.Flags = flags

	// The project path decides where .env and .frg.yaml live, so resolve it first
	if v := os.Getenv(EnvProjectPath); v != "" {
		c.ProjectPath = v
	}
	if flags.ProjectPath != "" {
		c.ProjectPath = flags.ProjectPath
	}

	if err := LoadEnvFile(filepath.Join(c.ProjectPath, DefaultEnvFile)); err != nil {
		return err
	}

	configFile := flags.ConfigFile
	explicit := configFile != ""
	if !explicit {
		configFile = filepath.Join(c.ProjectPath, DefaultConfigFile)
	}
	fc, err := LoadFile(configFile)
	switch {
	case err == nil:
		c.ApplyFile(fc)
		c.ConfigFile = configFile
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// No project config file, defaults apply
	default:
		return err
	}

	c.ApplyEnv()
	c.ApplyFlags(flags)
	return nil
}

// ApplyFlags overrides settings with non-empty flag values
func (c *Config) ApplyFlags(flags Flags) {
	if flags.ProjectPath != "" {
		c.ProjectPath = flags.ProjectPath
	}
	if flags.CasesDir != "" {
		c.CasesDir = flags.CasesDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.Framework != "" {
		c.Framework = flags.Framework
	}
	if flags.Platform != "" {
		c.Platform = flags.Platform
	}
}

// GetCasesPath returns the directory to scan
func (c *Config) GetCasesPath() string {
	return c.resolve(c.CasesDir)
}

// GetOutputDir returns the directory runners are written to
func (c *Config) GetOutputDir() string {
	if c.OutputDir == "" {
		return filepath.Clean(c.ProjectPath)
	}
	return c.resolve(c.OutputDir)
}

// GetOutputPath returns the destination path of a runner file
func (c *Config) GetOutputPath(filename string) string {
	return filepath.Join(c.GetOutputDir(), filename)
}

// IsApple reports whether Objective-C and Objective-C++ sources are scanned
func (c *Config) IsApple() bool {
	return c.Platform == ApplePlatform
}

// String summarizes the effective settings
func (c *Config) String() string {
	return fmt.Sprintf("cases=%s output=%s mode=%s framework=%s platform=%s",
		c.GetCasesPath(), c.GetOutputDir(), c.Mode, c.Framework, c.Platform)
}

// resolve makes path relative to the project path unless it is absolute
func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(c.ProjectPath, path)
}
