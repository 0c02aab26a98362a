package cli

import (
	"frg/internal/config"
	"frg/internal/logging"
)

// Flags holds command-line flags
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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ProjectPath: f.ProjectPath,
		CasesDir:    f.CasesDir,
		OutputDir:   f.OutputDir,
		Mode:        f.Mode,
		Framework:   f.Framework,
		Platform:    f.Platform,
		ConfigFile:  f.ConfigFile,
		Stdout:      f.Stdout,
		Verbose:     f.Verbose,
		Quiet:       f.Quiet,
		NameFilter:  f.NameFilter,
		ShowFiles:   f.ShowFiles,
		JSON:        f.JSON,
	}
}

// LogLevel returns the log level selected by --verbose and --quiet
func (f *Flags) LogLevel() logging.LogLevel {
	switch {
	case f.Verbose:
		return logging.LevelDebug
	case f.Quiet:
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}
