package config

import "runtime"

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultCasesDir is the directory scanned for test sources, relative to the project path
	DefaultCasesDir = "cases"
	// DefaultMode is the default generation mode
	DefaultMode = "unified"
	// DefaultConfigFile is the config file looked up in the project path
	DefaultConfigFile = ".frg.yaml"
	// DefaultEnvFile is the dotenv file looked up in the project path
	DefaultEnvFile = ".env"
	// ApplePlatform is the platform on which Objective-C buckets are scanned
	ApplePlatform = "darwin"
)

// DefaultPlatform is the host platform
var DefaultPlatform = runtime.GOOS

// DefaultIgnoreDirs are the directories skipped when scanning. Every
// directory under the cases root is scanned unless configured otherwise.
var DefaultIgnoreDirs = []string{}
