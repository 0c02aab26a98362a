package domain

import "errors"

var (
	// ErrCasesDirNotFound is returned when the directory to scan does not exist
	ErrCasesDirNotFound = errors.New("cases directory does not exist")
	// ErrCasesNotDir is returned when the path to scan is not a directory
	ErrCasesNotDir = errors.New("cases path is not a directory")
	// ErrUnknownMode is returned for an unsupported generation mode
	ErrUnknownMode = errors.New("unknown generation mode")
	// ErrUnknownFramework is returned for an unsupported framework name
	ErrUnknownFramework = errors.New("unknown framework")
	// ErrStaleArtifact is returned by check when a runner is missing or outdated
	ErrStaleArtifact = errors.New("runner artifact is out of date")
)
