package cli

import (
	"testing"

	"frg/internal/logging"
)

func TestFlags_ToConfigFlags(t *testing.T) {
	flags := Flags{
		ProjectPath: "/work/fossil",
		CasesDir:    "tests/cases",
		Mode:        "split",
		Stdout:      true,
		NameFilter:  "c_*",
		JSON:        true,
	}

	got := flags.ToConfigFlags()
	if got.ProjectPath != "/work/fossil" || got.CasesDir != "tests/cases" || got.Mode != "split" {
		t.Errorf("path and mode flags not carried over: %+v", got)
	}
	if !got.Stdout || !got.JSON || got.NameFilter != "c_*" {
		t.Errorf("output flags not carried over: %+v", got)
	}
}

func TestFlags_LogLevel(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		want  logging.LogLevel
	}{
		{"default", Flags{}, logging.LevelInfo},
		{"verbose", Flags{Verbose: true}, logging.LevelDebug},
		{"quiet", Flags{Quiet: true}, logging.LevelError},
		{"verbose wins", Flags{Verbose: true, Quiet: true}, logging.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flags.LogLevel(); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
