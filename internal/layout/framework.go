package layout

import (
	"fmt"

	"frg/internal/domain"
)

// Framework is the macro family a runner is written against
type Framework struct {
	Name    string
	Include string // Header included at the top of the runner
	Export  string // Macro declaring a test group
	Import  string // Macro registering a test group with the session
	Start   string // Macro opening the test session
	Footer  []string
	Closing string // Line closing the main function
}

const (
	// FrameworkPizza is the current Fossil Test (pizza) macro family
	FrameworkPizza = "pizza"
	// FrameworkTest is the older fossil/test macro family
	FrameworkTest = "test"
)

var frameworks = map[string]Framework{
	FrameworkPizza: {
		Name:    FrameworkPizza,
		Include: "fossil/pizza/framework.h",
		Export:  "FOSSIL_TEST_EXPORT",
		Import:  "FOSSIL_TEST_IMPORT",
		Start:   "FOSSIL_TEST_START",
		Footer: []string{
			"FOSSIL_RUN_ALL();",
			"FOSSIL_SUMMARY();",
			"return FOSSIL_END();",
		},
		Closing: "} // end of main",
	},
	FrameworkTest: {
		Name:    FrameworkTest,
		Include: "fossil/test/framework.h",
		Export:  "FOSSIL_TEST_EXPORT",
		Import:  "FOSSIL_TEST_IMPORT",
		Start:   "FOSSIL_TEST_START",
		Footer: []string{
			"FOSSIL_TEST_RUN();",
			"FOSSIL_TEST_SUMMARY();",
			"FOSSIL_TEST_END();",
		},
		Closing: "} // end of func",
	},
}

// LookupFramework returns the framework registered under name
func LookupFramework(name string) (Framework, error) {
	fw, ok := frameworks[name]
	if !ok {
		return Framework{}, fmt.Errorf("%w: %q (expected %q or %q)", domain.ErrUnknownFramework, name, FrameworkPizza, FrameworkTest)
	}
	return fw, nil
}
