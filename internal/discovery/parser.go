package discovery

import (
	"fmt"
	"os"
	"regexp"
	"sort"
)

// GroupMacro is the macro that declares a test group in a source file
const GroupMacro = "FOSSIL_TEST_GROUP"

// groupPattern matches FOSSIL_TEST_GROUP(identifier). Anything else inside the
// parentheses (spaces, expressions, nested calls) does not match.
var groupPattern = regexp.MustCompile(GroupMacro + `\(([A-Za-z_][A-Za-z0-9_]*)\)`)

// Parser extracts test group identifiers from test-source files
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// FindGroups returns the sorted, distinct groups declared in a file
func (p *Parser) FindGroups(filePath string) ([]string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}
	return p.ParseGroups(content), nil
}

// ParseGroups returns the sorted, distinct groups declared in content.
// Content is treated as raw bytes so invalid UTF-8 never causes a failure.
func (p *Parser) ParseGroups(content []byte) []string {
	groupsMap := make(map[string]bool)
	for _, match := range groupPattern.FindAllSubmatch(content, -1) {
		if len(match) > 1 {
			groupsMap[string(match[1])] = true
		}
	}

	groups := make([]string, 0, len(groupsMap))
	for group := range groupsMap {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	return groups
}
