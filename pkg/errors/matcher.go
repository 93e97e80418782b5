package errors

import "strings"

// PatternMatcher matches error messages to categories using string patterns.
type PatternMatcher interface {
	Match(errorMsg string) ErrorCategory
}

// NewPatternMatcher creates a new PatternMatcher with predefined patterns.
// Categories are tried in order, so a message naming both an unsupported
// attribute and a path is reported as unsupported.
func NewPatternMatcher() PatternMatcher {
	return &patternMatcher{
		rules: []matchRule{
			{CategoryUnsupported, []string{
				"not supported",
				"not implemented",
			}},
			{CategoryConnection, []string{
				"ssh connection failed",
				"failed to connect",
				"no ssh authentication methods",
				"unable to authenticate",
				"connection refused",
				"no route to host",
				"i/o timeout",
				"knownhosts",
			}},
			{CategoryPermission, []string{
				"permission denied",
				"access is denied",
				"operation not permitted",
				"read-only file system",
			}},
			{CategoryPath, []string{
				"no such file or directory",
				"file not found",
				"does not exist",
				"cannot find the file",
			}},
		},
	}
}

type matchRule struct {
	category ErrorCategory
	patterns []string
}

// patternMatcher is the concrete implementation of PatternMatcher.
type patternMatcher struct {
	rules []matchRule
}

// Match returns the category of the first rule with a matching pattern.
func (m *patternMatcher) Match(errorMsg string) ErrorCategory {
	lowerMsg := strings.ToLower(errorMsg)

	for _, rule := range m.rules {
		for _, pattern := range rule.patterns {
			if strings.Contains(lowerMsg, pattern) {
				return rule.category
			}
		}
	}

	return CategoryUnknown
}
