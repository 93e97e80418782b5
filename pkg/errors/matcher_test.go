package errors_test

import (
	"testing"

	"github.com/joe/filetime/pkg/errors"
)

func TestPatternMatcher_Match(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		errorMsg string
		expected errors.ErrorCategory
	}{
		{"permission denied", "chtimes /etc/hosts: permission denied", errors.CategoryPermission},
		{"not permitted", "chtimes /a: operation not permitted", errors.CategoryPermission},
		{"uppercase", "PERMISSION DENIED", errors.CategoryPermission},
		{"read-only", "chtimes /mnt/a: read-only file system", errors.CategoryPermission},
		{"windows access", "CreateFile: Access is denied.", errors.CategoryPermission},
		{"missing file", "statx /tmp/a: no such file or directory", errors.CategoryPath},
		{"missing file windows", "The system cannot find the file specified.", errors.CategoryPath},
		{"creation unsupported", "setting creation time is not supported on linux", errors.CategoryUnsupported},
		{"ssh refused", "failed to connect to joe@host:22: SSH connection failed: dial tcp: connection refused", errors.CategoryConnection},
		{"ssh auth", "ssh: handshake failed: ssh: unable to authenticate", errors.CategoryConnection},
		{"host key", "ssh: handshake failed: knownhosts: key mismatch", errors.CategoryConnection},
		{"unknown", "something odd happened", errors.CategoryUnknown},
		{"empty", "", errors.CategoryUnknown},
	}

	matcher := errors.NewPatternMatcher()

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			category := matcher.Match(testCase.errorMsg)
			if category != testCase.expected {
				t.Errorf("expected category %q, got %q for error: %q",
					testCase.expected, category, testCase.errorMsg)
			}
		})
	}
}

// TestPatternMatcher_UnsupportedWinsOverPath checks rule order when two categories match.
func TestPatternMatcher_UnsupportedWinsOverPath(t *testing.T) {
	t.Parallel()

	matcher := errors.NewPatternMatcher()

	category := matcher.Match("setting creation time is not supported: file not found")
	if category != errors.CategoryUnsupported {
		t.Errorf("expected %q, got %q", errors.CategoryUnsupported, category)
	}
}
