package errors_test

import (
	"errors"
	"io/fs"
	"os"
	"testing"

	pkgerrors "github.com/joe/filetime/pkg/errors"
)

func TestEnricher_EnrichAlreadyActionableError(t *testing.T) {
	t.Parallel()

	enricher := pkgerrors.NewEnricher()
	original := pkgerrors.NewActionableError(
		"permission denied",
		pkgerrors.CategoryPermission,
		[]string{"existing suggestion"},
		"/original/path",
	)

	enriched := enricher.Enrich(original, "/new/path")

	var actionableErr pkgerrors.ActionableError
	if !errors.As(enriched, &actionableErr) {
		t.Fatalf("expected ActionableError, got %T", enriched)
	}

	if actionableErr != original {
		t.Error("expected same ActionableError instance when enriching ActionableError")
	}
}

func TestEnricher_EnrichNil(t *testing.T) {
	t.Parallel()

	if enriched := pkgerrors.NewEnricher().Enrich(nil, "/a"); enriched != nil {
		t.Errorf("expected nil, got %v", enriched)
	}
}

func TestEnricher_EnrichKeepsCause(t *testing.T) {
	t.Parallel()

	original := &fs.PathError{Op: "chtimes", Path: "/tmp/a", Err: os.ErrPermission}
	enriched := pkgerrors.NewEnricher().Enrich(original, "")

	if !errors.Is(enriched, os.ErrPermission) {
		t.Errorf("expected enriched error to wrap os.ErrPermission, got %v", enriched)
	}

	if enriched.Error() != original.Error() {
		t.Errorf("Error() = %q, want %q", enriched.Error(), original.Error())
	}

	var actionableErr pkgerrors.ActionableError
	if !errors.As(enriched, &actionableErr) {
		t.Fatalf("expected ActionableError, got %T", enriched)
	}

	if actionableErr.Category() != pkgerrors.CategoryPermission {
		t.Errorf("expected category %q, got %q", pkgerrors.CategoryPermission, actionableErr.Category())
	}
}

func TestEnricher_ExtractPathFromErrorMessage(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		errorMsg string
		expected string
	}{
		{"chtimes /home/user/file.txt: operation not permitted", "/home/user/file.txt"},
		{"failed to set access time for ./notes.md: chtimes ./notes.md: permission denied", "./notes.md"},
		{`CreateFile C:\Users\joe\a.txt: Access is denied.`, `C:\Users\joe\a.txt`},
		{"setting creation time is not supported on linux", ""},
	}

	enricher := pkgerrors.NewEnricher()

	for _, testCase := range testCases {
		enriched := enricher.Enrich(errors.New(testCase.errorMsg), "")

		var actionableErr pkgerrors.ActionableError
		if !errors.As(enriched, &actionableErr) {
			t.Fatalf("expected ActionableError, got %T", enriched)
		}

		if actionableErr.AffectedPath() != testCase.expected {
			t.Errorf("AffectedPath() = %q, want %q for %q",
				actionableErr.AffectedPath(), testCase.expected, testCase.errorMsg)
		}
	}
}

func TestEnricher_ExplicitPathWins(t *testing.T) {
	t.Parallel()

	enriched := pkgerrors.NewEnricher().Enrich(errors.New("chtimes /a: permission denied"), "/explicit")

	var actionableErr pkgerrors.ActionableError
	if !errors.As(enriched, &actionableErr) {
		t.Fatalf("expected ActionableError, got %T", enriched)
	}

	if actionableErr.AffectedPath() != "/explicit" {
		t.Errorf("AffectedPath() = %q, want /explicit", actionableErr.AffectedPath())
	}

	if pkgerrors.FormatSuggestions(enriched) == "" {
		t.Error("expected formatted suggestions")
	}
}
