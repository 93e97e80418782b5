package errors

import "fmt"

// SuggestionGenerator generates actionable suggestions based on error category.
type SuggestionGenerator interface {
	Generate(category ErrorCategory, affectedPath string) []string
}

// NewSuggestionGenerator creates a new SuggestionGenerator.
func NewSuggestionGenerator() SuggestionGenerator {
	return &suggestionGenerator{}
}

// suggestionGenerator is the concrete implementation of SuggestionGenerator.
type suggestionGenerator struct{}

// Generate returns actionable suggestions based on the error category and affected path.
func (g *suggestionGenerator) Generate(category ErrorCategory, affectedPath string) []string {
	switch category {
	case CategoryPermission:
		return g.generatePermissionSuggestions(affectedPath)
	case CategoryPath:
		return g.generatePathSuggestions(affectedPath)
	case CategoryUnsupported:
		return g.generateUnsupportedSuggestions()
	case CategoryConnection:
		return g.generateConnectionSuggestions()
	case CategoryUnknown:
		return g.generateUnknownSuggestions(affectedPath)
	default:
		return g.generateUnknownSuggestions(affectedPath)
	}
}

func (g *suggestionGenerator) generateConnectionSuggestions() []string {
	return []string{
		"Check that the host is reachable and runs an SSH server",
		"Make sure your key is loaded in ssh-agent or stored unencrypted in ~/.ssh",
		"Verify the host key in ~/.ssh/known_hosts matches the server",
	}
}

func (g *suggestionGenerator) generatePathSuggestions(path string) []string {
	suggestions := []string{
		"Verify the path exists and is spelled correctly",
	}

	if path != "" {
		suggestions = append(suggestions, "Check if the file exists: "+path)
	}

	return suggestions
}

func (g *suggestionGenerator) generatePermissionSuggestions(path string) []string {
	suggestions := []string{
		"Changing timestamps requires being the file owner or having write access",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Check ownership with 'ls -la %s'", path))
	} else {
		suggestions = append(suggestions, "Check ownership with 'ls -la' on the affected path")
	}

	suggestions = append(suggestions, "Make sure the filesystem is not mounted read-only")

	return suggestions
}

func (g *suggestionGenerator) generateUnknownSuggestions(path string) []string {
	suggestions := []string{
		"Check the error message for more details",
		"Run again with --verbose for debug output",
	}

	if path != "" {
		suggestions = append(suggestions, "Verify the path is accessible: "+path)
	}

	return suggestions
}

func (g *suggestionGenerator) generateUnsupportedSuggestions() []string {
	return []string{
		"This platform or protocol cannot write that timestamp",
		"Creation time can be set on Windows and macOS; on other systems set --modification and --access only",
	}
}
