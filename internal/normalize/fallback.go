package normalize

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/omaratef3221/omaratef3221.github.io/internal/models"
)

// Fallback datasets are served when live data cannot be obtained. They
// decode into the same types as live responses, and every call returns a
// fresh copy that callers may modify.
//
//go:embed fallback/*.yaml
var fallbackFS embed.FS

func mustLoad(name string, out interface{}) {
	data, err := fallbackFS.ReadFile("fallback/" + name)
	if err != nil {
		panic(fmt.Sprintf("fallback dataset %s missing: %v", name, err))
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		panic(fmt.Sprintf("fallback dataset %s is invalid: %v", name, err))
	}
}

// FallbackScholar returns the fixed academic profile
func FallbackScholar() models.ScholarProfile {
	var p models.ScholarProfile
	mustLoad("scholar.yaml", &p)
	return p
}

// FallbackGitHub returns the fixed repository-host profile
func FallbackGitHub() models.GitHubProfile {
	var p models.GitHubProfile
	mustLoad("github.yaml", &p)
	return p
}

// FallbackStarred returns an empty starred list
func FallbackStarred() models.StarredRepositories {
	var p models.StarredRepositories
	mustLoad("starred.yaml", &p)
	return p
}

// FallbackPinned returns the fixed pinned list
func FallbackPinned() models.PinnedRepositories {
	var p models.PinnedRepositories
	mustLoad("pinned.yaml", &p)
	return p
}

// FallbackLinkedIn returns the fixed professional-network profile
func FallbackLinkedIn() models.LinkedInProfile {
	var p models.LinkedInProfile
	mustLoad("linkedin.yaml", &p)
	return p
}
