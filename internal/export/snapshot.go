package export

import (
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/omaratef3221/omaratef3221.github.io/internal/models"
	"github.com/omaratef3221/omaratef3221.github.io/internal/normalize"
)

const dateLayout = "2006-01-02"

// ScholarSnapshot is the static scholar.json document read by the site
type ScholarSnapshot struct {
	Profile           models.ScholarAuthor `json:"profile"`
	Publications      []models.Publication `json:"publications"`
	TotalPublications int                  `json:"total_publications"`
	LastUpdated       string               `json:"last_updated"`
}

// GitHubSnapshot is the static github.json document read by the site
type GitHubSnapshot struct {
	Repositories []models.ListedRepository `json:"repositories"`
	LastUpdated  string                    `json:"last_updated"`
}

// BuildScholarSnapshot keeps every publication, not just the top ones
func BuildScholarSnapshot(authorID string, raw *models.ScholarAuthorResponse, now time.Time) ScholarSnapshot {
	publications := normalize.ScholarPublications(raw)
	return ScholarSnapshot{
		Profile:           normalize.NormalizeScholar(authorID, raw).Profile,
		Publications:      publications,
		TotalPublications: len(publications),
		LastUpdated:       now.Format(dateLayout),
	}
}

// BuildGitHubSnapshot keeps the same top repositories the pinned endpoint shows
func BuildGitHubSnapshot(repos []*github.Repository, now time.Time) GitHubSnapshot {
	return GitHubSnapshot{
		Repositories: normalize.NormalizeGitHubPinned(repos).PinnedRepositories,
		LastUpdated:  now.Format(dateLayout),
	}
}
