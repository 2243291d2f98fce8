package normalize

import (
	"sort"
	"time"

	"github.com/google/go-github/v57/github"

	"github.com/omaratef3221/omaratef3221.github.io/internal/models"
)

const (
	starredLimit = 10
	// GitHub has no REST endpoint for profile pins; the most starred own
	// repositories stand in for them, six being the profile pin limit.
	pinnedLimit = 6
)

// NormalizeGitHub maps a user and their repositories into the profile
// response. Forks are dropped and the rest ranked by stars.
func NormalizeGitHub(user *github.User, repos []*github.Repository) models.GitHubProfile {
	if user == nil {
		return FallbackGitHub()
	}

	repositories := make([]models.Repository, 0, len(repos))
	for _, repo := range ownRepositories(repos) {
		repositories = append(repositories, models.Repository{
			Name:        repo.GetName(),
			Description: repo.GetDescription(),
			HTMLURL:     repo.GetHTMLURL(),
			Language:    repo.GetLanguage(),
			Stars:       repo.GetStargazersCount(),
			Forks:       repo.GetForksCount(),
			Watchers:    repo.GetWatchersCount(),
			Size:        repo.GetSize(),
			CreatedAt:   formatTimestamp(repo.GetCreatedAt()),
			UpdatedAt:   formatTimestamp(repo.GetUpdatedAt()),
			Topics:      topics(repo),
		})
	}

	return models.GitHubProfile{
		Profile: models.GitHubUser{
			Name:        user.GetName(),
			Bio:         user.GetBio(),
			Location:    user.GetLocation(),
			Company:     user.GetCompany(),
			Blog:        user.GetBlog(),
			AvatarURL:   user.GetAvatarURL(),
			PublicRepos: user.GetPublicRepos(),
			Followers:   user.GetFollowers(),
			Following:   user.GetFollowing(),
			CreatedAt:   formatTimestamp(user.GetCreatedAt()),
			UpdatedAt:   formatTimestamp(user.GetUpdatedAt()),
		},
		Repositories: repositories,
	}
}

// NormalizeGitHubStarred keeps the first ten starred repositories in
// upstream order while reporting the full count.
func NormalizeGitHubStarred(starred []*github.StarredRepository) models.StarredRepositories {
	if starred == nil {
		return FallbackStarred()
	}

	limit := len(starred)
	if limit > starredLimit {
		limit = starredLimit
	}

	listed := make([]models.ListedRepository, 0, limit)
	for _, s := range starred[:limit] {
		listed = append(listed, listedRepository(s.GetRepository()))
	}

	return models.StarredRepositories{
		StarredRepositories: listed,
		TotalStarred:        len(starred),
	}
}

// NormalizeGitHubPinned picks the six most starred non-fork repositories
func NormalizeGitHubPinned(repos []*github.Repository) models.PinnedRepositories {
	if repos == nil {
		return FallbackPinned()
	}

	own := ownRepositories(repos)
	if len(own) > pinnedLimit {
		own = own[:pinnedLimit]
	}

	listed := make([]models.ListedRepository, 0, len(own))
	for _, repo := range own {
		listed = append(listed, listedRepository(repo))
	}

	return models.PinnedRepositories{
		PinnedRepositories: listed,
		TotalPinned:        len(listed),
	}
}

// ownRepositories filters out forks and sorts by stars, descending and stable
func ownRepositories(repos []*github.Repository) []*github.Repository {
	own := make([]*github.Repository, 0, len(repos))
	for _, repo := range repos {
		if repo == nil || repo.GetFork() {
			continue
		}
		own = append(own, repo)
	}

	sort.SliceStable(own, func(i, j int) bool {
		return own[i].GetStargazersCount() > own[j].GetStargazersCount()
	})
	return own
}

func listedRepository(repo *github.Repository) models.ListedRepository {
	return models.ListedRepository{
		Name:        repo.GetName(),
		Description: repo.GetDescription(),
		HTMLURL:     repo.GetHTMLURL(),
		Language:    repo.GetLanguage(),
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		Owner:       repo.GetOwner().GetLogin(),
		OwnerAvatar: repo.GetOwner().GetAvatarURL(),
		Topics:      topics(repo),
		CreatedAt:   formatTimestamp(repo.GetCreatedAt()),
		UpdatedAt:   formatTimestamp(repo.GetUpdatedAt()),
	}
}

func topics(repo *github.Repository) []string {
	if repo == nil || repo.Topics == nil {
		return []string{}
	}
	return append([]string{}, repo.Topics...)
}

func formatTimestamp(ts github.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.RFC3339)
}
