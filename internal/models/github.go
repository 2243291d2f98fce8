package models

// GitHubProfile is the response body of the repository-host profile endpoint
type GitHubProfile struct {
	Profile      GitHubUser   `json:"profile" yaml:"profile"`
	Repositories []Repository `json:"repositories" yaml:"repositories"`
}

type GitHubUser struct {
	Name        string `json:"name" yaml:"name"`
	Bio         string `json:"bio" yaml:"bio"`
	Location    string `json:"location" yaml:"location"`
	Company     string `json:"company" yaml:"company"`
	Blog        string `json:"blog" yaml:"blog"`
	AvatarURL   string `json:"avatar_url" yaml:"avatar_url"`
	PublicRepos int    `json:"public_repos" yaml:"public_repos"`
	Followers   int    `json:"followers" yaml:"followers"`
	Following   int    `json:"following" yaml:"following"`
	CreatedAt   string `json:"created_at" yaml:"created_at"`
	UpdatedAt   string `json:"updated_at" yaml:"updated_at"`
}

// Repository is an owned, non-fork repository
type Repository struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	HTMLURL     string   `json:"html_url" yaml:"html_url"`
	Language    string   `json:"language" yaml:"language"`
	Stars       int      `json:"stars" yaml:"stars"`
	Forks       int      `json:"forks" yaml:"forks"`
	Watchers    int      `json:"watchers" yaml:"watchers"`
	Size        int      `json:"size" yaml:"size"`
	CreatedAt   string   `json:"created_at" yaml:"created_at"`
	UpdatedAt   string   `json:"updated_at" yaml:"updated_at"`
	Topics      []string `json:"topics" yaml:"topics"`
}

// ListedRepository is a repository shown in the starred and pinned lists,
// where the owner may be someone else.
type ListedRepository struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	HTMLURL     string   `json:"html_url" yaml:"html_url"`
	Language    string   `json:"language" yaml:"language"`
	Stars       int      `json:"stars" yaml:"stars"`
	Forks       int      `json:"forks" yaml:"forks"`
	Owner       string   `json:"owner" yaml:"owner"`
	OwnerAvatar string   `json:"owner_avatar" yaml:"owner_avatar"`
	Topics      []string `json:"topics" yaml:"topics"`
	CreatedAt   string   `json:"created_at" yaml:"created_at"`
	UpdatedAt   string   `json:"updated_at" yaml:"updated_at"`
}

type StarredRepositories struct {
	StarredRepositories []ListedRepository `json:"starred_repositories" yaml:"starred_repositories"`
	TotalStarred        int                `json:"total_starred" yaml:"total_starred"`
}

// PinnedRepositories approximates profile pins with the top starred own repositories
type PinnedRepositories struct {
	PinnedRepositories []ListedRepository `json:"pinned_repositories" yaml:"pinned_repositories"`
	TotalPinned        int                `json:"total_pinned" yaml:"total_pinned"`
}
