package normalize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/omaratef3221/omaratef3221.github.io/internal/models"
)

const (
	topPublicationCount = 4
	scholarProfileURL   = "https://scholar.google.com/citations?user=%s&hl=en"
)

// NormalizeScholar maps an author record into the academic profile: the
// four most cited publications plus the total publication count.
func NormalizeScholar(authorID string, raw *models.ScholarAuthorResponse) models.ScholarProfile {
	if raw == nil || raw.Author == nil || raw.Error != "" {
		return FallbackScholar()
	}

	publications := ScholarPublications(raw)
	n := len(publications)
	if n > topPublicationCount {
		n = topPublicationCount
	}
	top := make([]models.Publication, n)
	copy(top, publications[:n])

	return models.ScholarProfile{
		Profile:           scholarAuthor(authorID, raw),
		TopPublications:   top,
		TotalPublications: len(publications),
	}
}

// ScholarPublications returns every resolvable publication, most cited
// first. Missing fields stay empty; only null entries are skipped.
func ScholarPublications(raw *models.ScholarAuthorResponse) []models.Publication {
	publications := make([]models.Publication, 0)
	if raw == nil {
		return publications
	}

	for _, article := range raw.Articles {
		if article == nil {
			continue
		}
		publications = append(publications, models.Publication{
			Title:     article.Title,
			Authors:   article.Authors,
			Venue:     article.Publication,
			Year:      article.Year,
			Citations: article.CitedBy.Value,
			URL:       article.Link,
			Abstract:  article.Abstract,
		})
	}

	sort.SliceStable(publications, func(i, j int) bool {
		return publications[i].Citations > publications[j].Citations
	})
	return publications
}

func scholarAuthor(authorID string, raw *models.ScholarAuthorResponse) models.ScholarAuthor {
	interests := make([]string, 0, len(raw.Author.Interests))
	for _, interest := range raw.Author.Interests {
		if interest.Title != "" {
			interests = append(interests, interest.Title)
		}
	}

	return models.ScholarAuthor{
		Name:        raw.Author.Name,
		Affiliation: raw.Author.Affiliations,
		Interests:   interests,
		EmailDomain: emailDomain(raw.Author.Email),
		CitedBy:     raw.CitedBy.Metric("citations"),
		HIndex:      raw.CitedBy.Metric("h_index"),
		I10Index:    raw.CitedBy.Metric("i10_index"),
		URLPicture:  raw.Author.Thumbnail,
		ScholarURL:  fmt.Sprintf(scholarProfileURL, authorID),
	}
}

// emailDomain turns "Verified email at example.edu" into "@example.edu"
func emailDomain(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	if _, domain, ok := strings.Cut(email, "email at"); ok {
		email = strings.TrimSpace(domain)
	} else if i := strings.LastIndex(email, "@"); i >= 0 {
		email = email[i+1:]
	}
	if email == "" || strings.ContainsAny(email, " \t") {
		return ""
	}
	return "@" + email
}
