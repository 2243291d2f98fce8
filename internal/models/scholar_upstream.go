package models

// ScholarAuthorResponse is the payload of the SerpAPI google_scholar_author engine
type ScholarAuthorResponse struct {
	Author   *ScholarAuthorInfo `json:"author"`
	Articles []*ScholarArticle  `json:"articles"`
	CitedBy  ScholarCitedBy     `json:"cited_by"`
	Error    string             `json:"error"`
}

type ScholarAuthorInfo struct {
	Name         string            `json:"name"`
	Affiliations string            `json:"affiliations"`
	Email        string            `json:"email"`
	Interests    []ScholarInterest `json:"interests"`
	Thumbnail    string            `json:"thumbnail"`
}

type ScholarInterest struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

type ScholarArticle struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	CitationID  string `json:"citation_id"`
	Authors     string `json:"authors"`
	Publication string `json:"publication"`
	Year        string `json:"year"`
	Abstract    string `json:"abstract"`
	CitedBy     struct {
		Value int    `json:"value"`
		Link  string `json:"link"`
	} `json:"cited_by"`
}

// ScholarCitedBy carries the metrics table: one single-key row per metric
// ("citations", "h_index", "i10_index"), each with an "all" column.
type ScholarCitedBy struct {
	Table []map[string]ScholarMetric `json:"table"`
}

type ScholarMetric struct {
	All int `json:"all"`
}

// Metric returns the all-time value of a metric row, zero when absent
func (c ScholarCitedBy) Metric(name string) int {
	for _, row := range c.Table {
		if m, ok := row[name]; ok {
			return m.All
		}
	}
	return 0
}
