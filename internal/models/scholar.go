package models

// ScholarProfile is the response body of the academic profile endpoint
type ScholarProfile struct {
	Profile           ScholarAuthor `json:"profile" yaml:"profile"`
	TopPublications   []Publication `json:"top_publications" yaml:"top_publications"`
	TotalPublications int           `json:"total_publications" yaml:"total_publications"`
}

// ScholarAuthor holds the citation metrics and identity of an author
type ScholarAuthor struct {
	Name        string   `json:"name" yaml:"name"`
	Affiliation string   `json:"affiliation" yaml:"affiliation"`
	Interests   []string `json:"interests" yaml:"interests"`
	EmailDomain string   `json:"email_domain" yaml:"email_domain"`
	CitedBy     int      `json:"citedby" yaml:"citedby"`
	HIndex      int      `json:"hindex" yaml:"hindex"`
	I10Index    int      `json:"i10index" yaml:"i10index"`
	URLPicture  string   `json:"url_picture" yaml:"url_picture"`
	ScholarURL  string   `json:"scholar_url" yaml:"scholar_url"`
}

// Publication is a single paper ranked by citation count
type Publication struct {
	Title     string `json:"title" yaml:"title"`
	Authors   string `json:"authors" yaml:"authors"`
	Venue     string `json:"venue" yaml:"venue"`
	Year      string `json:"year" yaml:"year"`
	Citations int    `json:"citations" yaml:"citations"`
	URL       string `json:"url" yaml:"url"`
	Abstract  string `json:"abstract" yaml:"abstract"`
}
