package models

// LinkedInProfile is the response body of the professional-network endpoint
type LinkedInProfile struct {
	Name           string      `json:"name" yaml:"name"`
	Headline       string      `json:"headline" yaml:"headline"`
	Summary        string      `json:"summary" yaml:"summary"`
	Location       string      `json:"location" yaml:"location"`
	ProfilePicture string      `json:"profilePicture" yaml:"profilePicture"`
	Experience     []Position  `json:"experience" yaml:"experience"`
	Education      []Education `json:"education" yaml:"education"`
	Skills         []Skill     `json:"skills" yaml:"skills"`
}

// Position dates are display strings; EndDate is "Present" for open ranges.
type Position struct {
	Title       string `json:"title" yaml:"title"`
	Company     string `json:"company" yaml:"company"`
	Location    string `json:"location" yaml:"location"`
	Description string `json:"description" yaml:"description"`
	StartDate   string `json:"startDate" yaml:"startDate"`
	EndDate     string `json:"endDate" yaml:"endDate"`
	Duration    string `json:"duration" yaml:"duration"`
}

type Education struct {
	School       string `json:"school" yaml:"school"`
	Degree       string `json:"degree" yaml:"degree"`
	FieldOfStudy string `json:"fieldOfStudy" yaml:"fieldOfStudy"`
	StartDate    string `json:"startDate" yaml:"startDate"`
	EndDate      string `json:"endDate" yaml:"endDate"`
	Description  string `json:"description" yaml:"description"`
}

type Skill struct {
	Name         string `json:"name" yaml:"name"`
	Endorsements int    `json:"endorsements" yaml:"endorsements"`
}
