package models

import (
	"bytes"
	"encoding/json"
)

// PartialDate is an upstream year/month pair where zero means unknown
type PartialDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// LinkedInPayload is a decoded LinkedIn profile response. The upstream may
// wrap the profile in a {"success": true, "data": {...}} envelope or return
// it bare; any response carrying an "error" key is kept as an error.
type LinkedInPayload struct {
	Profile *LinkedInRawProfile
	Error   string
}

type LinkedInRawProfile struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Headline       string `json:"headline"`
	Summary        string `json:"summary"`
	ProfilePicture string `json:"profilePicture"`
	Geo            struct {
		Full string `json:"full"`
	} `json:"geo"`
	Positions  []LinkedInPosition  `json:"position"`
	Educations []LinkedInEducation `json:"educations"`
	Skills     []LinkedInSkill     `json:"skills"`
}

type LinkedInPosition struct {
	Title       string       `json:"title"`
	CompanyName string       `json:"companyName"`
	Location    string       `json:"location"`
	Description string       `json:"description"`
	Start       PartialDate  `json:"start"`
	End         *PartialDate `json:"end"`
}

type LinkedInEducation struct {
	SchoolName   string       `json:"schoolName"`
	Degree       string       `json:"degree"`
	FieldOfStudy string       `json:"fieldOfStudy"`
	Description  string       `json:"description"`
	Start        PartialDate  `json:"start"`
	End          *PartialDate `json:"end"`
}

type LinkedInSkill struct {
	Name              string `json:"name"`
	EndorsementsCount int    `json:"endorsementsCount"`
}

func (p *LinkedInPayload) UnmarshalJSON(data []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	if raw, ok := keys["error"]; ok {
		p.Error = messageText(raw, "upstream reported an error")
		return nil
	}

	body := data
	if raw, ok := keys["success"]; ok {
		var success bool
		if err := json.Unmarshal(raw, &success); err == nil {
			if !success {
				p.Error = messageText(keys["message"], "upstream reported failure")
				return nil
			}
			body = keys["data"]
		}
	}

	profile := &LinkedInRawProfile{}
	if len(body) > 0 && !bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		if err := json.Unmarshal(body, profile); err != nil {
			return err
		}
	}
	p.Profile = profile
	return nil
}

func messageText(raw json.RawMessage, fallback string) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return s
	}
	return fallback
}
