package normalize

import (
	"encoding/json"
	"testing"

	"github.com/omaratef3221/omaratef3221.github.io/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const linkedInBody = `{
  "success": true,
  "data": {
    "firstName": "Ada",
    "lastName": " Lovelace ",
    "headline": "Analyst",
    "summary": "Notes on the engine",
    "geo": {"full": "London, United Kingdom"},
    "profilePicture": "https://example.org/ada.jpg",
    "position": [
      {"title": "Translator", "companyName": "Analytical Society", "location": "London",
       "description": "Notes", "start": {"year": 2024, "month": 6}, "end": {"year": 0, "month": 0}},
      {"title": "Assistant", "companyName": "Babbage & Co", "start": {"year": 2021, "month": 2},
       "end": {"year": 2022, "month": 12}},
      {"title": "Unknown dates"}
    ],
    "educations": [
      {"schoolName": "Home", "degree": "Tutoring", "fieldOfStudy": "Mathematics",
       "start": {"year": 1829}, "end": {"year": 1835, "month": 0}, "description": "Private"},
      {"schoolName": "Open"}
    ],
    "skills": [{"name": "Mathematics", "endorsementsCount": 12}, {"name": "Poetry"}]
  }
}`

func decodeLinkedIn(t *testing.T, body string) *models.LinkedInPayload {
	t.Helper()
	var payload models.LinkedInPayload
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	return &payload
}

func TestNormalizeLinkedIn(t *testing.T) {
	result := NormalizeLinkedIn(decodeLinkedIn(t, linkedInBody), fixedNow)

	assert.Equal(t, "Ada  Lovelace", result.Name)
	assert.Equal(t, "Analyst", result.Headline)
	assert.Equal(t, "London, United Kingdom", result.Location)
	assert.Equal(t, "https://example.org/ada.jpg", result.ProfilePicture)

	require.Len(t, result.Experience, 3)
	assert.Equal(t, models.Position{
		Title:       "Translator",
		Company:     "Analytical Society",
		Location:    "London",
		Description: "Notes",
		StartDate:   "06/2024",
		EndDate:     "Present",
		Duration:    "9 months",
	}, result.Experience[0])
	assert.Equal(t, "02/2021", result.Experience[1].StartDate)
	assert.Equal(t, "12/2022", result.Experience[1].EndDate)
	assert.Equal(t, "1 year 10 months", result.Experience[1].Duration)
	assert.Equal(t, "", result.Experience[2].StartDate)
	assert.Equal(t, "Present", result.Experience[2].EndDate)
	assert.Equal(t, "", result.Experience[2].Duration)

	require.Len(t, result.Education, 2)
	assert.Equal(t, models.Education{
		School:       "Home",
		Degree:       "Tutoring",
		FieldOfStudy: "Mathematics",
		StartDate:    "1829",
		EndDate:      "1835",
		Description:  "Private",
	}, result.Education[0])
	assert.Equal(t, "", result.Education[1].EndDate)

	assert.Equal(t, []models.Skill{{Name: "Mathematics", Endorsements: 12}, {Name: "Poetry"}}, result.Skills)
}

func TestNormalizeLinkedInBareProfile(t *testing.T) {
	result := NormalizeLinkedIn(decodeLinkedIn(t, `{"firstName":"Grace","lastName":"Hopper"}`), fixedNow)

	assert.Equal(t, "Grace Hopper", result.Name)
	assert.NotNil(t, result.Experience)
	assert.NotNil(t, result.Education)
	assert.NotNil(t, result.Skills)
}

func TestNormalizeLinkedInFallback(t *testing.T) {
	testCases := map[string]*models.LinkedInPayload{
		"nil payload":     nil,
		"error key":       {Error: "rate limited"},
		"missing profile": {},
	}

	for name, raw := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, FallbackLinkedIn(), NormalizeLinkedIn(raw, fixedNow))
		})
	}
}
