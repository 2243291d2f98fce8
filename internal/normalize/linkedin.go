package normalize

import (
	"strings"
	"time"

	"github.com/omaratef3221/omaratef3221.github.io/internal/models"
)

const presentLabel = "Present"

// NormalizeLinkedIn maps a professional-network profile. Positions without
// an end year are reported as "Present" and measured up to now.
func NormalizeLinkedIn(raw *models.LinkedInPayload, now time.Time) models.LinkedInProfile {
	if raw == nil || raw.Error != "" || raw.Profile == nil {
		return FallbackLinkedIn()
	}
	data := raw.Profile

	profile := models.LinkedInProfile{
		Name:           strings.TrimSpace(data.FirstName + " " + data.LastName),
		Headline:       data.Headline,
		Summary:        data.Summary,
		Location:       data.Geo.Full,
		ProfilePicture: data.ProfilePicture,
		Experience:     make([]models.Position, 0, len(data.Positions)),
		Education:      make([]models.Education, 0, len(data.Educations)),
		Skills:         make([]models.Skill, 0, len(data.Skills)),
	}

	for _, pos := range data.Positions {
		endDate := presentLabel
		if !isOngoing(pos.End) {
			endDate = FormatPartialDate(*pos.End)
		}
		profile.Experience = append(profile.Experience, models.Position{
			Title:       pos.Title,
			Company:     pos.CompanyName,
			Location:    pos.Location,
			Description: pos.Description,
			StartDate:   FormatPartialDate(pos.Start),
			EndDate:     endDate,
			Duration:    ComputeDuration(pos.Start, pos.End, now),
		})
	}

	for _, edu := range data.Educations {
		var endDate string
		if edu.End != nil {
			endDate = FormatPartialDate(*edu.End)
		}
		profile.Education = append(profile.Education, models.Education{
			School:       edu.SchoolName,
			Degree:       edu.Degree,
			FieldOfStudy: edu.FieldOfStudy,
			StartDate:    FormatPartialDate(edu.Start),
			EndDate:      endDate,
			Description:  edu.Description,
		})
	}

	for _, skill := range data.Skills {
		profile.Skills = append(profile.Skills, models.Skill{
			Name:         skill.Name,
			Endorsements: skill.EndorsementsCount,
		})
	}

	return profile
}
