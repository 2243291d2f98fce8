package normalize

import (
	"fmt"
	"time"

	"github.com/omaratef3221/omaratef3221.github.io/internal/models"
)

// FormatPartialDate renders "MM/YYYY", "YYYY" when the month is unknown,
// or "" when the year is unknown.
func FormatPartialDate(d models.PartialDate) string {
	if d.Year == 0 {
		return ""
	}
	if d.Month == 0 {
		return fmt.Sprintf("%d", d.Year)
	}
	return fmt.Sprintf("%02d/%d", d.Month, d.Year)
}

// ComputeDuration renders the elapsed time between two partial dates.
// A nil or year-less end is treated as ongoing and measured up to now.
// An unknown start month counts from January, an unknown end month up to
// December. Ranges that end before they start render as "0 months".
func ComputeDuration(start models.PartialDate, end *models.PartialDate, now time.Time) string {
	if start.Year == 0 {
		return ""
	}

	startMonth := start.Month
	if startMonth == 0 {
		startMonth = 1
	}

	var endYear, endMonth int
	if end == nil || end.Year == 0 {
		endYear, endMonth = now.Year(), int(now.Month())
	} else {
		endYear, endMonth = end.Year, end.Month
		if endMonth == 0 {
			endMonth = 12
		}
	}

	totalMonths := (endYear-start.Year)*12 + (endMonth - startMonth)
	if totalMonths < 0 {
		totalMonths = 0
	}

	if totalMonths < 12 {
		return fmt.Sprintf("%d months", totalMonths)
	}

	years := totalMonths / 12
	months := totalMonths % 12
	if months == 0 {
		return fmt.Sprintf("%d %s", years, plural(years, "year"))
	}
	return fmt.Sprintf("%d %s %d %s", years, plural(years, "year"), months, plural(months, "month"))
}

func plural(n int, unit string) string {
	if n > 1 {
		return unit + "s"
	}
	return unit
}

// isOngoing reports whether an end date leaves the range open
func isOngoing(end *models.PartialDate) bool {
	return end == nil || end.Year == 0
}
