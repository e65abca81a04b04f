package workout

import (
	"time"
)

// Streak counts consecutive completed days ending today or yesterday. A gap
// of more than one day before today breaks the streak to zero; finishing
// yesterday but not yet today still keeps it alive.
func Streak(records []Record, today time.Time) int {
	if len(records) == 0 {
		return 0
	}
	today = CivilDate(today)
	seen := make(map[time.Time]bool, len(records))
	for _, r := range records {
		seen[CivilDate(r.Date)] = true
	}
	anchor := today
	if !seen[anchor] {
		anchor = today.AddDate(0, 0, -1)
		if !seen[anchor] {
			return 0
		}
	}
	streak := 0
	for day := anchor; seen[day]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}
