package workout

import (
	"time"
)

const (
	reportWindowDays  = 30
	pointsPerExercise = 5
	skipPenalty       = 10
)

// ReportDay is one calendar day of the trailing activity report.
type ReportDay struct {
	Date time.Time
	// Record is nil on days without a morning session.
	Record *Record
	// Skipped marks a day after the first ever session with no record.
	Skipped bool
	// Points is the score delta this day contributed.
	Points int
	// Score is the cumulative score up to and including this day.
	Score int
}

// Report builds the trailing 30-day activity report ending today, newest day
// first. Completed days earn five points per exercise with a non-zero
// completed value; days skipped after the habit started cost ten. Days before
// the first recorded session are neutral. The cumulative score runs from the
// first workout ever, so the displayed rows carry the score of the whole
// history even when the first workout is older than the window.
func Report(records []Record, today time.Time) []ReportDay {
	today = CivilDate(today)
	byDay := make(map[time.Time]*Record, len(records))
	var firstDay time.Time
	for i := range records {
		day := CivilDate(records[i].Date)
		byDay[day] = &records[i]
		if firstDay.IsZero() || day.Before(firstDay) {
			firstDay = day
		}
	}

	start := today.AddDate(0, 0, -(reportWindowDays - 1))
	if !firstDay.IsZero() && firstDay.Before(start) {
		start = firstDay
	}

	var days []ReportDay
	score := 0
	for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
		entry := ReportDay{Date: day}
		if record, ok := byDay[day]; ok {
			entry.Record = record
			entry.Points = completedExercises(*record) * pointsPerExercise
		} else if !firstDay.IsZero() && !day.Before(firstDay) {
			entry.Skipped = true
			entry.Points = -skipPenalty
		}
		score += entry.Points
		entry.Score = score
		days = append(days, entry)
	}
	if len(days) > reportWindowDays {
		days = days[len(days)-reportWindowDays:]
	}

	// Newest first for display.
	for i, j := 0, len(days)-1; i < j; i, j = i+1, j-1 {
		days[i], days[j] = days[j], days[i]
	}
	return days
}

func completedExercises(r Record) int {
	count := 0
	for _, completed := range []int{r.BarHangCompleted, r.PlankCompleted, r.PushupsCompleted} {
		if completed > 0 {
			count++
		}
	}
	return count
}
