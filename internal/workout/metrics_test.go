package workout

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return parsed
}

func recordsOn(t *testing.T, days ...string) []Record {
	t.Helper()
	records := make([]Record, 0, len(days))
	for _, d := range days {
		records = append(records, Record{
			Date:             day(t, d),
			BarHangCompleted: 30,
			PlankCompleted:   30,
			PushupsCompleted: 10,
		})
	}
	return records
}

func TestStreak(t *testing.T) {
	t.Parallel()

	today := day(t, "2026-08-31")

	tests := []struct {
		name    string
		records []Record
		want    int
	}{
		{
			name:    "no history",
			records: nil,
			want:    0,
		},
		{
			name:    "single workout today",
			records: recordsOn(t, "2026-08-31"),
			want:    1,
		},
		{
			name:    "run ending today",
			records: recordsOn(t, "2026-08-29", "2026-08-30", "2026-08-31"),
			want:    3,
		},
		{
			name:    "run ending yesterday still counts",
			records: recordsOn(t, "2026-08-29", "2026-08-30"),
			want:    2,
		},
		{
			name:    "gap before today breaks the streak",
			records: recordsOn(t, "2026-08-27", "2026-08-28"),
			want:    0,
		},
		{
			name:    "gap inside history stops the walk",
			records: recordsOn(t, "2026-08-26", "2026-08-28", "2026-08-29", "2026-08-30", "2026-08-31"),
			want:    4,
		},
		{
			name:    "duplicate days count once",
			records: recordsOn(t, "2026-08-30", "2026-08-30", "2026-08-31"),
			want:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Streak(tt.records, today); got != tt.want {
				t.Errorf("Streak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStreakAcrossTimeZones(t *testing.T) {
	t.Parallel()

	// Store dates parse in UTC while the clock runs in server local time.
	morning := time.Date(2026, 8, 31, 7, 0, 0, 0, time.FixedZone("UTC+3", 3*60*60))

	if got := Streak(recordsOn(t, "2026-08-31"), morning); got != 1 {
		t.Errorf("Streak() = %d, want 1 for a workout completed today", got)
	}
	if got := Streak(recordsOn(t, "2026-08-30", "2026-08-31"), morning); got != 2 {
		t.Errorf("Streak() = %d, want 2 for a run ending today", got)
	}
}

func TestRankFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total int
		want  RankStatus
	}{
		{
			name:  "fresh start",
			total: 0,
			want: RankStatus{
				Current:   RankTier{Title: "Novice", Threshold: 0, Color: "#A0A0A0"},
				Next:      RankTier{Title: "Apprentice", Threshold: 10, Color: "#4CAF50"},
				Progress:  0,
				Remaining: 10,
			},
		},
		{
			name:  "progress floors towards next tier",
			total: 7,
			want: RankStatus{
				Current:   RankTier{Title: "Novice", Threshold: 0, Color: "#A0A0A0"},
				Next:      RankTier{Title: "Apprentice", Threshold: 10, Color: "#4CAF50"},
				Progress:  70,
				Remaining: 3,
			},
		},
		{
			name:  "exactly at a threshold",
			total: 25,
			want: RankStatus{
				Current:   RankTier{Title: "Warrior", Threshold: 25, Color: "#2196F3"},
				Next:      RankTier{Title: "Elite", Threshold: 50, Color: "#9C27B0"},
				Progress:  0,
				Remaining: 25,
			},
		},
		{
			name:  "midway through a wide tier",
			total: 60,
			want: RankStatus{
				Current:   RankTier{Title: "Elite", Threshold: 50, Color: "#9C27B0"},
				Next:      RankTier{Title: "Legend", Threshold: 100, Color: "#FFD700"},
				Progress:  20,
				Remaining: 40,
			},
		},
		{
			name:  "top tier pins progress to full",
			total: 250,
			want: RankStatus{
				Current:  RankTier{Title: "Legend", Threshold: 100, Color: "#FFD700"},
				Progress: 100,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := RankFor(tt.total)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("RankFor(%d) mismatch (-want +got):\n%s", tt.total, diff)
			}
		})
	}
}

func TestBests(t *testing.T) {
	t.Parallel()

	records := []Record{
		{BarHangCompleted: 45, PlankCompleted: 90, PushupsCompleted: 12},
		{BarHangCompleted: 70, PlankCompleted: 60, PushupsCompleted: 25},
		{BarHangCompleted: 50, PlankCompleted: 80, PushupsCompleted: 20},
	}

	want := PersonalBests{BarHang: 70, Plank: 90, Pushups: 25}
	if diff := cmp.Diff(want, Bests(records)); diff != "" {
		t.Errorf("Bests() mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(PersonalBests{}, Bests(nil)); diff != "" {
		t.Errorf("Bests(nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestReport(t *testing.T) {
	t.Parallel()

	today := day(t, "2026-08-31")

	t.Run("empty history is all neutral", func(t *testing.T) {
		t.Parallel()
		report := Report(nil, today)
		if len(report) != 30 {
			t.Fatalf("report has %d days, want 30", len(report))
		}
		for _, entry := range report {
			if entry.Skipped || entry.Points != 0 || entry.Score != 0 {
				t.Errorf("day %s not neutral: %+v", entry.Date.Format(time.DateOnly), entry)
			}
		}
	})

	t.Run("scores accumulate oldest to newest", func(t *testing.T) {
		t.Parallel()
		records := []Record{
			{Date: day(t, "2026-08-29"), BarHangCompleted: 30, PlankCompleted: 30, PushupsCompleted: 10},
			{Date: day(t, "2026-08-31"), BarHangCompleted: 30, PlankCompleted: 0, PushupsCompleted: 10},
		}
		report := Report(records, today)

		if got := report[0].Date; !got.Equal(day(t, "2026-08-31")) {
			t.Fatalf("first entry is %s, want newest day", got.Format(time.DateOnly))
		}

		// Newest first: today, yesterday, the day before.
		if report[0].Points != 10 || report[0].Score != 15 {
			t.Errorf("today scored %d (cumulative %d), want 10 (15)", report[0].Points, report[0].Score)
		}
		if !report[1].Skipped || report[1].Points != -10 || report[1].Score != 5 {
			t.Errorf("yesterday = %+v, want skipped -10 (cumulative 5)", report[1])
		}
		if report[2].Points != 15 || report[2].Score != 15 {
			t.Errorf("first workout day scored %d (cumulative %d), want 15 (15)", report[2].Points, report[2].Score)
		}

		// Days before the habit started stay neutral.
		if report[3].Skipped || report[3].Points != 0 {
			t.Errorf("pre-habit day = %+v, want neutral", report[3])
		}
	})

	t.Run("score carries history older than the window", func(t *testing.T) {
		t.Parallel()
		records := []Record{
			{Date: day(t, "2026-07-27"), BarHangCompleted: 30, PlankCompleted: 30, PushupsCompleted: 10},
		}
		report := Report(records, today)

		if len(report) != 30 {
			t.Fatalf("report has %d days, want 30", len(report))
		}
		// 15 points on the first workout day, then 35 skipped days at -10.
		if report[0].Score != -335 {
			t.Errorf("newest day score = %d, want -335", report[0].Score)
		}
		oldest := report[len(report)-1]
		if !oldest.Date.Equal(day(t, "2026-08-02")) {
			t.Fatalf("oldest visible day is %s, want 2026-08-02", oldest.Date.Format(time.DateOnly))
		}
		// 15 on 07-27, then six skipped days through 08-02.
		if !oldest.Skipped || oldest.Score != -45 {
			t.Errorf("oldest visible day = %+v, want skipped with score -45", oldest)
		}
	})

	t.Run("local-time clock matches stored dates", func(t *testing.T) {
		t.Parallel()
		morning := time.Date(2026, 8, 31, 7, 0, 0, 0, time.FixedZone("UTC+3", 3*60*60))
		report := Report(recordsOn(t, "2026-08-31"), morning)

		if report[0].Record == nil {
			t.Fatal("today has no record, want the stored workout")
		}
		if report[0].Points != 15 || report[0].Skipped {
			t.Errorf("today = %+v, want 15 points and not skipped", report[0])
		}
	})
}
