package sheets

import (
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/morningapp/internal/content"
	"github.com/myrjola/morningapp/internal/workout"
)

func TestWorkoutRowRoundTrip(t *testing.T) {
	t.Parallel()

	record := workout.Record{
		Date:          time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
		BarHangTarget: 60, BarHangCompleted: 62, BarHangRating: 3,
		PlankTarget: 60, PlankCompleted: 58, PlankRating: 4,
		PushupsTarget: 20, PushupsCompleted: 21, PushupsRating: 2,
		Bonus: 10,
	}

	// Formatted values come back from the API as strings.
	row := recordToRow(record)
	asStrings := make([]any, len(row))
	for i, cell := range row {
		switch v := cell.(type) {
		case int:
			asStrings[i] = strconv.Itoa(v)
		default:
			asStrings[i] = cell
		}
	}

	got, err := rowToRecord(asStrings)
	if err != nil {
		t.Fatalf("rowToRecord: %v", err)
	}
	if diff := cmp.Diff(record, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRowToRecordDefaults(t *testing.T) {
	t.Parallel()

	t.Run("missing rating defaults to neutral", func(t *testing.T) {
		t.Parallel()
		row := []any{"2026-08-31", "60", "62", "", "60", "58", "not a number", "20", "21"}
		record, err := rowToRecord(row)
		if err != nil {
			t.Fatalf("rowToRecord: %v", err)
		}
		if record.BarHangRating != 3 || record.PlankRating != 3 || record.PushupsRating != 3 {
			t.Errorf("ratings = %d/%d/%d, want all defaulted to 3",
				record.BarHangRating, record.PlankRating, record.PushupsRating)
		}
		if record.PushupsCompleted != 21 {
			t.Errorf("pushups completed = %d, want 21", record.PushupsCompleted)
		}
	})

	t.Run("bad date rejects the row", func(t *testing.T) {
		t.Parallel()
		if _, err := rowToRecord([]any{"yesterday", "60"}); err == nil {
			t.Error("rowToRecord accepted an unparsable date")
		}
	})
}

func TestExternalRowRoundTrip(t *testing.T) {
	t.Parallel()

	distance := "5.2 km"
	record := workout.ExternalRecord{
		Date:            time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC),
		Type:            "Rowing",
		DurationMinutes: 30,
		Calories:        250,
		Distance:        &distance,
		Points:          50,
		ImageLink:       "https://drive.example/row.jpg",
		RawAnalysis:     `{"type": "Rowing"}`,
	}

	row := externalToRow(record)
	got, err := rowToExternal(row)
	if err != nil {
		t.Fatalf("rowToExternal: %v", err)
	}
	if diff := cmp.Diff(record, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	t.Run("empty distance stays nil", func(t *testing.T) {
		t.Parallel()
		noDistance := record
		noDistance.Distance = nil
		got, err := rowToExternal(externalToRow(noDistance))
		if err != nil {
			t.Fatalf("rowToExternal: %v", err)
		}
		if got.Distance != nil {
			t.Errorf("distance = %q, want nil", *got.Distance)
		}
	})
}

func TestContentRows(t *testing.T) {
	t.Parallel()

	batch := content.Library{
		Quotes: []content.Quote{{Text: "Keep going", Author: "Coach"}},
		Jokes:  []content.Joke{{Text: "A pun"}},
	}
	rows := contentToRows(batch)

	var library content.Library
	for _, row := range rows {
		rowToContent(&library, row)
	}
	// Unknown kinds and empty texts are dropped on read.
	rowToContent(&library, []any{"haiku", "five seven five"})
	rowToContent(&library, []any{"quote", ""})

	if diff := cmp.Diff(batch, library); diff != "" {
		t.Errorf("content round trip mismatch (-want +got):\n%s", diff)
	}
}
