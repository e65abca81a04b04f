package sqlite_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/morningapp/internal/content"
	"github.com/myrjola/morningapp/internal/sqlite"
	"github.com/myrjola/morningapp/internal/testhelpers"
	"github.com/myrjola/morningapp/internal/workout"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	db, err := sqlite.NewDatabase(t.Context(), ":memory:", testhelpers.NewLogger(testhelpers.NewWriter(t)))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close database: %v", err)
		}
	})
	return sqlite.NewStore(db)
}

func TestStoreWorkoutRoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := t.Context()

	latest, err := store.ReadLatest(ctx)
	if err != nil {
		t.Fatalf("ReadLatest on empty store: %v", err)
	}
	if latest != nil {
		t.Fatalf("ReadLatest on empty store = %+v, want nil", latest)
	}

	records := []workout.Record{
		{
			Date:          time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC),
			BarHangTarget: 60, BarHangCompleted: 62, BarHangRating: 3,
			PlankTarget: 60, PlankCompleted: 58, PlankRating: 4,
			PushupsTarget: 20, PushupsCompleted: 21, PushupsRating: 2,
			Bonus: 5,
		},
		{
			Date:          time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
			BarHangTarget: 60, BarHangCompleted: 70, BarHangRating: 3,
			PlankTarget: 50, PlankCompleted: 50, PlankRating: 3,
			PushupsTarget: 23, PushupsCompleted: 23, PushupsRating: 3,
		},
	}
	for _, record := range records {
		if err := store.Append(ctx, record); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := store.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if diff := cmp.Diff(records, got); diff != "" {
		t.Errorf("ReadAll mismatch (-want +got):\n%s", diff)
	}

	latest, err = store.ReadLatest(ctx)
	if err != nil {
		t.Fatalf("ReadLatest: %v", err)
	}
	if diff := cmp.Diff(&records[1], latest); diff != "" {
		t.Errorf("ReadLatest mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreExternalWorkoutRoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := t.Context()

	distance := "5.2 km"
	records := []workout.ExternalRecord{
		{
			Date:            time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC),
			Type:            "Rowing",
			DurationMinutes: 30,
			Calories:        250,
			Distance:        &distance,
			Points:          50,
			ImageLink:       "https://drive.example/row.jpg",
			RawAnalysis:     `{"type": "Rowing"}`,
		},
		{
			Date:            time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC),
			Type:            "Yoga",
			DurationMinutes: 20,
			Calories:        80,
			Points:          50,
		},
	}
	for _, record := range records {
		if err := store.AppendExternal(ctx, record); err != nil {
			t.Fatalf("AppendExternal: %v", err)
		}
	}

	got, err := store.ReadAllExternal(ctx)
	if err != nil {
		t.Fatalf("ReadAllExternal: %v", err)
	}
	if diff := cmp.Diff(records, got); diff != "" {
		t.Errorf("ReadAllExternal mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreContentVault(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := t.Context()

	empty, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load on empty vault: %v", err)
	}
	if !empty.Empty() {
		t.Fatalf("empty vault returned %+v", empty)
	}

	batch := content.Library{
		Quotes: []content.Quote{
			{Text: "Keep showing up", Author: "Coach"},
			{Text: "One more rep"},
		},
		Jokes: []content.Joke{{Text: "Running late counts as cardio"}},
	}
	if err := store.SaveBatch(ctx, batch); err != nil {
		t.Fatalf("SaveBatch: %v", err)
	}
	if err := store.SaveBatch(ctx, content.Library{Jokes: []content.Joke{{Text: "Round is a shape"}}}); err != nil {
		t.Fatalf("second SaveBatch: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := content.Library{
		Quotes: batch.Quotes,
		Jokes:  append(batch.Jokes, content.Joke{Text: "Round is a shape"}),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}
