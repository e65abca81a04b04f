package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/myrjola/morningapp/internal/content"
	"github.com/myrjola/morningapp/internal/workout"
)

// Store persists workout history and spoken content in the local SQLite
// database. It backs development and test setups where no spreadsheet is
// available.
type Store struct {
	db *Database
}

var (
	_ workout.HistoryStore = (*Store)(nil)
	_ content.Vault        = (*Store)(nil)
)

// NewStore wraps the database with the history and content accessors.
func NewStore(db *Database) *Store {
	return &Store{db: db}
}

// Append writes one completed workout record.
func (s *Store) Append(ctx context.Context, record workout.Record) error {
	_, err := s.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO workouts (workout_date,
		                      bar_hang_target, bar_hang_completed, bar_hang_rating,
		                      plank_target, plank_completed, plank_rating,
		                      pushups_target, pushups_completed, pushups_rating,
		                      bonus)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		record.Date.Format(time.DateOnly),
		record.BarHangTarget, record.BarHangCompleted, record.BarHangRating,
		record.PlankTarget, record.PlankCompleted, record.PlankRating,
		record.PushupsTarget, record.PushupsCompleted, record.PushupsRating,
		record.Bonus)
	if err != nil {
		return fmt.Errorf("insert workout: %w", err)
	}
	return nil
}

// AppendExternal writes one external workout record.
func (s *Store) AppendExternal(ctx context.Context, record workout.ExternalRecord) error {
	var distance sql.NullString
	if record.Distance != nil {
		distance = sql.NullString{String: *record.Distance, Valid: true}
	}
	_, err := s.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO external_workouts (workout_date, workout_type, duration_minutes,
		                               calories, distance, points, image_link, raw_analysis)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);`,
		record.Date.Format(time.DateOnly), record.Type, record.DurationMinutes,
		record.Calories, distance, record.Points, record.ImageLink, record.RawAnalysis)
	if err != nil {
		return fmt.Errorf("insert external workout: %w", err)
	}
	return nil
}

// ReadAll returns every workout record ordered oldest first.
func (s *Store) ReadAll(ctx context.Context) ([]workout.Record, error) {
	rows, err := s.db.ReadOnly.QueryContext(ctx, `
		SELECT workout_date,
		       bar_hang_target, bar_hang_completed, bar_hang_rating,
		       plank_target, plank_completed, plank_rating,
		       pushups_target, pushups_completed, pushups_rating,
		       bonus
		FROM workouts
		ORDER BY workout_date, id;`)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}
	defer rows.Close()

	var records []workout.Record
	for rows.Next() {
		var (
			record workout.Record
			date   string
		)
		if err = rows.Scan(&date,
			&record.BarHangTarget, &record.BarHangCompleted, &record.BarHangRating,
			&record.PlankTarget, &record.PlankCompleted, &record.PlankRating,
			&record.PushupsTarget, &record.PushupsCompleted, &record.PushupsRating,
			&record.Bonus); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		if record.Date, err = time.Parse(time.DateOnly, date); err != nil {
			return nil, fmt.Errorf("parse workout date %q: %w", date, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workouts: %w", err)
	}
	return records, nil
}

// ReadAllExternal returns every external workout record ordered oldest first.
func (s *Store) ReadAllExternal(ctx context.Context) ([]workout.ExternalRecord, error) {
	rows, err := s.db.ReadOnly.QueryContext(ctx, `
		SELECT workout_date, workout_type, duration_minutes, calories, distance,
		       points, image_link, raw_analysis
		FROM external_workouts
		ORDER BY workout_date, id;`)
	if err != nil {
		return nil, fmt.Errorf("query external workouts: %w", err)
	}
	defer rows.Close()

	var records []workout.ExternalRecord
	for rows.Next() {
		var (
			record   workout.ExternalRecord
			date     string
			distance sql.NullString
		)
		if err = rows.Scan(&date, &record.Type, &record.DurationMinutes, &record.Calories,
			&distance, &record.Points, &record.ImageLink, &record.RawAnalysis); err != nil {
			return nil, fmt.Errorf("scan external workout: %w", err)
		}
		if record.Date, err = time.Parse(time.DateOnly, date); err != nil {
			return nil, fmt.Errorf("parse external workout date %q: %w", date, err)
		}
		if distance.Valid {
			record.Distance = &distance.String
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate external workouts: %w", err)
	}
	return records, nil
}

// ReadLatest returns the most recent workout record or nil without error
// when the log is empty.
func (s *Store) ReadLatest(ctx context.Context) (*workout.Record, error) {
	var (
		record workout.Record
		date   string
	)
	err := s.db.ReadOnly.QueryRowContext(ctx, `
		SELECT workout_date,
		       bar_hang_target, bar_hang_completed, bar_hang_rating,
		       plank_target, plank_completed, plank_rating,
		       pushups_target, pushups_completed, pushups_rating,
		       bonus
		FROM workouts
		ORDER BY workout_date DESC, id DESC
		LIMIT 1;`).Scan(&date,
		&record.BarHangTarget, &record.BarHangCompleted, &record.BarHangRating,
		&record.PlankTarget, &record.PlankCompleted, &record.PlankRating,
		&record.PushupsTarget, &record.PushupsCompleted, &record.PushupsRating,
		&record.Bonus)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest workout: %w", err)
	}
	if record.Date, err = time.Parse(time.DateOnly, date); err != nil {
		return nil, fmt.Errorf("parse workout date %q: %w", date, err)
	}
	return &record, nil
}

// Load reads the stored content library.
func (s *Store) Load(ctx context.Context) (content.Library, error) {
	rows, err := s.db.ReadOnly.QueryContext(ctx, `
		SELECT kind, text, author
		FROM content_items
		ORDER BY id;`)
	if err != nil {
		return content.Library{}, fmt.Errorf("query content: %w", err)
	}
	defer rows.Close()

	var library content.Library
	for rows.Next() {
		var kind, text, author string
		if err = rows.Scan(&kind, &text, &author); err != nil {
			return content.Library{}, fmt.Errorf("scan content item: %w", err)
		}
		switch kind {
		case "quote":
			library.Quotes = append(library.Quotes, content.Quote{Text: text, Author: author})
		case "joke":
			library.Jokes = append(library.Jokes, content.Joke{Text: text})
		}
	}
	if err = rows.Err(); err != nil {
		return content.Library{}, fmt.Errorf("iterate content: %w", err)
	}
	return library, nil
}

// SaveBatch appends a generated batch to the stored library.
func (s *Store) SaveBatch(ctx context.Context, batch content.Library) error {
	tx, err := s.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save batch: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op.

	for _, quote := range batch.Quotes {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO content_items (kind, text, author) VALUES ('quote', ?, ?);`,
			quote.Text, quote.Author); err != nil {
			return fmt.Errorf("insert quote: %w", err)
		}
	}
	for _, joke := range batch.Jokes {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO content_items (kind, text, author) VALUES ('joke', ?, '');`,
			joke.Text); err != nil {
			return fmt.Errorf("insert joke: %w", err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit save batch: %w", err)
	}
	return nil
}
