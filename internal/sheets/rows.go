package sheets

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/myrjola/morningapp/internal/content"
	"github.com/myrjola/morningapp/internal/workout"
)

// Sheet tabs and their header rows. Rows are read back as formatted strings
// so the codecs below parse forgivingly: a hand-edited cell should degrade a
// single field, not the whole history.
const (
	workoutSheet  = "Workouts"
	externalSheet = "External Workouts"
	contentSheet  = "Content"

	// defaultRating stands in for a missing rating cell.
	defaultRating = 3
)

var (
	workoutHeader = []any{
		"Date",
		"Bar Hang Target", "Bar Hang Completed", "Bar Hang Rating",
		"Plank Target", "Plank Completed", "Plank Rating",
		"Pushups Target", "Pushups Completed", "Pushups Rating",
		"Bonus",
	}
	externalHeader = []any{"Date", "Type", "Duration", "Calories", "Distance", "Points", "Image Link", "Raw JSON"}
	contentHeader  = []any{"Type", "Text", "Author"}
)

func recordToRow(record workout.Record) []any {
	return []any{
		record.Date.Format(time.DateOnly),
		record.BarHangTarget, record.BarHangCompleted, record.BarHangRating,
		record.PlankTarget, record.PlankCompleted, record.PlankRating,
		record.PushupsTarget, record.PushupsCompleted, record.PushupsRating,
		record.Bonus,
	}
}

func rowToRecord(row []any) (workout.Record, error) {
	date, err := time.Parse(time.DateOnly, cellString(row, 0))
	if err != nil {
		return workout.Record{}, fmt.Errorf("parse workout date: %w", err)
	}
	return workout.Record{
		Date:             date,
		BarHangTarget:    cellInt(row, 1, 0),
		BarHangCompleted: cellInt(row, 2, 0),
		BarHangRating:    cellInt(row, 3, defaultRating),
		PlankTarget:      cellInt(row, 4, 0),
		PlankCompleted:   cellInt(row, 5, 0),
		PlankRating:      cellInt(row, 6, defaultRating),
		PushupsTarget:    cellInt(row, 7, 0),
		PushupsCompleted: cellInt(row, 8, 0),
		PushupsRating:    cellInt(row, 9, defaultRating),
		Bonus:            cellInt(row, 10, 0),
	}, nil
}

func externalToRow(record workout.ExternalRecord) []any {
	distance := ""
	if record.Distance != nil {
		distance = *record.Distance
	}
	return []any{
		record.Date.Format(time.DateOnly),
		record.Type,
		record.DurationMinutes,
		record.Calories,
		distance,
		record.Points,
		record.ImageLink,
		record.RawAnalysis,
	}
}

func rowToExternal(row []any) (workout.ExternalRecord, error) {
	date, err := time.Parse(time.DateOnly, cellString(row, 0))
	if err != nil {
		return workout.ExternalRecord{}, fmt.Errorf("parse external workout date: %w", err)
	}
	record := workout.ExternalRecord{
		Date:            date,
		Type:            cellString(row, 1),
		DurationMinutes: cellInt(row, 2, 0),
		Calories:        cellInt(row, 3, 0),
		Points:          cellInt(row, 5, 0),
		ImageLink:       cellString(row, 6),
		RawAnalysis:     cellString(row, 7),
	}
	if distance := cellString(row, 4); distance != "" {
		record.Distance = &distance
	}
	return record, nil
}

func contentToRows(batch content.Library) [][]any {
	rows := make([][]any, 0, len(batch.Quotes)+len(batch.Jokes))
	for _, quote := range batch.Quotes {
		rows = append(rows, []any{"quote", quote.Text, quote.Author})
	}
	for _, joke := range batch.Jokes {
		rows = append(rows, []any{"joke", joke.Text, ""})
	}
	return rows
}

func rowToContent(library *content.Library, row []any) {
	text := cellString(row, 1)
	if text == "" {
		return
	}
	switch strings.ToLower(cellString(row, 0)) {
	case "quote":
		library.Quotes = append(library.Quotes, content.Quote{Text: text, Author: cellString(row, 2)})
	case "joke":
		library.Jokes = append(library.Jokes, content.Joke{Text: text})
	}
}

func cellString(row []any, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[i]))
}

func cellInt(row []any, i, fallback int) int {
	cell := cellString(row, i)
	if cell == "" {
		return fallback
	}
	value, err := strconv.Atoi(cell)
	if err != nil {
		return fallback
	}
	return value
}
