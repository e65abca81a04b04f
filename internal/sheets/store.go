// Package sheets persists the workout history and content library in a
// Google Spreadsheet, with workout photos uploaded to Drive. It is the live
// store: the spreadsheet doubles as the user's own editable view of their
// history.
package sheets

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/myrjola/morningapp/internal/content"
	"github.com/myrjola/morningapp/internal/errors"
	"github.com/myrjola/morningapp/internal/workout"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Store reads and appends spreadsheet rows. It implements the workout
// history store and the content vault.
type Store struct {
	sheets        *sheets.Service
	drive         *drive.Service
	spreadsheetID string
	driveFolderID string
	logger        *slog.Logger
}

var (
	_ workout.HistoryStore = (*Store)(nil)
	_ content.Vault        = (*Store)(nil)
)

// NewStore authenticates with a service account credentials JSON and ensures
// the expected sheet tabs exist. driveFolderID may be empty; uploaded photos
// then land in the service account's Drive root.
func NewStore(ctx context.Context, credentialsJSON []byte, spreadsheetID, driveFolderID string, logger *slog.Logger) (*Store, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsScope, drive.DriveScope)
	if err != nil {
		return nil, errors.Wrap(err, "parse service account credentials")
	}
	client := config.Client(ctx)

	sheetsService, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, errors.Wrap(err, "create sheets service")
	}
	driveService, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, errors.Wrap(err, "create drive service")
	}

	store := &Store{
		sheets:        sheetsService,
		drive:         driveService,
		spreadsheetID: spreadsheetID,
		driveFolderID: driveFolderID,
		logger:        logger,
	}
	if err = store.ensureSheets(ctx); err != nil {
		return nil, errors.Wrap(err, "ensure sheet tabs")
	}
	return store, nil
}

// ensureSheets adds any missing tab with its header row.
func (s *Store) ensureSheets(ctx context.Context) error {
	spreadsheet, err := s.sheets.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return errors.Wrap(err, "get spreadsheet")
	}
	existing := make(map[string]bool, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		existing[sheet.Properties.Title] = true
	}

	wanted := []struct {
		title  string
		header []any
	}{
		{workoutSheet, workoutHeader},
		{externalSheet, externalHeader},
		{contentSheet, contentHeader},
	}
	for _, want := range wanted {
		if existing[want.title] {
			continue
		}
		request := &sheets.BatchUpdateSpreadsheetRequest{
			Requests: []*sheets.Request{{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{Title: want.title},
				},
			}},
		}
		if _, err = s.sheets.Spreadsheets.BatchUpdate(s.spreadsheetID, request).Context(ctx).Do(); err != nil {
			return errors.Wrap(err, "add sheet", slog.String("sheet", want.title))
		}
		header := &sheets.ValueRange{Values: [][]any{want.header}}
		if _, err = s.sheets.Spreadsheets.Values.
			Update(s.spreadsheetID, fmt.Sprintf("%s!A1", want.title), header).
			ValueInputOption("RAW").Context(ctx).Do(); err != nil {
			return errors.Wrap(err, "write header row", slog.String("sheet", want.title))
		}
		s.logger.LogAttrs(ctx, slog.LevelInfo, "created sheet tab", slog.String("sheet", want.title))
	}
	return nil
}

func (s *Store) appendRows(ctx context.Context, sheet string, rows [][]any) error {
	valueRange := &sheets.ValueRange{Values: rows}
	_, err := s.sheets.Spreadsheets.Values.
		Append(s.spreadsheetID, fmt.Sprintf("%s!A:Z", sheet), valueRange).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return errors.Wrap(err, "append rows", slog.String("sheet", sheet))
	}
	return nil
}

// readRows returns the data rows of a sheet, header excluded.
func (s *Store) readRows(ctx context.Context, sheet string) ([][]any, error) {
	response, err := s.sheets.Spreadsheets.Values.
		Get(s.spreadsheetID, fmt.Sprintf("%s!A2:Z", sheet)).
		Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrap(err, "read rows", slog.String("sheet", sheet))
	}
	return response.Values, nil
}

// Append writes one workout record as a spreadsheet row.
func (s *Store) Append(ctx context.Context, record workout.Record) error {
	return s.appendRows(ctx, workoutSheet, [][]any{recordToRow(record)})
}

// AppendExternal writes one external workout record as a spreadsheet row.
func (s *Store) AppendExternal(ctx context.Context, record workout.ExternalRecord) error {
	return s.appendRows(ctx, externalSheet, [][]any{externalToRow(record)})
}

// ReadAll returns the workout log oldest first, in sheet order. Rows whose
// date cannot be parsed are logged and skipped.
func (s *Store) ReadAll(ctx context.Context) ([]workout.Record, error) {
	rows, err := s.readRows(ctx, workoutSheet)
	if err != nil {
		return nil, err
	}
	records := make([]workout.Record, 0, len(rows))
	for i, row := range rows {
		record, err := rowToRecord(row)
		if err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "skipping malformed workout row",
				slog.Int("row", i+2), slog.Any("error", err))
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// ReadAllExternal returns the external workout log oldest first.
func (s *Store) ReadAllExternal(ctx context.Context) ([]workout.ExternalRecord, error) {
	rows, err := s.readRows(ctx, externalSheet)
	if err != nil {
		return nil, err
	}
	records := make([]workout.ExternalRecord, 0, len(rows))
	for i, row := range rows {
		record, err := rowToExternal(row)
		if err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "skipping malformed external workout row",
				slog.Int("row", i+2), slog.Any("error", err))
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// ReadLatest returns the last workout row or nil without error when the
// sheet has no data rows.
func (s *Store) ReadLatest(ctx context.Context) (*workout.Record, error) {
	records, err := s.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[len(records)-1], nil
}

// Load reads the content library from the content sheet.
func (s *Store) Load(ctx context.Context) (content.Library, error) {
	rows, err := s.readRows(ctx, contentSheet)
	if err != nil {
		return content.Library{}, err
	}
	var library content.Library
	for _, row := range rows {
		rowToContent(&library, row)
	}
	return library, nil
}

// SaveBatch appends a generated content batch to the content sheet.
func (s *Store) SaveBatch(ctx context.Context, batch content.Library) error {
	rows := contentToRows(batch)
	if len(rows) == 0 {
		return nil
	}
	return s.appendRows(ctx, contentSheet, rows)
}

// UploadImage stores a workout photo in Drive, makes it link-readable and
// returns the view link for the spreadsheet row.
func (s *Store) UploadImage(ctx context.Context, name, mimeType string, data []byte) (string, error) {
	file := &drive.File{Name: name, MimeType: mimeType}
	if s.driveFolderID != "" {
		file.Parents = []string{s.driveFolderID}
	}
	created, err := s.drive.Files.Create(file).
		Media(bytes.NewReader(data)).
		Fields("id, webViewLink").
		Context(ctx).Do()
	if err != nil {
		return "", errors.Wrap(err, "upload image")
	}
	permission := &drive.Permission{Type: "anyone", Role: "reader"}
	if _, err = s.drive.Permissions.Create(created.Id, permission).Context(ctx).Do(); err != nil {
		return "", errors.Wrap(err, "share image", slog.String("file_id", created.Id))
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "uploaded workout image",
		slog.String("file_id", created.Id))
	return created.WebViewLink, nil
}
