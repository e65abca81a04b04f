package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/myrjola/morningapp/internal/workout"
)

// maxPhotoBytes caps uploaded workout summary photos.
const maxPhotoBytes = 10 << 20

// externalBeginPOST switches the welcome screen to external workout logging.
func (app *application) externalBeginPOST(w http.ResponseWriter, r *http.Request) {
	if err := app.workoutService.BeginExternal(); err != nil {
		app.sessionActionFailed(w, r, err)
		return
	}
	redirect(w, r, "/")
}

// externalCancelPOST abandons external logging.
func (app *application) externalCancelPOST(w http.ResponseWriter, r *http.Request) {
	if err := app.workoutService.CancelExternal(); err != nil {
		app.sessionActionFailed(w, r, err)
		return
	}
	redirect(w, r, "/")
}

// externalAnalyzePOST reads the workout stats off an uploaded photo and
// stores them as a draft for review. Nothing is persisted: the external page
// re-renders with the extracted stats pre-filled in the editable form and
// saving happens on the confirm submit.
func (app *application) externalAnalyzePOST(w http.ResponseWriter, r *http.Request) {
	if app.analyzer == nil {
		app.flash(r, "Photo analysis is not configured. Enter the stats manually.")
		redirect(w, r, "/")
		return
	}
	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		app.flash(r, "The photo is too large. Try a smaller one or enter the stats manually.")
		redirect(w, r, "/")
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		app.flash(r, "Attach a photo to analyze.")
		redirect(w, r, "/")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes))
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))

	stats, err := app.analyzer.Analyze(r.Context(), dataURI)
	if err != nil {
		app.logError(r, err)
		app.flash(r, "Could not read the stats from the photo. Enter them manually.")
		redirect(w, r, "/")
		return
	}

	imageLink := ""
	if app.uploader != nil {
		name := fmt.Sprintf("workout-%s-%s", time.Now().Format("2006-01-02"), header.Filename)
		if imageLink, err = app.uploader.UploadImage(r.Context(), name, mimeType, data); err != nil {
			// The workout still counts without the archived photo.
			app.logError(r, err)
			imageLink = ""
		}
	}

	draft := workout.ExternalRecord{
		Type:            stats.Type,
		DurationMinutes: stats.DurationMinutes,
		Calories:        stats.Calories,
		Distance:        stats.Distance,
		ImageLink:       imageLink,
		RawAnalysis:     stats.Raw,
	}
	if err = app.workoutService.SetExternalDraft(draft); err != nil {
		app.sessionActionFailed(w, r, err)
		return
	}
	app.flash(r, "Check the extracted stats and adjust anything before saving.")
	redirect(w, r, "/")
}

// externalLogPOST saves the reviewed external workout. The submitted fields
// win; an analysed draft only contributes the archived photo link.
func (app *application) externalLogPOST(w http.ResponseWriter, r *http.Request) {
	workoutType := strings.TrimSpace(r.PostFormValue("type"))
	if workoutType == "" {
		app.flash(r, "Enter the workout type, or analyze a photo first.")
		redirect(w, r, "/")
		return
	}
	duration, _ := parseIntField(r, "duration")
	calories, _ := parseIntField(r, "calories")
	var distance *string
	if d := strings.TrimSpace(r.PostFormValue("distance")); d != "" {
		distance = &d
	}

	record := workout.ExternalRecord{
		Type:            workoutType,
		DurationMinutes: duration,
		Calories:        calories,
		Distance:        distance,
	}
	if err := app.workoutService.LogExternal(r.Context(), record); err != nil {
		app.sessionActionFailed(w, r, err)
		return
	}
	redirect(w, r, "/")
}
