package main

import (
	"errors"
	"net/http"

	"github.com/myrjola/morningapp/internal/workout"
)

// sessionBeginPOST starts the guided session from the welcome screen.
func (app *application) sessionBeginPOST(w http.ResponseWriter, r *http.Request) {
	if err := app.workoutService.Begin(r.Context()); err != nil {
		app.sessionActionFailed(w, r, err)
		return
	}
	redirect(w, r, "/")
}

// sessionStartPOST starts the timer of the current exercise.
func (app *application) sessionStartPOST(w http.ResponseWriter, r *http.Request) {
	if err := app.workoutService.StartTimer(); err != nil {
		app.sessionActionFailed(w, r, err)
		return
	}
	redirect(w, r, "/")
}

// sessionStopPOST stops the running timer and moves to the rating screen.
func (app *application) sessionStopPOST(w http.ResponseWriter, r *http.Request) {
	if err := app.workoutService.StopTimer(); err != nil {
		app.sessionActionFailed(w, r, err)
		return
	}
	redirect(w, r, "/")
}

// sessionSkipPOST abandons the current exercise.
func (app *application) sessionSkipPOST(w http.ResponseWriter, r *http.Request) {
	if err := app.workoutService.Skip(); err != nil {
		app.sessionActionFailed(w, r, err)
		return
	}
	redirect(w, r, "/")
}

// sessionCountPOST records the repetition count of a counter exercise.
func (app *application) sessionCountPOST(w http.ResponseWriter, r *http.Request) {
	// A missing or garbled count records zero repetitions.
	count, _ := parseIntField(r, "count")
	if err := app.workoutService.SubmitCount(count); err != nil {
		app.sessionActionFailed(w, r, err)
		return
	}
	redirect(w, r, "/")
}

// sessionRatingPOST records the difficulty rating for the finished exercise.
// The final rating persists the whole workout, so a failed save keeps the
// rating screen up for a retry instead of losing the session.
func (app *application) sessionRatingPOST(w http.ResponseWriter, r *http.Request) {
	rating, ok := parseIntField(r, "rating")
	if !ok {
		app.flash(r, "Pick a rating from 1 to 5.")
		redirect(w, r, "/")
		return
	}
	if err := app.workoutService.SubmitRating(r.Context(), rating); err != nil {
		switch {
		case errors.Is(err, workout.ErrInvalidRating):
			app.flash(r, "Pick a rating from 1 to 5.")
		case errors.Is(err, workout.ErrInvalidPhase):
			// The screen is out of sync, re-render the current phase.
		default:
			app.logError(r, err)
			app.flash(r, "Saving the workout failed. Try submitting the rating again.")
		}
		redirect(w, r, "/")
		return
	}
	redirect(w, r, "/")
}

// sessionAcknowledgePOST returns from the completion screen to the welcome
// screen.
func (app *application) sessionAcknowledgePOST(w http.ResponseWriter, r *http.Request) {
	if err := app.workoutService.Acknowledge(); err != nil {
		app.sessionActionFailed(w, r, err)
		return
	}
	redirect(w, r, "/")
}

// sessionActionFailed handles errors from session transitions. A phase
// mismatch just re-renders the current screen, anything else is logged and
// surfaced as a flash message.
func (app *application) sessionActionFailed(w http.ResponseWriter, r *http.Request, err error) {
	if !errors.Is(err, workout.ErrInvalidPhase) {
		app.logError(r, err)
		app.flash(r, "Something went wrong. Please try again.")
	}
	redirect(w, r, "/")
}
