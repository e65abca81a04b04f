package main

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/myrjola/morningapp/internal/errors"
)

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", errors.SlogError(err))
	app.render(w, r, http.StatusInternalServerError, "error", nil)
}

// logError records an error that is handled by re-rendering the current page
// instead of the error page.
func (app *application) logError(r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "request failed", errors.SlogError(err))
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusNotFound, "not-found", app.newBaseTemplateData(r))
}

// redirect detects if the request is originating from a fetch API call or a top-level navigation and points the user
// to the correct URL.
func redirect(w http.ResponseWriter, r *http.Request, path string) {
	if r.Header.Get("Sec-Fetch-Dest") == "empty" {
		w.Header().Set("Content-Location", path)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, path, http.StatusSeeOther)
}

// flash stores a one-shot message shown on the next rendered page.
func (app *application) flash(r *http.Request, message string) {
	app.sessionManager.Put(r.Context(), "flash", message)
}

// parseIntField parses a named form field. Returns the value and true, or
// zero and false when the field is missing or not a number.
func parseIntField(r *http.Request, name string) (int, bool) {
	value, err := strconv.Atoi(r.PostFormValue(name))
	if err != nil {
		return 0, false
	}
	return value, true
}
