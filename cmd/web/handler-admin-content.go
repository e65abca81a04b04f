package main

import (
	"fmt"
	"net/http"

	"github.com/myrjola/morningapp/internal/content"
)

type adminContentTemplateData struct {
	BaseTemplateData
	Library content.Library
}

// adminContentGET lists the stored quotes and jokes.
func (app *application) adminContentGET(w http.ResponseWriter, r *http.Request) {
	library, err := app.vault.Load(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	data := adminContentTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Library:          library,
	}
	app.render(w, r, http.StatusOK, "admin-content", data)
}

// adminContentGeneratePOST generates a fresh batch of quotes and jokes and
// appends it to the vault.
func (app *application) adminContentGeneratePOST(w http.ResponseWriter, r *http.Request) {
	if app.generator == nil {
		app.flash(r, "Content generation needs an OpenAI API key.")
		redirect(w, r, "/admin/content")
		return
	}

	library, err := app.generator.GenerateBatch(r.Context())
	if err != nil {
		app.logError(r, err)
		app.flash(r, "Generating content failed. Try again.")
		redirect(w, r, "/admin/content")
		return
	}
	if err = app.vault.SaveBatch(r.Context(), library); err != nil {
		app.serverError(w, r, err)
		return
	}

	app.flash(r, fmt.Sprintf("Added %d quotes and %d jokes.", len(library.Quotes), len(library.Jokes)))
	redirect(w, r, "/admin/content")
}
