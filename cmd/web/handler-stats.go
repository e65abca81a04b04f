package main

import (
	"net/http"
	"time"

	"github.com/myrjola/morningapp/internal/workout"
)

type statsTemplateData struct {
	BaseTemplateData
	Streak    int
	Rank      workout.RankStatus
	Bests     workout.PersonalBests
	Report    []workout.ReportDay
	Externals []workout.ExternalRecord
}

// statsGET renders the progress page: streak, rank, personal bests and the
// scored report of the last thirty days.
func (app *application) statsGET(w http.ResponseWriter, r *http.Request) {
	records, externals, err := app.workoutService.History(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	now := time.Now()
	data := statsTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Streak:           workout.Streak(records, now),
		Rank:             workout.RankFor(len(records) + len(externals)),
		Bests:            workout.Bests(records),
		Report:           workout.Report(records, now),
		Externals:        externals,
	}
	app.render(w, r, http.StatusOK, "stats", data)
}
