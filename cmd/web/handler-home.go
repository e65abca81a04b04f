package main

import (
	"net/http"

	"github.com/myrjola/morningapp/internal/content"
	"github.com/myrjola/morningapp/internal/workout"
)

type homeTemplateData struct {
	BaseTemplateData
	Welcome workout.WelcomeData
}

type exerciseTemplateData struct {
	BaseTemplateData
	Exercise workout.ExerciseView
}

type completeTemplateData struct {
	BaseTemplateData
	Completion workout.CompletionData
	Played     []content.Item
}

type externalTemplateData struct {
	BaseTemplateData
	Analyzerless bool
	// Draft carries analysed photo stats to pre-fill the editable form.
	Draft *workout.ExternalRecord
}

// home renders whichever screen the session is on. The session lives in
// memory so every screen hangs off the root path.
func (app *application) home(w http.ResponseWriter, r *http.Request) {
	switch app.workoutService.Phase() {
	case workout.PhaseWelcome:
		welcome, err := app.workoutService.Welcome(r.Context())
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		data := homeTemplateData{
			BaseTemplateData: app.newBaseTemplateData(r),
			Welcome:          welcome,
		}
		app.render(w, r, http.StatusOK, "home", data)

	case workout.PhaseExercise1, workout.PhaseExercise2, workout.PhaseExercise3:
		view, err := app.workoutService.CurrentExercise()
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		data := exerciseTemplateData{
			BaseTemplateData: app.newBaseTemplateData(r),
			Exercise:         view,
		}
		app.render(w, r, http.StatusOK, "exercise", data)

	case workout.PhaseRating1, workout.PhaseRating2, workout.PhaseRating3:
		view, err := app.workoutService.CurrentExercise()
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		data := exerciseTemplateData{
			BaseTemplateData: app.newBaseTemplateData(r),
			Exercise:         view,
		}
		app.render(w, r, http.StatusOK, "rating", data)

	case workout.PhaseComplete:
		completion, err := app.workoutService.Completion(r.Context())
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		data := completeTemplateData{
			BaseTemplateData: app.newBaseTemplateData(r),
			Completion:       completion,
			Played:           app.cycler.Played(),
		}
		app.render(w, r, http.StatusOK, "complete", data)

	case workout.PhaseExternal:
		data := externalTemplateData{
			BaseTemplateData: app.newBaseTemplateData(r),
			Analyzerless:     app.analyzer == nil,
			Draft:            app.workoutService.ExternalDraft(),
		}
		app.render(w, r, http.StatusOK, "external", data)

	default:
		app.serverError(w, r, workout.ErrInvalidPhase)
	}
}
