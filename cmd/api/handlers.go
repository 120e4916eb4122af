package main

import (
	"net/http"

	"github.com/gomezf2/ci-pipeline-demo/internal/data"
)

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, data.NewHomeResponse(), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// health is the liveness probe. It answers unconditionally and must stay
// free of I/O.
func (app *application) health(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, data.NewHealthResponse(), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) info(w http.ResponseWriter, r *http.Request) {
	resp := data.NewInfoResponse(app.config.appName, app.config.env)

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
