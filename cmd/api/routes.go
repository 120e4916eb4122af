package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/", app.home)
	router.HandlerFunc(http.MethodGet, "/health", app.health)
	router.HandlerFunc(http.MethodGet, "/info", app.info)

	if app.config.metrics.enabled {
		router.Handler(http.MethodGet, "/metrics", app.metrics.handler())
	}

	return app.wrap(router)
}

// wrap applies the middleware chain. Panics are recovered innermost so the
// resulting 500 is still logged and counted.
func (app *application) wrap(next http.Handler) http.Handler {
	return app.logRequest(app.instrument(app.recoverPanic(app.enableCORS(next))))
}
