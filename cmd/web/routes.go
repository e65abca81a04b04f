package main

import (
	"net/http"
)

func (app *application) routes() (*http.ServeMux, error) {
	mux := http.NewServeMux()

	var (
		shared = func(next http.Handler) http.Handler {
			return app.logAndTraceRequest(secureHeaders(app.csrfProtect(
				commonContext(app.timeout(next)))))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(shared(next))))
		}
		// AI-backed handlers call external services and outlive the
		// default timeout.
		slowShared = func(next http.Handler) http.Handler {
			return app.logAndTraceRequest(secureHeaders(app.csrfProtect(
				commonContext(app.slowTimeout(next)))))
		}
		slowSession = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(slowShared(next))))
		}
	)

	mux.Handle("POST /session/begin", session(http.HandlerFunc(app.sessionBeginPOST)))
	mux.Handle("POST /session/start", session(http.HandlerFunc(app.sessionStartPOST)))
	mux.Handle("POST /session/stop", session(http.HandlerFunc(app.sessionStopPOST)))
	mux.Handle("POST /session/skip", session(http.HandlerFunc(app.sessionSkipPOST)))
	mux.Handle("POST /session/count", session(http.HandlerFunc(app.sessionCountPOST)))
	mux.Handle("POST /session/rating", session(http.HandlerFunc(app.sessionRatingPOST)))
	mux.Handle("POST /session/acknowledge", session(http.HandlerFunc(app.sessionAcknowledgePOST)))

	mux.Handle("POST /external/begin", session(http.HandlerFunc(app.externalBeginPOST)))
	mux.Handle("POST /external/cancel", session(http.HandlerFunc(app.externalCancelPOST)))
	mux.Handle("POST /external/analyze", slowSession(http.HandlerFunc(app.externalAnalyzePOST)))
	mux.Handle("POST /external/log", session(http.HandlerFunc(app.externalLogPOST)))

	mux.Handle("GET /stats", session(http.HandlerFunc(app.statsGET)))

	mux.Handle("GET /admin/content", session(http.HandlerFunc(app.adminContentGET)))
	mux.Handle("POST /admin/content/generate", slowSession(http.HandlerFunc(app.adminContentGeneratePOST)))

	mux.Handle("GET /api/healthy", session(http.HandlerFunc(app.healthy)))

	// Home route (most specific)
	mux.Handle("GET /{$}", session(http.HandlerFunc(app.home)))

	mux.Handle("/", session(http.HandlerFunc(app.notFound)))

	return mux, nil
}
