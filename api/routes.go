package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"lismoretv/handlers"
)

// corsMiddleware adds permissive CORS headers to every response and
// short-circuits preflight requests. It wraps the whole router so OPTIONS on
// any path, API or UI, answers 200 before routing happens.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requestIDMiddleware tags each request with an id, echoed in X-Request-ID so
// client reports can be matched against server logs.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

// Register mounts API and UI endpoints onto the provided router and returns
// the handler to serve, with CORS handling wrapped around every route.
func Register(
	r *mux.Router,
	guideHandler *handlers.GuideHandler,
	channelsHandler *handlers.ChannelsHandler,
	streamHandler *handlers.StreamHandler,
	healthHandler *handlers.HealthHandler,
	statusHandler *handlers.StatusHandler,
	staticDir string,
) http.Handler {
	api := r.PathPrefix("/api").Subrouter()
	api.Use(requestIDMiddleware)

	api.HandleFunc("/tv-guide", guideHandler.GetGuide).Methods(http.MethodGet)
	api.HandleFunc("/channels", channelsHandler.GetChannels).Methods(http.MethodGet)
	api.HandleFunc("/stream-proxy/{lcn:[0-9]+}", streamHandler.Proxy).Methods(http.MethodGet)
	api.HandleFunc("/stream-status/{lcn:[0-9]+}", channelsHandler.StreamStatus).Methods(http.MethodGet)
	api.HandleFunc("/health", healthHandler.GetHealth).Methods(http.MethodGet)

	// UI routes
	r.HandleFunc("/", statusHandler.Index).Methods(http.MethodGet)
	r.HandleFunc("/status", statusHandler.StatusPage).Methods(http.MethodGet)
	r.HandleFunc("/favicon.ico", statusHandler.Favicon).Methods(http.MethodGet)
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir))).Methods(http.MethodGet)

	return corsMiddleware(r)
}
