package server

import (
	"fmt"
	"net/http"
	"time"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/celarium/celarium/pkg/auth"
	"github.com/celarium/celarium/pkg/models"
)

const ReadHeaderTimeout = 5 * time.Second

// Create creates a new HTTP server with the given app state
func Create(appState *models.AppState) *http.Server {
	router := setupRouter(appState)
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", appState.Config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
}

func setupRouter(appState *models.AppState) *chi.Mux {
	router := chi.NewRouter()
	router.Use(httpLogger.Logger("router", log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(SendVersion)

	// Liveness is unauthenticated
	router.Get("/health", HealthHandler())

	router.Group(func(r chi.Router) {
		r.Use(auth.APIKeyVerifier(appState.Config))
		r.Route("/v1", func(r chi.Router) {
			r.Post("/anonymize", AnonymizeHandler(appState))
			r.Post("/restore", RestoreHandler(appState))
			r.Delete("/sessions/{sessionId}", DeleteSessionHandler(appState))
		})
	})

	return router
}
