package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/celarium/celarium/config"
	"github.com/celarium/celarium/internal"
	"github.com/celarium/celarium/pkg/auth"
	"github.com/celarium/celarium/pkg/models"
	"github.com/celarium/celarium/pkg/restore"
)

var log = internal.GetLogger()

var validate = validator.New()

// AnonymizeHandler replaces detected PII in the request payload with
// generated fake values and opens a session holding the reverse mapping.
func AnonymizeHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AnonymizeRequest
		if err := decodeJSON(r, &req); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			renderError(w, models.NewValidationError("text"), http.StatusBadRequest)
			return
		}
		if s, ok := req.Text.(string); ok && strings.TrimSpace(s) == "" {
			renderError(w, models.NewValidationError("text"), http.StatusBadRequest)
			return
		}

		anonymized, mapping, err := appState.Anonymizer.Anonymize(r.Context(), req.Text)
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}

		sessionID := appState.SessionStore.Create(mapping, auth.KeyFromContext(r.Context()))

		resp := models.AnonymizeResponse{
			AnonymizedText: anonymized,
			SessionID:      sessionID,
			EntitiesFound:  mapping.Len(),
		}
		if err := encodeJSON(w, resp); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// RestoreHandler swaps the session's fake values back to the originals in
// processor output, tolerating downstream mutation of the fakes.
func RestoreHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RestoreRequest
		if err := decodeJSON(r, &req); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			renderError(w, models.NewValidationError("session_id and text"), http.StatusBadRequest)
			return
		}

		mapping, err := appState.SessionStore.Get(req.SessionID, auth.KeyFromContext(r.Context()))
		if err != nil {
			renderSessionError(w, err)
			return
		}

		restored := restore.Apply(mapping, req.Text)

		if err := encodeJSON(w, models.RestoreResponse{RestoredText: restored}); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// DeleteSessionHandler evicts a session before its TTL runs out.
func DeleteSessionHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "sessionId")

		if err := appState.SessionStore.Delete(sessionID, auth.KeyFromContext(r.Context())); err != nil {
			renderSessionError(w, err)
			return
		}

		if err := encodeJSON(w, map[string]string{"status": "deleted"}); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// HealthHandler reports liveness only.
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		resp := models.HealthResponse{
			Status:  "ok",
			Version: config.VersionString,
		}
		if err := encodeJSON(w, resp); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}
