// Package auth authenticates requests with a static API key allow-list.
// The key doubles as the session owner: a session is only readable and
// deletable by the key that created it.
package auth

import (
	"context"
	"net/http"

	"github.com/celarium/celarium/config"
	"github.com/celarium/celarium/internal"
)

var log = internal.GetLogger()

// APIKeyHeader is the request header carrying the caller's key.
const APIKeyHeader = "X-API-Key"

type contextKey struct{}

// APIKeyVerifier returns middleware rejecting requests whose X-API-Key
// header is missing or not in the configured allow-list. The verified key
// is placed on the request context for ownership checks downstream.
func APIKeyVerifier(cfg *config.Config) func(http.Handler) http.Handler {
	if len(cfg.Auth.Keys) == 0 {
		log.Fatal("No API keys configured. Ensure CELARIUM_AUTH_KEYS is set in your environment.")
	}

	allowed := make(map[string]struct{}, len(cfg.Auth.Keys))
	for _, key := range cfg.Auth.Keys {
		allowed[key] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(APIKeyHeader)
			if _, ok := allowed[key]; key == "" || !ok {
				http.Error(w, "invalid or missing API key", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), contextKey{}, key)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// KeyFromContext returns the verified API key for the request, or the empty
// string if the request did not pass through APIKeyVerifier.
func KeyFromContext(ctx context.Context) string {
	key, _ := ctx.Value(contextKey{}).(string)
	return key
}
