package models

import "time"

// Session links an anonymization's forward mapping to an identifier and the
// API key that created it. Sessions are write-once: the mapping never
// changes after creation.
type Session struct {
	ID        string    `json:"session_id"`
	Mapping   *Mapping  `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	OwnerKey  string    `json:"-"`
}

// SessionStore holds per-session mappings for the lifetime of the process.
type SessionStore interface {
	// Create stores a new session and returns its generated ID.
	Create(mapping *Mapping, ownerKey string) string
	// Get returns the session's mapping. It fails with ErrNotFound,
	// ErrUnauthorized or ErrSessionExpired; an expired session is evicted
	// on the access that observes the expiry.
	Get(sessionID, ownerKey string) (*Mapping, error)
	// Delete removes a session, with the same ownership checks as Get.
	Delete(sessionID, ownerKey string) error
}
