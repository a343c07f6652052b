package models

import (
	"context"

	"github.com/celarium/celarium/config"
)

// Anonymizer runs the detection-merge-substitution pipeline over a request
// payload, which may be a plain string or arbitrary JSON data.
type Anonymizer interface {
	Anonymize(ctx context.Context, input interface{}) (string, *Mapping, error)
}

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	Anonymizer   Anonymizer
	SessionStore SessionStore
	Config       *config.Config
}
