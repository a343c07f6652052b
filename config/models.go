package config

import "time"

// Config holds the configuration of the application
// Use cmd.NewConfig to create a new instance
type Config struct {
	NLP       NLPConfig       `mapstructure:"nlp"`
	Detection DetectionConfig `mapstructure:"detection"`
	Sessions  SessionConfig   `mapstructure:"sessions"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Auth      AuthConfig      `mapstructure:"auth"`
}

// NLPConfig configures the external entity-extraction service. The service
// is optional; when disabled or unreachable, detection degrades to the
// rule matcher alone.
type NLPConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	ServerURL string        `mapstructure:"server_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type DetectionConfig struct {
	// Threshold is the minimum confidence for entity-model spans.
	Threshold float64 `mapstructure:"threshold"`
}

type SessionConfig struct {
	// TTL is how long a session's mapping remains restorable.
	TTL time.Duration `mapstructure:"ttl"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// AuthConfig holds the static API key allow-list checked against the
// X-API-Key request header.
type AuthConfig struct {
	Keys []string `mapstructure:"keys"`
}
