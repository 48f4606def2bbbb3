// Package config holds the service configuration, sourced from the
// environment with sensible defaults.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/vivadesk/internal/llm"
)

// Config is the full service configuration.
type Config struct {
	// Host and Port form the HTTP listen address.
	Host string
	Port int

	// MaxQuestions is the advisory interview length. Reaching it flips
	// should_end in responses; it never blocks further questions.
	MaxQuestions int

	// AllowedOrigins are the origins permitted by CORS and by the
	// WebSocket upgrade check.
	AllowedOrigins []string

	// DBPath is the SQLite path for the request event log. Empty selects
	// the default XDG location.
	DBPath string

	// VisionModel is the Gemini model used for screen analysis.
	VisionModel string

	LLM llm.Config
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Host:           "0.0.0.0",
		Port:           8000,
		MaxQuestions:   10,
		AllowedOrigins: []string{"http://localhost:3000"},
		VisionModel:    "gemini-2.0-flash",
		LLM:            llm.DefaultConfig(),
	}
}

// FromEnv builds a Config from VIVA_* environment variables, falling back
// to defaults for unset values.
func FromEnv() Config {
	cfg := Default()

	if h := os.Getenv("VIVA_HOST"); h != "" {
		cfg.Host = h
	}
	if p := os.Getenv("VIVA_PORT"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			cfg.Port = n
		}
	}
	if m := os.Getenv("VIVA_MAX_QUESTIONS"); m != "" {
		if n, err := strconv.Atoi(m); err == nil && n > 0 {
			cfg.MaxQuestions = n
		}
	}
	if o := os.Getenv("VIVA_ALLOWED_ORIGINS"); o != "" {
		cfg.AllowedOrigins = splitOrigins(o)
	}
	if d := os.Getenv("VIVA_DB"); d != "" {
		cfg.DBPath = d
	}
	if m := os.Getenv("VIVA_VISION_MODEL"); m != "" {
		cfg.VisionModel = m
	}

	cfg.LLM = llm.ConfigFromEnv()

	return cfg
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
