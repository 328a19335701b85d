package server

import (
	"os"
	"strings"
	"time"
)

// Config controls the HTTP server.
type Config struct {
	// Addr is the listen address, e.g. ":8000".
	Addr string

	// Mode selects the gin mode: "debug" or "release".
	Mode string

	// AllowOrigins lists CORS origins. "*" allows any origin.
	AllowOrigins []string

	// ModelTimeout bounds each model call made on behalf of a request.
	ModelTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the server defaults.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8000",
		Mode:            "release",
		AllowOrigins:    []string{"*"},
		ModelTimeout:    120 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// ConfigFromEnv reads server settings from the environment, falling back
// to defaults.
//
//	SAHAYAK_ADDR          listen address (":8000")
//	SAHAYAK_HTTP_MODE     gin mode ("release")
//	SAHAYAK_CORS_ORIGINS  comma-separated origins ("*")
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SAHAYAK_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("SAHAYAK_HTTP_MODE"); v != "" {
		cfg.Mode = v
	}
	if v := os.Getenv("SAHAYAK_CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.AllowOrigins = origins
		}
	}
	return cfg
}
