package main

import (
	"net/http"
	"os"
	"time"

	"farm-records/internal/adapters/auth/sessions"
	"farm-records/internal/platform/logger"
	"farm-records/internal/ports/auth"
	"farm-records/internal/router"
)

// @title Farm Records API
// @version 1.0
// @description Registro de animales y sus pesos/raciones, con sesión verificada por un servicio externo.
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	var verifier auth.SessionVerifier
	if baseURL := os.Getenv("AUTH_BASE_URL"); baseURL != "" {
		client, err := sessions.NewClient(sessions.Config{
			BaseURL:      baseURL,
			APIKey:       os.Getenv("AUTH_API_KEY"),
			APIKeyHeader: os.Getenv("AUTH_API_KEY_HEADER"),
		})
		if err != nil {
			log.Error("sessions client config", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		verifier = sessions.NewVerifier(client)
	} else {
		// Sin verifier queda el modo dev (X-Debug-User-ID).
		log.Warn("AUTH_BASE_URL not set, running in dev auth mode", nil)
	}

	r := router.NewRouter(router.Options{
		SessionVerifier: verifier,
		Log:             log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
