package main

import (
	"log"

	"jobboard-backend/internal/shared/config"
	"jobboard-backend/internal/shared/server"
	"jobboard-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.SetLevel(cfg.LogLevel)

	r := server.NewRouter(cfg)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting job board API on %s", addr)

	// Fail fast: any error escaping the server loop terminates the process.
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
