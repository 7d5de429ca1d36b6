package main

import (
	"log"

	"screening-backend/internal/logger"
	"screening-backend/internal/shared/config"
	"screening-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	r, err := server.NewRouter(cfg, zl)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
