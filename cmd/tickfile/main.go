package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/tickfile-dev/tickfile/internal/config"
	"github.com/tickfile-dev/tickfile/internal/router"
	"github.com/tickfile-dev/tickfile/internal/store"
)

func main() {
	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	s := store.NewFileStore(cfg.DataDir, logger)

	r := router.NewRouter(s, cfg.BcryptCost, logger)

	logger.Info("starting server", "port", cfg.Port, "data_dir", cfg.DataDir)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
