package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/Evidive-blue/evidive/internal/infra/db"
	"github.com/Evidive-blue/evidive/internal/pkg/config"
)

func main() {
	cmd := flag.String("cmd", string(db.MigrateUp), "migration command: up, down or status")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := db.Migrate(context.Background(), pool, db.MigrateCommand(*cmd)); err != nil {
		slog.Error("migration failed", "command", *cmd, "error", err)
		cleanup()
		os.Exit(1)
	}
	slog.Info("migration finished", "command", *cmd)
}
