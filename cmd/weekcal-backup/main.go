package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dukerupert/weekcal/internal/backup"
	"github.com/dukerupert/weekcal/internal/config"
	"github.com/dukerupert/weekcal/internal/database"
	"github.com/dukerupert/weekcal/internal/logging"
	"github.com/dukerupert/weekcal/internal/store"
)

const usage = "usage: weekcal-backup export|import <file>"

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	cmd, path := os.Args[1], os.Args[2]

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := logging.Setup(cfg.LogLevel)

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	snapshots := store.NewEventSnapshotStore(store.NewBlobStore(db), logger.With("component", "storage"))

	var n int
	switch cmd {
	case "export":
		n, err = backup.Export(snapshots, path, cfg.BackupPassphrase)
	case "import":
		n, err = backup.Import(snapshots, path, cfg.BackupPassphrase)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		slog.Error(cmd+" failed", "file", path, "error", err)
		db.Close()
		os.Exit(1)
	}
	slog.Info(cmd+" complete", "file", path, "events", n)
}
