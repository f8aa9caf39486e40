package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/minhvu/newsdesk/internal/api"
	"github.com/minhvu/newsdesk/internal/config"
	"github.com/minhvu/newsdesk/internal/favorites"
	"github.com/minhvu/newsdesk/internal/news"
	"github.com/minhvu/newsdesk/internal/providers"
	"github.com/minhvu/newsdesk/internal/state"
	"github.com/minhvu/newsdesk/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	dataDir := flag.String("data-dir", "./data", "path to data directory")
	flag.Parse()

	// Pick up provider API keys from a .env file if present.
	_ = godotenv.Load()

	// Load configuration (auto-creates default if missing).
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Ensure data directory exists.
	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		slog.Error("failed to create data directory", "error", err)
		os.Exit(1)
	}

	// Open database with WAL mode and pragmas. Favorites degrade to
	// session-only when the database is unavailable.
	var favStorage favorites.Storage
	db, err := storage.OpenDatabase(filepath.Join(*dataDir, "newsdesk.db"))
	if err != nil {
		slog.Warn("database unavailable, favorites will not persist", "error", err)
	} else {
		defer db.Close()
		if err := storage.RunMigrations(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		favStorage = storage.NewFavoriteStorage(db)
	}

	// Construct the two state holders.
	filters := state.NewStore()
	favs := favorites.NewStore(favStorage)

	// One adapter per upstream provider, keys from config.
	aggregator := news.NewAggregator(
		providers.NewNewsAPI(cfg.Providers.NewsAPI.APIKey),
		providers.NewGuardian(cfg.Providers.Guardian.APIKey),
		providers.NewNYT(cfg.Providers.NYT.APIKey),
	)

	// Build router with all API routes.
	router := api.NewRouter(aggregator, filters, favs)

	// Localhost only.
	addr := fmt.Sprintf("localhost:%d", cfg.Server.Port)

	slog.Info("starting server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
