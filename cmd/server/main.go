package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/arturoeanton/go-movie-recommender/internal/adapter/match"
	"github.com/arturoeanton/go-movie-recommender/internal/adapter/store"
	"github.com/arturoeanton/go-movie-recommender/internal/catalog"
	"github.com/arturoeanton/go-movie-recommender/internal/handler"
	"github.com/arturoeanton/go-movie-recommender/internal/service"
	"github.com/arturoeanton/go-movie-recommender/pkg/config"

	_ "github.com/lib/pq"
)

func main() {
	// ── Load .env file ───────────────────────────────────────────────────
	_ = godotenv.Load() // silently ignore if .env doesn't exist

	// ── Configuration ────────────────────────────────────────────────────
	cfg := config.Load()

	slog.Info("🎬 Starting Movie Recommender",
		"port", cfg.Port,
		"catalog", cfg.CatalogPath,
		"matrix", cfg.MatrixPath,
	)

	// ── Catalog (frozen snapshot, fail fast) ─────────────────────────────
	cat, err := catalog.Load(cfg.CatalogPath, cfg.MatrixPath)
	if err != nil {
		slog.Error("failed to load catalog artifact", "error", err)
		os.Exit(1)
	}
	slog.Info("catalog loaded", "movies", cat.Len())

	// ── Database (best effort — enrichment and history degrade) ─────────
	pgStore, err := store.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer pgStore.Close()

	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := pgStore.Ping(startupCtx); err != nil {
		slog.Warn("database unreachable, enrichment and history will degrade", "error", err)
	} else if err := pgStore.EnsureHistoryTable(startupCtx); err != nil {
		slog.Warn("could not initialize search history table", "error", err)
	}
	cancel()

	// ── Services ─────────────────────────────────────────────────────────
	scorer := match.NewWeightedRatioScorer()
	resolver := service.NewTitleResolver(cat, scorer, cfg.FuzzyMatchThreshold)
	ranker := service.NewRanker(cat)
	historyService := service.NewHistoryService(pgStore)
	recommendService := service.NewRecommendService(resolver, ranker, historyService)
	searchService := service.NewSearchService(resolver, pgStore, historyService)

	// ── Fiber App ────────────────────────────────────────────────────────
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		AllowMethods: []string{"GET", "OPTIONS"},
	}))

	// ── Routes ───────────────────────────────────────────────────────────
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"app":    cfg.AppName,
			"movies": cat.Len(),
		})
	})

	movieHandler := handler.NewMovieHandler(recommendService, searchService, cfg.DefaultRecommendations)
	movieHandler.Register(api)

	historyHandler := handler.NewHistoryHandler(historyService)
	historyHandler.Register(api)

	// ── Start ────────────────────────────────────────────────────────────
	slog.Info("🌐 Fiber listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
