package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"familypoints/internal/config"
	"familypoints/internal/database"
	"familypoints/internal/handlers"
	"familypoints/internal/ledger"
	"familypoints/internal/logger"
	"familypoints/internal/repository"
	"familypoints/internal/session"
	"familypoints/internal/suggest"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New("familypoints", cfg.LogLevel)

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	log.Info().Str("type", cfg.DatabaseType).Msg("Database connection established")

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	log.Info().Msg("Migrations completed successfully")

	// Initialize repositories
	settingsRepo := repository.NewSettingsRepository(db)

	// The family ledger lives in memory; the demo seed gives a fresh
	// install something to show
	seed := ledger.DefaultSeed()
	var store *ledger.Store
	if cfg.SeedDemoData {
		store = ledger.NewWithSeed(seed)
	} else {
		store = ledger.New(seed.Parent)
	}

	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionDuration)
	suggestClient := suggest.NewClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, log)
	if !suggestClient.Enabled() {
		log.Info().Msg("GEMINI_API_KEY not set, suggestions disabled")
	}

	// Initialize handlers
	middleware := handlers.NewMiddleware(sessions, log)
	sessionHandler := handlers.NewSessionHandler(store, sessions, log)
	kidHandler := handlers.NewKidHandler(store, log)
	catalogHandler := handlers.NewCatalogHandler(store, log)
	ledgerHandler := handlers.NewLedgerHandler(store, log)
	reportHandler := handlers.NewReportHandler(store, log)
	suggestHandler := handlers.NewSuggestHandler(store, suggestClient, log)
	welcomeHandler := handlers.NewWelcomeHandler(settingsRepo, log)

	// Setup routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Viewer selection
	mux.HandleFunc("POST /api/session", sessionHandler.Select)
	mux.HandleFunc("GET /api/session", sessionHandler.Current)
	mux.HandleFunc("DELETE /api/session", sessionHandler.Logout)

	// Kids
	mux.HandleFunc("GET /api/kids", kidHandler.List)
	mux.HandleFunc("POST /api/kids", middleware.RequireParent(kidHandler.Create))
	mux.HandleFunc("GET /api/kids/{id}", kidHandler.Get)
	mux.HandleFunc("PUT /api/kids/{id}", middleware.RequireParent(kidHandler.Update))
	mux.HandleFunc("DELETE /api/kids/{id}", middleware.RequireParent(kidHandler.Delete))

	// Behavior and reward catalogs
	mux.HandleFunc("GET /api/behaviors", catalogHandler.ListBehaviors)
	mux.HandleFunc("POST /api/behaviors", middleware.RequireParent(catalogHandler.CreateBehavior))
	mux.HandleFunc("DELETE /api/behaviors/{id}", middleware.RequireParent(catalogHandler.DeleteBehavior))
	mux.HandleFunc("GET /api/rewards", catalogHandler.ListRewards)
	mux.HandleFunc("POST /api/rewards", middleware.RequireParent(catalogHandler.CreateReward))
	mux.HandleFunc("DELETE /api/rewards/{id}", middleware.RequireParent(catalogHandler.DeleteReward))

	// The ledger itself
	mux.HandleFunc("POST /api/kids/{id}/points", middleware.RequireParent(ledgerHandler.AssignPoints))
	mux.HandleFunc("POST /api/kids/{id}/grants", middleware.RequireParent(ledgerHandler.GrantReward))
	mux.HandleFunc("POST /api/kids/{id}/redemptions", middleware.RequireViewer(ledgerHandler.RedeemReward))
	mux.HandleFunc("GET /api/kids/{id}/rewards/{rewardID}/progress", ledgerHandler.RewardProgress)

	// Reports
	mux.HandleFunc("GET /api/leaderboard", reportHandler.Leaderboard)
	mux.HandleFunc("GET /api/reports", reportHandler.Report)

	// AI suggestions
	mux.HandleFunc("GET /api/suggestions/behaviors", middleware.RequireParent(suggestHandler.Behaviors))
	mux.HandleFunc("GET /api/suggestions/rewards", middleware.RequireParent(suggestHandler.Rewards))
	mux.HandleFunc("GET /api/suggestions/icons", middleware.RequireParent(suggestHandler.Icons))

	// First-run welcome flag
	mux.HandleFunc("GET /api/welcome", welcomeHandler.Get)
	mux.HandleFunc("PUT /api/welcome", middleware.RequireParent(welcomeHandler.Put))

	// Wrap with logging middleware
	handler := handlers.Logging(log, mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Str("addr", addr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}
}
