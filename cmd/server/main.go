package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"wordkingdom/internal/config"
	"wordkingdom/internal/database"
	"wordkingdom/internal/handlers"
	"wordkingdom/internal/questionbank"
	"wordkingdom/internal/repository"
	"wordkingdom/internal/security"
	"wordkingdom/internal/service"
	"wordkingdom/internal/store"
)

func main() {
	// Load .env if present; real environments set variables directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Persistence and content
	kv := repository.NewKVRepository(db)
	bank := questionbank.New()

	// Stores; handler-level collectors replace the notifier where the
	// response needs to carry notifications
	profiles := store.NewProfileStore(kv, nil)
	board := store.NewLeaderboardStore(kv, nil)
	parental := store.NewParentalStore(kv)

	// Services
	gate := security.NewParentGate(cfg.ParentTokenSecret, cfg.ParentTokenTTL)
	email, err := service.NewEmailService(cfg.SESRegion, cfg.SESFromEmail, cfg.SESFromName)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	reports := service.NewReportService(email)

	// Handlers
	middleware := handlers.NewMiddleware(gate)
	playHandler := handlers.NewPlayHandler(kv, profiles, bank, handlers.NewSessionRegistry())
	profileHandler := handlers.NewProfileHandler(profiles)
	leaderboardHandler := handlers.NewLeaderboardHandler(kv, profiles, board)
	parentHandler := handlers.NewParentHandler(profiles, parental, gate, reports)

	// Setup routes
	mux := http.NewServeMux()

	// Player routes
	mux.HandleFunc("GET /api/profile", middleware.WithDevice(profileHandler.GetProfile))
	mux.HandleFunc("POST /api/profile/name", middleware.WithDevice(profileHandler.Rename))
	mux.HandleFunc("POST /api/settings", middleware.WithDevice(profileHandler.UpdateSettings))
	mux.HandleFunc("GET /api/worlds", middleware.WithDevice(profileHandler.GetWorlds))

	// Play session routes
	mux.HandleFunc("POST /api/play/start/{world}", middleware.WithDevice(playHandler.StartWorld))
	mux.HandleFunc("GET /api/play/current", middleware.WithDevice(playHandler.CurrentQuestion))
	mux.HandleFunc("POST /api/play/answer", middleware.WithDevice(playHandler.SubmitAnswer))
	mux.HandleFunc("POST /api/play/hint", middleware.WithDevice(playHandler.RequestHint))
	mux.HandleFunc("POST /api/play/skip", middleware.WithDevice(playHandler.SkipQuestion))
	mux.HandleFunc("POST /api/play/advance", middleware.WithDevice(playHandler.Advance))
	mux.HandleFunc("POST /api/play/story", middleware.WithDevice(playHandler.SubmitStory))
	mux.HandleFunc("POST /api/play/quit", middleware.WithDevice(playHandler.QuitSession))

	// Leaderboard routes
	mux.HandleFunc("GET /api/leaderboard", leaderboardHandler.List)
	mux.HandleFunc("POST /api/leaderboard", middleware.WithDevice(leaderboardHandler.Submit))

	// Parent routes
	mux.HandleFunc("POST /api/parent/pin", middleware.WithDevice(parentHandler.SetPIN))
	mux.HandleFunc("POST /api/parent/unlock", middleware.WithDevice(parentHandler.Unlock))
	mux.HandleFunc("POST /api/parent/lock", middleware.WithDevice(parentHandler.Lock))
	mux.HandleFunc("GET /api/parent/report", middleware.WithDevice(middleware.RequireParent(parentHandler.GetReport)))
	mux.HandleFunc("POST /api/parent/report/email", middleware.WithDevice(middleware.RequireParent(parentHandler.EmailReport)))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

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
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
