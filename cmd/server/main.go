package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"englishquest/internal/audio"
	"englishquest/internal/config"
	"englishquest/internal/database"
	"englishquest/internal/game"
	"englishquest/internal/handlers"
	"englishquest/internal/progression"
	"englishquest/internal/repository"
	"englishquest/internal/security"
	"englishquest/internal/service"
	"englishquest/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database (supports sqlite, postgres, mysql)
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

	// Pick the snapshot store backend
	snapshots, cleanup, err := buildSnapshotStore(cfg, db)
	if err != nil {
		log.Fatalf("Failed to initialize snapshot store: %v", err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	log.Printf("Snapshot store ready (backend: %s)", cfg.StoreBackend)

	// Ensure the audio cache directory exists
	if err := os.MkdirAll(cfg.AudioCachePath, 0755); err != nil {
		log.Fatalf("Failed to create audio cache directory: %v", err)
	}

	// Initialize repositories and services
	playerRepo := repository.NewPlayerRepository(db)
	tokens := security.NewTokenManager(cfg.TokenSecret, cfg.TokenDuration)

	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	authService := service.NewAuthService(playerRepo, tokens, emailService)
	ttsService := audio.NewTTSService(cfg.AudioCachePath)

	progress := progression.NewManager(snapshots, progression.NewRealClock())
	sessions := game.NewManager()

	// Background streak reminder sweep
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	reminders := service.NewReminderService(playerRepo, snapshots, emailService)
	go reminders.Run(sweepCtx)

	// Initialize handlers
	limiter := security.NewRateLimiter(20, time.Minute)
	middleware := handlers.NewMiddleware(authService, limiter)
	authHandler := handlers.NewAuthHandler(authService)
	oauthHandler := handlers.NewOAuthHandler(authService, cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.OAuthRedirectBase)
	playerHandler := handlers.NewPlayerHandler(progress)
	contentHandler := handlers.NewContentHandler(ttsService)
	gameHandler := handlers.NewGameHandler(progress, sessions, ttsService, cfg.SpeechEnabled)

	// Setup routes
	mux := http.NewServeMux()

	// Cached audio files
	mux.Handle("GET /static/audio/", http.StripPrefix("/static/audio/", http.FileServer(http.Dir(cfg.AudioCachePath))))

	// Auth routes
	mux.HandleFunc("POST /api/auth/register", middleware.RateLimit(authHandler.Register))
	mux.HandleFunc("POST /api/auth/login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("GET /api/auth/me", middleware.RequireAuth(authHandler.Me))
	mux.HandleFunc("GET /auth/google/start", oauthHandler.Start)
	mux.HandleFunc("GET /auth/google/callback", oauthHandler.Callback)

	// Player routes
	mux.HandleFunc("GET /api/progress", middleware.RequireAuth(playerHandler.Progress))
	mux.HandleFunc("POST /api/progress/reset", middleware.RequireAuth(playerHandler.ResetProgress))
	mux.HandleFunc("GET /api/achievements", middleware.RequireAuth(playerHandler.Achievements))
	mux.HandleFunc("POST /api/shop/purchase", middleware.RequireAuth(playerHandler.Purchase))
	mux.HandleFunc("POST /api/hints/use", middleware.RequireAuth(playerHandler.UseHint))
	mux.HandleFunc("PATCH /api/settings", middleware.RequireAuth(playerHandler.UpdateSettings))

	// Content routes
	mux.HandleFunc("GET /api/content/topics", contentHandler.Topics)
	mux.HandleFunc("GET /api/content/words", contentHandler.Words)
	mux.HandleFunc("GET /api/content/scenarios", contentHandler.Scenarios)
	mux.HandleFunc("GET /api/content/scenarios/{id}", contentHandler.Scenario)
	mux.HandleFunc("GET /api/content/speak", middleware.RequireAuth(contentHandler.Speak))

	// Game session routes
	mux.HandleFunc("DELETE /api/games/{id}", middleware.RequireAuth(gameHandler.Abandon))

	mux.HandleFunc("POST /api/games/wordrain", middleware.RequireAuth(gameHandler.StartWordRain))
	mux.HandleFunc("GET /api/games/wordrain/{id}", middleware.RequireAuth(gameHandler.WordRainState))
	mux.HandleFunc("POST /api/games/wordrain/{id}/guess", middleware.RequireAuth(gameHandler.WordRainGuess))

	mux.HandleFunc("POST /api/games/flashcards", middleware.RequireAuth(gameHandler.StartFlashCards))
	mux.HandleFunc("GET /api/games/flashcards/{id}", middleware.RequireAuth(gameHandler.FlashCardsCurrent))
	mux.HandleFunc("POST /api/games/flashcards/{id}/respond", middleware.RequireAuth(gameHandler.FlashCardsRespond))

	mux.HandleFunc("POST /api/games/scramble", middleware.RequireAuth(gameHandler.StartScramble))
	mux.HandleFunc("GET /api/games/scramble/{id}", middleware.RequireAuth(gameHandler.ScrambleState))
	mux.HandleFunc("POST /api/games/scramble/{id}/submit", middleware.RequireAuth(gameHandler.ScrambleSubmit))
	mux.HandleFunc("POST /api/games/scramble/{id}/hint", middleware.RequireAuth(gameHandler.ScrambleHint))
	mux.HandleFunc("POST /api/games/scramble/{id}/next", middleware.RequireAuth(gameHandler.ScrambleNext))

	mux.HandleFunc("POST /api/games/drill", middleware.RequireAuth(gameHandler.StartDrill))
	mux.HandleFunc("GET /api/games/drill/{id}", middleware.RequireAuth(gameHandler.DrillCurrent))
	mux.HandleFunc("POST /api/games/drill/{id}/answer", middleware.RequireAuth(gameHandler.DrillAnswer))
	mux.HandleFunc("POST /api/games/drill/{id}/next", middleware.RequireAuth(gameHandler.DrillNext))

	mux.HandleFunc("POST /api/games/speech", middleware.RequireAuth(gameHandler.StartSpeech))
	mux.HandleFunc("GET /api/games/speech/{id}", middleware.RequireAuth(gameHandler.SpeechCurrent))
	mux.HandleFunc("POST /api/games/speech/{id}/capture", middleware.RequireAuth(gameHandler.SpeechCapture))
	mux.HandleFunc("POST /api/games/speech/{id}/interim", middleware.RequireAuth(gameHandler.SpeechInterim))
	mux.HandleFunc("POST /api/games/speech/{id}/final", middleware.RequireAuth(gameHandler.SpeechFinal))
	mux.HandleFunc("POST /api/games/speech/{id}/error", middleware.RequireAuth(gameHandler.SpeechError))
	mux.HandleFunc("POST /api/games/speech/{id}/retry", middleware.RequireAuth(gameHandler.SpeechRetry))
	mux.HandleFunc("POST /api/games/speech/{id}/next", middleware.RequireAuth(gameHandler.SpeechNext))

	mux.HandleFunc("POST /api/games/dialogue", middleware.RequireAuth(gameHandler.StartDialogue))
	mux.HandleFunc("GET /api/games/dialogue/{id}", middleware.RequireAuth(gameHandler.DialogueState))
	mux.HandleFunc("POST /api/games/dialogue/{id}/choose", middleware.RequireAuth(gameHandler.DialogueChoose))

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

	// Stop background work before the process exits
	stopSweep()
	sessions.CloseAll()
}

// buildSnapshotStore picks the snapshot backend from configuration.
// The returned cleanup function, if any, closes backend connections.
func buildSnapshotStore(cfg *config.Config, db *database.DB) (storage.SnapshotStore, func(), error) {
	switch cfg.StoreBackend {
	case "redis":
		store, err := storage.NewRedisStore(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	case "memory":
		return storage.NewMemoryStore(), nil, nil
	default:
		return storage.NewSQLStore(db), nil, nil
	}
}
