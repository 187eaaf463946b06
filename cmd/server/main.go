package main

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Student4344/social-minds0/internal/avatars"
	"github.com/Student4344/social-minds0/internal/cache"
	"github.com/Student4344/social-minds0/internal/db"
	"github.com/Student4344/social-minds0/internal/handlers"
	"github.com/Student4344/social-minds0/internal/llm"
	"github.com/Student4344/social-minds0/internal/logger"
	mw "github.com/Student4344/social-minds0/internal/middleware"
	"github.com/Student4344/social-minds0/internal/services"
)

func mustGetenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustDecodeKey(name string) []byte {
	raw := os.Getenv(name)
	if raw == "" {
		slog.Error(name + " is required")
		os.Exit(1)
	}
	key, err := base64.StdEncoding.DecodeString(raw)
	if err != nil || len(key) != 32 {
		slog.Error(name + " must be base64 of 32 bytes")
		os.Exit(1)
	}
	return key
}

func main() {
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET is required")
		os.Exit(1)
	}
	encSvc, err := services.NewEncryptionService(mustDecodeKey("ENCRYPTION_KEY"), mustDecodeKey("BLIND_INDEX_KEY"))
	if err != nil {
		slog.Error("failed to init encryption", slog.Any("err", err))
		os.Exit(1)
	}

	port := mustGetenv("PORT", "8080")

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		slog.Warn("DATABASE_URL not set; API will run but DB is unavailable")
	}
	var dbConn *sqlx.DB
	if databaseURL != "" {
		dbConn, err = sqlx.Open("pgx", databaseURL)
		if err != nil {
			slog.Error("failed to open db", slog.Any("err", err))
			os.Exit(1)
		}
		dbConn.SetMaxOpenConns(10)
		dbConn.SetConnMaxLifetime(2 * time.Hour)
		if err = dbConn.Ping(); err != nil {
			slog.Error("failed to ping db", slog.Any("err", err))
			os.Exit(1)
		}
		if err := db.RunMigrations(dbConn); err != nil {
			slog.Error("failed migrations", slog.Any("err", err))
			os.Exit(1)
		}
	}

	zapLogger := logger.New()
	defer zapLogger.Sync()

	redisClient := cache.NewClient(zapLogger)
	limiter := mw.NewRateLimiter(redisClient, time.Minute, 20)

	avatarDir := mustGetenv("AVATAR_DIR", "./data/avatars")
	avatarStore, err := avatars.NewStore(avatarDir, "/avatars")
	if err != nil {
		slog.Error("failed to init avatar store", slog.Any("err", err))
		os.Exit(1)
	}

	llmClient := llm.NewClient(
		os.Getenv("CHAT_URL"),
		os.Getenv("TRANSCRIBE_URL"),
		os.Getenv("CHAT_API_KEY"),
	)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(mw.ZapRequestLogger(zapLogger))
	r.Use(mw.Recovery(zapLogger))
	r.Use(mw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authMW := mw.NewAuthMiddleware([]byte(jwtSecret))
	authHandler := handlers.NewAuthHandler(dbConn, encSvc, []byte(jwtSecret))
	sessionHandler := handlers.NewSessionHandler(dbConn, authMW)
	profileHandler := handlers.NewProfileHandler(dbConn, encSvc, avatarStore)
	journalHandler := handlers.NewJournalHandler(dbConn, encSvc)
	moodHandler := handlers.NewMoodHandler(dbConn)
	gamesHandler := handlers.NewGamesHandler(dbConn)
	chatHandler := handlers.NewChatHandler(llmClient, zapLogger)
	voiceHandler := handlers.NewVoiceHandler(llmClient, zapLogger)
	lockHandler := handlers.NewLockHandler(dbConn)
	settingsHandler := handlers.NewSettingsHandler(dbConn)
	dashboardHandler := handlers.NewDashboardHandler(dbConn)
	contentHandler := handlers.NewContentHandler()
	adminHandler := handlers.NewAdminHandler(dbConn)
	importHandler := handlers.NewImportHandler(dbConn, encSvc)

	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/avatars/*", http.StripPrefix("/avatars/", http.FileServer(http.Dir(avatarDir))))

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/signup", authHandler.Signup)
		api.Post("/auth/login", authHandler.Login)
		api.Get("/session", sessionHandler.Resolve)
		api.Get("/learn", contentHandler.Learn)
		api.Get("/breathe", contentHandler.Breathe)

		api.Group(func(pr chi.Router) {
			pr.Use(authMW.RequireAuth)

			pr.Get("/profile", profileHandler.GetMe)
			pr.Put("/profile", profileHandler.UpdateMe)
			pr.Post("/profile/avatar", profileHandler.UploadAvatar)

			pr.Get("/settings", settingsHandler.Get)
			pr.Put("/settings", settingsHandler.Update)

			pr.Post("/mood", moodHandler.Log)
			pr.Get("/mood/week", moodHandler.Week)

			pr.Post("/journal", journalHandler.Create)
			pr.Get("/journal", journalHandler.List)

			pr.Post("/games/reward", gamesHandler.Reward)
			pr.Get("/dashboard", dashboardHandler.Get)

			pr.Get("/lock", lockHandler.Status)
			pr.Post("/lock/passcode", lockHandler.SetPasscode)
			pr.Post("/lock/verify", lockHandler.Verify)
			pr.Post("/lock/biometric", lockHandler.EnableBiometric)
			pr.Delete("/lock", lockHandler.Disable)

			pr.Post("/import", importHandler.ImportData)
			pr.Get("/admin/overview", adminHandler.Overview)

			pr.With(limiter.Limit("chat")).Post("/chat", chatHandler.Stream)
			pr.With(limiter.Limit("voice")).Post("/voice/transcribe", voiceHandler.Transcribe)
		})
	})

	srv := &http.Server{Addr: ":" + port, Handler: r}
	go func() {
		slog.Info("server starting", slog.String("addr", ":"+port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.Any("err", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutdown initiated")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	slog.Info("server stopped")
}
