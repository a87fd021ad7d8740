package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/kojiauth/kojiauth-go/internal/config"
	"github.com/kojiauth/kojiauth-go/internal/handler"
	"github.com/kojiauth/kojiauth-go/internal/middleware"
	"github.com/kojiauth/kojiauth-go/internal/repository"
	"github.com/kojiauth/kojiauth-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := repository.EnsureSchema(context.Background(), db); err != nil {
		slog.Error("schema initialization failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.Token)
	authHandler := handler.NewAuthHandler(authService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/auth/signup", authHandler.HandleSignUp)
	r.Post("/api/auth/signin", authHandler.HandleSignIn)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.Token))
		r.Get("/api/auth/me", authHandler.HandleMe)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
