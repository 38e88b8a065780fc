package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"quicknotes/config"
	"quicknotes/db"
	"quicknotes/handlers"
	"quicknotes/media"
	appmw "quicknotes/middleware"
	"quicknotes/store"
	"quicknotes/web"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config error", "error", err)
		os.Exit(1)
	}

	conn, err := db.Open(cfg.DSN)
	if err != nil {
		logger.Error("db connection error", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := db.Migrate(context.Background(), conn); err != nil {
		logger.Error("migration error", "error", err)
		os.Exit(1)
	}

	var storage media.Storage = media.Discard{}
	if cfg.S3.AccessKey != "" {
		storage, err = media.NewS3Storage(context.Background(), media.S3Options{
			Bucket:        cfg.S3.Bucket,
			Region:        cfg.S3.Region,
			BaseEndpoint:  cfg.S3.BaseEndpoint,
			AccessKey:     cfg.S3.AccessKey,
			SecretKey:     cfg.S3.SecretKey,
			PublicBaseURL: cfg.S3.PublicBaseURL,
		})
		if err != nil {
			logger.Error("object storage error", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("no S3 credentials configured, attachments are discarded")
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		logger.Error("template error", "error", err)
		os.Exit(1)
	}

	secret := []byte(cfg.JWT.Secret)
	h := handlers.New(store.NewMySQLStore(conn), storage, renderer, logger, secret, cfg.JWT.TokenTTL)

	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler)
	r.Use(appmw.Identify(secret))

	r.Get("/", h.Home)
	r.Get("/register", h.RegisterPage)
	r.Post("/register", h.Register)
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.Login)
	r.Get("/logout", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(appmw.RequireAuth)
		r.Post("/notes", h.CreateNote)
		r.Get("/notes/{id}", h.ShowNote)
		r.Post("/delete/{id}", h.DeleteNote)
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logger.Info("server listening", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
