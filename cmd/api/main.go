package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/askabhijit/clarity-bookings/internal/http/handlers"
	imw "github.com/askabhijit/clarity-bookings/internal/http/middleware"
	"github.com/askabhijit/clarity-bookings/internal/notify"
	"github.com/askabhijit/clarity-bookings/internal/payments"
	"github.com/askabhijit/clarity-bookings/internal/service"
	"github.com/askabhijit/clarity-bookings/internal/store"
	"github.com/askabhijit/clarity-bookings/pkg/config"
	"github.com/askabhijit/clarity-bookings/pkg/logger"
	mw "github.com/askabhijit/clarity-bookings/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	secrets, err := config.LoadSecrets(cfg.SecretsFile)
	if err != nil {
		logger.Error("Failed to load secrets file", "path", cfg.SecretsFile, "error", err)
		os.Exit(1)
	}
	if !secrets.SMTP.Complete() {
		logger.Warn("SMTP not fully configured; confirmation emails will be skipped")
	}

	if err := os.MkdirAll(cfg.Store.DataDir, 0o755); err != nil {
		logger.Error("Failed to create data dir", "dir", cfg.Store.DataDir, "error", err)
		os.Exit(1)
	}
	bookingStore := store.NewCSVStore(filepath.Join(cfg.Store.DataDir, cfg.Store.LogFile))

	tmpl := notify.Template{
		AmountINR: secrets.Payments.AmountINR,
		Instagram: secrets.Social.InstagramHandle,
		Owner:     secrets.Payments.UPIPayeeName,
	}
	var notifier notify.Notifier
	switch {
	case cfg.Email.DevMode:
		notifier = notify.NewDevNotifier(tmpl)
	case cfg.Email.MailerSendKey != "":
		notifier = notify.NewMailerSendNotifier(cfg.Email.MailerSendKey, secrets.Payments.UPIPayeeName, secrets.SMTP.From, tmpl)
	default:
		notifier = notify.NewSMTPNotifier(secrets.SMTP, tmpl)
	}

	links := payments.NewComposer(secrets.Payments, secrets.Social)
	svc := service.New(bookingStore, notifier, links)
	h := handlers.NewBookingsHandler(svc)

	submitLimiter := imw.NewRateLimiter(imw.RateLimitConfig{
		Requests: 10,
		Window:   time.Minute,
		KeyFunc:  imw.SubmitRateLimitKeyFunc,
		SkipFunc: func(r *http.Request) bool { return r.Method != http.MethodPost },
	})

	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("bookings"))
	r.Use(mw.Logging)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.ErrorContext(req.Context(), "Panic recovered", "error", err)
					http.Error(w, "Internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, req)
		})
	})
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(mw.Health)
	r.Use(submitLimiter.Middleware())

	r.Mount("/", h.Routes())

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("Starting bookings API", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
}
