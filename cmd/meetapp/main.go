package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meetapp/internal/config"
	"meetapp/internal/http-server/handlers/file/uploadFile"
	"meetapp/internal/http-server/handlers/meetup/createMeetup"
	"meetapp/internal/http-server/handlers/meetup/deleteMeetup"
	"meetapp/internal/http-server/handlers/meetup/getMeetups"
	"meetapp/internal/http-server/handlers/meetup/getOrganizing"
	"meetapp/internal/http-server/handlers/meetup/updateMeetup"
	"meetapp/internal/http-server/handlers/session/createSession"
	"meetapp/internal/http-server/handlers/subscription/createSubscription"
	"meetapp/internal/http-server/handlers/subscription/deleteSubscription"
	"meetapp/internal/http-server/handlers/subscription/getSubscriptions"
	"meetapp/internal/http-server/handlers/user/createUser"
	"meetapp/internal/http-server/handlers/user/updateUser"
	"meetapp/internal/http-server/middleware/auth"
	"meetapp/internal/http-server/middleware/mwlogger"
	"meetapp/internal/lib/api/response"
	"meetapp/internal/lib/logger/handlers/slogpretty"
	"meetapp/internal/lib/logger/sl"
	"meetapp/internal/lib/password"
	"meetapp/internal/lib/temporal"
	"meetapp/internal/lib/tokens"
	"meetapp/internal/mail"
	"meetapp/internal/queue"
	"meetapp/internal/services/account"
	"meetapp/internal/services/meetup"
	"meetapp/internal/services/subscription"
	"meetapp/internal/storage/postgres"
	"meetapp/internal/upload"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting meetapp", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Error("failed to load timezone", slog.String("timezone", cfg.Timezone), sl.Err(err))
		os.Exit(1)
	}

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	tokenManager, err := tokens.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		log.Error("failed to init token manager", sl.Err(err))
		os.Exit(1)
	}

	uploads, err := upload.New(log, upload.Config{
		Dir:     cfg.Upload.Dir,
		BaseURL: cfg.HTTPServer.BaseURL,
		MaxSize: cfg.Upload.MaxSize,
	}, storage)
	if err != nil {
		log.Error("failed to init upload dir", sl.Err(err))
		os.Exit(1)
	}

	mailer := mail.New(log, mail.Config{
		FromName:    cfg.Mail.FromName,
		FromAddress: cfg.Mail.FromAddress,
	}, storage, mail.NewSMTPSender(cfg.Mail.Address, cfg.Mail.Username, cfg.Mail.Password))

	jobs := queue.New(log, queue.Config{
		Workers:     cfg.Queue.Workers,
		Buffer:      cfg.Queue.Buffer,
		TaskTimeout: cfg.Queue.TaskTimeout,
	})
	jobs.Register(mail.SubscriptionMailKey, queue.HandlerFunc(mailer.HandleSubscription))
	jobs.Start()

	accounts := account.New(log, storage, password.New(cfg.Auth.BcryptCost), tokenManager)
	meetups := meetup.New(log, storage, temporal.SystemClock, loc)
	subscriptions := subscription.New(log, storage, jobs, temporal.SystemClock, loc)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("not found"))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusMethodNotAllowed)
		render.JSON(w, r, response.Error("method not allowed"))
	})

	fs := http.FileServer(http.Dir(cfg.Upload.Dir))
	router.Handle("/files/*", http.StripPrefix("/files/", fs))

	router.Post("/users", createUser.New(log, accounts))
	router.Post("/session", createSession.New(log, accounts))

	router.Group(func(r chi.Router) {
		r.Use(auth.New(log, tokenManager))

		r.Put("/users", updateUser.New(log, accounts))

		r.Post("/files", uploadFile.New(log, uploads, uploads.MaxSize()))

		r.Post("/meetup", createMeetup.New(log, meetups))
		r.Put("/meetup", updateMeetup.New(log, meetups))
		r.Delete("/meetup/{id}", deleteMeetup.New(log, meetups))
		r.Get("/meetups", getMeetups.New(log, meetups))
		r.Get("/organizing", getOrganizing.New(log, meetups))

		r.Get("/subscription", getSubscriptions.New(log, subscriptions))
		r.Post("/subscription/{meetup_id}", createSubscription.New(log, subscriptions))
		r.Delete("/subscription/{subscription_id}", deleteSubscription.New(log, subscriptions))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	if err = jobs.Stop(ctx); err != nil {
		log.Error("failed to drain job queue", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
