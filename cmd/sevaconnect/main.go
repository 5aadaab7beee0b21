package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/example/seva-scheduler/internal/application"
	"github.com/example/seva-scheduler/internal/config"
	httptransport "github.com/example/seva-scheduler/internal/http"
	"github.com/example/seva-scheduler/internal/logging"
	"github.com/example/seva-scheduler/internal/reminder"
	"github.com/example/seva-scheduler/internal/seed"
	"github.com/example/seva-scheduler/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logging.Setup(logging.ParseLevel(""), "text").Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.Setup(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	idGenerator := uuid.NewString
	now := time.Now

	s := store.New()
	if cfg.DemoData {
		seed.Apply(s, idGenerator, now)
		logger.Info("demo data loaded",
			"people", len(s.People()),
			"sevas", len(s.Sevas()),
			"entries", len(s.Entries()),
		)
	}

	personService := application.NewPersonServiceWithLogger(s, idGenerator, logger)
	sevaService := application.NewSevaServiceWithLogger(s, idGenerator, logger)
	scheduleService := application.NewScheduleServiceWithLogger(s, idGenerator, now, logger)

	gemini := reminder.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	if !gemini.Configured() {
		logger.Warn("GEMINI_API_KEY is not set; reminder drafting will return fallback text")
	}
	drafter := reminder.NewDrafterWithLogger(gemini, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := httptransport.NewMetrics(registry)

	handler := httptransport.NewRouter(httptransport.RouterConfig{
		People:    httptransport.NewPersonHandler(personService, logger),
		Sevas:     httptransport.NewSevaHandler(sevaService, logger),
		Schedules: httptransport.NewScheduleHandler(scheduleService, logger),
		Dashboard: httptransport.NewDashboardHandler(scheduleService, logger),
		Reminders: httptransport.NewReminderHandler(scheduleService, drafter, s, s, logger),
		Calendar:  httptransport.NewICSHandler(scheduleService, s, s, now, logger),
		Metrics:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Middleware: []func(http.Handler) http.Handler{
			httptransport.RequestLogger(logger),
			metrics.Middleware(),
		},
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("SevaConnect API listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}
