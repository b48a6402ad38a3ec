package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/frostguard/frostguard/internal/auth"
	authStore "github.com/frostguard/frostguard/internal/auth/store"
	"github.com/frostguard/frostguard/internal/catalog"
	catalogStore "github.com/frostguard/frostguard/internal/catalog/store"
	"github.com/frostguard/frostguard/internal/config"
	"github.com/frostguard/frostguard/internal/currency"
	"github.com/frostguard/frostguard/internal/database"
	"github.com/frostguard/frostguard/internal/event"
	"github.com/frostguard/frostguard/internal/exchange"
	"github.com/frostguard/frostguard/internal/export"
	fgHttp "github.com/frostguard/frostguard/internal/http"
	authHandler "github.com/frostguard/frostguard/internal/http/auth"
	catalogHandler "github.com/frostguard/frostguard/internal/http/catalog"
	eventsHandler "github.com/frostguard/frostguard/internal/http/events"
	exchangeHandler "github.com/frostguard/frostguard/internal/http/exchange"
	exportHandler "github.com/frostguard/frostguard/internal/http/export"
	importHandler "github.com/frostguard/frostguard/internal/http/importcsv"
	maintenanceHandler "github.com/frostguard/frostguard/internal/http/maintenance"
	matchingHandler "github.com/frostguard/frostguard/internal/http/matching"
	paymentHandler "github.com/frostguard/frostguard/internal/http/payment"
	"github.com/frostguard/frostguard/internal/http/ratelimit"
	reportHandler "github.com/frostguard/frostguard/internal/http/report"
	"github.com/frostguard/frostguard/internal/importer"
	"github.com/frostguard/frostguard/internal/maintenance"
	maintenanceStore "github.com/frostguard/frostguard/internal/maintenance/store"
	"github.com/frostguard/frostguard/internal/matching"
	matchingStore "github.com/frostguard/frostguard/internal/matching/store"
	"github.com/frostguard/frostguard/internal/metrics"
	"github.com/frostguard/frostguard/internal/payment"
	paymentStore "github.com/frostguard/frostguard/internal/payment/store"
	"github.com/frostguard/frostguard/internal/report"
	reportStore "github.com/frostguard/frostguard/internal/report/store"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	reporting, err := currency.ParseCode(cfg.Exchange.ReportingCurrency)
	if err != nil {
		slog.Error("invalid reporting currency", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.DB.Migrate {
		if err := database.Migrate(db); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	metrics.Init()

	rateCache, err := newRateCache(ctx, cfg)
	if err != nil {
		slog.Error("failed to set up rate cache", "error", err)
		os.Exit(1)
	}

	fallback, err := exchange.LoadFallbackRates(cfg.Exchange.FallbackFile, reporting)
	if err != nil {
		slog.Error("failed to load fallback rates", "error", err)
		os.Exit(1)
	}

	var (
		rates = exchange.NewProvider(
			exchange.NewClient(cfg.Exchange.APIURL, cfg.Exchange.APIKey, cfg.Exchange.Timeout),
			rateCache,
			reporting,
			exchange.WithFallback(fallback),
			exchange.WithRetries(cfg.Exchange.Retries),
		)
		normalizer = currency.NewNormalizer(rates, reporting, currency.WithDegradeHook(func(c currency.Code) {
			metrics.IncDegradedConversion(string(c))
		}))
		broker = event.NewBroker()
	)

	var (
		catalogService     = catalog.NewService(catalogStore.New(db))
		matchingService    = matching.NewService(matchingStore.New(db))
		maintenanceService = maintenance.NewService(maintenanceStore.New(db), matchingService, broker)
		paymentService     = payment.NewService(paymentStore.New(db), maintenanceService, catalogService, broker)
		importService      = importer.NewService()
		reportService      = report.NewService(reportStore.New(db), normalizer)
		exportService      = export.NewService(reportService)
		authService        = auth.NewService(authStore.New(db), cfg.Auth.Secret, cfg.Auth.TokenTTL, cfg.Auth.ResetTTL)
	)

	router := fgHttp.New(fgHttp.Handlers{
		Auth:         authHandler.NewHandler(authService),
		Catalog:      catalogHandler.NewHandler(catalogService),
		Maintenances: maintenanceHandler.NewHandler(maintenanceService),
		Payments:     paymentHandler.NewHandler(paymentService),
		Import:       importHandler.NewHandler(importService, paymentService),
		Matching:     matchingHandler.NewHandler(matchingService),
		Reports:      reportHandler.NewHandler(reportService),
		Exchange:     exchangeHandler.NewHandler(rates),
		Export:       exportHandler.NewHandler(exportService),
		Events:       eventsHandler.NewHandler(broker),
	}, fgHttp.Options{
		Verifier:       authService,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AuthLimiter:    ratelimit.New(cfg.Auth.RateLimit, cfg.Auth.RateBurst),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "port", srv.Addr, "reporting_currency", reporting, "rate_cache", cfg.Cache.Backend)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func newRateCache(ctx context.Context, cfg *config.Config) (exchange.Cache, error) {
	if cfg.Cache.Backend != "redis" {
		return exchange.NewMemoryCache(cfg.Cache.TTL), nil
	}

	return exchange.NewRedisCache(ctx, &redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, cfg.Cache.TTL)
}
