package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"randomyt/internal/common/pagination"
	"randomyt/internal/config"
	pgRepo "randomyt/internal/infra/adapter/persistence/postgres"
	"randomyt/internal/infra/db"
	"randomyt/internal/infra/scraper"
	"randomyt/internal/infra/worker"
	"randomyt/internal/observability/logging"
	"randomyt/internal/observability/tracing"
	"randomyt/internal/repository"
	"randomyt/internal/usecase/metadata"
	videoUC "randomyt/internal/usecase/video"

	hhttp "randomyt/internal/handler/http"
	"randomyt/internal/handler/http/middleware"
	"randomyt/internal/handler/http/requestid"
	hvideo "randomyt/internal/handler/http/video"

	_ "randomyt/docs" // swagger docs
)

// @title           RandomYT API
// @version         1.0
// @description     Stores YouTube video metadata and serves random, filtered and paginated lookups.

// @contact.name   API Support

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	loadDotEnv()
	logger := initLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	tp := tracing.NewProvider(cfg.TraceSampleRatio)
	tracing.Install(tp)

	database := initDatabase(logger, cfg.DatabaseURL)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	components := setupServer(logger, database, cfg)
	runServer(logger, cfg, components)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := tp.Shutdown(shutdownCtx); err != nil {
		logger.Error("tracer provider shutdown failed", slog.Any("error", err))
	}
}

// loadDotEnv preloads .env when present. Variables already set win.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to read .env file", slog.Any("error", err))
	}
}

func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger, dsn string) *sql.DB {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	database, err := db.Open(ctx, dsn)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// ServerComponents holds what runServer needs to serve and to clean up.
type ServerComponents struct {
	Handler   http.Handler
	Scheduler *worker.Scheduler
}

// setupServer wires the repository, metadata sources, use case and HTTP stack.
func setupServer(logger *slog.Logger, database *sql.DB, cfg *config.AppConfig) *ServerComponents {
	repo := pgRepo.NewVideoRepo(database)

	sources, err := scraper.NewFactory(&http.Client{}, cfg.SourceRPS, cfg.SourceBurst, logger).Build(cfg.Sources)
	if err != nil {
		logger.Error("failed to build metadata sources", slog.Any("error", err))
		os.Exit(1)
	}
	resolver := metadata.NewResolver(scraper.AsMetadataSources(sources), metadata.WithLogger(logger))
	logger.Info("metadata sources configured", slog.Any("order", resolver.Sources()))

	svc := &videoUC.Service{
		Repo:       repo,
		Resolver:   resolver,
		LimitViews: cfg.LimitViews,
		Logger:     logger,
	}

	reporters := make([]hhttp.BreakerReporter, 0, len(sources))
	for _, s := range sources {
		reporters = append(reporters, s)
	}

	mux := setupRoutes(logger, database, cfg, svc, reporters)
	scheduler := setupScheduler(logger, cfg, repo)

	return &ServerComponents{
		Handler:   applyMiddleware(logger, cfg, mux),
		Scheduler: scheduler,
	}
}

// setupRoutes registers the video API and the operational endpoints.
func setupRoutes(
	logger *slog.Logger,
	database *sql.DB,
	cfg *config.AppConfig,
	svc *videoUC.Service,
	reporters []hhttp.BreakerReporter,
) *http.ServeMux {
	mux := http.NewServeMux()

	routes := hvideo.Routes{RootRedirectURL: cfg.RootRedirectURL}
	if cfg.PublishPerMinute > 0 {
		routes.PublishLimit = hhttp.NewClientRateLimiter(cfg.PublishPerMinute).Limit
		logger.Info("publish rate limit enabled", slog.Int("per_minute", cfg.PublishPerMinute))
	} else {
		logger.Info("publish rate limit disabled")
	}

	hvideo.Register(mux, hvideo.Handlers{
		Svc:        svc,
		Pagination: pagination.LoadFromEnv(),
		Logger:     logger,
	}, routes)

	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: cfg.Version, Sources: reporters, Logger: logger})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return mux
}

// setupScheduler prepares the cron job that keeps videos_total current.
func setupScheduler(logger *slog.Logger, cfg *config.AppConfig, counter repository.VideoRepository) *worker.Scheduler {
	workerCfg := worker.LoadConfigFromEnv(cfg.RefreshSchedule, logger)
	refresher := &worker.Refresher{
		Counter: counter,
		Metrics: worker.NewJobMetrics(prometheus.DefaultRegisterer),
		Logger:  logger,
	}

	scheduler, err := worker.NewScheduler(workerCfg, refresher, logger)
	if err != nil {
		logger.Error("failed to create refresh scheduler", slog.Any("error", err))
		os.Exit(1)
	}
	return scheduler
}

// applyMiddleware wraps the handler with the middleware chain.
// Order, outermost first: CORS, request ID, tracing, recovery, logging, body limit, metrics.
func applyMiddleware(logger *slog.Logger, cfg *config.AppConfig, handler http.Handler) http.Handler {
	corsConfig := middleware.NewCORSConfig(cfg.CORSAllowedOrigins, logger)
	logger.Info("CORS enabled",
		slog.Any("allowed_origins", cfg.CORSAllowedOrigins),
		slog.Any("allowed_methods", corsConfig.AllowedMethods),
		slog.Int("max_age", corsConfig.MaxAge))

	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(corsConfig)(chain)

	return chain
}

// runServer serves until SIGINT or SIGTERM, then shuts down gracefully.
func runServer(logger *slog.Logger, cfg *config.AppConfig, components *ServerComponents) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	components.Scheduler.Start()
	logger.Info("video count refresh scheduled", slog.String("schedule", cfg.RefreshSchedule))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := components.Scheduler.Stop(shutdownCtx); err != nil {
		logger.Error("refresh scheduler stop failed", slog.Any("error", err))
	}
	cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
