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

	"golang.org/x/sync/errgroup"

	pgRepo "newsapi/internal/infra/adapter/persistence/postgres"
	"newsapi/internal/infra/db"
	"newsapi/internal/observability/logging"
	"newsapi/internal/observability/tracing"
	"newsapi/internal/pkg/config"
	"newsapi/internal/resilience/circuitbreaker"
	"newsapi/internal/resilience/retry"

	artUC "newsapi/internal/usecase/article"

	hhttp "newsapi/internal/handler/http"
	harticle "newsapi/internal/handler/http/article"
	"newsapi/internal/handler/http/requestid"
)

// @title           News Article Catalog API
// @version         1.0
// @description     REST API for the news article catalog. Manages the article
// @description     lifecycle with author and keyword associations and serves
// @description     lookups by author, keyword and publication date.

// @contact.name    API Support
// @contact.email   support@example.com

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(cfg)

	shutdownTracing := tracing.Setup()
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("failed to shut down tracing", slog.Any("error", err))
		}
	}()

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler := setupServer(logger, database, cfg)
	runServer(logger, handler, cfg)
}

// initLogger builds the process logger from the configured format and installs
// it as the slog default.
func initLogger(cfg config.Config) *slog.Logger {
	var logger *slog.Logger
	if cfg.Log.Format == "text" {
		logger = logging.NewTextLogger()
	} else {
		logger = logging.NewLogger()
	}
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the connection pool and applies the schema. Migration is
// retried with backoff so a database that is still starting up does not kill
// the service.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()

	err := retry.WithBackoff(context.Background(), retry.DBConfig(), func() error {
		return db.MigrateUp(database)
	})
	if err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// setupServer wires the repositories, the article service and all routes, and
// returns the handler with the middleware chain applied. Read queries go
// through a circuit breaker so a struggling database sheds lookup load fast;
// writes run inside transactions on the raw pool.
func setupServer(logger *slog.Logger, database *sql.DB, cfg config.Config) http.Handler {
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	artSvc := &artUC.Service{
		Tx:   pgRepo.NewTxManager(database),
		Repo: pgRepo.NewArticleRepo(breaker),
	}

	mux := http.NewServeMux()
	harticle.Register(mux, artSvc)

	mux.Handle("GET /healthz", &hhttp.HealthHandler{DB: database, Version: cfg.Version})
	mux.Handle("GET /readyz", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /livez", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	return applyMiddleware(logger, mux, cfg)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: Request ID → Tracing → Recovery → Logging → Timeout → Body Limit → Metrics
func applyMiddleware(logger *slog.Logger, handler http.Handler, cfg config.Config) http.Handler {
	// Apply in reverse order (innermost to outermost).
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes)(chain)
	chain = hhttp.Timeout(cfg.Server.RequestTimeout)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	return chain
}

// runServer starts the HTTP server and blocks until SIGINT or SIGTERM, then
// drains in-flight requests within the configured shutdown timeout.
func runServer(logger *slog.Logger, handler http.Handler, cfg config.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
