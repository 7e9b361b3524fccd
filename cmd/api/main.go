package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/verbum-domini-api/internal/config"
	"github.com/verbum-domini-api/internal/handlers"
	"github.com/verbum-domini-api/internal/liturgy"
	"github.com/verbum-domini-api/internal/logging"
	"github.com/verbum-domini-api/internal/middleware"
	"github.com/verbum-domini-api/internal/repository"
	"github.com/verbum-domini-api/internal/repository/postgres"
	"github.com/verbum-domini-api/internal/repository/sqlstore"
	"github.com/verbum-domini-api/internal/repository/vertex"
	"github.com/verbum-domini-api/internal/services"
	schemaconfig "github.com/verbum-domini-api/pkg/schema/config"
	"github.com/verbum-domini-api/pkg/schema/db"
	pkgservices "github.com/verbum-domini-api/pkg/schema/services"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	logger, err := logging.New(os.Getenv("DEBUG") != "")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Error("Server failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	cfg := config.GetConfig()
	storeCfg := schemaconfig.GetConfig()
	ctx := context.Background()

	conn, err := db.Open(ctx, storeCfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.CreateSchema(ctx, conn); err != nil {
		return err
	}
	logger.Info("Database initialization complete", zap.String("driver", conn.DriverName()))

	store := sqlstore.New(conn)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSMiddleware(cfg))

	// Create API group with prefix
	api := e.Group(cfg.APIPrefix)

	handlers.NewHealthHandler(conn).RegisterRoutes(api)
	handlers.NewBibleHandler(services.NewBibleService(store)).RegisterRoutes(api)
	handlers.NewAnnotationHandler(services.NewAnnotationService(store, store)).RegisterRoutes(api)
	handlers.NewLiturgyHandler(services.NewLiturgyService(liturgy.GeneralCalendar{})).RegisterRoutes(api)

	closers, err := registerSearch(ctx, api, cfg, storeCfg, conn, logger)
	if err != nil {
		return err
	}
	defer func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				logger.Warn("Error closing search client", zap.Error(err))
			}
		}
	}()

	// Root health check
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"name":    cfg.APITitle,
			"version": cfg.APIVersion,
			"status":  "running",
		})
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("Starting server",
		zap.String("title", cfg.APITitle),
		zap.String("version", cfg.APIVersion),
		zap.String("addr", addr),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	return serve(e, addr, quit, logger)
}

// serve runs e on addr until a signal arrives on quit, then shuts it down
// gracefully. A listener that fails to start is returned as an error.
func serve(e *echo.Echo, addr string, quit <-chan os.Signal, logger *zap.Logger) error {
	started := make(chan error, 1)
	go func() {
		started <- e.Start(addr)
	}()

	select {
	case err := <-started:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("start server on %s: %w", addr, err)
	case <-quit:
	}

	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Error shutting down server", zap.Error(err))
	}

	logger.Info("Server stopped")
	return nil
}

// registerSearch wires semantic search when enabled and returns the clients to close on shutdown
func registerSearch(ctx context.Context, api *echo.Group, cfg *config.Config, storeCfg *schemaconfig.Config, conn *sqlx.DB, logger *zap.Logger) ([]io.Closer, error) {
	if !cfg.SearchEnabled {
		logger.Info("Semantic search disabled")
		return nil, nil
	}

	var closers []io.Closer
	var vectorRepo repository.VectorSearchRepository

	switch cfg.VectorBackend {
	case "vertex":
		logger.Info("Using Vertex AI Vector Search backend")
		vertexRepo, err := vertex.NewVectorSearchRepository(ctx, vertex.Config(cfg.Vertex), conn)
		if err != nil {
			return nil, fmt.Errorf("failed to create Vertex AI vector repository: %w", err)
		}
		closers = append(closers, vertexRepo)
		vectorRepo = vertexRepo
	default:
		if conn.DriverName() != db.DriverPostgres {
			logger.Warn("Semantic search needs PostgreSQL with pgvector; route not registered",
				zap.String("driver", conn.DriverName()))
			return nil, nil
		}
		if err := db.CreateVectorSchema(ctx, conn, storeCfg.EmbeddingDimensions); err != nil {
			return nil, err
		}
		logger.Info("Using pgvector backend (unindexed)")
		vectorRepo = postgres.NewVectorSearchRepository(conn)
	}

	embeddingsSvc, err := pkgservices.NewEmbeddingsService(ctx, storeCfg)
	if err != nil {
		for _, c := range closers {
			c.Close()
		}
		return nil, fmt.Errorf("failed to initialize embeddings service: %w", err)
	}
	closers = append(closers, embeddingsSvc)

	handlers.NewSearchHandler(services.NewVectorSearchService(vectorRepo, embeddingsSvc)).RegisterRoutes(api)
	return closers, nil
}
