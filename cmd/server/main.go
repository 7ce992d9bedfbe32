// Command server runs the users HTTP API.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mzukov/web-api/internal/platform/config"
	"github.com/mzukov/web-api/internal/platform/eventbus"
	"github.com/mzukov/web-api/internal/platform/httpserver"
	platformspanner "github.com/mzukov/web-api/internal/platform/spanner"
	"github.com/mzukov/web-api/modules/audit"
	"github.com/mzukov/web-api/modules/users"
	"github.com/mzukov/web-api/modules/users/domain"
	"github.com/mzukov/web-api/modules/users/infrastructure/persistence"
)

const shutdownTimeout = 30 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	repository, cleanup, err := buildRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	bus := eventbus.New(logger)

	usersModule := users.New(users.Config{
		Repository:     repository,
		EventPublisher: bus,
	})
	audit.New(audit.Config{
		EventSubscriber: bus,
		Logger:          logger,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	usersModule.RegisterRoutes(mux)

	handler := httpserver.Middleware(mux,
		httpserver.Recovery(logger),
		httpserver.Logging(logger),
		httpserver.CORS([]string{"*"}),
	)

	server := httpserver.New(httpserver.Config{
		Addr:         cfg.Addr(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}, handler, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// buildRepository constructs the configured storage backend and a
// cleanup to release it.
func buildRepository(ctx context.Context, cfg *config.Config) (domain.UserRepository, func(), error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		db, err := persistence.OpenPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		return persistence.NewPostgresRepository(db), func() { db.Close() }, nil

	case config.StorageSpanner:
		client, err := platformspanner.NewClient(ctx, platformspanner.Config{
			ProjectID:  cfg.SpannerProjectID,
			InstanceID: cfg.SpannerInstanceID,
			DatabaseID: cfg.SpannerDatabaseID,
		})
		if err != nil {
			return nil, nil, err
		}
		return persistence.NewSpannerRepository(client), client.Close, nil

	default:
		return persistence.NewInMemoryRepository(), func() {}, nil
	}
}
