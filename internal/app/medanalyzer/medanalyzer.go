// Package medanalyzer собирает приложение: хранилище, кэш, сервисы,
// маршруты и HTTP-сервер с корректным завершением.
package medanalyzer

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	coreanalysis "github.com/magabrotheeeer/medanalyzer/internal/analysis"
	"github.com/magabrotheeeer/medanalyzer/internal/cache"
	"github.com/magabrotheeeer/medanalyzer/internal/config"
	analysisservice "github.com/magabrotheeeer/medanalyzer/internal/services/analysis"
	authservice "github.com/magabrotheeeer/medanalyzer/internal/services/auth"
	dashboardservice "github.com/magabrotheeeer/medanalyzer/internal/services/dashboard"
	"github.com/magabrotheeeer/medanalyzer/internal/storage/repository"
)

// App держит сервер и ресурсы с явным временем жизни:
// хранилище и кэш открываются при старте и закрываются при остановке.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New инициализирует все зависимости приложения.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(ctx, cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	assembler := coreanalysis.NewAssembler(
		time.Now,
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)

	authSvc := authservice.New(db, time.Now, logger)
	analysisSvc := analysisservice.New(db, cacheRedis, assembler, logger)
	dashboardSvc := dashboardservice.New(db,
		rand.New(rand.NewSource(time.Now().UnixNano()+1)), logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authSvc, analysisSvc, dashboardSvc)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.cache.Close(); cerr != nil {
			a.logger.Warn("failed to close cache", slog.Any("err", cerr))
		}
		if cerr := a.db.Close(); cerr != nil {
			a.logger.Warn("failed to close storage", slog.Any("err", cerr))
		}
		return err
	}
}
