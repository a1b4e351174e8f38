package application

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/calorico/maxcalorie/internal/api"
	"github.com/calorico/maxcalorie/internal/catalog"
	"github.com/calorico/maxcalorie/internal/config"
	"github.com/calorico/maxcalorie/internal/food"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	store   *catalog.MemoryStore
	handler *api.Handler
	router  http.Handler
	logger  *zap.Logger
	server  *http.Server
}

// New initializes the application with all dependencies from the provided
// configuration. When a catalog path is configured the food database is
// loaded at startup; a load failure aborts initialization rather than
// starting with a partial catalog.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	store := catalog.NewMemoryStore()

	if cfg.CatalogPath != "" {
		items, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load food catalog: %w", err)
		}
		if err := store.Replace(items); err != nil {
			return nil, fmt.Errorf("failed to apply food catalog: %w", err)
		}

		totals := food.Sum(items)
		logger.Info("food catalog loaded",
			zap.String("path", cfg.CatalogPath),
			zap.Int("items", len(items)),
			zap.Float64("total_weight_ounces", totals.WeightOunces),
			zap.Float64("total_calories", totals.Calories),
		)
	}

	handler := api.NewHandler(store)
	router := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	server := NewServer(cfg, router)

	return &App{
		store:   store,
		handler: handler,
		router:  router,
		logger:  logger,
		server:  server,
	}, nil
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}
