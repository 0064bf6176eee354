// Package server wires configuration, storage and transports into a running
// application and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/beerkeeper/internal/logging"
	"github.com/dmitrijs2005/beerkeeper/internal/server/config"
	"github.com/dmitrijs2005/beerkeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/beerkeeper/internal/server/services"
	"github.com/dmitrijs2005/beerkeeper/internal/server/shared/db"
	"github.com/gin-gonic/gin"

	gs "github.com/dmitrijs2005/beerkeeper/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	store       *db.Handle
	beerService *services.BeerService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewJSONLogger(os.Stdout, level)

	store, err := db.Open(ctx, c.DatabaseDriver, c.DatabaseDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	bs := services.NewBeerService(store.Beers())

	gin.SetMode(gin.ReleaseMode)

	return &App{config: c, logger: logger, store: store, beerService: bs}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
		signal.Stop(sigs)
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.beerService, app.store)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.config.ShutdownTimeout, app.logger, app.beerService, app.store)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves both transports until a signal arrives, ctx is cancelled or one
// of them fails, then closes the storage handle.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "driver", app.store.Driver())

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	if app.config.EndpointAddrHTTP != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startHTTPServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "Error closing storage", "error", err.Error())
	}

	app.logger.Info(context.Background(), "App stopped")
}
