package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/beerkeeper/internal/logging"
	"github.com/dmitrijs2005/beerkeeper/internal/server/models"
	"github.com/gin-gonic/gin"
)

// beerSvc is the façade consumed by the handlers.
type beerSvc interface {
	Create(ctx context.Context, input models.CreateBeerInput) (*models.Beer, error)
	List(ctx context.Context) ([]models.Beer, error)
	Count(ctx context.Context) (*models.BeerCount, error)
}

// pinger reports whether the storage medium is reachable.
type pinger interface {
	Ping(ctx context.Context) error
}

type HTTPServer struct {
	address         string
	shutdownTimeout time.Duration
	beers           beerSvc
	store           pinger
	logger          logging.Logger
}

// NewHTTPServer builds the server. A nil store is treated as always
// reachable.
func NewHTTPServer(a string, shutdownTimeout time.Duration, l logging.Logger, bs beerSvc, store pinger) *HTTPServer {
	return &HTTPServer{
		address:         a,
		shutdownTimeout: shutdownTimeout,
		beers:           bs,
		store:           store,
		logger:          l.With("module", "http_server"),
	}
}

// Router returns the gin engine with middleware and routes attached.
func (s *HTTPServer) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestID(), s.requestLogger(), cors())

	r.POST("/createBeer", s.createBeer)
	r.GET("/getBeers", s.getBeers)
	r.GET("/getBeerCount", s.getBeerCount)
	r.GET("/healthcheck", s.healthcheck)

	return r
}

// Run listens on the configured address and serves until ctx is done.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve handles requests on lis until ctx is done, then shuts down within
// the configured timeout.
func (s *HTTPServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())
		errCh <- srv.Serve(lis)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
