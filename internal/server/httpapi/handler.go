package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/beerkeeper/internal/common"
	"github.com/dmitrijs2005/beerkeeper/internal/server/models"
	"github.com/gin-gonic/gin"
)

// createBeer handles POST /createBeer with body {"name": "..."}.
func (s *HTTPServer) createBeer(c *gin.Context) {
	var input models.CreateBeerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	beer, err := s.beers.Create(c.Request.Context(), input)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "Beer created", "id", beer.ID)
	c.JSON(http.StatusOK, beer)
}

func (s *HTTPServer) getBeers(c *gin.Context) {
	list, err := s.beers.List(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *HTTPServer) getBeerCount(c *gin.Context) {
	count, err := s.beers.Count(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, count)
}

// healthcheck answers 200 {"status":"ok"} while storage is reachable and
// 503 {"status":"unavailable"} otherwise.
func (s *HTTPServer) healthcheck(c *gin.Context) {
	if s.store != nil {
		if err := s.store.Ping(c.Request.Context()); err != nil {
			s.logger.Error(c.Request.Context(), "Storage ping failed", "error", err.Error())
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": common.StatusUnavailable, "timestamp": time.Now().UTC()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": common.StatusOK, "timestamp": time.Now().UTC()})
}

// writeError maps façade errors to HTTP statuses. Storage causes are logged
// and not returned to the caller.
func (s *HTTPServer) writeError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var ve *common.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
		return
	}

	var se *common.StorageError
	if errors.As(err, &se) {
		s.logger.Error(ctx, "Storage failure", "op", se.Op, "error", err.Error())
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage " + se.Op + " failed"})
		return
	}

	s.logger.Error(ctx, "Unexpected failure", "error", err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{"error": common.ErrorInternal.Error()})
}
