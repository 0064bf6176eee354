package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/beerkeeper/internal/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestID_Echoed(t *testing.T) {
	r := newRouter(&fakeBeers{})

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(common.RequestIDHeaderName, "req-7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-7", w.Header().Get(common.RequestIDHeaderName))
}

func TestRequestID_Generated(t *testing.T) {
	w := do(newRouter(&fakeBeers{}), http.MethodGet, "/healthcheck", "")

	_, err := uuid.Parse(w.Header().Get(common.RequestIDHeaderName))
	assert.NoError(t, err)
}

func TestCORS(t *testing.T) {
	r := newRouter(&fakeBeers{})

	w := do(r, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(r, http.MethodOptions, "/createBeer", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
