package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/beerkeeper/internal/common"
	"github.com/dmitrijs2005/beerkeeper/internal/logging"
	"github.com/dmitrijs2005/beerkeeper/internal/server/models"
	"github.com/dmitrijs2005/beerkeeper/internal/server/repositories/beers"
	"github.com/dmitrijs2005/beerkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fakeBeers struct {
	createErr error
	listErr   error
	countErr  error
}

func (f *fakeBeers) Create(ctx context.Context, input models.CreateBeerInput) (*models.Beer, error) {
	return nil, f.createErr
}

func (f *fakeBeers) List(ctx context.Context) ([]models.Beer, error) {
	return nil, f.listErr
}

func (f *fakeBeers) Count(ctx context.Context) (*models.BeerCount, error) {
	return nil, f.countErr
}

func init() {
	gin.SetMode(gin.TestMode)
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(context.Context) error { return f.err }

func newRouter(bs beerSvc) *gin.Engine {
	return NewHTTPServer(":0", time.Second, nopLogger{}, bs, nil).Router()
}

func memoryRouter() *gin.Engine {
	return newRouter(services.NewBeerService(beers.NewInMemoryRepository()))
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateListCount(t *testing.T) {
	r := memoryRouter()

	for _, name := range []string{"IPA", "Stout", "Lager"} {
		w := do(r, http.MethodPost, "/createBeer", `{"name":"`+name+`"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var b models.Beer
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
		assert.Equal(t, name, b.Name)
		assert.NotZero(t, b.ID)
	}

	w := do(r, http.MethodGet, "/getBeers", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Beer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 3)
	assert.Equal(t, []string{"IPA", "Stout", "Lager"}, []string{list[0].Name, list[1].Name, list[2].Name})

	w = do(r, http.MethodGet, "/getBeerCount", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":3}`, w.Body.String())
}

func TestGetBeers_EmptyIsArray(t *testing.T) {
	w := do(memoryRouter(), http.MethodGet, "/getBeers", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateBeer_EmptyName(t *testing.T) {
	r := memoryRouter()

	w := do(r, http.MethodPost, "/createBeer", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"name cannot be empty"}`, w.Body.String())

	w = do(r, http.MethodGet, "/getBeerCount", "")
	assert.JSONEq(t, `{"count":0}`, w.Body.String())
}

func TestCreateBeer_MalformedBody(t *testing.T) {
	w := do(memoryRouter(), http.MethodPost, "/createBeer", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestErrorMapping(t *testing.T) {
	storage := common.NewStorageError(beers.OpSelectAll, errors.New("connection refused"))

	tests := []struct {
		name   string
		svc    *fakeBeers
		method string
		path   string
		body   string
		want   int
	}{
		{"create storage", &fakeBeers{createErr: storage}, http.MethodPost, "/createBeer", `{"name":"IPA"}`, http.StatusServiceUnavailable},
		{"create internal", &fakeBeers{createErr: errors.New("boom")}, http.MethodPost, "/createBeer", `{"name":"IPA"}`, http.StatusInternalServerError},
		{"list storage", &fakeBeers{listErr: storage}, http.MethodGet, "/getBeers", "", http.StatusServiceUnavailable},
		{"count storage", &fakeBeers{countErr: storage}, http.MethodGet, "/getBeerCount", "", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newRouter(tt.svc), tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, w.Code)
			assert.NotContains(t, w.Body.String(), "connection refused")
		})
	}
}

func TestHealthcheck(t *testing.T) {
	w := do(newRouter(&fakeBeers{}), http.MethodGet, "/healthcheck", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.False(t, body.Timestamp.IsZero())
}

func TestHealthcheck_StorageDown(t *testing.T) {
	r := NewHTTPServer(":0", time.Second, nopLogger{}, &fakeBeers{}, &fakePinger{err: errors.New("connection refused")}).Router()

	w := do(r, http.MethodGet, "/healthcheck", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, common.StatusUnavailable, body.Status)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestHealthcheck_StorageUp(t *testing.T) {
	r := NewHTTPServer(":0", time.Second, nopLogger{}, &fakeBeers{}, &fakePinger{}).Router()

	w := do(r, http.MethodGet, "/healthcheck", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
