package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traderx-tools/traderx-convert/internal/convert"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	svc, err := convert.NewService(convert.Config{
		OutputRoot:      "TraderXConfig",
		DefaultCurrency: "EUR",
		CacheSize:       8,
	})
	require.NoError(t, err)
	return NewServer(0, nil, svc).httpServer.Handler
}

func TestServerRoutes(t *testing.T) {
	router := newTestServer(t)

	t.Run("healthz", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/healthz", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("version", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/version", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("metrics", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/metrics", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("convert trader", func(t *testing.T) {
		body := "<Trader> Bob\n<Category> Food\nApple,1,10,5\n"
		req := httptest.NewRequest("POST", "/api/v1/convert/trader", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "GeneralSettings.json")
	})

	t.Run("unknown route", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/nope", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
