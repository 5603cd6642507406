package httpapi

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixclaim/internal/platform/metrics"
	"pixclaim/pkg/platform/middleware/request"
	"pixclaim/pkg/testutil"
)

type pingRoutes struct{}

func (pingRoutes) Register(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
}

func newTestRouter(health map[string]HealthCheck) http.Handler {
	reg := prometheus.NewRegistry()
	return NewRouter(Config{
		Metrics:  metrics.NewWith(reg),
		Gatherer: reg,
		Health:   health,
		Routes:   []Registrar{pingRoutes{}},
	})
}

func TestRoutesAndRequestID(t *testing.T) {
	router := newTestRouter(nil)

	req := testutil.NewRequest(t, http.MethodGet, "/ping")
	req.Header.Set(request.HeaderRequestID, "req-42")
	rr := testutil.DoRequest(router, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "req-42", rr.Header().Get(request.HeaderRequestID))
}

func TestGeneratesRequestID(t *testing.T) {
	rr := testutil.DoRequest(newTestRouter(nil), testutil.NewRequest(t, http.MethodGet, "/ping"))
	assert.NotEmpty(t, rr.Header().Get(request.HeaderRequestID))
}

func TestHealthz(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("refused") }

	rr := testutil.DoRequest(newTestRouter(map[string]HealthCheck{"postgres": ok}),
		testutil.NewRequest(t, http.MethodGet, "/healthz"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","postgres":"ok"}`, rr.Body.String())

	rr = testutil.DoRequest(newTestRouter(map[string]HealthCheck{"postgres": ok, "redis": down}),
		testutil.NewRequest(t, http.MethodGet, "/healthz"))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `{"status":"degraded","postgres":"ok","redis":"unavailable"}`, rr.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(nil)
	testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/ping"))

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "pixclaim_http_request_duration_seconds")
}

func TestNotFoundAndPanic(t *testing.T) {
	router := newTestRouter(nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/nope"))
	testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/panic"))
	testutil.AssertStatusAndError(t, rr, http.StatusInternalServerError, "internal_error")
}
