package httpsrv

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRouter_HealthReportsProgress(t *testing.T) {
	router := newRouter(ServerOptions{
		Progress: func() (int, int) { return 1, 3 },
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK 1/3", rec.Body.String())
}

func TestRouter_HealthWithoutProgress(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(ServerOptions{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, "OK", rec.Body.String())
}

func TestRouter_ServesMetricsAtConfiguredPath(t *testing.T) {
	router := newRouter(ServerOptions{
		MetricsPath:    "/custom",
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "metrics")
		}),
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/custom", nil))
	require.Equal(t, "metrics", rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
