package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_forecast/internal/feature/prediction/domain/entity"
)

func TestMetrics_ObserveWeather(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveWeather(entity.WeatherSourceLive)
	m.ObserveWeather(entity.WeatherSourceFallback)
	m.ObserveWeather(entity.WeatherSourceFallback)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.weatherLookups.WithLabelValues("live")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.weatherLookups.WithLabelValues("fallback")))
}

func TestMetrics_ObservePrediction(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObservePrediction(true)
	m.ObservePrediction(false)
	m.ObservePrediction(true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.predictions.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.predictions.WithLabelValues("error")))
}

func TestMetrics_MiddlewareAndHandler(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	m := New()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	assert.Equal(t, 2, testutil.CollectAndCount(m.requestDuration))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `stock_forecast_http_request_duration_seconds_count{method="GET",route="/ping",status="204"} 1`)
	assert.Contains(t, body, `route="unmatched",status="404"`)
	assert.Contains(t, body, "go_goroutines")
}
