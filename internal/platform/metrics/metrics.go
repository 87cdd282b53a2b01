// Package metrics はPrometheusメトリクスの登録と公開を提供します。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"stock_forecast/internal/feature/prediction/domain/entity"
)

const namespace = "stock_forecast"

// Metrics はサービス専用のレジストリ上のコレクターを保持します。
// すべてのメソッドは並行利用に安全です。
type Metrics struct {
	registry        *prometheus.Registry
	weatherLookups  *prometheus.CounterVec
	predictions     *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New はコレクターを生成し、Goランタイムとプロセスのコレクターとともに登録します。
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		weatherLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_lookups_total",
			Help:      "Weather lookups by source (live or fallback).",
		}, []string{"source"}),
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Prediction requests by outcome (ok or error).",
		}, []string{"outcome"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route, method and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}

	m.registry.MustRegister(
		m.weatherLookups,
		m.predictions,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveWeather は天気取得を1回数えます。
func (m *Metrics) ObserveWeather(source entity.WeatherSource) {
	m.weatherLookups.WithLabelValues(string(source)).Inc()
}

// ObservePrediction は /predict の結果を1回数えます。
func (m *Metrics) ObservePrediction(ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	m.predictions.WithLabelValues(outcome).Inc()
}

// Middleware はすべてのリクエストのレイテンシを記録します。未定義のルートは1つのラベルにまとめます。
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestDuration.
			WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Handler はレジストリをPrometheusのテキスト形式で公開します。
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry は内部のレジストリを返します。
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
