package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"stock_forecast/internal/app/di"
	"stock_forecast/internal/platform/http/handler"
	"stock_forecast/internal/platform/logger"
	"stock_forecast/internal/platform/metrics"
)

// Options はミドルウェア構成を指定します。
type Options struct {
	Logger      *slog.Logger
	CORSOrigins []string // empty disables CORS
}

func NewRouter(opts Options, prediction *di.PredictionHandlers, health *handler.HealthHandler,
	m *metrics.Metrics) *gin.Engine {
	r := gin.New()

	l := opts.Logger
	if l == nil {
		l = slog.Default()
	}
	r.Use(gin.Recovery(), logger.RequestLogger(l), m.Middleware())

	// ブラウザから直接呼ばれる場合のみCORSを許可
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: opts.CORSOrigins,
			AllowMethods: []string{"GET", "HEAD", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       12 * time.Hour,
		}))
	}

	// 導通確認用
	r.GET("/healthz", health.Health)
	r.HEAD("/healthz", health.Health)
	r.OPTIONS("/healthz", health.Health)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	r.GET("/predict", prediction.Predict.Predict)
	r.GET("/stocks", prediction.Stocks.List)

	return r
}
