// Package di はアプリケーションのコンポーネントを生成する依存性注入用のファクトリを提供します。
package di

import (
	"log/slog"
	"time"

	"stock_forecast/internal/feature/prediction/usecase"
	"stock_forecast/internal/platform/clock"
	"stock_forecast/internal/platform/externalapi/kma"
	infrahttp "stock_forecast/internal/platform/http"
	"stock_forecast/internal/shared/ratelimiter"
)

// NewWeather は気象庁APIを使い、失敗時にゼロ値へフォールバックする天気ソースを生成します。
// recorder は nil でも構いません。
func NewWeather(cfg kma.Config, now clock.Clock, recorder usecase.WeatherRecorder) *usecase.FallbackWeather {
	if cfg.ServiceKey == "" {
		slog.Warn("KMA_SERVICE_KEY is not set; every weather lookup will fall back to zero values")
	}
	httpClient := infrahttp.NewHTTPClient(infrahttp.ClientConfig{Timeout: cfg.Timeout})
	provider := kma.NewKMAWeather(cfg, httpClient, now)
	if cfg.RateLimit > 0 {
		provider.WithLimiter(ratelimiter.NewRateLimiter(cfg.RateLimit, time.Minute))
	}
	return usecase.NewFallbackWeather(provider, recorder)
}
