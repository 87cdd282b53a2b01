// Package usecase はprediction フィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"log/slog"

	"stock_forecast/internal/feature/prediction/domain/entity"
)

// WeatherProvider は外部ソースから現在の天気を取得します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type WeatherProvider interface {
	Fetch(ctx context.Context) (entity.WeatherObservation, error)
}

// WeatherRecorder は天気取得ごとの結果を記録します。
type WeatherRecorder interface {
	ObserveWeather(source entity.WeatherSource)
}

// FallbackWeather は WeatherProvider をラップし、常に観測値を返します。
// プロバイダーのエラーはログに記録し、ゼロの観測値に置き換えます。
type FallbackWeather struct {
	provider WeatherProvider
	recorder WeatherRecorder
}

// NewFallbackWeather は FallbackWeather を生成します。recorder は nil でも構いません。
func NewFallbackWeather(provider WeatherProvider, recorder WeatherRecorder) *FallbackWeather {
	return &FallbackWeather{provider: provider, recorder: recorder}
}

// Current は取得した観測値、またはフォールバックとしてゼロの観測値を返します。
func (f *FallbackWeather) Current(ctx context.Context) entity.WeatherReading {
	obs, err := f.provider.Fetch(ctx)
	reading := entity.WeatherReading{Observation: obs, Source: entity.WeatherSourceLive}
	if err != nil {
		// 天気APIの失敗はリクエストを止めず、既定値で続行する
		slog.Warn("weather lookup failed, using defaults", "error", err)
		reading = entity.WeatherReading{Source: entity.WeatherSourceFallback, Err: err}
	}
	if f.recorder != nil {
		f.recorder.ObserveWeather(reading.Source)
	}
	return reading
}
