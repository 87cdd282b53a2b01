package kma

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"stock_forecast/internal/feature/prediction/domain/entity"
	"stock_forecast/internal/feature/prediction/usecase"
	"stock_forecast/internal/platform/clock"
	"stock_forecast/internal/platform/externalapi/kma/dto"
	"stock_forecast/internal/shared/ratelimiter"
)

const (
	categoryTemperature = "T1H" // air temperature, °C
	categoryRainfall    = "RN1" // precipitation over the last hour, mm
)

// ErrMissingItems はレスポンスに response.body.items がない場合に返されます。
var ErrMissingItems = errors.New("kma: response has no items")

// KMAWeather は気象庁の実況APIを使う WeatherProvider です。
type KMAWeather struct {
	cfg     Config
	client  *http.Client
	now     clock.Clock
	limiter ratelimiter.Limiter
}

// KMAWeatherがWeatherProviderを実装していることをコンパイル時に検証します。
var _ usecase.WeatherProvider = (*KMAWeather)(nil)

// NewKMAWeather は KMAWeather を生成します。now は base_date/base_time の算出に使われ、
// APIが前提とするタイムゾーン（KST）の時刻を返す必要があります。
func NewKMAWeather(cfg Config, client *http.Client, now clock.Clock) *KMAWeather {
	return &KMAWeather{cfg: cfg, client: client, now: now}
}

// WithLimiter は外部呼び出しの頻度を制限します。待機時間の上限は cfg.Timeout です。
func (k *KMAWeather) WithLimiter(l ratelimiter.Limiter) *KMAWeather {
	k.limiter = l
	return k
}

// Fetch は設定された格子点の最新の毎時観測値を返します。
// レスポンスにないカテゴリの値は0のままです。
func (k *KMAWeather) Fetch(ctx context.Context) (entity.WeatherObservation, error) {
	if err := k.wait(ctx); err != nil {
		return entity.WeatherObservation{}, fmt.Errorf("kma rate limit: %w", err)
	}

	base := clock.TopOfHour(k.now())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.requestURL(base), nil)
	if err != nil {
		return entity.WeatherObservation{}, err
	}

	res, err := k.client.Do(req)
	if err != nil {
		return entity.WeatherObservation{}, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return entity.WeatherObservation{}, fmt.Errorf("kma http %d", res.StatusCode)
	}

	// サービスキーが無効な場合は dataType=JSON でもXMLが返るため、ここでデコードエラーになる
	var body dto.UltraSrtNcstResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entity.WeatherObservation{}, fmt.Errorf("decode kma response: %w", err)
	}

	h := body.Response.Header
	if h.ResultCode != "" && h.ResultCode != dto.ResultCodeOK {
		return entity.WeatherObservation{}, fmt.Errorf("kma: %s %s", h.ResultCode, h.ResultMsg)
	}
	if body.Response.Body == nil || body.Response.Body.Items == nil {
		return entity.WeatherObservation{}, ErrMissingItems
	}

	return parseItems(body.Response.Body.Items.Item)
}

func (k *KMAWeather) wait(ctx context.Context) error {
	if k.limiter == nil {
		return nil
	}
	if k.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, k.cfg.Timeout)
		defer cancel()
	}
	return k.limiter.Wait(ctx)
}

// parseItems は最初の T1H と最初の RN1 の値を取り出します。
func parseItems(items []dto.Item) (entity.WeatherObservation, error) {
	var (
		obs              entity.WeatherObservation
		haveTemp, haveRN bool
	)
	for _, it := range items {
		switch {
		case it.Category == categoryTemperature && !haveTemp:
			v, err := it.ObsrValue.Float()
			if err != nil {
				return entity.WeatherObservation{}, fmt.Errorf("parse %s %q: %w", it.Category, it.ObsrValue, err)
			}
			obs.Temperature, haveTemp = v, true
		case it.Category == categoryRainfall && !haveRN:
			v, err := it.ObsrValue.Float()
			if err != nil {
				return entity.WeatherObservation{}, fmt.Errorf("parse %s %q: %w", it.Category, it.ObsrValue, err)
			}
			obs.Rainfall, haveRN = v, true
		}
		if haveTemp && haveRN {
			break
		}
	}
	return obs, nil
}

// requestURL は base 時刻のリクエストURLを組み立てます。data.go.kr のサービスキーには
// 生の形式とURLエンコード済みの形式があり、エンコード済みのキーは二重エスケープしないようそのまま使います。
func (k *KMAWeather) requestURL(base time.Time) string {
	q := url.Values{}
	q.Set("numOfRows", "10")
	q.Set("pageNo", "1")
	q.Set("dataType", "JSON")
	q.Set("base_date", base.Format("20060102"))
	q.Set("base_time", base.Format("1504"))
	q.Set("nx", strconv.Itoa(k.cfg.NX))
	q.Set("ny", strconv.Itoa(k.cfg.NY))

	key := k.cfg.ServiceKey
	if !strings.Contains(key, "%") {
		key = url.QueryEscape(key)
	}
	return fmt.Sprintf("%s?serviceKey=%s&%s", k.cfg.BaseURL, key, q.Encode())
}
