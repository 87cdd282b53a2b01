// Package kma は韓国気象庁の超短期実況API（VilageFcstInfoService_2.0/getUltraSrtNcst）のクライアントを提供します。
package kma

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL は公共データポータルの実況エンドポイントです。
	DefaultBaseURL = "http://apis.data.go.kr/1360000/VilageFcstInfoService_2.0/getUltraSrtNcst"
	// DefaultNX と DefaultNY は全州の予報格子座標です。
	DefaultNX = 63
	DefaultNY = 89
	// DefaultTimeout はHTTPリクエスト全体のタイムアウトです。
	DefaultTimeout = 10 * time.Second
)

// Config は気象庁APIクライアントの設定を保持します。
type Config struct {
	ServiceKey string        // data.go.kr service key, either raw or already URL-encoded
	BaseURL    string        // endpoint URL including the operation path
	NX         int           // forecast grid X
	NY         int           // forecast grid Y
	Timeout    time.Duration // HTTP request timeout
	RateLimit  int           // max calls per minute, 0 disables throttling
}

// LoadConfig は環境変数から気象庁APIの設定を読み込みます。
func LoadConfig() (Config, error) {
	cfg := Config{
		ServiceKey: os.Getenv("KMA_SERVICE_KEY"),
		BaseURL:    os.Getenv("KMA_BASE_URL"),
		NX:         DefaultNX,
		NY:         DefaultNY,
		Timeout:    DefaultTimeout,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	var err error
	if v := os.Getenv("KMA_NX"); v != "" {
		if cfg.NX, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("parse KMA_NX %q: %w", v, err)
		}
	}
	if v := os.Getenv("KMA_NY"); v != "" {
		if cfg.NY, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("parse KMA_NY %q: %w", v, err)
		}
	}
	if v := os.Getenv("KMA_TIMEOUT"); v != "" {
		if cfg.Timeout, err = time.ParseDuration(v); err != nil {
			return Config{}, fmt.Errorf("parse KMA_TIMEOUT %q: %w", v, err)
		}
	}
	if v := os.Getenv("KMA_RATE_LIMIT"); v != "" {
		if cfg.RateLimit, err = strconv.Atoi(v); err != nil || cfg.RateLimit < 0 {
			return Config{}, fmt.Errorf("parse KMA_RATE_LIMIT %q: invalid rate", v)
		}
	}
	return cfg, nil
}
