// Package http は外部API呼び出し用のHTTPクライアントを提供します。
package http

import (
	"net"
	"net/http"
	"time"
)

// ClientConfig は外部呼び出し用トランスポートの設定です。ゼロ値のフィールドは既定値を使います。
type ClientConfig struct {
	// Timeout はボディの読み込みを含むリクエスト全体のタイムアウトです。
	Timeout time.Duration
	// DialTimeout はTCP接続のタイムアウトです。
	DialTimeout time.Duration
	// MaxIdleConnsPerHost は1ホストあたりの再利用可能な接続数の上限です。
	MaxIdleConnsPerHost int
}

const (
	defaultTimeout             = 10 * time.Second
	defaultDialTimeout         = 5 * time.Second
	defaultMaxIdleConnsPerHost = 16
)

// NewHTTPClient は外部API（気象庁API）呼び出し用のHTTPクライアントを作成します。
//
// 注意:
//   - http.DefaultClientにはタイムアウトがないため、常にこのクライアントを使用すること
//   - 1リクエストにつき気象APIを1回だけ呼ぶため、接続はホスト単位で再利用する
func NewHTTPClient(cfg ClientConfig) *http.Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = defaultDialTimeout
	}
	if cfg.MaxIdleConnsPerHost <= 0 {
		cfg.MaxIdleConnsPerHost = defaultMaxIdleConnsPerHost
	}

	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   cfg.DialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          cfg.MaxIdleConnsPerHost * 2,
		MaxIdleConnsPerHost:   cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   cfg.DialTimeout,
		ResponseHeaderTimeout: cfg.Timeout,
	}
	return &http.Client{Timeout: cfg.Timeout, Transport: t}
}
