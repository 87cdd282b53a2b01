// Package config はサーバー全体の設定を環境変数から読み込みます。
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	DefaultPort      = "8080"
	DefaultModelPath = "model/xgboost_stock_model.json"
)

// Config はサーバー全体の設定を保持します。気象APIとログの設定はそれぞれのパッケージで扱います。
type Config struct {
	Port        string   // PORT
	ModelPath   string   // MODEL_PATH
	Location    string   // TZ_LOCATION, IANA zone name
	CORSOrigins []string // CORS_ALLOW_ORIGINS, comma separated; empty disables CORS
}

// LoadConfig は環境変数からサーバー設定を読み込みます。
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:      os.Getenv("PORT"),
		ModelPath: os.Getenv("MODEL_PATH"),
		Location:  os.Getenv("TZ_LOCATION"),
	}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if p, err := strconv.Atoi(cfg.Port); err != nil || p <= 0 || p > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", cfg.Port)
	}
	if cfg.ModelPath == "" {
		cfg.ModelPath = DefaultModelPath
	}
	for _, o := range strings.Split(os.Getenv("CORS_ALLOW_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}
	return cfg, nil
}

// Addr は http.Server の待ち受けアドレスを返します。
func (c Config) Addr() string {
	return ":" + c.Port
}
