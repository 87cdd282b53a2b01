// Command predict は予測を1回実行し、/predict と同じJSONを標準出力に書き出します。
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"stock_forecast/internal/app/config"
	"stock_forecast/internal/app/di"
	"stock_forecast/internal/feature/prediction/domain/entity"
	"stock_forecast/internal/feature/prediction/transport/http/dto"
	"stock_forecast/internal/platform/clock"
	"stock_forecast/internal/platform/externalapi/kma"
	"stock_forecast/internal/platform/logger"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}
	// stdoutはJSON出力専用のため、ログはstderrへ
	logger.InitWriter(logger.LoadConfig(), os.Stderr)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	kmaCfg, err := kma.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	loc, err := clock.LoadLocation(cfg.Location)
	if err != nil {
		log.Fatal(err)
	}
	now := clock.In(loc)

	model, err := di.NewModel(cfg.ModelPath)
	if err != nil {
		log.Fatal(err)
	}
	uc, _, err := di.NewPredictionUsecases(model, di.NewWeather(kmaCfg, now, nil), entity.Vocabulary(), now)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	res, err := uc.Predict(ctx)
	if err != nil {
		log.Fatal(err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dto.NewPredictionResponse(res)); err != nil {
		log.Fatal(err)
	}
}
