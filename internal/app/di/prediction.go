package di

import (
	"stock_forecast/internal/feature/prediction/domain/entity"
	"stock_forecast/internal/feature/prediction/transport/handler"
	"stock_forecast/internal/feature/prediction/usecase"
	"stock_forecast/internal/platform/clock"
	"stock_forecast/internal/platform/metrics"
	"stock_forecast/internal/platform/model/xgboost"
)

// PredictionHandlers はpredictionフィーチャーのHTTPハンドラーをまとめます。
type PredictionHandlers struct {
	Predict *handler.PredictionHandler
	Stocks  *handler.StockHandler
}

// NewPredictionUsecases はロード済みモデルを使って予測と銘柄一覧のユースケースを組み立てます。
func NewPredictionUsecases(model *xgboost.Booster, weather usecase.WeatherSource, vocab []entity.Stock,
	now clock.Clock) (*usecase.PredictionUsecase, *usecase.StockUsecase, error) {
	assembler, enc, err := NewAssembler(vocab, model)
	if err != nil {
		return nil, nil, err
	}
	predictor := usecase.NewPricePredictor(model, nil)
	return usecase.NewPredictionUsecase(weather, assembler, predictor, vocab, now),
		usecase.NewStockUsecase(vocab, enc), nil
}

// NewPredictionHandlers はpredictionフィーチャーのHTTPハンドラーを組み立てます。m は nil でも構いません。
func NewPredictionHandlers(model *xgboost.Booster, weather usecase.WeatherSource, vocab []entity.Stock,
	now clock.Clock, m *metrics.Metrics) (*PredictionHandlers, error) {
	predictionUC, stockUC, err := NewPredictionUsecases(model, weather, vocab, now)
	if err != nil {
		return nil, err
	}

	var recorder handler.PredictionRecorder
	if m != nil {
		recorder = m
	}
	return &PredictionHandlers{
		Predict: handler.NewPredictionHandler(predictionUC, recorder),
		Stocks:  handler.NewStockHandler(stockUC),
	}, nil
}
