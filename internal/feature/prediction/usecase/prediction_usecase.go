package usecase

import (
	"context"
	"fmt"
	"time"

	"stock_forecast/internal/feature/prediction/domain/entity"
)

// DateLayout はレスポンスの日付フォーマットです。
const DateLayout = "2006-01-02"

// FeatureAssembler は1銘柄分のモデル入力を組み立てます。
type FeatureAssembler interface {
	Assemble(w entity.WeatherObservation, stock entity.Stock) entity.FeatureVector
}

// QuotePredictor は特徴量から予測値を算出します。
type QuotePredictor interface {
	Predict(ctx context.Context, features entity.FeatureVector) (entity.Quote, error)
}

// WeatherSource は現在のリクエストで使う天気を返します。失敗することはありません。
type WeatherSource interface {
	Current(ctx context.Context) entity.WeatherReading
}

// PredictionUsecase は全銘柄の予測を行います。
// 生成後はすべてのフィールドが読み取り専用のため、1つのインスタンスで並行リクエストを処理できます。
type PredictionUsecase struct {
	weather   WeatherSource
	assembler FeatureAssembler
	predictor QuotePredictor
	stocks    []entity.Stock
	now       func() time.Time
}

// NewPredictionUsecase は PredictionUsecase を生成します。stocks はコピーされ、レスポンス順になります。
func NewPredictionUsecase(weather WeatherSource, assembler FeatureAssembler, predictor QuotePredictor,
	stocks []entity.Stock, now func() time.Time) *PredictionUsecase {
	s := make([]entity.Stock, len(stocks))
	copy(s, stocks)
	return &PredictionUsecase{
		weather:   weather,
		assembler: assembler,
		predictor: predictor,
		stocks:    s,
		now:       now,
	}
}

// Predict は天気を1回だけ取得し、全銘柄を順に予測します。
// 最初の予測エラーでリクエスト全体を中断します。
func (u *PredictionUsecase) Predict(ctx context.Context) (*entity.PredictionResponse, error) {
	reading := u.weather.Current(ctx)

	results := make([]entity.PredictionResult, 0, len(u.stocks))
	for _, s := range u.stocks {
		fv := u.assembler.Assemble(reading.Observation, s)
		q, err := u.predictor.Predict(ctx, fv)
		if err != nil {
			return nil, fmt.Errorf("%w for %q: %w", ErrPredictionFailed, s, err)
		}
		results = append(results, entity.PredictionResult{Stock: s, Quote: q})
	}

	return &entity.PredictionResponse{
		Date:        u.now().Format(DateLayout),
		Weather:     reading.Observation,
		Predictions: results,
	}, nil
}

// Stocks は銘柄一覧をレスポンス順で返します。
func (u *PredictionUsecase) Stocks() []entity.Stock {
	out := make([]entity.Stock, len(u.stocks))
	copy(out, u.stocks)
	return out
}
