package usecase

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"stock_forecast/internal/feature/prediction/domain/entity"
)

const (
	// VariationRatio は予測価格に対するリアルタイム変動幅（±2%）です。
	VariationRatio = 0.02
	// RoundingUnit はレスポンス価格の刻み（10ウォン）です。
	RoundingUnit = 10
)

// maxPrice を超える価格は int64 への丸めでオーバーフローする
const maxPrice = math.MaxInt64 / RoundingUnit

// Regressor は学習済みモデルで1行分の特徴量を評価します。戻り値は log1p(価格) です。
type Regressor interface {
	Predict(features []float64) (float64, error)
}

// RandomSource は [0, 1) の一様乱数を返します。並行利用に安全である必要があります。
type RandomSource interface {
	Float64() float64
}

// globalRand は math/rand/v2 のトップレベル生成器（goroutine-safe）を使います。
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// PricePredictor はモデル出力を丸めた終値と変動値に変換します。
type PricePredictor struct {
	model Regressor
	rnd   RandomSource
}

// NewPricePredictor は新しい PricePredictor を生成します。rnd が nil の場合は math/rand/v2 を使います。
func NewPricePredictor(model Regressor, rnd RandomSource) *PricePredictor {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &PricePredictor{model: model, rnd: rnd}
}

// Predict は特徴量でモデルを実行し、結果を後処理します。
// モデルのエラーはそのまま返します。価格が有限でない、または大きすぎる場合は ErrPriceOutOfRange を返します。
func (p *PricePredictor) Predict(_ context.Context, features entity.FeatureVector) (entity.Quote, error) {
	logPrice, err := p.model.Predict(features)
	if err != nil {
		return entity.Quote{}, err
	}

	price := math.Expm1(logPrice)
	lo, hi := price*(1-VariationRatio), price*(1+VariationRatio)
	if !representable(price) || !representable(lo) || !representable(hi) {
		return entity.Quote{}, fmt.Errorf("%w: log price %v", ErrPriceOutOfRange, logPrice)
	}
	variation := uniform(p.rnd, lo, hi)

	return entity.Quote{
		PredictedClose:    RoundToUnit(price),
		RealTimeVariation: RoundToUnit(variation),
	}, nil
}

func representable(x float64) bool {
	return !math.IsNaN(x) && math.Abs(x) < maxPrice
}

// uniform は引数の順序によらず [a, b] から一様に値を引きます。
func uniform(rnd RandomSource, a, b float64) float64 {
	if a > b {
		a, b = b, a
	}
	return a + (b-a)*rnd.Float64()
}

// RoundToUnit は x を RoundingUnit の倍数に丸めます。端数が半分の場合は偶数側に丸めます
// （25 -> 20, 35 -> 40）。
func RoundToUnit(x float64) int64 {
	return int64(math.RoundToEven(x/RoundingUnit)) * RoundingUnit
}
