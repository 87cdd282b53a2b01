package feature

import (
	"math"

	"stock_forecast/internal/feature/prediction/domain/entity"
)

// weatherColumns は FeatureVector 先頭の天気列の数です。
const weatherColumns = 3

// Assembler は天気の列と銘柄のone-hot列を連結します。
type Assembler struct {
	encoder *OneHotEncoder
}

// NewAssembler は encoder で銘柄を符号化する Assembler を生成します。
func NewAssembler(encoder *OneHotEncoder) *Assembler {
	return &Assembler{encoder: encoder}
}

// Width は組み立てるベクトルの長さです。
func (a *Assembler) Width() int {
	return weatherColumns + a.encoder.Width()
}

// Assemble は [気温, 降水量, log1p(降水量)] ++ one-hot(銘柄) を組み立てます。
// 列順は学習時と一致している必要があり、ここでは不一致を検出できません。
func (a *Assembler) Assemble(w entity.WeatherObservation, stock entity.Stock) entity.FeatureVector {
	fv := make(entity.FeatureVector, 0, a.Width())
	fv = append(fv, w.Temperature, w.Rainfall, math.Log1p(w.Rainfall))
	return append(fv, a.encoder.Encode(stock)...)
}
