package usecase

import "errors"

var (
	// ErrPredictionFailed は銘柄の予測値を算出できなかった場合に返されます。
	ErrPredictionFailed = errors.New("prediction failed")
	// ErrPriceOutOfRange はモデル出力から得た価格が整数価格として表現できない場合に返されます。
	ErrPriceOutOfRange = errors.New("predicted price out of range")
)
