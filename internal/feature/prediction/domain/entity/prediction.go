package entity

// FeatureVector はモデル入力の1行です:
// [気温, 降水量, log1p(降水量), one-hot(銘柄)...]
type FeatureVector []float64

// Quote は1銘柄分のモデル出力です。どちらの値も10単位に丸められています。
type Quote struct {
	PredictedClose    int64
	RealTimeVariation int64
}

// PredictionResult はレスポンスに含まれる1銘柄分の予測です。
type PredictionResult struct {
	Stock Stock
	Quote
}

// PredictionResponse は /predict 1回分の結果です。
type PredictionResponse struct {
	Date        string // YYYY-MM-DD in the service location
	Weather     WeatherObservation
	Predictions []PredictionResult
}
