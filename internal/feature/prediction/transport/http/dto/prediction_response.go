// Package dto はprediction HTTP APIのデータ転送オブジェクトを定義します。
package dto

import "stock_forecast/internal/feature/prediction/domain/entity"

// PredictionResponse は GET /predict のレスポンスDTOです。
type PredictionResponse struct {
	Date        string           `json:"date"` // YYYY-MM-DD
	Weather     WeatherResponse  `json:"weather"`
	Predictions []PredictionItem `json:"predictions"`
}

// WeatherResponse は予測に使った天気です。
type WeatherResponse struct {
	Temperature float64 `json:"temperature"` // 気温 (°C)
	Rainfall    float64 `json:"rainfall"`    // 1時間降水量 (mm)
}

// PredictionItem は1銘柄分の予測です。
type PredictionItem struct {
	Stock             string `json:"stock"`
	PredictedClose    int64  `json:"predicted_close"`
	RealTimeVariation int64  `json:"real_time_variation"`
}

// NewPredictionResponse はドメインの結果をレスポンスDTOに変換します。
func NewPredictionResponse(res *entity.PredictionResponse) PredictionResponse {
	out := PredictionResponse{
		Date: res.Date,
		Weather: WeatherResponse{
			Temperature: res.Weather.Temperature,
			Rainfall:    res.Weather.Rainfall,
		},
		Predictions: make([]PredictionItem, 0, len(res.Predictions)),
	}
	for _, p := range res.Predictions {
		out.Predictions = append(out.Predictions, PredictionItem{
			Stock:             string(p.Stock),
			PredictedClose:    p.PredictedClose,
			RealTimeVariation: p.RealTimeVariation,
		})
	}
	return out
}
