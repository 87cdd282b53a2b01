package entity

// WeatherObservation はモデル入力に使う現在の天気です。取得できない値は0です。
type WeatherObservation struct {
	Temperature float64 // air temperature in °C (KMA category T1H)
	Rainfall    float64 // precipitation over the last hour in mm (KMA category RN1)
}

// WeatherSource は観測値が気象APIから得たものか既定値かを表します。
type WeatherSource string

const (
	WeatherSourceLive     WeatherSource = "live"
	WeatherSourceFallback WeatherSource = "fallback"
)

// WeatherReading は天気取得の結果です。Observation は常に利用可能で、
// Err は Source が WeatherSourceFallback の場合のみ設定されます。
type WeatherReading struct {
	Observation WeatherObservation
	Source      WeatherSource
	Err         error
}

// IsFallback は観測値がゼロの既定値かどうかを返します。
func (r WeatherReading) IsFallback() bool {
	return r.Source == WeatherSourceFallback
}
