package dto

// StockItem は GET /stocks レスポンスの1銘柄です。
// Index はモデル入力におけるその銘柄のone-hot列です。
type StockItem struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
}
