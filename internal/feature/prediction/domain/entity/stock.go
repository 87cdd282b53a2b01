// Package entity はpredictionフィーチャーのドメインモデルを定義します。
package entity

// Stock はモデルの学習対象となった銘柄を表します。
type Stock string

// DefaultStocks はモデルが学習した固定の銘柄一覧で、並びはレスポンス順です。
// one-hot の列順はこのスライスの順ではなく、エンコーダーが決めます。
var DefaultStocks = []Stock{
	"고구마켓 주식회사",
	"토마토탈 주식회사",
	"(주)딸기사세요",
	"감자 주식회사",
	"나주배랑깨",
	"배추컴퍼니",
	"양파이낸스",
	"(주)블루베리굿",
	"무야호 농업회사법인",
	"감귤로벌 주식회사",
}

// Vocabulary は DefaultStocks のコピーを返します。
func Vocabulary() []Stock {
	out := make([]Stock, len(DefaultStocks))
	copy(out, DefaultStocks)
	return out
}

// StockColumn は銘柄と特徴量ベクトル上のone-hot列の組です。
type StockColumn struct {
	Stock  Stock
	Column int
}
