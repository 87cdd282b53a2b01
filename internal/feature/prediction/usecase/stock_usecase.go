package usecase

import (
	"context"

	"stock_forecast/internal/feature/prediction/domain/entity"
)

// ColumnIndexer は銘柄に割り当てられたone-hot列を返します。
type ColumnIndexer interface {
	Index(stock entity.Stock) (int, bool)
}

// StockUsecase はモデルが扱う銘柄を一覧します。
type StockUsecase struct {
	stocks  []entity.Stock
	indexer ColumnIndexer
}

// NewStockUsecase はレスポンス順の stocks から StockUsecase を生成します。
func NewStockUsecase(stocks []entity.Stock, indexer ColumnIndexer) *StockUsecase {
	s := make([]entity.Stock, len(stocks))
	copy(s, stocks)
	return &StockUsecase{stocks: s, indexer: indexer}
}

// ListStocks は全銘柄を特徴量の列とともに返します。未知の銘柄の列は-1です。
func (u *StockUsecase) ListStocks(_ context.Context) []entity.StockColumn {
	out := make([]entity.StockColumn, 0, len(u.stocks))
	for _, s := range u.stocks {
		col, ok := u.indexer.Index(s)
		if !ok {
			col = -1
		}
		out = append(out, entity.StockColumn{Stock: s, Column: col})
	}
	return out
}
