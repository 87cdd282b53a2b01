package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_forecast/internal/feature/prediction/domain/entity"
	"stock_forecast/internal/feature/prediction/transport/http/dto"
)

// StockUsecase は銘柄一覧のユースケースインターフェースです。
type StockUsecase interface {
	ListStocks(ctx context.Context) []entity.StockColumn
}

// StockHandler は予測対象銘柄に関するHTTPリクエストを処理します。
type StockHandler struct {
	uc StockUsecase
}

// NewStockHandler は新しい StockHandler を作成します。
func NewStockHandler(uc StockUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List は予測対象の銘柄をレスポンス順で返します。indexはモデル入力のone-hot列です。
func (h *StockHandler) List(c *gin.Context) {
	stocks := h.uc.ListStocks(c.Request.Context())
	out := make([]dto.StockItem, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, dto.StockItem{Name: string(s.Stock), Index: s.Column})
	}
	c.JSON(http.StatusOK, out)
}
