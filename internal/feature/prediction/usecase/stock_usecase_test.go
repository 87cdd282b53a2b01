package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_forecast/internal/feature/prediction/domain/entity"
	"stock_forecast/internal/feature/prediction/domain/feature"
)

func TestStockUsecase_ListStocks(t *testing.T) {
	t.Parallel()

	enc, err := feature.NewOneHotEncoder(entity.Vocabulary())
	require.NoError(t, err)

	stocks := append(entity.Vocabulary(), "unknown")
	got := NewStockUsecase(stocks, enc).ListStocks(context.Background())

	require.Len(t, got, 11)
	assert.Equal(t, entity.StockColumn{Stock: "고구마켓 주식회사", Column: 4}, got[0])
	assert.Equal(t, entity.StockColumn{Stock: "(주)딸기사세요", Column: 0}, got[2])
	assert.Equal(t, entity.StockColumn{Stock: "감귤로벌 주식회사", Column: 2}, got[9])
	assert.Equal(t, entity.StockColumn{Stock: "unknown", Column: -1}, got[10])
}
