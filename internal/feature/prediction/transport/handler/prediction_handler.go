// Package handler はpredictionフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_forecast/internal/api"
	"stock_forecast/internal/feature/prediction/domain/entity"
	"stock_forecast/internal/feature/prediction/transport/http/dto"
)

// errPredictionFailed はクライアントに返す唯一のエラーメッセージです。
const errPredictionFailed = "prediction failed"

// PredictionUsecase はGoの慣例に従い、利用者（handler）側で定義します。
type PredictionUsecase interface {
	Predict(ctx context.Context) (*entity.PredictionResponse, error)
}

// PredictionRecorder は予測リクエストごとの成否を記録します。
type PredictionRecorder interface {
	ObservePrediction(ok bool)
}

// PredictionHandler は株価予測のHTTPリクエストを処理します。
type PredictionHandler struct {
	uc       PredictionUsecase
	recorder PredictionRecorder
}

// NewPredictionHandler は PredictionHandler を生成します。recorder は nil でも構いません。
func NewPredictionHandler(uc PredictionUsecase, recorder PredictionRecorder) *PredictionHandler {
	return &PredictionHandler{uc: uc, recorder: recorder}
}

// Predict は全銘柄の予測終値と変動値をJSONで返します。
//
// エンドポイント例:
// GET /predict
func (h *PredictionHandler) Predict(c *gin.Context) {
	res, err := h.uc.Predict(c.Request.Context())
	h.observe(err == nil)
	if err != nil {
		// 内部エラーの詳細はログのみに残す
		slog.Error("prediction failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: errPredictionFailed})
		return
	}

	c.JSON(http.StatusOK, dto.NewPredictionResponse(res))
}

func (h *PredictionHandler) observe(ok bool) {
	if h.recorder != nil {
		h.recorder.ObservePrediction(ok)
	}
}
