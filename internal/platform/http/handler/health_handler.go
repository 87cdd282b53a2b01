// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ModelInfo は起動時にロードしたモデルの情報を提供します。
type ModelInfo interface {
	NumFeature() int
	NumTrees() int
	Version() string
}

// HealthHandler は /healthz を処理します。
type HealthHandler struct {
	model ModelInfo
}

// NewHealthHandler は model の情報を返す HealthHandler を生成します。
func NewHealthHandler(model ModelInfo) *HealthHandler {
	return &HealthHandler{model: model}
}

type healthResponse struct {
	Status string      `json:"status"`
	Model  modelStatus `json:"model"`
}

type modelStatus struct {
	Features int    `json:"features"`
	Trees    int    `json:"trees"`
	Version  string `json:"version"`
}

// Health は /healthz を処理します。モデルは起動時にロード済みのため常に ok を返します。
func (h *HealthHandler) Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, healthResponse{
			Status: "ok",
			Model: modelStatus{
				Features: h.model.NumFeature(),
				Trees:    h.model.NumTrees(),
				Version:  h.model.Version(),
			},
		})
	}
}
