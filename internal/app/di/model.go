package di

import (
	"fmt"
	"log/slog"

	"stock_forecast/internal/feature/prediction/domain/entity"
	"stock_forecast/internal/feature/prediction/domain/feature"
	"stock_forecast/internal/platform/model/xgboost"
)

// NewModel は path からXGBoostモデルを読み込みます。
func NewModel(path string) (*xgboost.Booster, error) {
	b, err := xgboost.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}
	slog.Info("model loaded",
		"path", path,
		"features", b.NumFeature(),
		"trees", b.NumTrees(),
		"objective", b.Objective(),
		"version", b.Version(),
	)
	return b, nil
}

// NewAssembler は vocab でone-hotエンコーダーを学習し、特徴量の列数がモデルの入力幅と一致するか検証します。
func NewAssembler(vocab []entity.Stock, model *xgboost.Booster) (*feature.Assembler, *feature.OneHotEncoder, error) {
	enc, err := feature.NewOneHotEncoder(vocab)
	if err != nil {
		return nil, nil, fmt.Errorf("fit encoder: %w", err)
	}
	a := feature.NewAssembler(enc)
	if a.Width() != model.NumFeature() {
		return nil, nil, fmt.Errorf("feature width %d does not match model input %d", a.Width(), model.NumFeature())
	}
	return a, enc, nil
}
