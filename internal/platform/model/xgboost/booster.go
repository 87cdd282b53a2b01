// Package xgboost はXGBoostのJSON形式で保存された勾配ブースティング木モデルを評価します。
//
// 対応するのは数値分岐のみの単一出力ブースター（"gbtree" と "dart"）です。推論はXGBoostに従い、
// 特徴量は float32 で比較し、分岐条件より小さい場合に左へ進み、NaN はノードの既定方向に進みます。
package xgboost

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

var (
	// ErrInvalidModel はモデルのJSONが不正な場合に返されます。
	ErrInvalidModel = errors.New("xgboost: invalid model")
	// ErrUnsupportedModel は正しいがこのパッケージで評価できないモデルの場合に返されます。
	ErrUnsupportedModel = errors.New("xgboost: unsupported model")
	// ErrFeatureShape は入力の列数がモデルの入力幅と一致しない場合に返されます。
	ErrFeatureShape = errors.New("xgboost: feature shape mismatch")
)

// Booster はロード済みの木のアンサンブルです。ロード後は読み取り専用で、並行利用に安全です。
type Booster struct {
	numFeature int
	baseMargin float32
	trees      []tree
	weights    []float32
	objective  objective
	version    []int
}

// LoadFile は path からJSONモデルを読み込みます。
func LoadFile(path string) (*Booster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	b, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load model %q: %w", path, err)
	}
	return b, nil
}

// Decode は r からJSONモデルを解析します。
func Decode(r io.Reader) (*Booster, error) {
	var doc modelJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}
	return build(&doc)
}

func build(doc *modelJSON) (*Booster, error) {
	lp := doc.Learner.LearnerModelParam

	numFeature, err := parseParam("num_feature", lp.NumFeature, 0)
	if err != nil {
		return nil, err
	}
	if numFeature < 1 {
		return nil, fmt.Errorf("%w: num_feature %q", ErrInvalidModel, lp.NumFeature)
	}
	if numClass, err := parseParam("num_class", lp.NumClass, 0); err != nil {
		return nil, err
	} else if numClass > 1 {
		return nil, fmt.Errorf("%w: multi-class model (num_class=%v)", ErrUnsupportedModel, numClass)
	}
	if numTarget, err := parseParam("num_target", lp.NumTarget, 1); err != nil {
		return nil, err
	} else if numTarget > 1 {
		return nil, fmt.Errorf("%w: multi-target model (num_target=%v)", ErrUnsupportedModel, numTarget)
	}

	obj, err := lookupObjective(doc.Learner.Objective.Name)
	if err != nil {
		return nil, err
	}
	baseScore, err := parseParam("base_score", lp.BaseScore, 0.5)
	if err != nil {
		return nil, err
	}
	margin := obj.baseMargin(baseScore)
	if math.IsNaN(margin) || math.IsInf(margin, 0) {
		return nil, fmt.Errorf("%w: base_score %v invalid for objective %q", ErrInvalidModel, baseScore, obj.name)
	}

	gb := doc.Learner.GradientBooster
	var model *treeModelJSON
	switch gb.Name {
	case "gbtree":
		model = gb.Model
	case "dart":
		if gb.GBTree != nil {
			model = gb.GBTree.Model
		}
	default:
		return nil, fmt.Errorf("%w: booster %q", ErrUnsupportedModel, gb.Name)
	}
	if model == nil {
		return nil, fmt.Errorf("%w: %s booster has no trees section", ErrInvalidModel, gb.Name)
	}

	trees := make([]tree, 0, len(model.Trees))
	for i := range model.Trees {
		t, err := newTree(&model.Trees[i], int(numFeature))
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
		trees = append(trees, t)
	}

	weights := make([]float32, len(trees))
	for i := range weights {
		weights[i] = 1
	}
	if gb.Name == "dart" && len(gb.Weight) > 0 {
		if len(gb.Weight) != len(trees) {
			return nil, fmt.Errorf("%w: %d weight_drop entries for %d trees", ErrInvalidModel, len(gb.Weight), len(trees))
		}
		copy(weights, gb.Weight)
	}

	return &Booster{
		numFeature: int(numFeature),
		baseMargin: float32(margin),
		trees:      trees,
		weights:    weights,
		objective:  obj,
		version:    doc.Version,
	}, nil
}

// NumFeature はモデルの学習時の入力幅です。
func (b *Booster) NumFeature() int { return b.numFeature }

// NumTrees はアンサンブルの木の数です。
func (b *Booster) NumTrees() int { return len(b.trees) }

// Objective はモデルに記録された学習時の目的関数です。
func (b *Booster) Objective() string { return b.objective.name }

// Version はモデルを保存したXGBoostのバージョンです。記録がなければ "unknown" です。
func (b *Booster) Version() string {
	if len(b.version) == 0 {
		return "unknown"
	}
	s := fmt.Sprint(b.version[0])
	for _, v := range b.version[1:] {
		s += fmt.Sprintf(".%d", v)
	}
	return s
}

// Predict は1行分の入力を評価し、目的関数で変換した予測値を返します。
func (b *Booster) Predict(features []float64) (float64, error) {
	if len(features) != b.numFeature {
		return 0, fmt.Errorf("%w: got %d columns, model expects %d", ErrFeatureShape, len(features), b.numFeature)
	}

	row := make([]float32, len(features))
	for i, f := range features {
		row[i] = float32(f)
	}

	sum := b.baseMargin
	for i := range b.trees {
		sum += b.weights[i] * b.trees[i].leafValue(row)
	}
	return b.objective.transform(float64(sum)), nil
}
