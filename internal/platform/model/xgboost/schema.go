package xgboost

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// 以下の構造体は、木の推論に必要な範囲でXGBoostのJSONモデル（Booster.save_model("*.json")）を写したものです。

type modelJSON struct {
	Learner learnerJSON `json:"learner"`
	Version []int       `json:"version"`
}

type learnerJSON struct {
	GradientBooster   gradientBoosterJSON `json:"gradient_booster"`
	LearnerModelParam struct {
		BaseScore  string `json:"base_score"`
		NumClass   string `json:"num_class"`
		NumFeature string `json:"num_feature"`
		NumTarget  string `json:"num_target"`
	} `json:"learner_model_param"`
	Objective struct {
		Name string `json:"name"`
	} `json:"objective"`
}

// gradientBoosterJSON は "gbtree"（Model）と "dart"（GBTree + WeightDrop）の両方を表します。
type gradientBoosterJSON struct {
	Name   string         `json:"name"`
	Model  *treeModelJSON `json:"model"`
	GBTree *gbtreeJSON    `json:"gbtree"`
	Weight []float32      `json:"weight_drop"`
}

type gbtreeJSON struct {
	Model *treeModelJSON `json:"model"`
}

type treeModelJSON struct {
	Trees    []treeJSON `json:"trees"`
	TreeInfo []int      `json:"tree_info"`
}

type treeJSON struct {
	ID              int        `json:"id"`
	LeftChildren    []int32    `json:"left_children"`
	RightChildren   []int32    `json:"right_children"`
	SplitIndices    []int32    `json:"split_indices"`
	SplitConditions []float32  `json:"split_conditions"`
	DefaultLeft     []flexBool `json:"default_left"`
	SplitType       []int      `json:"split_type"`
}

// flexBool はJSONの真偽値と0/1の整数の両方を受け付けます。XGBoostのバージョンによって異なるためです。
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true", "1":
		*b = true
	case "false", "0", "null":
		*b = false
	default:
		return fmt.Errorf("invalid default_left value %s", data)
	}
	return nil
}

// parseParam は数値の学習パラメータを読み込みます。XGBoostは文字列で保存し、
// 新しいバージョンではベクトル値を角括弧で囲みます（"[5E-1]"）。
func parseParam(name, raw string, def float64) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	if s == "" {
		return def, nil
	}
	if strings.Contains(s, ",") {
		return 0, fmt.Errorf("%w: %s has multiple values %q", ErrUnsupportedModel, name, raw)
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: parse %s %q: %v", ErrInvalidModel, name, raw, err)
	}
	return v, nil
}
