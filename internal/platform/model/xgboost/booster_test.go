package xgboost

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Regression(t *testing.T) {
	t.Parallel()

	b, err := LoadFile("testdata/regression.json")
	require.NoError(t, err)

	assert.Equal(t, 4, b.NumFeature())
	assert.Equal(t, 2, b.NumTrees())
	assert.Equal(t, "reg:squarederror", b.Objective())
	assert.Equal(t, "1.7.6", b.Version())
}

func TestBooster_Predict(t *testing.T) {
	t.Parallel()

	b, err := LoadFile("testdata/regression.json")
	require.NoError(t, err)

	nan := math.NaN()
	tests := []struct {
		name     string
		features []float64
		want     float64
	}{
		{name: "left then left", features: []float64{5, 0, 0, 0}, want: 0.5 + 1.0 + 0.25},
		{name: "split value goes right", features: []float64{10, 0, 0, 2}, want: 0.5 + 2.0 - 0.5},
		{name: "right subtree right leaf", features: []float64{20, 0, 1, 1}, want: 0.5 + 3.0 - 0.5},
		{name: "missing value default left", features: []float64{20, 0, nan, 5}, want: 0.5 + 2.0 - 0.5},
		{name: "missing value default right", features: []float64{20, 0, 1, nan}, want: 0.5 + 3.0 - 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := b.Predict(tt.features)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBooster_Predict_ComparesAsFloat32(t *testing.T) {
	t.Parallel()

	b, err := LoadFile("testdata/regression.json")
	require.NoError(t, err)

	// 9.99999999 rounds to 10 in float32, so it goes right like XGBoost would.
	got, err := b.Predict([]float64{9.99999999, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.5+2.0+0.25, got)
}

func TestBooster_Predict_FeatureShape(t *testing.T) {
	t.Parallel()

	b, err := LoadFile("testdata/regression.json")
	require.NoError(t, err)

	for _, n := range []int{0, 3, 5, 13} {
		_, err := b.Predict(make([]float64, n))
		assert.True(t, errors.Is(err, ErrFeatureShape), "width %d: got %v", n, err)
	}
}

func TestBooster_Predict_Concurrent(t *testing.T) {
	t.Parallel()

	b, err := LoadFile("testdata/regression.json")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := b.Predict([]float64{5, 0, 0, 0})
			assert.NoError(t, err)
			assert.Equal(t, 1.75, got)
		}()
	}
	wg.Wait()
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile("testdata/does-not-exist.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open model")
}

// singleLeaf returns a model document whose only tree is one leaf.
func singleLeaf(booster, objective, baseScore, leaf string) string {
	trees := `"trees": [{"default_left": [0], "left_children": [-1], "right_children": [-1],
		"split_conditions": [` + leaf + `], "split_indices": [0], "split_type": [0]}]`
	var gb string
	if booster == "dart" {
		gb = `{"name": "dart", "gbtree": {"model": {` + trees + `}}, "weight_drop": [0.5]}`
	} else {
		gb = `{"name": "` + booster + `", "model": {` + trees + `}}`
	}
	return `{"learner": {"gradient_booster": ` + gb + `,
		"learner_model_param": {"base_score": "` + baseScore + `", "num_class": "0", "num_feature": "2", "num_target": "1"},
		"objective": {"name": "` + objective + `"}}, "version": [2, 1, 0]}`
}

func TestDecode_Objectives(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		objective string
		baseScore string
		leaf      string
		want      float64
	}{
		{name: "squared error", objective: "reg:squarederror", baseScore: "1E0", leaf: "2", want: 3},
		{name: "bracketed base score", objective: "reg:squarederror", baseScore: "[2.5E-1]", leaf: "1", want: 1.25},
		{name: "logistic", objective: "reg:logistic", baseScore: "5E-1", leaf: "0", want: 0.5},
		{name: "binary logistic", objective: "binary:logistic", baseScore: "5E-1", leaf: "2", want: 1 / (1 + math.Exp(-2))},
		{name: "logitraw neutral base score", objective: "binary:logitraw", baseScore: "5E-1", leaf: "2", want: 2},
		{name: "logitraw base score in margin space", objective: "binary:logitraw", baseScore: "7.5E-1", leaf: "0", want: math.Log(3)},
		{name: "gamma", objective: "reg:gamma", baseScore: "1", leaf: "2", want: math.Exp(2)},
		{name: "poisson", objective: "count:poisson", baseScore: "1", leaf: "-1", want: math.Exp(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := Decode(strings.NewReader(singleLeaf("gbtree", tt.objective, tt.baseScore, tt.leaf)))
			require.NoError(t, err)
			got, err := b.Predict([]float64{0, 0})
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestDecode_Dart(t *testing.T) {
	t.Parallel()

	b, err := Decode(strings.NewReader(singleLeaf("dart", "reg:squarederror", "0", "3")))
	require.NoError(t, err)
	assert.Equal(t, "2.1.0", b.Version())

	got, err := b.Predict([]float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 1.5, got)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tree := func(left, right, idx, cond, dl string) string {
		return `{"learner": {"gradient_booster": {"name": "gbtree", "model": {"trees": [{
			"left_children": ` + left + `, "right_children": ` + right + `, "split_indices": ` + idx + `,
			"split_conditions": ` + cond + `, "default_left": ` + dl + `}]}},
			"learner_model_param": {"base_score": "0", "num_feature": "2"},
			"objective": {"name": "reg:squarederror"}}}`
	}

	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{name: "not json", doc: `{invalid`, wantErr: ErrInvalidModel},
		{name: "missing num_feature", doc: `{"learner": {"gradient_booster": {"name": "gbtree", "model": {"trees": []}}}}`, wantErr: ErrInvalidModel},
		{name: "bad base score", doc: singleLeaf("gbtree", "reg:squarederror", "abc", "1"), wantErr: ErrInvalidModel},
		{name: "logistic base score out of range", doc: singleLeaf("gbtree", "reg:logistic", "1", "1"), wantErr: ErrInvalidModel},
		{name: "linear booster", doc: singleLeaf("gblinear", "reg:squarederror", "0", "1"), wantErr: ErrUnsupportedModel},
		{name: "unknown objective", doc: singleLeaf("gbtree", "rank:pairwise", "0", "1"), wantErr: ErrUnsupportedModel},
		{name: "multi class", doc: strings.Replace(singleLeaf("gbtree", "reg:squarederror", "0", "1"), `"num_class": "0"`, `"num_class": "3"`, 1), wantErr: ErrUnsupportedModel},
		{name: "multi target", doc: strings.Replace(singleLeaf("gbtree", "reg:squarederror", "0", "1"), `"num_target": "1"`, `"num_target": "2"`, 1), wantErr: ErrUnsupportedModel},
		{name: "categorical split", doc: strings.Replace(singleLeaf("gbtree", "reg:squarederror", "0", "1"), `"split_type": [0]`, `"split_type": [1]`, 1), wantErr: ErrUnsupportedModel},
		{name: "gbtree without model", doc: `{"learner": {"gradient_booster": {"name": "gbtree"}, "learner_model_param": {"num_feature": "2"}}}`, wantErr: ErrInvalidModel},
		{name: "empty tree", doc: tree(`[]`, `[]`, `[]`, `[]`, `[]`), wantErr: ErrInvalidModel},
		{name: "array length mismatch", doc: tree(`[1,-1,-1]`, `[2,-1]`, `[0,0,0]`, `[1,0,0]`, `[0,0,0]`), wantErr: ErrInvalidModel},
		{name: "child out of range", doc: tree(`[1,-1,-1]`, `[7,-1,-1]`, `[0,0,0]`, `[1,0,0]`, `[0,0,0]`), wantErr: ErrInvalidModel},
		{name: "split feature out of range", doc: tree(`[1,-1,-1]`, `[2,-1,-1]`, `[5,0,0]`, `[1,0,0]`, `[0,0,0]`), wantErr: ErrInvalidModel},
		{name: "cycle", doc: tree(`[1,0,-1]`, `[2,2,-1]`, `[0,0,0]`, `[1,1,0]`, `[0,0,0]`), wantErr: ErrInvalidModel},
		{name: "bad default_left", doc: tree(`[-1]`, `[-1]`, `[0]`, `[1]`, `["yes"]`), wantErr: ErrInvalidModel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := Decode(strings.NewReader(tt.doc))
			assert.Nil(t, b)
			assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
		})
	}
}

func TestFlexBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"true", true},
		{"1", true},
		{"false", false},
		{"0", false},
	}
	for _, tt := range tests {
		var b flexBool
		require.NoError(t, b.UnmarshalJSON([]byte(tt.in)))
		assert.Equal(t, tt.want, bool(b), tt.in)
	}

	var b flexBool
	assert.Error(t, b.UnmarshalJSON([]byte(`2`)))
}
