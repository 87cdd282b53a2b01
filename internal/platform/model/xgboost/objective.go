package xgboost

import (
	"fmt"
	"math"
)

// objective は保存された base_score、マージン、予測値の間を変換します。
type objective struct {
	name string
	// baseMargin は base_score（予測値の空間）をマージンの空間に写します。
	baseMargin func(float64) float64
	// transform は合計したマージンを予測値に写します。
	transform func(float64) float64
}

func identity(x float64) float64 { return x }

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

func logit(p float64) float64 { return -math.Log(1/p - 1) }

func lookupObjective(name string) (objective, error) {
	switch name {
	case "", "reg:squarederror", "reg:squaredlogerror", "reg:pseudohubererror",
		"reg:absoluteerror", "reg:quantileerror", "reg:linear":
		return objective{name: name, baseMargin: identity, transform: identity}, nil
	case "reg:logistic", "binary:logistic":
		return objective{name: name, baseMargin: logit, transform: sigmoid}, nil
	case "binary:logitraw":
		// base_score は確率で保存されるため、logistic と同じくマージンへ変換する
		return objective{name: name, baseMargin: logit, transform: identity}, nil
	case "count:poisson", "reg:gamma", "reg:tweedie":
		return objective{name: name, baseMargin: math.Log, transform: math.Exp}, nil
	default:
		return objective{}, fmt.Errorf("%w: objective %q", ErrUnsupportedModel, name)
	}
}
