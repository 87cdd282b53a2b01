// Package feature は天気の観測値と銘柄からモデル入力を組み立てます。
package feature

import (
	"errors"
	"fmt"
	"sort"

	"stock_forecast/internal/feature/prediction/domain/entity"
)

var (
	// ErrEmptyVocabulary はカテゴリが空のまま学習しようとした場合に返されます。
	ErrEmptyVocabulary = errors.New("vocabulary is empty")
	// ErrInvalidCategory はカテゴリが空文字または重複している場合に返されます。
	ErrInvalidCategory = errors.New("invalid category")
)

// OneHotEncoder は固定の銘柄一覧に対して銘柄をone-hotベクトルに変換します。
// 列はカテゴリをソートした順で、scikit-learn の OneHotEncoder が学習時に作る並びと同じです。
// 生成後は不変で、並行利用に安全です。
type OneHotEncoder struct {
	categories []entity.Stock
	index      map[entity.Stock]int
}

// NewOneHotEncoder は vocab でエンコーダーを学習します。
func NewOneHotEncoder(vocab []entity.Stock) (*OneHotEncoder, error) {
	if len(vocab) == 0 {
		return nil, ErrEmptyVocabulary
	}

	categories := make([]entity.Stock, 0, len(vocab))
	seen := make(map[entity.Stock]struct{}, len(vocab))
	for _, s := range vocab {
		if s == "" {
			return nil, fmt.Errorf("%w: blank stock name", ErrInvalidCategory)
		}
		if _, ok := seen[s]; ok {
			return nil, fmt.Errorf("%w: duplicate stock %q", ErrInvalidCategory, s)
		}
		seen[s] = struct{}{}
		categories = append(categories, s)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	index := make(map[entity.Stock]int, len(categories))
	for i, s := range categories {
		index[s] = i
	}
	return &OneHotEncoder{categories: categories, index: index}, nil
}

// Width は符号化後のベクトルの長さです。
func (e *OneHotEncoder) Width() int {
	return len(e.categories)
}

// Index は stock に割り当てられた列を返します。
func (e *OneHotEncoder) Index(stock entity.Stock) (int, bool) {
	i, ok := e.index[stock]
	return i, ok
}

// Categories は学習済みカテゴリを列順で返します。
func (e *OneHotEncoder) Categories() []entity.Stock {
	out := make([]entity.Stock, len(e.categories))
	copy(out, e.categories)
	return out
}

// Encode は stock の新しいone-hotベクトルを返します。未知の銘柄はすべて0になります。
func (e *OneHotEncoder) Encode(stock entity.Stock) []float64 {
	v := make([]float64, len(e.categories))
	if i, ok := e.index[stock]; ok {
		v[i] = 1
	}
	return v
}
