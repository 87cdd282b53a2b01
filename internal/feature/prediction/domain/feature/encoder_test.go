package feature

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_forecast/internal/feature/prediction/domain/entity"
)

func TestNewOneHotEncoder_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		vocab   []entity.Stock
		wantErr error
	}{
		{name: "nil vocabulary", vocab: nil, wantErr: ErrEmptyVocabulary},
		{name: "empty vocabulary", vocab: []entity.Stock{}, wantErr: ErrEmptyVocabulary},
		{name: "blank name", vocab: []entity.Stock{"배추컴퍼니", ""}, wantErr: ErrInvalidCategory},
		{name: "duplicate name", vocab: []entity.Stock{"배추컴퍼니", "나주배랑깨", "배추컴퍼니"}, wantErr: ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			enc, err := NewOneHotEncoder(tt.vocab)
			assert.Nil(t, enc)
			assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
		})
	}
}

func TestOneHotEncoder_ColumnsAreSorted(t *testing.T) {
	t.Parallel()

	enc, err := NewOneHotEncoder(entity.DefaultStocks)
	require.NoError(t, err)

	want := make([]string, 0, len(entity.DefaultStocks))
	for _, s := range entity.DefaultStocks {
		want = append(want, string(s))
	}
	sort.Strings(want)

	got := enc.Categories()
	require.Len(t, got, len(want))
	for i, s := range got {
		assert.Equal(t, want[i], string(s), "column %d", i)
	}

	// Bracketed names sort ahead of Hangul syllables.
	i, ok := enc.Index("(주)딸기사세요")
	assert.True(t, ok)
	assert.Equal(t, 0, i)
	i, ok = enc.Index("토마토탈 주식회사")
	assert.True(t, ok)
	assert.Equal(t, 9, i)
}

func TestOneHotEncoder_EncodeKnownStocks(t *testing.T) {
	t.Parallel()

	enc, err := NewOneHotEncoder(entity.DefaultStocks)
	require.NoError(t, err)
	require.Equal(t, 10, enc.Width())

	hot := make(map[int]entity.Stock)
	for _, s := range entity.DefaultStocks {
		v := enc.Encode(s)
		require.Len(t, v, enc.Width())

		ones, pos := 0, -1
		for i, x := range v {
			switch x {
			case 1:
				ones++
				pos = i
			case 0:
			default:
				t.Fatalf("unexpected value %v at %d for %q", x, i, s)
			}
		}
		assert.Equal(t, 1, ones, "stock %q", s)

		// stable across calls
		assert.Equal(t, v, enc.Encode(s))

		// pairwise orthogonal
		if other, dup := hot[pos]; dup {
			t.Errorf("%q and %q share column %d", s, other, pos)
		}
		hot[pos] = s
	}
}

func TestOneHotEncoder_EncodeUnknownStock(t *testing.T) {
	t.Parallel()

	enc, err := NewOneHotEncoder(entity.DefaultStocks)
	require.NoError(t, err)

	for _, s := range []entity.Stock{"", "삼성전자", "배추컴퍼니 "} {
		v := enc.Encode(s)
		assert.Equal(t, make([]float64, enc.Width()), v, "stock %q", s)
		_, ok := enc.Index(s)
		assert.False(t, ok)
	}
}

func TestOneHotEncoder_EncodeReturnsCopy(t *testing.T) {
	t.Parallel()

	enc, err := NewOneHotEncoder([]entity.Stock{"a", "b"})
	require.NoError(t, err)

	v := enc.Encode("a")
	v[0] = 42
	assert.Equal(t, []float64{1, 0}, enc.Encode("a"))

	cats := enc.Categories()
	cats[0] = "z"
	assert.Equal(t, []entity.Stock{"a", "b"}, enc.Categories())
}
