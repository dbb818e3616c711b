package rangemap

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeEnd(t *testing.T) {
	assert.Equal(t, uint64(15), NewRange(5, 10).End())
	assert.Equal(t, uint64(math.MaxUint64), NewRange(math.MaxUint64-3, 10).End())
	assert.True(t, FromEnd(10, 3).IsEmpty())
	assert.Equal(t, NewRange(3, 7), FromEnd(3, 10))
}

func TestRangeIsEmptyAtMaximum(t *testing.T) {
	assert.True(t, NewRange(math.MaxUint64, 1).IsEmpty())
	assert.True(t, NewRange(math.MaxUint64, math.MaxUint64).IsEmpty())
	assert.False(t, NewRange(math.MaxUint64-1, 1).IsEmpty())
	assert.Empty(t, NonEmpty([]Range{NewRange(math.MaxUint64, 1)}))
}

func TestRangeIntersection(t *testing.T) {
	tests := []struct {
		name string
		a, b Range
		want Range
		ok   bool
	}{
		{"inside", NewRange(0, 10), NewRange(2, 3), NewRange(2, 3), true},
		{"left edge", NewRange(5, 10), NewRange(0, 7), NewRange(5, 2), true},
		{"right edge", NewRange(5, 10), NewRange(12, 10), NewRange(12, 3), true},
		{"touching", NewRange(0, 5), NewRange(5, 5), Range{}, false},
		{"apart", NewRange(0, 5), NewRange(8, 5), Range{}, false},
		{"empty", NewRange(0, 5), NewRange(2, 0), Range{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Intersection(tt.b)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)

			rev, rok := tt.b.Intersection(tt.a)
			assert.Equal(t, ok, rok)
			assert.Equal(t, got, rev)
		})
	}
}

func TestRangeIsDisjointWith(t *testing.T) {
	assert.True(t, NewRange(1, 2).IsDisjointWith(NewRange(4, 5)))
	assert.False(t, NewRange(1, 2).IsDisjointWith(NewRange(3, 5)))
	assert.False(t, NewRange(3, 5).IsDisjointWith(NewRange(1, 2)))
}

func TestRangeUnion(t *testing.T) {
	r := NewRange(4, 3)
	empty := NewRange(9, 0)

	assert.Equal(t, []Range{r}, r.Union(empty))
	assert.Equal(t, []Range{r}, empty.Union(r))
	assert.Empty(t, empty.Union(NewRange(0, 0)))

	assert.Equal(t, []Range{NewRange(0, 2), r}, NewRange(0, 2).Union(r))
	assert.Equal(t, []Range{NewRange(2, 5)}, NewRange(2, 2).Union(r), "adjacent ranges merge")
	assert.Equal(t, []Range{NewRange(1, 9)}, r.Union(NewRange(1, 9)))
	assert.Equal(t, []Range{NewRange(4, 6)}, r.Union(NewRange(6, 4)))
}

func TestRangeMinus(t *testing.T) {
	a := NewRange(10, 10)
	tests := []struct {
		name string
		b    Range
		want []Range
	}{
		{"inside", NewRange(12, 3), []Range{NewRange(10, 2), NewRange(15, 5)}},
		{"low edge", NewRange(5, 10), []Range{NewRange(15, 5)}},
		{"high edge", NewRange(18, 10), []Range{NewRange(10, 8)}},
		{"below", NewRange(0, 3), []Range{a}},
		{"above", NewRange(30, 3), []Range{a}},
		{"touching below", NewRange(0, 10), []Range{a}},
		{"touching above", NewRange(20, 1), []Range{a}},
		{"empty", NewRange(15, 0), []Range{a}},
		{"cover", NewRange(0, 100), nil},
		{"self", a, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Minus(tt.b)
			assert.Equal(t, tt.want, got)
			for _, r := range got {
				assert.False(t, r.IsEmpty())
			}
		})
	}
}

func TestRangeMinusSelfIsEmpty(t *testing.T) {
	for _, r := range []Range{NewRange(0, 1), NewRange(7, 100), NewRange(math.MaxUint64-5, 5), NewRange(3, 0)} {
		assert.Empty(t, r.Minus(r), r.String())
	}
}

func TestRangeTranslate(t *testing.T) {
	assert.Equal(t, NewRange(50, 2), NewRange(98, 2).Translate(50))
}

func TestCompare(t *testing.T) {
	rs := []Range{NewRange(9, 1), NewRange(2, 50), NewRange(5, 5)}
	slices.SortFunc(rs, Compare)
	require.Equal(t, []Range{NewRange(2, 50), NewRange(5, 5), NewRange(9, 1)}, rs)
	assert.Zero(t, Compare(NewRange(3, 1), NewRange(3, 100)))
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "[79,93)", NewRange(79, 14).String())
}

func TestNonEmpty(t *testing.T) {
	in := []Range{NewRange(1, 0), NewRange(2, 3), NewRange(9, 0)}
	assert.Equal(t, []Range{NewRange(2, 3)}, NonEmpty(in))
	assert.Equal(t, NewRange(1, 0), in[0], "input is left alone")
}
