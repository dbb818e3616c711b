// Package rangemap rewrites sets of half-open uint64 ranges through ordered
// stages of piecewise-linear remapping tables without visiting individual
// values.
package rangemap

import (
	"cmp"
	"math"
	"strconv"
)

// A Range is the half-open interval [Start, Start+Length).
// A Range with zero Length, or whose clamped end does not pass Start, is empty.
type Range struct {
	Start  uint64
	Length uint64
}

func NewRange(start, length uint64) Range {
	return Range{Start: start, Length: length}
}

// Single returns the range holding v alone.
func Single(v uint64) Range {
	return Range{Start: v, Length: 1}
}

// FromEnd returns [start, end). If end is not above start the range is empty.
func FromEnd(start, end uint64) Range {
	return Range{Start: start, Length: subSat(end, start)}
}

// End returns the exclusive end, clamped to math.MaxUint64.
func (r Range) End() uint64 {
	return addSat(r.Start, r.Length)
}

func (r Range) IsEmpty() bool {
	return r.End() <= r.Start
}

func (r Range) Contains(v uint64) bool {
	return r.Start <= v && v < r.End()
}

// Intersection returns the overlap of r and o. Ranges that only touch do not
// intersect.
func (r Range) Intersection(o Range) (Range, bool) {
	start := max(r.Start, o.Start)
	end := min(r.End(), o.End())
	if start >= end {
		return Range{}, false
	}
	return Range{Start: start, Length: end - start}, true
}

// IsDisjointWith reports whether a gap separates r and o. Adjacent ranges are
// not disjoint.
func (r Range) IsDisjointWith(o Range) bool {
	return r.End() < o.Start || o.End() < r.Start
}

// Union merges r and o when they touch or overlap. Otherwise both are
// returned, r first. Empty operands are dropped.
func (r Range) Union(o Range) []Range {
	switch {
	case r.IsEmpty() && o.IsEmpty():
		return nil
	case o.IsEmpty():
		return []Range{r}
	case r.IsEmpty():
		return []Range{o}
	case r.IsDisjointWith(o):
		return []Range{r, o}
	}
	return []Range{FromEnd(min(r.Start, o.Start), max(r.End(), o.End()))}
}

// Minus returns the parts of r not covered by o: none, one, or two non-empty
// ranges, in ascending order.
func (r Range) Minus(o Range) []Range {
	if o.IsEmpty() {
		if r.IsEmpty() {
			return nil
		}
		return []Range{r}
	}
	end := r.End()
	low := FromEnd(r.Start, min(end, o.Start))
	high := FromEnd(max(r.Start, min(end, o.End())), end)
	return low.Union(high)
}

// Translate returns a range of the same length starting at newStart.
func (r Range) Translate(newStart uint64) Range {
	return Range{Start: newStart, Length: r.Length}
}

func (r Range) String() string {
	return "[" + strconv.FormatUint(r.Start, 10) + "," + strconv.FormatUint(r.End(), 10) + ")"
}

// Compare orders ranges by Start only; ranges with equal starts compare equal
// whatever their lengths.
func Compare(a, b Range) int {
	return cmp.Compare(a.Start, b.Start)
}

// NonEmpty returns the non-empty ranges of rs in a new slice.
func NonEmpty(rs []Range) []Range {
	out := make([]Range, 0, len(rs))
	for _, r := range rs {
		if !r.IsEmpty() {
			out = append(out, r)
		}
	}
	return out
}

func addSat(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

func subSat(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
