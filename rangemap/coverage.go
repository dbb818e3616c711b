package rangemap

import "github.com/b97tsk/rangeset"

// Coverage returns the set of points covered by rs, merged and sorted.
func Coverage(rs []Range) rangeset.RangeSet[uint64] {
	var s rangeset.RangeSet[uint64]
	for _, r := range rs {
		s.AddRange(r.Start, r.End())
	}
	return s
}

// Size returns the number of points in rs, counting shared points once per
// range, clamped to math.MaxUint64.
func Size(rs []Range) uint64 {
	var n uint64
	for _, r := range rs {
		n = addSat(n, r.End()-r.Start)
	}
	return n
}

// CoveredSize returns the number of distinct points in rs, clamped to
// math.MaxUint64.
func CoveredSize(rs []Range) uint64 {
	var n uint64
	for _, r := range Coverage(rs) {
		n = addSat(n, r.High-r.Low)
	}
	return n
}

// Disjoint reports whether no two ranges of rs share a point.
func Disjoint(rs []Range) bool {
	return CoveredSize(rs) == Size(rs)
}
