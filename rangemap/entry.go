package rangemap

import (
	"fmt"
	"math"
)

// An Entry shifts every point p of Source to Destination + (p - Source.Start).
type Entry struct {
	Destination uint64
	Source      Range
}

// NewEntry takes its arguments in the order they appear in an almanac line.
func NewEntry(destination, sourceStart, length uint64) Entry {
	return Entry{Destination: destination, Source: NewRange(sourceStart, length)}
}

// Offset returns Destination - Source.Start as a signed shift. It saturates
// at the int64 bounds.
func (e Entry) Offset() int64 {
	if e.Destination >= e.Source.Start {
		d := e.Destination - e.Source.Start
		if d > math.MaxInt64 {
			return math.MaxInt64
		}
		return int64(d)
	}
	d := e.Source.Start - e.Destination
	if d > math.MaxInt64 {
		return math.MinInt64
	}
	return -int64(d)
}

// Apply splits source into the part e remaps and the parts it leaves alone.
// ok is false when source does not meet e.Source; misses then holds source
// unchanged.
func (e Entry) Apply(source Range) (hit Range, ok bool, misses []Range) {
	in, ok := source.Intersection(e.Source)
	if !ok {
		return Range{}, false, []Range{source}
	}
	hit = in.Translate(addSat(e.Destination, in.Start-e.Source.Start))
	return hit, true, source.Minus(in)
}

// ApplyMany applies e to every source and collects all hits and all misses.
func (e Entry) ApplyMany(sources []Range) (hits, misses []Range) {
	for _, source := range sources {
		hit, ok, rest := e.Apply(source)
		if ok {
			hits = append(hits, hit)
		}
		misses = append(misses, rest...)
	}
	return hits, misses
}

// SourceOf maps a hit produced by e back to source coordinates.
func (e Entry) SourceOf(hit Range) Range {
	return hit.Translate(addSat(e.Source.Start, subSat(hit.Start, e.Destination)))
}

// Lookup maps a single value, reporting whether e covers it.
func (e Entry) Lookup(v uint64) (uint64, bool) {
	if !e.Source.Contains(v) {
		return v, false
	}
	return addSat(e.Destination, v-e.Source.Start), true
}

func (e Entry) String() string {
	return fmt.Sprintf("%v -> %d (%+d)", e.Source, e.Destination, e.Offset())
}
