package rangemap

// A Map is one stage of a pipeline: an ordered list of entries.
//
// Entries are tried in declaration order and an earlier entry claims any
// input it covers before later entries see it. Nothing checks that entries
// are disjoint; Overlaps reports the pairs that would make order matter.
type Map struct {
	name    string
	entries []Entry
}

func NewMap(name string, entries ...Entry) Map {
	return Map{name: name, entries: append([]Entry(nil), entries...)}
}

func (m Map) Name() string {
	return m.name
}

func (m Map) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the entries of m.
func (m Map) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Apply remaps sources. Every input point appears in the result exactly once:
// either shifted by the first entry covering it or unchanged. Empty ranges are
// dropped.
func (m Map) Apply(sources []Range) []Range {
	var hits []Range
	remaining := sources
	for _, e := range m.entries {
		if len(remaining) == 0 {
			break
		}
		h, misses := e.ApplyMany(remaining)
		hits = append(hits, h...)
		remaining = misses
	}
	hits = append(hits, remaining...)
	return NonEmpty(hits)
}

// Lookup maps a single value with the same first-match rule as Apply.
func (m Map) Lookup(v uint64) uint64 {
	for _, e := range m.entries {
		if w, ok := e.Lookup(v); ok {
			return w
		}
	}
	return v
}

// An Overlap names two entries, by index, whose sources intersect.
type Overlap struct {
	First, Second int
	Range         Range
}

// Overlaps lists every pair of entries whose sources intersect, in index
// order.
func (m Map) Overlaps() []Overlap {
	var out []Overlap
	for i := range m.entries {
		for j := i + 1; j < len(m.entries); j++ {
			if r, ok := m.entries[i].Source.Intersection(m.entries[j].Source); ok {
				out = append(out, Overlap{First: i, Second: j, Range: r})
			}
		}
	}
	return out
}
