// Package almanac reads seed almanacs into rangemap values. It understands
// the puzzle text, a YAML document form and a binary snapshot.
package almanac

import (
	"fmt"
	"slices"

	"github.com/b97tsk/seedmap/rangemap"
)

// SeedMode selects how the numbers on the seeds line are read.
type SeedMode int

const (
	// SeedValues reads every number as a single seed.
	SeedValues SeedMode = iota + 1
	// SeedRanges reads the numbers in start/length pairs.
	SeedRanges
)

func (m SeedMode) String() string {
	switch m {
	case SeedValues:
		return "values"
	case SeedRanges:
		return "ranges"
	}
	return fmt.Sprintf("SeedMode(%d)", int(m))
}

// Part returns the puzzle part the mode answers.
func (m SeedMode) Part() int {
	return int(m)
}

// SeedModeForPart is the inverse of Part.
func SeedModeForPart(part int) (SeedMode, error) {
	switch m := SeedMode(part); m {
	case SeedValues, SeedRanges:
		return m, nil
	}
	return 0, fmt.Errorf("almanac: no part %d", part)
}

func parseSeedMode(s string) (SeedMode, error) {
	switch s {
	case "", "ranges":
		return SeedRanges, nil
	case "values":
		return SeedValues, nil
	}
	return 0, fmt.Errorf("almanac: unknown seed mode %q", s)
}

// An Almanac holds parsed seeds and maps.
type Almanac struct {
	Mode  SeedMode
	Seeds []rangemap.Range
	Maps  []rangemap.Map
}

// Pipeline builds the engine pipeline for a.
func (a *Almanac) Pipeline(opts ...rangemap.Option) (*rangemap.Pipeline, error) {
	return rangemap.New(a.Seeds, a.Maps, opts...)
}

// Lowest returns the lowest location reachable from the seeds of a.
func (a *Almanac) Lowest(opts ...rangemap.Option) (uint64, error) {
	return rangemap.LowestReachableValue(a.Seeds, a.Maps, opts...)
}

// Equal reports whether a and b hold the same mode, seeds and maps.
func (a *Almanac) Equal(b *Almanac) bool {
	if a.Mode != b.Mode || !slices.Equal(a.Seeds, b.Seeds) || len(a.Maps) != len(b.Maps) {
		return false
	}
	for i := range a.Maps {
		if a.Maps[i].Name() != b.Maps[i].Name() || !slices.Equal(a.Maps[i].Entries(), b.Maps[i].Entries()) {
			return false
		}
	}
	return true
}
