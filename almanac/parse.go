package almanac

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/b97tsk/seedmap/rangemap"
)

const (
	_seedsPrefix = "seeds:"
	_mapSuffix   = " map:"
)

var (
	ErrNoSeeds  = errors.New("missing seeds line")
	ErrOddSeeds = errors.New("seed ranges need an even count of numbers")
)

// A ParseError reports the line an almanac failed to parse at.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return "almanac: line " + strconv.Itoa(e.Line) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads an almanac in puzzle text form from r.
func Parse(r io.Reader, mode SeedMode) (*Almanac, error) {
	if mode != SeedValues && mode != SeedRanges {
		return nil, fmt.Errorf("almanac: invalid seed mode %v", mode)
	}

	a := &Almanac{Mode: mode}

	var (
		name          string
		entries       []rangemap.Entry
		inMap, seeded bool
		lineNo        int
	)

	flush := func() {
		if inMap {
			a.Maps = append(a.Maps, rangemap.NewMap(name, entries...))
		}
		name, entries, inMap = "", nil, false
	}
	fail := func(err error) (*Almanac, error) {
		return nil, &ParseError{Line: lineNo, Err: err}
	}

	s := bufio.NewScanner(r)
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())

		switch {
		case line == "":
			continue

		case !seeded:
			if !strings.HasPrefix(line, _seedsPrefix) {
				return fail(ErrNoSeeds)
			}
			seeds, err := parseSeeds(line[len(_seedsPrefix):], mode)
			if err != nil {
				return fail(err)
			}
			a.Seeds = seeds
			seeded = true

		case strings.HasSuffix(line, _mapSuffix):
			flush()
			name = strings.TrimSpace(strings.TrimSuffix(line, _mapSuffix))
			inMap = true

		case inMap:
			e, err := parseEntry(line)
			if err != nil {
				return fail(err)
			}
			entries = append(entries, e)

		default:
			return fail(fmt.Errorf("unexpected %q outside a map", line))
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if !seeded {
		return fail(ErrNoSeeds)
	}
	flush()
	return a, nil
}

// ParseString is Parse on a string.
func ParseString(input string, mode SeedMode) (*Almanac, error) {
	return Parse(strings.NewReader(input), mode)
}

func parseSeeds(text string, mode SeedMode) ([]rangemap.Range, error) {
	nums, err := parseNumbers(text)
	if err != nil {
		return nil, err
	}
	if mode == SeedValues {
		seeds := make([]rangemap.Range, len(nums))
		for i, n := range nums {
			seeds[i] = rangemap.Single(n)
		}
		return seeds, nil
	}
	if len(nums)%2 != 0 {
		return nil, ErrOddSeeds
	}
	seeds := make([]rangemap.Range, 0, len(nums)/2)
	for i := 0; i < len(nums); i += 2 {
		seeds = append(seeds, rangemap.NewRange(nums[i], nums[i+1]))
	}
	return seeds, nil
}

func parseEntry(line string) (rangemap.Entry, error) {
	nums, err := parseNumbers(line)
	if err != nil {
		return rangemap.Entry{}, err
	}
	if len(nums) != 3 {
		return rangemap.Entry{}, fmt.Errorf("map entry needs 3 numbers, got %d", len(nums))
	}
	return rangemap.NewEntry(nums[0], nums[1], nums[2]), nil
}

func parseNumbers(text string) ([]uint64, error) {
	fields := strings.Fields(text)
	nums := make([]uint64, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}
