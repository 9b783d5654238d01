package engine

import (
	"fmt"
	"slices"
)

// Interval is the half-open range [Start, End).
type Interval struct {
	Start ClockTime `json:"start"`
	End   ClockTime `json:"end"`
}

func NewInterval(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}

	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}

	return Interval{Start: s, End: e}, nil
}

// Empty reports whether the interval holds no time. Zero-length intervals are empty.
func (i Interval) Empty() bool {
	return i.Start >= i.End
}

func (i Interval) Minutes() int {
	if i.Empty() {
		return 0
	}

	return int(i.End - i.Start)
}

// Contains reports whether other lies fully inside i. An empty receiver contains nothing.
func (i Interval) Contains(other Interval) bool {
	if i.Empty() {
		return false
	}

	return other.Start >= i.Start && other.End <= i.End
}

func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", i.Start, i.End)
}

// normalize drops empty intervals, sorts by start and merges intervals that overlap or touch.
func normalize(intervals []Interval) []Interval {
	result := make([]Interval, 0, len(intervals))

	for _, interval := range intervals {
		if !interval.Empty() {
			result = append(result, interval)
		}
	}

	slices.SortFunc(result, func(a, b Interval) int {
		if a.Start != b.Start {
			return int(a.Start - b.Start)
		}

		return int(a.End - b.End)
	})

	merged := result[:0]

	for _, interval := range result {
		last := len(merged) - 1
		if last >= 0 && interval.Start <= merged[last].End {
			merged[last].End = max(merged[last].End, interval.End)

			continue
		}

		merged = append(merged, interval)
	}

	return merged
}
