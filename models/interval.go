package models

import "sort"

// Interval is a half-open [Start, End) range in minutes since midnight.
type Interval struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// Duration returns the interval length in minutes.
func (iv Interval) Duration() int {
	return iv.End - iv.Start
}

// SubtractIntervals removes every hole that intersects base and returns the
// ordered, non-overlapping remainder. Holes entirely outside base are ignored;
// zero-width holes remove nothing.
func SubtractIntervals(base Interval, holes []Interval) []Interval {
	clipped := make([]Interval, 0, len(holes))
	for _, h := range holes {
		if h.End <= h.Start || !h.Overlaps(base) {
			continue
		}
		if h.Start < base.Start {
			h.Start = base.Start
		}
		if h.End > base.End {
			h.End = base.End
		}
		clipped = append(clipped, h)
	}
	sort.Slice(clipped, func(i, j int) bool { return clipped[i].Start < clipped[j].Start })

	var remainder []Interval
	cursor := base.Start
	for _, h := range clipped {
		if h.Start > cursor {
			remainder = append(remainder, Interval{Start: cursor, End: h.Start})
		}
		if h.End > cursor {
			cursor = h.End
		}
	}
	if cursor < base.End {
		remainder = append(remainder, Interval{Start: cursor, End: base.End})
	}
	return remainder
}
