package timeaxis

import (
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
)

// Step moves t by n units of the mode's granularity (negative n moves
// backward). Calendar units follow time.AddDate normalization, so
// Jan 31 + 1 month lands in early March.
func Step(mode domain.ViewMode, t time.Time, n int) time.Time {
	switch mode {
	case domain.ViewHour:
		return t.Add(time.Duration(n) * time.Hour)
	case domain.ViewWeek:
		return t.AddDate(0, 0, 7*n)
	case domain.ViewMonth:
		return t.AddDate(0, n, 0)
	default:
		return t.AddDate(0, 0, n)
	}
}

// PaddingDays is the number of days added on both sides of the task
// extents when the base date range is derived.
func PaddingDays(mode domain.ViewMode) int {
	switch mode {
	case domain.ViewHour:
		return 1
	case domain.ViewWeek:
		return 14
	case domain.ViewMonth:
		return 30
	default:
		return 7
	}
}

// ChunkUnits is how many units one infinite-scroll extension adds.
func ChunkUnits(mode domain.ViewMode) int {
	switch mode {
	case domain.ViewHour:
		return 48
	case domain.ViewWeek:
		return 26
	case domain.ViewMonth:
		return 12
	default:
		return 30
	}
}

// HeaderRows is 1 for week view and 2 for the others.
func HeaderRows(mode domain.ViewMode) int {
	if mode == domain.ViewWeek {
		return 1
	}
	return 2
}

func approxUnit(mode domain.ViewMode) time.Duration {
	switch mode {
	case domain.ViewHour:
		return time.Hour
	case domain.ViewWeek:
		return 7 * 24 * time.Hour
	case domain.ViewMonth:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// UnitsToReach returns the smallest n >= 0 such that stepping from `from`
// by n units (backward when to precedes from) reaches or passes to.
func UnitsToReach(mode domain.ViewMode, from, to time.Time) int {
	if to.Equal(from) {
		return 0
	}
	backward := to.Before(from)
	dist := to.Sub(from)
	if backward {
		dist = -dist
	}
	n := int(dist / approxUnit(mode))

	reached := func(n int) bool {
		if backward {
			return !Step(mode, from, -n).After(to)
		}
		return !Step(mode, from, n).Before(to)
	}
	for !reached(n) {
		n++
	}
	for n > 0 && reached(n-1) {
		n--
	}
	return n
}
