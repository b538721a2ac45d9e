// Package timeaxis maps calendar dates to horizontal pixel positions for a
// given view granularity and generates the chart's columns.
package timeaxis

import (
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
)

// maxColumns caps column generation for very long ranges.
const maxColumns = 100_000

// Resolution is the precision of dates produced by XToDate.
const Resolution = time.Millisecond

// Column is one time unit's vertical slice of the chart. IsWeekend is only
// set in hour and day views.
type Column struct {
	Date      time.Time
	Label     string
	IsWeekend bool
}

// Emphasis marks columns that open a calendar period.
type Emphasis int

const (
	EmphasisNone Emphasis = iota
	EmphasisMonth
	EmphasisYear
)

// Config describes an axis.
type Config struct {
	Mode        domain.ViewMode
	Min         time.Time
	Max         time.Time
	ColumnWidth float64
	Locale      string
}

// Axis is an immutable time axis. Column i covers [bounds[i], bounds[i+1])
// and is drawn across x in [i*ColumnWidth, (i+1)*ColumnWidth). Dates are
// interpolated linearly within their column, so header, grid and task
// layers agree on every column edge even when units differ in length
// (months, DST days).
type Axis struct {
	cfg     Config
	names   Names
	bounds    []time.Time
	columns   []Column
	truncated bool
}

// New builds the columns for cfg. A Max before Min is clamped to Min, which
// yields a single column. At most maxColumns columns are generated; Truncated
// reports when the range was longer, and dates past the last column then
// extrapolate from it.
func New(cfg Config) Axis {
	if !cfg.Mode.Valid() {
		cfg.Mode = domain.ViewDay
	}
	if cfg.Max.Before(cfg.Min) {
		cfg.Max = cfg.Min
	}
	if cfg.ColumnWidth <= 0 {
		cfg.ColumnWidth = 1
	}
	a := Axis{cfg: cfg, names: NamesFor(cfg.Locale)}
	a.build()
	return a
}

func (a *Axis) build() {
	cur := a.cfg.Min
	for !cur.After(a.cfg.Max) && len(a.columns) < maxColumns {
		a.bounds = append(a.bounds, cur)
		a.columns = append(a.columns, Column{
			Date:      cur,
			Label:     label(a.cfg.Mode, a.names, cur),
			IsWeekend: a.cfg.Mode.DayOrFiner() && isWeekend(cur),
		})
		cur = Step(a.cfg.Mode, cur, 1)
	}
	a.bounds = append(a.bounds, cur)
	a.truncated = !cur.After(a.cfg.Max)
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (a Axis) Mode() domain.ViewMode { return a.cfg.Mode }
func (a Axis) ColumnWidth() float64 { return a.cfg.ColumnWidth }
func (a Axis) Min() time.Time { return a.cfg.Min }
func (a Axis) Max() time.Time { return a.cfg.Max }
func (a Axis) Config() Config { return a.cfg }
func (a Axis) ColumnCount() int { return len(a.columns) }

// Truncated reports whether the range needed more than maxColumns columns.
func (a Axis) Truncated() bool { return a.truncated }
func (a Axis) Width() float64 { return float64(len(a.columns)) * a.cfg.ColumnWidth }
func (a Axis) HeaderRows() int { return HeaderRows(a.cfg.Mode) }
func (a Axis) Range() domain.DateRange { return domain.DateRange{Start: a.cfg.Min, End: a.cfg.Max} }

// Columns returns the generated columns. The slice is shared; do not modify.
func (a Axis) Columns() []Column { return a.columns }

// End is the instant where the last column stops.
func (a Axis) End() time.Time { return a.bounds[len(a.bounds)-1] }

// ColumnSpan returns the [start, end) instants of column i.
func (a Axis) ColumnSpan(i int) (time.Time, time.Time) {
	return a.bounds[i], a.bounds[i+1]
}

// LabelFor is the bottom header text of a column starting at t.
func (a Axis) LabelFor(t time.Time) string { return label(a.cfg.Mode, a.names, t) }

// ParentLabelFor is the top header text grouping columns; empty in week view.
func (a Axis) ParentLabelFor(t time.Time) string { return parentLabel(a.cfg.Mode, a.names, t) }

// DateToX converts t to a pixel offset from the left edge of the first
// column. Dates outside the range extrapolate from the nearest column.
// Interpolation is per column rather than across the whole range, so every
// column is ColumnWidth wide even though months differ in length.
func (a Axis) DateToX(t time.Time) float64 {
	n := len(a.columns)
	i := 0
	if !t.Before(a.bounds[0]) {
		i = sort.Search(n, func(i int) bool { return a.bounds[i+1].After(t) })
		if i == n {
			i = n - 1
		}
	}
	span := a.bounds[i+1].Sub(a.bounds[i])
	frac := float64(t.Sub(a.bounds[i])) / float64(span)
	return (float64(i) + frac) * a.cfg.ColumnWidth
}

// XToDate is the inverse of DateToX, rounded to Resolution.
func (a Axis) XToDate(x float64) time.Time {
	cw := a.cfg.ColumnWidth
	i := a.ColumnAt(x)
	frac := (x - float64(i)*cw) / cw
	span := a.bounds[i+1].Sub(a.bounds[i])
	return a.bounds[i].Add(time.Duration(math.Round(frac * float64(span)))).Round(Resolution)
}

// ColumnAt returns the index of the column under x, clamped to the axis.
func (a Axis) ColumnAt(x float64) int {
	i := int(math.Floor(x / a.cfg.ColumnWidth))
	if i < 0 {
		return 0
	}
	if i >= len(a.columns) {
		return len(a.columns) - 1
	}
	return i
}

// WithColumnWidth returns the same columns drawn at a different width.
func (a Axis) WithColumnWidth(px float64) Axis {
	if px <= 0 {
		return a
	}
	a.cfg.ColumnWidth = px
	return a
}

// EnsureFillsWidth extends Max forward until the columns cover
// availableWidth pixels. It returns a unchanged when already filled.
func (a Axis) EnsureFillsWidth(availableWidth float64) Axis {
	w := a.Width()
	if availableWidth <= 0 || w >= availableWidth {
		return a
	}
	extra := int(math.Ceil((availableWidth - w) / a.cfg.ColumnWidth))
	if extra <= 0 {
		return a
	}
	cfg := a.cfg
	cfg.Max = Step(cfg.Mode, cfg.Max, extra)
	return New(cfg)
}

// Extend grows the axis by units on one side and reports the pixel width
// that was added. For a left extension the caller must shift its scroll
// offset right by that amount to keep the content visually anchored.
func (a Axis) Extend(dir domain.Direction, units int) (Axis, float64) {
	if units <= 0 {
		return a, 0
	}
	cfg := a.cfg
	if dir == domain.DirectionLeft {
		cfg.Min = Step(cfg.Mode, cfg.Min, -units)
		next := New(cfg)
		return next, next.DateToX(a.cfg.Min)
	}
	cfg.Max = Step(cfg.Mode, cfg.Max, units)
	next := New(cfg)
	return next, next.Width() - a.Width()
}

// Emphasis classifies a column as the start of a month or year. Day and
// hour views mark month and year starts, month view marks January, and
// week view marks a week that starts on January 1.
func (a Axis) Emphasis(c Column) Emphasis {
	d := c.Date
	switch a.cfg.Mode {
	case domain.ViewDay, domain.ViewHour:
		if a.cfg.Mode == domain.ViewHour && d.Hour() != 0 {
			return EmphasisNone
		}
		if d.Day() != 1 {
			return EmphasisNone
		}
		if d.Month() == time.January {
			return EmphasisYear
		}
		return EmphasisMonth
	case domain.ViewMonth:
		if d.Month() == time.January {
			return EmphasisYear
		}
	case domain.ViewWeek:
		if d.Month() == time.January && d.Day() == 1 {
			return EmphasisYear
		}
	}
	return EmphasisNone
}
