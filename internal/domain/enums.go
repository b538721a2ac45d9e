package domain

import "fmt"

type ViewMode string

const (
	ViewHour  ViewMode = "hour"
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// ViewModes lists the accepted view modes in cycling order.
var ViewModes = []ViewMode{ViewHour, ViewDay, ViewWeek, ViewMonth}

// Valid reports whether m is one of the four supported granularities.
func (m ViewMode) Valid() bool {
	switch m {
	case ViewHour, ViewDay, ViewWeek, ViewMonth:
		return true
	}
	return false
}

// ParseViewMode converts s into a ViewMode, failing with ErrInvalidViewMode
// for anything outside hour/day/week/month.
func ParseViewMode(s string) (ViewMode, error) {
	m := ViewMode(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q (must be one of: hour, day, week, month)", ErrInvalidViewMode, s)
	}
	return m, nil
}

// DayOrFiner reports whether a column of this mode covers at most one
// calendar day.
func (m ViewMode) DayOrFiner() bool {
	return m == ViewHour || m == ViewDay
}

// Next returns the following view mode, wrapping from month back to hour.
func (m ViewMode) Next() ViewMode {
	for i, v := range ViewModes {
		if v == m {
			return ViewModes[(i+1)%len(ViewModes)]
		}
	}
	return ViewDay
}

type TaskKind string

const (
	KindTask      TaskKind = "task"
	KindMilestone TaskKind = "milestone"
)

type RowKind string

const (
	RowTask  RowKind = "task"
	RowGroup RowKind = "group"
)

type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

type Align string

const (
	AlignStart  Align = "start"
	AlignCenter Align = "center"
	AlignEnd    Align = "end"
)
