package domain

import "time"

// VisibleRow is one drawable line of the chart and sidebar. Exactly one of
// Task or Group is set, matching Kind.
type VisibleRow struct {
	Kind  RowKind
	Task  *Task
	Group *Group
	Depth int
}

// ID returns the id of the task or group behind the row.
func (r VisibleRow) ID() string {
	if r.Kind == RowGroup && r.Group != nil {
		return r.Group.ID
	}
	if r.Task != nil {
		return r.Task.ID
	}
	return ""
}

// Name returns the display name of the row's entity.
func (r VisibleRow) Name() string {
	if r.Kind == RowGroup && r.Group != nil {
		return r.Group.Name
	}
	if r.Task != nil {
		return r.Task.Name
	}
	return ""
}

// DateRange is the inclusive [Start, End] span covered by the time axis.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}
