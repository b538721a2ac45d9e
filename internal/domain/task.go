package domain

import (
	"maps"
	"slices"
	"time"
)

// Task is a single bar (or milestone) on the chart. GroupID is empty for
// ungrouped tasks.
type Task struct {
	ID           string
	Name         string
	Start        time.Time
	End          time.Time
	Progress     float64
	Color        string
	TextColor    string
	Dependencies []string
	GroupID      string
	WorkOrder    string
	Assignee     string
	Kind         TaskKind
	Metadata     map[string]any
}

// Duration is End-Start. It may be negative; nothing validates ordering.
func (t *Task) Duration() time.Duration {
	return t.End.Sub(t.Start)
}

// IsMilestone reports whether the task renders as a diamond.
func (t *Task) IsMilestone() bool {
	return t.Kind == KindMilestone
}

// Clone returns a deep copy so snapshots never alias live model state.
func (t Task) Clone() Task {
	t.Dependencies = slices.Clone(t.Dependencies)
	if t.Metadata != nil {
		m := make(map[string]any, len(t.Metadata))
		for k, v := range t.Metadata {
			m[k] = v
		}
		t.Metadata = m
	}
	return t
}

// TaskPatch carries a partial update; nil fields are left untouched.
type TaskPatch struct {
	Name         *string
	Start        *time.Time
	End          *time.Time
	Progress     *float64
	Color        *string
	TextColor    *string
	Dependencies []string
	GroupID      *string
	WorkOrder    *string
	Assignee     *string
	Kind         *TaskKind
	Metadata     map[string]any
}

// Apply merges the non-nil fields of p into t.
func (p TaskPatch) Apply(t *Task) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Start != nil {
		t.Start = *p.Start
	}
	if p.End != nil {
		t.End = *p.End
	}
	if p.Progress != nil {
		t.Progress = *p.Progress
	}
	if p.Color != nil {
		t.Color = *p.Color
	}
	if p.TextColor != nil {
		t.TextColor = *p.TextColor
	}
	if p.Dependencies != nil {
		t.Dependencies = slices.Clone(p.Dependencies)
	}
	if p.GroupID != nil {
		t.GroupID = *p.GroupID
	}
	if p.WorkOrder != nil {
		t.WorkOrder = *p.WorkOrder
	}
	if p.Assignee != nil {
		t.Assignee = *p.Assignee
	}
	if p.Kind != nil {
		t.Kind = *p.Kind
	}
	if p.Metadata != nil {
		t.Metadata = maps.Clone(p.Metadata)
	}
}
