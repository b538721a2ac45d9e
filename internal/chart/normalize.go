package chart

import (
	"slices"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
)

// Defaults for entities that arrive without the field set.
const (
	DefaultTaskName   = "Untitled Task"
	DefaultTaskColor  = "#2196F3"
	DefaultTextColor  = "#ffffff"
	DefaultGroupName  = "Untitled Group"
	DefaultGroupColor = "#607D8B"
)

// normalizeTask fills missing fields. Explicit values always win. A task
// with only one of start/end set gets a zero-length span at that instant;
// with neither it lands at the start of today.
func (m *Model) normalizeTask(in domain.Task) *domain.Task {
	t := in.Clone()
	if t.ID == "" {
		t.ID = m.newID()
	}
	t.Name = firstNonEmpty(t.Name, DefaultTaskName)
	t.Color = firstNonEmpty(t.Color, DefaultTaskColor)
	t.TextColor = firstNonEmpty(t.TextColor, DefaultTextColor)
	if t.Kind == "" {
		t.Kind = domain.KindTask
	}
	if t.Dependencies == nil {
		t.Dependencies = []string{}
	}
	if t.Metadata == nil {
		t.Metadata = map[string]any{}
	}
	switch {
	case t.Start.IsZero() && t.End.IsZero():
		now := m.Now()
		t.Start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, m.loc)
		t.End = t.Start
	case t.Start.IsZero():
		t.Start = t.End
	case t.End.IsZero():
		t.End = t.Start
	}
	t.Start = t.Start.In(m.loc)
	t.End = t.End.In(m.loc)
	return &t
}

func (m *Model) normalizeGroup(in domain.Group) *domain.Group {
	g := in.Clone()
	if g.ID == "" {
		g.ID = m.newID()
	}
	g.Name = firstNonEmpty(g.Name, DefaultGroupName)
	g.Color = firstNonEmpty(g.Color, DefaultGroupColor)
	if g.Metadata == nil {
		g.Metadata = map[string]any{}
	}
	return &g
}

func cloneTasks(ts []*domain.Task) []domain.Task {
	out := make([]domain.Task, len(ts))
	for i, t := range ts {
		out[i] = t.Clone()
	}
	return out
}

func cloneGroups(gs []*domain.Group) []domain.Group {
	out := make([]domain.Group, len(gs))
	for i, g := range gs {
		out[i] = g.Clone()
	}
	return out
}

func cloneDeps(ds []domain.Dependency) []domain.Dependency {
	return slices.Clone(ds)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
