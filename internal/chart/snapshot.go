package chart

import (
	"slices"

	"github.com/alexanderramin/gantt/internal/domain"
)

// Snapshot is an immutable copy of the model consumed by the renderer.
// Rows point into Tasks and Groups of the same snapshot.
type Snapshot struct {
	Mode         domain.ViewMode
	Range        domain.DateRange
	Tasks        []domain.Task
	Groups       []domain.Group
	Rows         []domain.VisibleRow
	Collapsed    map[string]bool
	Dependencies []domain.Dependency
	MarkedDays   []domain.MarkedDay
}

// Snapshot copies the current state.
func (m *Model) Snapshot() Snapshot {
	s := Snapshot{
		Mode:         m.mode,
		Range:        m.DateRange(),
		Tasks:        cloneTasks(m.tasks),
		Groups:       cloneGroups(m.groups),
		Collapsed:    make(map[string]bool, len(m.collapsed)),
		Dependencies: cloneDeps(m.deps),
		MarkedDays:   slices.Clone(m.marked),
	}
	for id := range m.collapsed {
		s.Collapsed[id] = true
	}

	tasks := make(map[*domain.Task]*domain.Task, len(m.tasks))
	for i, t := range m.tasks {
		tasks[t] = &s.Tasks[i]
	}
	groups := make(map[*domain.Group]*domain.Group, len(m.groups))
	for i, g := range m.groups {
		groups[g] = &s.Groups[i]
	}
	s.Rows = make([]domain.VisibleRow, len(m.rows))
	for i, r := range m.rows {
		r.Task = tasks[r.Task]
		r.Group = groups[r.Group]
		s.Rows[i] = r
	}
	return s
}

// Task looks up a task of the snapshot by id.
func (s Snapshot) Task(id string) (*domain.Task, bool) {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i], true
		}
	}
	return nil, false
}

// RowOf returns the index of the visible row showing id, or -1.
func (s Snapshot) RowOf(id string) int {
	for i, r := range s.Rows {
		if r.ID() == id {
			return i
		}
	}
	return -1
}
