package chart

import (
	"slices"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/events"
	"github.com/alexanderramin/gantt/internal/rows"
)

// SetTasks replaces every task and group. Groups whose parent references
// form a cycle are rejected with ErrGroupCycle and nothing changes.
// Collapse state for groups that no longer exist is dropped.
func (m *Model) SetTasks(tasks []domain.Task, groups []domain.Group) error {
	ng := make([]*domain.Group, len(groups))
	for i, g := range groups {
		ng[i] = m.normalizeGroup(g)
	}
	if id := rows.FindCycle(ng); id != "" {
		return domainCycle(id)
	}
	nt := make([]*domain.Task, len(tasks))
	for i, t := range tasks {
		nt[i] = m.normalizeTask(t)
	}

	m.tasks = nt
	m.groups = ng
	for id := range m.collapsed {
		if m.groupIndex(id) < 0 {
			delete(m.collapsed, id)
		}
	}
	m.recomputeRange()
	m.reproject()
	m.changed(events.TasksSet, events.TasksSetPayload{Tasks: cloneTasks(m.tasks), Groups: cloneGroups(m.groups)})
	return nil
}

// AddTask normalizes and appends task, returning the stored copy.
func (m *Model) AddTask(task domain.Task) domain.Task {
	t := m.normalizeTask(task)
	m.tasks = append(m.tasks, t)
	m.recomputeRange()
	m.reproject()
	out := t.Clone()
	m.changed(events.TaskAdd, out)
	return out
}

// UpdateTask merges patch into the task with id. It reports false, without
// side effects, when no such task exists.
func (m *Model) UpdateTask(id string, patch domain.TaskPatch) (domain.Task, bool) {
	i := m.taskIndex(id)
	if i < 0 {
		return domain.Task{}, false
	}
	t := m.tasks[i]
	patch.Apply(t)
	if patch.Start != nil {
		t.Start = t.Start.In(m.loc)
	}
	if patch.End != nil {
		t.End = t.End.In(m.loc)
	}
	m.recomputeRange()
	m.reproject()
	out := t.Clone()
	m.changed(events.TaskUpdate, out)
	return out, true
}

// RemoveTask deletes the task with id and returns it.
func (m *Model) RemoveTask(id string) (domain.Task, bool) {
	i := m.taskIndex(id)
	if i < 0 {
		return domain.Task{}, false
	}
	removed := m.tasks[i]
	m.tasks = slices.Delete(m.tasks, i, i+1)
	m.recomputeRange()
	m.reproject()
	out := removed.Clone()
	m.changed(events.TaskRemove, out)
	return out, true
}

// MoveTask reschedules a task in place without recomputing the date range.
// The change hook runs; no notification is emitted.
func (m *Model) MoveTask(id string, start, end time.Time) (domain.Task, bool) {
	i := m.taskIndex(id)
	if i < 0 {
		return domain.Task{}, false
	}
	t := m.tasks[i]
	t.Start = start.In(m.loc)
	t.End = end.In(m.loc)
	m.changed("", nil)
	return t.Clone(), true
}

// SetDependencies replaces the chart-level dependency edges.
func (m *Model) SetDependencies(deps []domain.Dependency) {
	m.deps = cloneDeps(deps)
	m.changed(events.DependenciesSet, cloneDeps(m.deps))
}

// Task returns a copy of the task with id.
func (m *Model) Task(id string) (domain.Task, bool) {
	i := m.taskIndex(id)
	if i < 0 {
		return domain.Task{}, false
	}
	return m.tasks[i].Clone(), true
}

// Tasks returns copies of every task in storage order.
func (m *Model) Tasks() []domain.Task { return cloneTasks(m.tasks) }

// Dependencies returns the chart-level dependency edges.
func (m *Model) Dependencies() []domain.Dependency { return cloneDeps(m.deps) }

func (m *Model) taskIndex(id string) int {
	return slices.IndexFunc(m.tasks, func(t *domain.Task) bool { return t.ID == id })
}
