package chart

import (
	"fmt"
	"maps"
	"slices"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/events"
	"github.com/alexanderramin/gantt/internal/rows"
)

func domainCycle(id string) error {
	return fmt.Errorf("%w: at group %q", domain.ErrGroupCycle, id)
}

// AddGroup normalizes and appends group. A duplicate id fails with
// ErrInvalidArgument and a parent chain that loops fails with
// ErrGroupCycle.
func (m *Model) AddGroup(group domain.Group) (domain.Group, error) {
	g := m.normalizeGroup(group)
	if m.groupIndex(g.ID) >= 0 {
		return domain.Group{}, fmt.Errorf("%w: duplicate group id %q", domain.ErrInvalidArgument, g.ID)
	}
	candidate := append(slices.Clone(m.groups), g)
	if id := rows.FindCycle(candidate); id != "" {
		return domain.Group{}, domainCycle(id)
	}
	m.groups = candidate
	m.reproject()
	out := g.Clone()
	m.changed(events.GroupAdd, out)
	return out, nil
}

// RemoveGroup deletes the group with id. Its direct child groups move to
// the root and its direct tasks become ungrouped; nothing is deleted
// recursively.
func (m *Model) RemoveGroup(id string) (domain.Group, bool) {
	i := m.groupIndex(id)
	if i < 0 {
		return domain.Group{}, false
	}
	removed := m.groups[i]
	m.groups = slices.Delete(m.groups, i, i+1)
	for _, g := range m.groups {
		if g.ParentID == id {
			g.ParentID = ""
		}
	}
	for _, t := range m.tasks {
		if t.GroupID == id {
			t.GroupID = ""
		}
	}
	delete(m.collapsed, id)
	m.reproject()
	out := removed.Clone()
	m.changed(events.GroupRemove, out)
	return out, true
}

// ToggleGroup flips the collapse state of a group and returns the new
// state. Unknown ids are ignored and report ok=false.
func (m *Model) ToggleGroup(id string) (collapsed, ok bool) {
	if m.groupIndex(id) < 0 {
		return false, false
	}
	event := events.GroupCollapse
	if m.collapsed[id] {
		delete(m.collapsed, id)
		event = events.GroupExpand
	} else {
		m.collapsed[id] = true
	}
	m.reproject()
	m.changed(event, id)
	return m.collapsed[id], true
}

// ExpandAll clears the collapse set.
func (m *Model) ExpandAll() {
	clear(m.collapsed)
	m.reproject()
	m.changed(events.ExpandAll, nil)
}

// CollapseAll collapses every group.
func (m *Model) CollapseAll() {
	for _, g := range m.groups {
		m.collapsed[g.ID] = true
	}
	m.reproject()
	m.changed(events.CollapseAll, nil)
}

// Group returns a copy of the group with id.
func (m *Model) Group(id string) (domain.Group, bool) {
	i := m.groupIndex(id)
	if i < 0 {
		return domain.Group{}, false
	}
	return m.groups[i].Clone(), true
}

// Groups returns copies of every group in declaration order.
func (m *Model) Groups() []domain.Group { return cloneGroups(m.groups) }

// IsCollapsed reports whether the group is collapsed.
func (m *Model) IsCollapsed(id string) bool { return m.collapsed[id] }

// Collapsed returns the sorted ids of collapsed groups.
func (m *Model) Collapsed() []string {
	return slices.Sorted(maps.Keys(m.collapsed))
}

// VisibleRows returns the current projection. Task and group pointers in
// the rows are copies.
func (m *Model) VisibleRows() []domain.VisibleRow {
	return m.Snapshot().Rows
}

func (m *Model) groupIndex(id string) int {
	return slices.IndexFunc(m.groups, func(g *domain.Group) bool { return g.ID == id })
}
