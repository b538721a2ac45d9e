// Package rows flattens the group tree and its tasks into the ordered list
// of rows shared by the sidebar and the chart body.
package rows

import (
	"fmt"

	"github.com/alexanderramin/gantt/internal/domain"
)

// Project returns the visible rows for the given tasks and groups.
//
// Each root group is emitted depth-first: the group row, then (unless the
// group is collapsed) its child groups in declaration order, then the tasks
// assigned directly to it. Tasks without a group follow all root groups in
// storage order. A group whose parent is unknown is treated as a root, and
// a task whose group is unknown is treated as ungrouped.
//
// The returned rows point at the given tasks and groups.
func Project(tasks []*domain.Task, groups []*domain.Group, collapsed map[string]bool) ([]domain.VisibleRow, error) {
	idx := newIndex(tasks, groups)

	out := make([]domain.VisibleRow, 0, len(tasks)+len(groups))
	visited := make(map[string]bool, len(groups))

	var walk func(g *domain.Group, depth int)
	walk = func(g *domain.Group, depth int) {
		if visited[g.ID] {
			return
		}
		visited[g.ID] = true
		out = append(out, domain.VisibleRow{Kind: domain.RowGroup, Group: g, Depth: depth})
		if collapsed[g.ID] {
			markSubtree(g.ID, idx, visited)
			return
		}
		for _, child := range idx.children[g.ID] {
			walk(child, depth+1)
		}
		for _, t := range idx.tasks[g.ID] {
			out = append(out, domain.VisibleRow{Kind: domain.RowTask, Task: t, Depth: depth + 1})
		}
	}
	for _, g := range idx.roots {
		walk(g, 0)
	}

	if len(visited) < len(idx.groups) {
		for _, g := range groups {
			if !visited[g.ID] {
				return nil, fmt.Errorf("%w: group %q is unreachable from any root", domain.ErrGroupCycle, g.ID)
			}
		}
	}

	for _, t := range idx.ungrouped {
		out = append(out, domain.VisibleRow{Kind: domain.RowTask, Task: t, Depth: 0})
	}
	return out, nil
}

// markSubtree records every descendant of id as visited so hidden groups
// under a collapsed parent are not mistaken for cycle members.
func markSubtree(id string, idx *index, visited map[string]bool) {
	stack := append([]*domain.Group(nil), idx.children[id]...)
	for len(stack) > 0 {
		g := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[g.ID] {
			continue
		}
		visited[g.ID] = true
		stack = append(stack, idx.children[g.ID]...)
	}
}

type index struct {
	groups    map[string]*domain.Group
	roots     []*domain.Group
	children  map[string][]*domain.Group
	tasks     map[string][]*domain.Task
	ungrouped []*domain.Task
}

func newIndex(tasks []*domain.Task, groups []*domain.Group) *index {
	idx := &index{
		groups:   make(map[string]*domain.Group, len(groups)),
		children: make(map[string][]*domain.Group),
		tasks:    make(map[string][]*domain.Task),
	}
	for _, g := range groups {
		idx.groups[g.ID] = g
	}
	for _, g := range groups {
		if _, ok := idx.groups[g.ParentID]; g.ParentID == "" || !ok {
			idx.roots = append(idx.roots, g)
			continue
		}
		idx.children[g.ParentID] = append(idx.children[g.ParentID], g)
	}
	for _, t := range tasks {
		if _, ok := idx.groups[t.GroupID]; t.GroupID == "" || !ok {
			idx.ungrouped = append(idx.ungrouped, t)
			continue
		}
		idx.tasks[t.GroupID] = append(idx.tasks[t.GroupID], t)
	}
	return idx
}

// FindCycle reports the id of a group whose parent chain loops back on
// itself, or "" when the parent graph is acyclic.
func FindCycle(groups []*domain.Group) string {
	parent := make(map[string]string, len(groups))
	for _, g := range groups {
		parent[g.ID] = g.ParentID
	}
	const (
		unseen = iota
		onPath
		done
	)
	state := make(map[string]int, len(groups))
	for _, g := range groups {
		var path []string
		id := g.ID
		for id != "" {
			if _, known := parent[id]; !known {
				break
			}
			if state[id] == done {
				break
			}
			if state[id] == onPath {
				return id
			}
			state[id] = onPath
			path = append(path, id)
			id = parent[id]
		}
		for _, p := range path {
			state[p] = done
		}
	}
	return ""
}
