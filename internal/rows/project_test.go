package rows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/gantt/internal/domain"
)

func ids(rs []domain.VisibleRow) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID()
	}
	return out
}

func depths(rs []domain.VisibleRow) []int {
	out := make([]int, len(rs))
	for i, r := range rs {
		out[i] = r.Depth
	}
	return out
}

func nested() ([]*domain.Task, []*domain.Group) {
	groups := []*domain.Group{
		{ID: "A"},
		{ID: "B", ParentID: "A"},
	}
	tasks := []*domain.Task{
		{ID: "T1", GroupID: "A"},
		{ID: "T2", GroupID: "B"},
	}
	return tasks, groups
}

func TestProject_NestedOrder(t *testing.T) {
	tasks, groups := nested()

	got, err := Project(tasks, groups, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "T2", "T1"}, ids(got))
	assert.Equal(t, []int{0, 1, 2, 1}, depths(got))
	assert.Equal(t, domain.RowGroup, got[0].Kind)
	assert.Equal(t, domain.RowTask, got[2].Kind)
}

func TestProject_CollapsedKeepsGroupRow(t *testing.T) {
	tasks, groups := nested()

	got, err := Project(tasks, groups, map[string]bool{"A": true})
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, ids(got))

	got, err = Project(tasks, groups, map[string]bool{"B": true})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "T1"}, ids(got))
}

func TestProject_UngroupedAfterRoots(t *testing.T) {
	groups := []*domain.Group{{ID: "G1"}, {ID: "G2"}}
	tasks := []*domain.Task{
		{ID: "U1"},
		{ID: "A1", GroupID: "G2"},
		{ID: "U2"},
		{ID: "A2", GroupID: "G1"},
	}

	got, err := Project(tasks, groups, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"G1", "A2", "G2", "A1", "U1", "U2"}, ids(got))
	assert.Equal(t, []int{0, 1, 0, 1, 0, 0}, depths(got))
}

func TestProject_Orphans(t *testing.T) {
	groups := []*domain.Group{{ID: "G", ParentID: "missing"}}
	tasks := []*domain.Task{{ID: "T", GroupID: "nope"}}

	got, err := Project(tasks, groups, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"G", "T"}, ids(got))
	assert.Equal(t, []int{0, 0}, depths(got))
}

func TestProject_CycleIsError(t *testing.T) {
	groups := []*domain.Group{
		{ID: "R"},
		{ID: "A", ParentID: "B"},
		{ID: "B", ParentID: "A"},
	}

	_, err := Project(nil, groups, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGroupCycle)
}

func TestProject_SelfParentIsCycle(t *testing.T) {
	_, err := Project(nil, []*domain.Group{{ID: "A", ParentID: "A"}}, nil)
	assert.ErrorIs(t, err, domain.ErrGroupCycle)
}

func TestFindCycle(t *testing.T) {
	_, groups := nested()
	assert.Empty(t, FindCycle(groups))

	cyclic := []*domain.Group{
		{ID: "A", ParentID: "C"},
		{ID: "B", ParentID: "A"},
		{ID: "C", ParentID: "B"},
		{ID: "D", ParentID: "A"},
	}
	assert.Contains(t, []string{"A", "B", "C"}, FindCycle(cyclic))
	assert.Equal(t, "X", FindCycle([]*domain.Group{{ID: "X", ParentID: "X"}}))
	assert.Empty(t, FindCycle([]*domain.Group{{ID: "X", ParentID: "unknown"}}))
}
