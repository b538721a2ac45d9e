package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrFloat(f float64) *float64 { return &f }

func validMinimalDocument() *Document {
	return &Document{
		Tasks: []TaskImport{
			{ID: "t1", Name: "Design", Start: "2024-01-10", End: "2024-01-12"},
		},
	}
}

func TestValidate_ValidMinimal(t *testing.T) {
	r := Validate(validMinimalDocument())
	assert.True(t, r.OK())
	assert.Empty(t, r.Warnings)
	assert.NoError(t, r.Err())
}

func TestValidate_ValidFull(t *testing.T) {
	doc := &Document{
		ViewMode: "week",
		Groups: []GroupImport{
			{ID: "g2", Name: "Build", Parent: "g1"},
			{ID: "g1", Name: "Phase 1"},
		},
		Tasks: []TaskImport{
			{ID: "t0", Name: "Kickoff", Start: "2024-01-08T09:00:00Z", End: "2024-01-08T09:00:00Z", Type: "milestone", Group: "g1"},
			{ID: "t1", Name: "Design", Start: "2024-01-10 08:30", End: "2024-01-12", Progress: ptrFloat(50), Group: "g2", Dependencies: []string{"t0"}},
		},
		Dependencies: []DependencyImport{{From: "t0", To: "t1"}},
		MarkedDays:   []MarkedDayImport{{Date: "2024-01-15", Type: "holiday"}},
		Collapsed:    []string{"g2"},
	}
	r := Validate(doc)
	assert.Empty(t, r.Errors)
	assert.Empty(t, r.Warnings)
}

func TestValidate_TaskErrors(t *testing.T) {
	tests := []struct {
		name string
		task TaskImport
		want string
	}{
		{"missing id", TaskImport{Start: "2024-01-10", End: "2024-01-11"}, "tasks[1].id is required"},
		{"missing start", TaskImport{ID: "x", End: "2024-01-11"}, "tasks[1].start is required"},
		{"missing end", TaskImport{ID: "x", Start: "2024-01-11"}, "tasks[1].end is required"},
		{"bad date", TaskImport{ID: "x", Start: "10/01/2024", End: "2024-01-11"}, "tasks[1].start: invalid argument: invalid date"},
		{"progress high", TaskImport{ID: "x", Start: "2024-01-10", End: "2024-01-11", Progress: ptrFloat(101)}, "progress must be within [0, 100]"},
		{"progress low", TaskImport{ID: "x", Start: "2024-01-10", End: "2024-01-11", Progress: ptrFloat(-1)}, "progress must be within [0, 100]"},
		{"bad type", TaskImport{ID: "x", Start: "2024-01-10", End: "2024-01-11", Type: "epic"}, `type: invalid value "epic"`},
		{"unknown group", TaskImport{ID: "x", Start: "2024-01-10", End: "2024-01-11", Group: "nope"}, `group "nope" not found`},
		{"duplicate id", TaskImport{ID: "t1", Start: "2024-01-10", End: "2024-01-11"}, `duplicate id "t1"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := validMinimalDocument()
			doc.Tasks = append(doc.Tasks, tc.task)
			r := Validate(doc)
			require.Len(t, r.Errors, 1)
			assert.Contains(t, r.Errors[0].Error(), tc.want)
		})
	}
}

func TestValidate_InvalidViewMode(t *testing.T) {
	doc := validMinimalDocument()
	doc.ViewMode = "fortnight"
	r := Validate(doc)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0].Error(), "view_mode")
}

func TestValidate_GroupErrors(t *testing.T) {
	doc := validMinimalDocument()
	doc.Groups = []GroupImport{
		{ID: "g1", Name: "A"},
		{ID: "g1", Name: "B"},
		{ID: "g3", Parent: "missing"},
		{Name: "no id"},
	}
	r := Validate(doc)
	require.Len(t, r.Errors, 3)
	assert.Contains(t, r.Errors[0].Error(), `groups[1].id: duplicate id "g1"`)
	assert.Contains(t, r.Errors[1].Error(), "groups[3].id is required")
	assert.Contains(t, r.Errors[2].Error(), `groups[2].parent: group "missing" not found`)
}

func TestValidate_ParentCycle(t *testing.T) {
	doc := validMinimalDocument()
	doc.Groups = []GroupImport{
		{ID: "a", Parent: "c"},
		{ID: "b", Parent: "a"},
		{ID: "c", Parent: "b"},
		{ID: "d", Parent: "a"},
	}
	r := Validate(doc)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0].Error(), "parent cycle")
}

func TestValidate_SelfParentIsCycle(t *testing.T) {
	doc := validMinimalDocument()
	doc.Groups = []GroupImport{{ID: "a", Parent: "a"}}
	r := Validate(doc)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0].Error(), `parent cycle involving "a"`)
}

func TestValidate_UnknownDependenciesAreWarnings(t *testing.T) {
	doc := validMinimalDocument()
	doc.Tasks[0].Dependencies = []string{"ghost"}
	doc.Dependencies = []DependencyImport{{From: "t1", To: "phantom"}, {From: "t1", To: "t1"}}
	doc.Collapsed = []string{"nope"}

	r := Validate(doc)
	assert.True(t, r.OK())
	require.Len(t, r.Warnings, 4)
	assert.Contains(t, r.Warnings[0].Error(), `task "ghost" not found`)
	assert.Contains(t, r.Warnings[1].Error(), `dependencies[0].to: task "phantom" not found`)
	assert.Contains(t, r.Warnings[2].Error(), "self-dependency")
	assert.Contains(t, r.Warnings[3].Error(), `collapsed[0]: group "nope" not found`)
}

func TestValidate_MarkedDayErrors(t *testing.T) {
	doc := validMinimalDocument()
	doc.MarkedDays = []MarkedDayImport{{Type: "holiday"}, {Date: "tomorrow"}}
	r := Validate(doc)
	require.Len(t, r.Errors, 2)
	assert.Contains(t, r.Errors[0].Error(), "marked_days[0].date is required")
	assert.Contains(t, r.Errors[1].Error(), "marked_days[1].date: invalid argument: invalid date")
}
