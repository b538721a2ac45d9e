// Package testutil builds chart fixtures for tests.
package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/gantt/internal/domain"
)

// BaseDate is the default start of fixture tasks.
var BaseDate = time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

// Task options
type TaskOption func(*domain.Task)

func WithTaskID(id string) TaskOption {
	return func(t *domain.Task) {
		t.ID = id
	}
}

// WithSpan sets the task to start on start and last d.
func WithSpan(start time.Time, d time.Duration) TaskOption {
	return func(t *domain.Task) {
		t.Start = start
		t.End = start.Add(d)
	}
}

func WithDays(startDay, days int) TaskOption {
	return WithSpan(BaseDate.AddDate(0, 0, startDay), time.Duration(days)*24*time.Hour)
}

func WithGroup(id string) TaskOption {
	return func(t *domain.Task) {
		t.GroupID = id
	}
}

func WithProgress(p float64) TaskOption {
	return func(t *domain.Task) {
		t.Progress = p
	}
}

func WithDependencies(ids ...string) TaskOption {
	return func(t *domain.Task) {
		t.Dependencies = ids
	}
}

func AsMilestone() TaskOption {
	return func(t *domain.Task) {
		t.Kind = domain.KindMilestone
		t.End = t.Start
	}
}

// NewTestTask returns a one-day task starting on BaseDate with a random id.
func NewTestTask(name string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:    uuid.New().String(),
		Name:  name,
		Start: BaseDate,
		End:   BaseDate.AddDate(0, 0, 1),
		Kind:  domain.KindTask,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Group options
type GroupOption func(*domain.Group)

func WithGroupID(id string) GroupOption {
	return func(g *domain.Group) {
		g.ID = id
	}
}

func WithParent(id string) GroupOption {
	return func(g *domain.Group) {
		g.ParentID = id
	}
}

func NewTestGroup(name string, opts ...GroupOption) domain.Group {
	g := domain.Group{ID: uuid.New().String(), Name: name}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}
