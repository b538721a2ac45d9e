// Package chart owns the chart's entities and derived state: the base date
// range, the visible rows and the collapse set. Every mutation recomputes
// the derived state, runs the change hook (the redraw) and then emits its
// notification.
package chart

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/gantt/internal/clock"
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/events"
	"github.com/alexanderramin/gantt/internal/rows"
	"github.com/alexanderramin/gantt/internal/timeaxis"
)

// Model is not safe for concurrent use; the chart is driven from a single
// event loop.
type Model struct {
	opts     domain.Options
	loc      *time.Location
	clock    clock.Clock
	newID    func() string
	bus      *events.Bus
	onChange func()

	mode      domain.ViewMode
	tasks     []*domain.Task
	groups    []*domain.Group
	deps      []domain.Dependency
	marked    []domain.MarkedDay
	collapsed map[string]bool

	base     domain.DateRange
	extended *domain.DateRange
	rows     []domain.VisibleRow
}

// Option configures a Model.
type Option func(*Model)

// WithClock overrides the clock used for the empty-chart window.
func WithClock(c clock.Clock) Option {
	return func(m *Model) { m.clock = c }
}

// WithIDGenerator overrides the id source for entities that arrive without
// one.
func WithIDGenerator(fn func() string) Option {
	return func(m *Model) { m.newID = fn }
}

// WithOnChange installs the hook run after every state change and before
// the matching notification is emitted.
func WithOnChange(fn func()) Option {
	return func(m *Model) { m.onChange = fn }
}

// New returns an empty model. opts must already be validated.
func New(opts domain.Options, bus *events.Bus, options ...Option) *Model {
	m := &Model{
		opts:      opts,
		loc:       opts.Location(),
		clock:     clock.RealClock{},
		newID:     func() string { return uuid.New().String() },
		bus:       bus,
		onChange:  func() {},
		mode:      opts.ViewMode,
		collapsed: make(map[string]bool),
	}
	for _, o := range options {
		o(m)
	}
	m.recomputeRange()
	m.reproject()
	return m
}

func (m *Model) Options() domain.Options   { return m.opts }
func (m *Model) Location() *time.Location  { return m.loc }
func (m *Model) ViewMode() domain.ViewMode { return m.mode }
func (m *Model) Now() time.Time            { return m.clock.Now().In(m.loc) }

// DateRange is the base range widened by any absorbed extension.
func (m *Model) DateRange() domain.DateRange {
	r := m.base
	if m.extended != nil {
		if m.extended.Start.Before(r.Start) {
			r.Start = m.extended.Start
		}
		if m.extended.End.After(r.End) {
			r.End = m.extended.End
		}
	}
	return r
}

// AbsorbRange widens the date range to cover r and reports whether it grew.
// Absorbed extensions last until the base range is next recomputed.
func (m *Model) AbsorbRange(r domain.DateRange) bool {
	cur := m.DateRange()
	if !r.Start.Before(cur.Start) && !r.End.After(cur.End) {
		return false
	}
	if r.Start.Before(cur.Start) {
		cur.Start = r.Start
	}
	if r.End.After(cur.End) {
		cur.End = r.End
	}
	m.extended = &cur
	return true
}

// SetViewMode changes the granularity. An unknown mode fails with
// ErrInvalidViewMode and leaves the model untouched.
func (m *Model) SetViewMode(mode domain.ViewMode) error {
	if !mode.Valid() {
		return domain.ErrInvalidViewMode
	}
	m.mode = mode
	m.recomputeRange()
	m.changed(events.ViewModeChange, mode)
	return nil
}

// recomputeRange derives the base range from the task extents padded for
// the view mode, or a window from the first day of this month to the last
// day of the month seven months out when there are no tasks. MinDate and
// MaxDate options pin their bound.
func (m *Model) recomputeRange() {
	m.extended = nil
	if len(m.tasks) == 0 {
		now := m.Now()
		m.base = domain.DateRange{
			Start: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, m.loc),
			End:   time.Date(now.Year(), now.Month()+8, 0, 0, 0, 0, 0, m.loc),
		}
	} else {
		lo, hi := m.tasks[0].Start, m.tasks[0].Start
		for _, t := range m.tasks {
			for _, d := range []time.Time{t.Start, t.End} {
				if d.Before(lo) {
					lo = d
				}
				if d.After(hi) {
					hi = d
				}
			}
		}
		pad := timeaxis.PaddingDays(m.mode)
		m.base = domain.DateRange{Start: lo.AddDate(0, 0, -pad), End: hi.AddDate(0, 0, pad)}
	}
	if m.opts.MinDate != nil {
		m.base.Start = m.opts.MinDate.In(m.loc)
	}
	if m.opts.MaxDate != nil {
		m.base.End = m.opts.MaxDate.In(m.loc)
	}
	if m.base.End.Before(m.base.Start) {
		m.base.End = m.base.Start
	}
}

func (m *Model) reproject() {
	r, err := rows.Project(m.tasks, m.groups, m.collapsed)
	if err != nil {
		// Cycles are rejected on the way in, so this only happens when
		// callers bypass validation; fall back to a flat task list.
		r = r[:0]
		for _, t := range m.tasks {
			r = append(r, domain.VisibleRow{Kind: domain.RowTask, Task: t})
		}
	}
	m.rows = r
}

// changed runs the change hook, then emits event.
func (m *Model) changed(event string, payload any) {
	m.onChange()
	if event != "" {
		m.bus.Emit(event, payload)
	}
}

// Reset drops every entity and view state.
func (m *Model) Reset() {
	m.tasks = nil
	m.groups = nil
	m.deps = nil
	m.marked = nil
	m.collapsed = make(map[string]bool)
	m.mode = m.opts.ViewMode
	m.recomputeRange()
	m.reproject()
}
