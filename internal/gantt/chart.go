// Package gantt is the embeddable chart: it wires the model, time axis,
// renderer, interaction controller and event bus together and redraws the
// surface synchronously after every change.
package gantt

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/alexanderramin/gantt/internal/chart"
	"github.com/alexanderramin/gantt/internal/clock"
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/events"
	"github.com/alexanderramin/gantt/internal/interact"
	"github.com/alexanderramin/gantt/internal/render"
	"github.com/alexanderramin/gantt/internal/timeaxis"
)

// Version of the chart component.
const Version = "1.0.0"

// Chart is not safe for concurrent use.
type Chart struct {
	opts    domain.Options
	logger  zerolog.Logger
	clock   clock.Clock
	newID   func() string
	surface render.Surface

	bus   *events.Bus
	model *chart.Model
	ctrl  *interact.Controller
	sync  *interact.ScrollSync

	columnWidth  float64
	sidebarWidth float64
	sidebarTop   float64
	markerID     string

	axis      timeaxis.Axis
	scene     *render.Scene
	drawing   bool
	destroyed bool
}

// Option configures a Chart.
type Option func(*Chart)

func WithLogger(l zerolog.Logger) Option {
	return func(c *Chart) { c.logger = l }
}

func WithClock(cl clock.Clock) Option {
	return func(c *Chart) { c.clock = cl }
}

// WithIDGenerator overrides the id source for tasks and groups added
// without one.
func WithIDGenerator(fn func() string) Option {
	return func(c *Chart) { c.newID = fn }
}

// New creates a chart drawing onto surface. A nil surface or invalid
// options fail with ErrInvalidArgument.
func New(surface render.Surface, opts domain.Options, options ...Option) (*Chart, error) {
	if surface == nil {
		return nil, fmt.Errorf("%w: surface is required", domain.ErrInvalidArgument)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("chart options: %w", err)
	}
	c := &Chart{
		opts:         opts,
		logger:       zerolog.Nop(),
		clock:        clock.RealClock{},
		newID:        func() string { return uuid.New().String() },
		surface:      surface,
		columnWidth:  opts.ColumnWidth,
		sidebarWidth: opts.SidebarWidth,
		markerID:     "gantt-arrow-" + uuid.New().String()[:8],
	}
	for _, o := range options {
		o(c)
	}
	c.logger = c.logger.With().Str("component", "gantt").Logger()
	c.bus = events.New(c.logger)
	c.model = chart.New(opts, c.bus,
		chart.WithClock(c.clock),
		chart.WithIDGenerator(c.newID),
		chart.WithOnChange(c.Redraw),
	)
	c.ctrl = interact.New(host{c}, c.bus, opts.EnableDragDrop)
	c.ctrl.SetViewportSize(c.chartPaneWidth(opts.ViewportWidth), opts.ViewportHeight)

	c.sync = interact.NewScrollSync()
	c.sync.Attach(interact.PaneSidebar, func(top float64) { c.sidebarTop = top })
	c.sync.Attach(interact.PaneChart, c.ctrl.SetScrollTop)

	c.Redraw()
	return c, nil
}

func (c *Chart) chartPaneWidth(total float64) float64 {
	if c.opts.ShowSidebar {
		return max(total-c.sidebarWidth, 0)
	}
	return total
}

// Redraw rebuilds the axis and scene from the model and draws it. The axis
// is widened to fill the viewport and the model absorbs that range.
func (c *Chart) Redraw() {
	if c.destroyed || c.drawing {
		return
	}
	c.drawing = true
	defer func() { c.drawing = false }()

	r := c.model.DateRange()
	axis := timeaxis.New(timeaxis.Config{
		Mode:        c.model.ViewMode(),
		Min:         r.Start,
		Max:         r.End,
		ColumnWidth: c.columnWidth,
		Locale:      c.opts.Locale,
	}).EnsureFillsWidth(c.ctrl.Viewport().Width)
	c.model.AbsorbRange(axis.Range())
	c.axis = axis
	if axis.Truncated() {
		c.logger.Warn().
			Str("view_mode", string(axis.Mode())).
			Int("columns", axis.ColumnCount()).
			Time("max_date", r.End).
			Msg("date range too long, columns truncated")
	}

	geo := render.GeometryFrom(c.opts, c.markerID)
	geo.SidebarWidth = c.sidebarWidth
	c.scene = render.Build(c.model.Snapshot(), axis, geo)
	if err := c.surface.Draw(c.scene); err != nil {
		c.logger.Error().Err(err).Msg("draw failed")
		return
	}
	c.logger.Debug().
		Str("view_mode", string(axis.Mode())).
		Int("columns", axis.ColumnCount()).
		Int("rows", len(c.scene.Sidebar.Rows)).
		Msg("redraw")
}

// Scene returns the last drawn scene.
func (c *Chart) Scene() *render.Scene { return c.scene }

// Axis returns the time axis of the last redraw.
func (c *Chart) Axis() timeaxis.Axis { return c.axis }

func (c *Chart) Options() domain.Options { return c.opts }

// SetTasks replaces every task and group.
func (c *Chart) SetTasks(tasks []domain.Task, groups []domain.Group) error {
	if c.destroyed {
		return domain.ErrDestroyed
	}
	return c.model.SetTasks(tasks, groups)
}

func (c *Chart) AddTask(t domain.Task) domain.Task {
	if c.destroyed {
		return domain.Task{}
	}
	return c.model.AddTask(t)
}

func (c *Chart) UpdateTask(id string, patch domain.TaskPatch) (domain.Task, bool) {
	if c.destroyed {
		return domain.Task{}, false
	}
	return c.model.UpdateTask(id, patch)
}

func (c *Chart) RemoveTask(id string) (domain.Task, bool) {
	if c.destroyed {
		return domain.Task{}, false
	}
	return c.model.RemoveTask(id)
}

func (c *Chart) AddGroup(g domain.Group) (domain.Group, error) {
	if c.destroyed {
		return domain.Group{}, domain.ErrDestroyed
	}
	return c.model.AddGroup(g)
}

func (c *Chart) RemoveGroup(id string) (domain.Group, bool) {
	if c.destroyed {
		return domain.Group{}, false
	}
	return c.model.RemoveGroup(id)
}

// ToggleGroup flips a group's collapse state and returns the new state.
func (c *Chart) ToggleGroup(id string) bool {
	if c.destroyed {
		return false
	}
	collapsed, _ := c.model.ToggleGroup(id)
	return collapsed
}

func (c *Chart) ExpandAll() {
	if !c.destroyed {
		c.model.ExpandAll()
	}
}

func (c *Chart) CollapseAll() {
	if !c.destroyed {
		c.model.CollapseAll()
	}
}

// SetViewMode fails with ErrInvalidViewMode for anything but hour, day,
// week or month.
func (c *Chart) SetViewMode(mode domain.ViewMode) error {
	if c.destroyed {
		return domain.ErrDestroyed
	}
	if err := c.model.SetViewMode(mode); err != nil {
		return fmt.Errorf("set view mode %q: %w", mode, err)
	}
	return nil
}

func (c *Chart) ViewMode() domain.ViewMode { return c.model.ViewMode() }

func (c *Chart) MarkDay(date time.Time, markType, color string) domain.MarkedDay {
	if c.destroyed {
		return domain.MarkedDay{}
	}
	return c.model.MarkDay(date, markType, color)
}

func (c *Chart) UnmarkDay(date time.Time) bool {
	if c.destroyed {
		return false
	}
	return c.model.UnmarkDay(date)
}

func (c *Chart) ClearMarkedDays() {
	if !c.destroyed {
		c.model.ClearMarkedDays()
	}
}

func (c *Chart) MarkedDays() []domain.MarkedDay { return c.model.MarkedDays() }

func (c *Chart) SetDependencies(deps []domain.Dependency) {
	if !c.destroyed {
		c.model.SetDependencies(deps)
	}
}

func (c *Chart) Dependencies() []domain.Dependency { return c.model.Dependencies() }

func (c *Chart) Task(id string) (domain.Task, bool)   { return c.model.Task(id) }
func (c *Chart) Group(id string) (domain.Group, bool) { return c.model.Group(id) }
func (c *Chart) Tasks() []domain.Task                 { return c.model.Tasks() }
func (c *Chart) Groups() []domain.Group               { return c.model.Groups() }
func (c *Chart) IsCollapsed(id string) bool           { return c.model.IsCollapsed(id) }

// VisibleRows returns the rows currently drawn, in order.
func (c *Chart) VisibleRows() []domain.VisibleRow { return c.model.VisibleRows() }

// DateRange returns the range covered by the axis, including extensions.
func (c *Chart) DateRange() domain.DateRange { return c.model.DateRange() }

// Now is the chart clock's current time in the chart's location.
func (c *Chart) Now() time.Time { return c.model.Now() }

// On subscribes fn to event.
func (c *Chart) On(event string, fn events.Handler) events.ListenerID {
	return c.bus.On(event, fn)
}

// Off removes a subscription made with On.
func (c *Chart) Off(event string, id events.ListenerID) bool {
	return c.bus.Off(event, id)
}

// Emit publishes a custom event to the chart's listeners.
func (c *Chart) Emit(event string, payload any) {
	c.bus.Emit(event, payload)
}

// Destroy emits destroy, then drops all listeners and state. Later calls
// are no-ops.
func (c *Chart) Destroy() {
	if c.destroyed {
		return
	}
	c.bus.Emit(events.Destroy, nil)
	c.destroyed = true
	c.ctrl.Reset()
	c.model.Reset()
	c.bus.Reset()
	c.scene = nil
	c.logger.Debug().Msg("destroyed")
}

// Destroyed reports whether Destroy has been called.
func (c *Chart) Destroyed() bool { return c.destroyed }
