// Package interact turns pointer, zoom and scroll input into chart
// mutations through the time axis' inverse mapping.
package interact

import (
	"math"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/events"
	"github.com/alexanderramin/gantt/internal/render"
	"github.com/alexanderramin/gantt/internal/timeaxis"
)

// Zoom bounds and step, in pixels per column.
const (
	MinZoom  = 10
	MaxZoom  = 120
	ZoomStep = 5
)

// ScrollThreshold is the distance from either edge of the content, in
// pixels, at which a scroll extends the date range.
const ScrollThreshold = 200

// Host is the chart the controller drives.
type Host interface {
	Axis() timeaxis.Axis
	Now() time.Time
	TaskAt(p render.Point) (string, bool)
	Task(id string) (domain.Task, bool)
	MoveTask(id string, start, end time.Time) (domain.Task, bool)
	SetColumnWidth(px float64)
	// ExtendRange grows the date range by units on one side, redraws and
	// returns the pixel width added.
	ExtendRange(dir domain.Direction, units int) float64
	Redraw()
}

// Emitter publishes notifications.
type Emitter interface {
	Emit(event string, payload any)
}

// Viewport is the visible window onto the chart content.
type Viewport struct {
	ScrollLeft float64
	ScrollTop  float64
	Width      float64
	Height     float64
}

type drag struct {
	taskID        string
	startX        float64
	originalStart time.Time
	originalEnd   time.Time
}

// Controller holds the drag state machine (Idle and Dragging), the hover
// target and the viewport.
type Controller struct {
	host       Host
	emit       Emitter
	enableDrag bool

	viewport Viewport
	dragging *drag
	hovered  string
}

func New(host Host, emit Emitter, enableDrag bool) *Controller {
	return &Controller{host: host, emit: emit, enableDrag: enableDrag}
}

func (c *Controller) Viewport() Viewport { return c.viewport }

// SetViewportSize records the visible area size.
func (c *Controller) SetViewportSize(width, height float64) {
	c.viewport.Width = width
	c.viewport.Height = height
}

// SetScrollTop records the vertical scroll without side effects.
func (c *Controller) SetScrollTop(top float64) { c.viewport.ScrollTop = top }

// Dragging reports the id of the task being dragged.
func (c *Controller) Dragging() (string, bool) {
	if c.dragging == nil {
		return "", false
	}
	return c.dragging.taskID, true
}

// PointerDown starts a drag when p is over a task bar. Milestones, presses
// while a drag is already active and presses with dragging disabled are
// ignored. It reports whether a drag started.
func (c *Controller) PointerDown(p render.Point) bool {
	if !c.enableDrag || c.dragging != nil {
		return false
	}
	id, ok := c.host.TaskAt(p)
	if !ok {
		return false
	}
	t, ok := c.host.Task(id)
	if !ok || t.IsMilestone() {
		return false
	}
	c.dragging = &drag{taskID: id, startX: p.X, originalStart: t.Start, originalEnd: t.End}
	return true
}

// PointerMove reschedules the dragged task so its start sits deltaX pixels
// from where it began, keeping its duration.
func (c *Controller) PointerMove(p render.Point) {
	d := c.dragging
	if d == nil {
		return
	}
	axis := c.host.Axis()
	duration := d.originalEnd.Sub(d.originalStart)
	start := axis.XToDate(axis.DateToX(d.originalStart) + p.X - d.startX)
	end := start.Add(duration)
	t, ok := c.host.MoveTask(d.taskID, start, end)
	if !ok {
		c.dragging = nil
		return
	}
	c.emit.Emit(events.TaskDrag, events.DragPayload{Task: t, Start: t.Start, End: t.End})
}

// PointerUp ends the drag and emits the drop with both the original and
// the final dates.
func (c *Controller) PointerUp() {
	d := c.dragging
	if d == nil {
		return
	}
	c.dragging = nil
	t, ok := c.host.Task(d.taskID)
	if !ok {
		return
	}
	c.host.Redraw()
	c.emit.Emit(events.TaskDrop, events.DropPayload{
		Task:          t,
		Start:         t.Start,
		End:           t.End,
		OriginalStart: d.originalStart,
		OriginalEnd:   d.originalEnd,
	})
}

// Click emits taskClick for the task under p.
func (c *Controller) Click(p render.Point) bool {
	id, ok := c.host.TaskAt(p)
	if !ok {
		return false
	}
	t, ok := c.host.Task(id)
	if !ok {
		return false
	}
	c.emit.Emit(events.TaskClick, t)
	return true
}

// Hover tracks the task under p and emits taskMouseOut / taskMouseOver
// when it changes.
func (c *Controller) Hover(p render.Point) {
	id, _ := c.host.TaskAt(p)
	if id == c.hovered {
		return
	}
	if c.hovered != "" {
		if t, ok := c.host.Task(c.hovered); ok {
			c.emit.Emit(events.TaskMouseOut, t)
		}
	}
	c.hovered = id
	if id != "" {
		if t, ok := c.host.Task(id); ok {
			c.emit.Emit(events.TaskMouseOver, t)
		}
	}
}

// Zoom returns the current column width.
func (c *Controller) Zoom() float64 { return c.host.Axis().ColumnWidth() }

// SetZoom clamps px to [MinZoom, MaxZoom] and applies it. Setting the
// current width is a no-op and emits nothing.
func (c *Controller) SetZoom(px float64) bool {
	px = math.Min(math.Max(px, MinZoom), MaxZoom)
	if px == c.Zoom() {
		return false
	}
	c.host.SetColumnWidth(px)
	c.emit.Emit(events.ZoomChange, events.ZoomPayload{ColumnWidth: px})
	return true
}

func (c *Controller) ZoomIn() bool  { return c.SetZoom(c.Zoom() + ZoomStep) }
func (c *Controller) ZoomOut() bool { return c.SetZoom(c.Zoom() - ZoomStep) }

// OnScroll records a scroll of the chart viewport. Near the left edge it
// prepends a chunk of columns and shifts the scroll offset right by the
// added width; near the right edge it appends a chunk and keeps the offset.
// It returns the resulting scroll offset.
func (c *Controller) OnScroll(left, top float64) float64 {
	c.viewport.ScrollLeft = left
	c.viewport.ScrollTop = top

	axis := c.host.Axis()
	chunk := timeaxis.ChunkUnits(axis.Mode())
	switch {
	case left < ScrollThreshold:
		added := c.extend(domain.DirectionLeft, chunk)
		c.viewport.ScrollLeft = left + added
	case left+c.viewport.Width > axis.Width()-ScrollThreshold:
		c.extend(domain.DirectionRight, chunk)
	}
	return c.viewport.ScrollLeft
}

func (c *Controller) extend(dir domain.Direction, units int) float64 {
	added := c.host.ExtendRange(dir, units)
	if added > 0 {
		r := c.host.Axis().Range()
		c.emit.Emit(events.RangeExtend, events.RangeExtendPayload{Direction: dir, From: r.Start, To: r.End})
	}
	return added
}

// ScrollOptions positions a scrollToDate target.
type ScrollOptions struct {
	Align          domain.Align
	PaddingColumns int
}

// DefaultScrollOptions centers the target and leaves five columns of slack
// when the range has to grow.
func DefaultScrollOptions() ScrollOptions {
	return ScrollOptions{Align: domain.AlignCenter, PaddingColumns: 5}
}

// ScrollToDate brings date into view, extending the range first when the
// date lies outside it. Vertical scroll is preserved. It returns the new
// horizontal offset.
func (c *Controller) ScrollToDate(date time.Time, opts ScrollOptions) float64 {
	if opts.Align == "" {
		opts.Align = domain.AlignCenter
	}
	if opts.PaddingColumns < 0 {
		opts.PaddingColumns = 0
	}

	axis := c.host.Axis()
	switch {
	case date.Before(axis.Min()):
		units := timeaxis.UnitsToReach(axis.Mode(), axis.Min(), date) + opts.PaddingColumns
		c.viewport.ScrollLeft += c.extend(domain.DirectionLeft, units)
	case !date.Before(axis.End()):
		units := timeaxis.UnitsToReach(axis.Mode(), axis.Max(), date) + opts.PaddingColumns
		c.extend(domain.DirectionRight, units)
	}

	axis = c.host.Axis()
	x := axis.DateToX(date)
	switch opts.Align {
	case domain.AlignStart:
	case domain.AlignEnd:
		x -= c.viewport.Width
	default:
		x -= c.viewport.Width / 2
	}
	maxScroll := math.Max(0, axis.Width()-c.viewport.Width)
	c.viewport.ScrollLeft = math.Min(math.Max(x, 0), maxScroll)

	c.emit.Emit(events.ScrollToDate, events.ScrollToDatePayload{Date: date, Align: opts.Align})
	return c.viewport.ScrollLeft
}

// ScrollToToday scrolls to the host's current time.
func (c *Controller) ScrollToToday(opts ScrollOptions) float64 {
	return c.ScrollToDate(c.host.Now(), opts)
}

// Reset returns to Idle and forgets the hover target.
func (c *Controller) Reset() {
	c.dragging = nil
	c.hovered = ""
}
