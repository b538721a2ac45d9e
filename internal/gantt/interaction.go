package gantt

import (
	"fmt"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/events"
	"github.com/alexanderramin/gantt/internal/interact"
	"github.com/alexanderramin/gantt/internal/render"
	"github.com/alexanderramin/gantt/internal/timeaxis"
)

// host adapts Chart to interact.Host without widening Chart's own API.
type host struct{ c *Chart }

func (h host) Axis() timeaxis.Axis { return h.c.axis }
func (h host) Now() time.Time      { return h.c.model.Now() }
func (h host) Redraw()             { h.c.Redraw() }

func (h host) TaskAt(p render.Point) (string, bool) {
	if h.c.scene == nil {
		return "", false
	}
	t, ok := h.c.scene.TaskAt(p)
	return t.TaskID, ok
}

func (h host) Task(id string) (domain.Task, bool) { return h.c.model.Task(id) }

func (h host) MoveTask(id string, start, end time.Time) (domain.Task, bool) {
	return h.c.model.MoveTask(id, start, end)
}

func (h host) SetColumnWidth(px float64) {
	h.c.columnWidth = px
	h.c.Redraw()
}

func (h host) ExtendRange(dir domain.Direction, units int) float64 {
	next, added := h.c.axis.Extend(dir, units)
	if !h.c.model.AbsorbRange(next.Range()) {
		return 0
	}
	h.c.Redraw()
	return added
}

var _ interact.Host = host{}

// PointerDown starts a drag at p, in chart content coordinates.
func (c *Chart) PointerDown(p render.Point) bool {
	if c.destroyed {
		return false
	}
	return c.ctrl.PointerDown(p)
}

func (c *Chart) PointerMove(p render.Point) {
	if !c.destroyed {
		c.ctrl.PointerMove(p)
	}
}

func (c *Chart) PointerUp() {
	if !c.destroyed {
		c.ctrl.PointerUp()
	}
}

// Dragging reports the id of the task being dragged.
func (c *Chart) Dragging() (string, bool) { return c.ctrl.Dragging() }

// Click emits taskClick when p is over a task.
func (c *Chart) Click(p render.Point) bool {
	if c.destroyed {
		return false
	}
	return c.ctrl.Click(p)
}

// Hover emits taskMouseOver and taskMouseOut as the pointer crosses tasks.
func (c *Chart) Hover(p render.Point) {
	if !c.destroyed {
		c.ctrl.Hover(p)
	}
}

// ClickRow handles a click on sidebar row i: group rows emit groupClick,
// task rows emit taskClick.
func (c *Chart) ClickRow(i int) bool {
	if c.destroyed {
		return false
	}
	rs := c.model.VisibleRows()
	if i < 0 || i >= len(rs) {
		return false
	}
	switch r := rs[i]; r.Kind {
	case domain.RowGroup:
		c.bus.Emit(events.GroupClick, r.Group.Clone())
	default:
		c.bus.Emit(events.TaskClick, r.Task.Clone())
	}
	return true
}

func (c *Chart) Zoom() float64 { return c.ctrl.Zoom() }

// SetZoom sets the column width, clamped to [10, 120].
func (c *Chart) SetZoom(px float64) bool {
	if c.destroyed {
		return false
	}
	return c.ctrl.SetZoom(px)
}

func (c *Chart) ZoomIn() bool {
	if c.destroyed {
		return false
	}
	return c.ctrl.ZoomIn()
}

func (c *Chart) ZoomOut() bool {
	if c.destroyed {
		return false
	}
	return c.ctrl.ZoomOut()
}

// OnScroll reports a scroll of the chart pane and returns the horizontal
// offset the host should apply, which differs from left after a left
// extension.
func (c *Chart) OnScroll(left, top float64) float64 {
	if c.destroyed {
		return left
	}
	c.sync.Scrolled(interact.PaneChart, top)
	return c.ctrl.OnScroll(left, top)
}

// ScrollSidebar reports a vertical scroll of the sidebar pane.
func (c *Chart) ScrollSidebar(top float64) {
	if !c.destroyed && c.sync.Scrolled(interact.PaneSidebar, top) {
		c.sidebarTop = top
	}
}

// SidebarScrollTop is the sidebar's vertical offset.
func (c *Chart) SidebarScrollTop() float64 { return c.sidebarTop }

func (c *Chart) Viewport() interact.Viewport { return c.ctrl.Viewport() }

// SetViewportSize records a resize of the host container and redraws.
func (c *Chart) SetViewportSize(width, height float64) {
	if c.destroyed {
		return
	}
	c.ctrl.SetViewportSize(c.chartPaneWidth(width), height)
	c.Redraw()
}

// ScrollToDate brings date into view. A zero ScrollOptions centers it with
// five columns of padding.
func (c *Chart) ScrollToDate(date time.Time, opts interact.ScrollOptions) float64 {
	if c.destroyed {
		return 0
	}
	if opts == (interact.ScrollOptions{}) {
		opts = interact.DefaultScrollOptions()
	}
	return c.ctrl.ScrollToDate(date.In(c.model.Location()), opts)
}

func (c *Chart) ScrollToToday(opts interact.ScrollOptions) float64 {
	return c.ScrollToDate(c.model.Now(), opts)
}

// ResizeSidebar sets the sidebar width within [150, 400].
func (c *Chart) ResizeSidebar(width float64) error {
	if c.destroyed {
		return domain.ErrDestroyed
	}
	if width < domain.MinSidebarWidth || width > domain.MaxSidebarWidth {
		return fmt.Errorf("%w: sidebar width %v outside [%d, %d]",
			domain.ErrInvalidArgument, width, domain.MinSidebarWidth, domain.MaxSidebarWidth)
	}
	total := c.ctrl.Viewport().Width
	if c.opts.ShowSidebar {
		total += c.sidebarWidth
	}
	c.sidebarWidth = width
	c.ctrl.SetViewportSize(c.chartPaneWidth(total), c.ctrl.Viewport().Height)
	c.Redraw()
	return nil
}

// SidebarWidth is the current sidebar width.
func (c *Chart) SidebarWidth() float64 { return c.sidebarWidth }
