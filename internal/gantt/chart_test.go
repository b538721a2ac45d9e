package gantt

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/gantt/internal/clock"
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/events"
	"github.com/alexanderramin/gantt/internal/interact"
	"github.com/alexanderramin/gantt/internal/render"
)

func utc(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testOptions() domain.Options {
	opts := domain.DefaultOptions()
	opts.Timezone = "UTC"
	return opts
}

func newChart(t *testing.T, opts domain.Options, extra ...Option) (*Chart, *render.Recorder) {
	t.Helper()
	rec := &render.Recorder{}
	options := append([]Option{WithClock(clock.Fixed(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)))}, extra...)
	c, err := New(rec, opts, options...)
	require.NoError(t, err)
	return c, rec
}

func names(log *[]string, c *Chart, evs ...string) {
	for _, e := range evs {
		c.On(e, func(any) { *log = append(*log, e) })
	}
}

func TestNew_InvalidArguments(t *testing.T) {
	_, err := New(nil, testOptions())
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	opts := testOptions()
	opts.ViewMode = "fortnight"
	_, err = New(&render.Recorder{}, opts)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestNew_DrawsAndFillsViewport(t *testing.T) {
	c, rec := newChart(t, testOptions())

	require.Len(t, rec.Frames, 1)
	assert.GreaterOrEqual(t, c.Axis().Width(), 1000.0, "viewport 1200 minus 200 sidebar")
	assert.Equal(t, utc(2024, 1, 1), c.DateRange().Start)
	assert.Equal(t, c.Axis().Max(), c.DateRange().End, "model absorbs the filled range")
}

func TestChart_EveryMutationRedraws(t *testing.T) {
	c, rec := newChart(t, testOptions())
	start := len(rec.Frames)

	require.NoError(t, c.SetTasks([]domain.Task{{ID: "a", Start: utc(2024, 1, 10), End: utc(2024, 1, 12)}}, nil))
	c.AddTask(domain.Task{ID: "b", Start: utc(2024, 1, 11), End: utc(2024, 1, 13)})
	_, err := c.AddGroup(domain.Group{ID: "g"})
	require.NoError(t, err)
	c.ToggleGroup("g")
	c.MarkDay(utc(2024, 1, 12), "holiday", "")
	c.SetDependencies([]domain.Dependency{{From: "a", To: "b"}})

	assert.Equal(t, start+6, len(rec.Frames))
	last := rec.Last()
	require.Len(t, last.Dependencies, 1)
	assert.Equal(t, "a", last.Dependencies[0].From)
}

func TestChart_SetViewModeInvalid(t *testing.T) {
	c, _ := newChart(t, testOptions())
	var log []string
	names(&log, c, events.ViewModeChange)

	err := c.SetViewMode("bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Equal(t, domain.ViewDay, c.ViewMode())
	assert.Empty(t, log)

	require.NoError(t, c.SetViewMode(domain.ViewWeek))
	assert.Equal(t, 1, c.Scene().Header.Rows)
	assert.Equal(t, []string{events.ViewModeChange}, log)
}

func TestChart_DragEndToEnd(t *testing.T) {
	c, _ := newChart(t, testOptions())
	require.NoError(t, c.SetTasks([]domain.Task{{ID: "t", Start: utc(2024, 1, 10), End: utc(2024, 1, 12)}}, nil))

	var drop events.DropPayload
	c.On(events.TaskDrop, func(p any) { drop = p.(events.DropPayload) })
	rangeBefore := c.DateRange()

	bar := c.Scene().Tasks[0]
	x0 := bar.Center
	require.True(t, c.PointerDown(x0))
	c.PointerMove(render.Point{X: x0.X + c.Zoom(), Y: x0.Y})
	c.PointerUp()

	got, _ := c.Task("t")
	assert.Equal(t, utc(2024, 1, 11), got.Start)
	assert.Equal(t, 48*time.Hour, got.Duration())
	assert.Equal(t, utc(2024, 1, 10), drop.OriginalStart)
	assert.Equal(t, utc(2024, 1, 11), drop.Start)
	assert.Equal(t, rangeBefore, c.DateRange(), "dragging does not recompute the range")
}

func TestChart_WeekDragMovesOneWeek(t *testing.T) {
	opts := testOptions()
	opts.ViewMode = domain.ViewWeek
	c, _ := newChart(t, opts)
	require.NoError(t, c.SetTasks([]domain.Task{
		{ID: "early", Start: utc(2023, 1, 1), End: utc(2023, 1, 2)},
		{ID: "t", Start: utc(2024, 1, 10), End: utc(2024, 1, 12)},
	}, nil))

	var bar render.TaskShape
	for _, s := range c.Scene().Tasks {
		if s.TaskID == "t" {
			bar = s
		}
	}
	require.Equal(t, "t", bar.TaskID)
	require.True(t, c.PointerDown(bar.Center))
	c.PointerMove(render.Point{X: bar.Center.X + c.Zoom(), Y: bar.Center.Y})
	c.PointerUp()

	got, _ := c.Task("t")
	assert.Equal(t, utc(2024, 1, 17), got.Start)
	assert.Equal(t, utc(2024, 1, 19), got.End)
}

func TestChart_LogsTruncatedAxis(t *testing.T) {
	var buf bytes.Buffer
	opts := testOptions()
	opts.ViewMode = domain.ViewHour
	c, _ := newChart(t, opts, WithLogger(zerolog.New(&buf)))
	assert.NotContains(t, buf.String(), "columns truncated")

	require.NoError(t, c.SetTasks([]domain.Task{
		{ID: "a", Start: utc(2010, 1, 1), End: utc(2010, 1, 2)},
		{ID: "b", Start: utc(2030, 1, 1), End: utc(2030, 1, 2)},
	}, nil))
	assert.True(t, c.Axis().Truncated())
	assert.Contains(t, buf.String(), "columns truncated")
}

func TestChart_DragDisabled(t *testing.T) {
	opts := testOptions()
	opts.EnableDragDrop = false
	c, _ := newChart(t, opts)
	c.AddTask(domain.Task{ID: "t", Start: utc(2024, 1, 10), End: utc(2024, 1, 12)})

	assert.False(t, c.PointerDown(c.Scene().Tasks[0].Center))
	assert.True(t, c.Click(c.Scene().Tasks[0].Center), "clicks still work")
}

func TestChart_Zoom(t *testing.T) {
	c, _ := newChart(t, testOptions())
	var zooms []float64
	c.On(events.ZoomChange, func(p any) { zooms = append(zooms, p.(events.ZoomPayload).ColumnWidth) })

	c.SetZoom(5)
	assert.Equal(t, 10.0, c.Zoom())
	c.SetZoom(500)
	assert.Equal(t, 120.0, c.Zoom())
	c.SetZoom(120)
	c.ZoomOut()

	assert.Equal(t, []float64{10, 120, 115}, zooms)
	assert.Equal(t, 115.0, c.Scene().ColumnWidth)
}

func TestChart_InfiniteScrollLeft(t *testing.T) {
	c, _ := newChart(t, testOptions())
	var ext []events.RangeExtendPayload
	c.On(events.RangeExtend, func(p any) { ext = append(ext, p.(events.RangeExtendPayload)) })
	before := c.DateRange().Start

	offset := c.OnScroll(50, 0)

	assert.Equal(t, 50+30*30.0, offset)
	assert.Equal(t, before.AddDate(0, 0, -30), c.DateRange().Start)
	require.Len(t, ext, 1)
	assert.Equal(t, domain.DirectionLeft, ext[0].Direction)
}

func TestChart_ScrollToDateOutOfRange(t *testing.T) {
	c, _ := newChart(t, testOptions())
	var log []string
	names(&log, c, events.RangeExtend, events.ScrollToDate)

	c.ScrollToDate(utc(2025, 6, 1), interact.ScrollOptions{})

	assert.True(t, c.DateRange().End.After(utc(2025, 6, 1)))
	assert.Equal(t, []string{events.RangeExtend, events.ScrollToDate}, log)
	vp := c.Viewport()
	assert.InDelta(t, c.Axis().Width()-vp.Width, vp.ScrollLeft, 1e-9, "centering is clamped at the right edge")
}

func TestChart_ScrollSync(t *testing.T) {
	c, _ := newChart(t, testOptions())

	c.OnScroll(500, 120)
	assert.Equal(t, 120.0, c.SidebarScrollTop())

	c.ScrollSidebar(40)
	assert.Equal(t, 40.0, c.Viewport().ScrollTop)
	assert.Equal(t, 40.0, c.SidebarScrollTop())
}

func TestChart_ClickRow(t *testing.T) {
	c, _ := newChart(t, testOptions())
	require.NoError(t, c.SetTasks(
		[]domain.Task{{ID: "t", GroupID: "g", Start: utc(2024, 1, 10), End: utc(2024, 1, 12)}},
		[]domain.Group{{ID: "g", Name: "Phase"}},
	))
	var got []any
	c.On(events.GroupClick, func(p any) { got = append(got, p) })
	c.On(events.TaskClick, func(p any) { got = append(got, p) })

	assert.True(t, c.ClickRow(0))
	assert.True(t, c.ClickRow(1))
	assert.False(t, c.ClickRow(2))

	require.Len(t, got, 2)
	assert.Equal(t, "Phase", got[0].(domain.Group).Name)
	assert.Equal(t, "t", got[1].(domain.Task).ID)
}

func TestChart_ResizeSidebar(t *testing.T) {
	c, _ := newChart(t, testOptions())

	assert.ErrorIs(t, c.ResizeSidebar(100), domain.ErrInvalidArgument)
	assert.ErrorIs(t, c.ResizeSidebar(401), domain.ErrInvalidArgument)

	require.NoError(t, c.ResizeSidebar(300))
	assert.Equal(t, 300.0, c.Scene().Sidebar.Width)
	assert.Equal(t, 900.0, c.Viewport().Width)
}

func TestChart_ListenerPanicDoesNotEscape(t *testing.T) {
	var buf bytes.Buffer
	c, _ := newChart(t, testOptions(), WithLogger(zerolog.New(&buf)))
	c.On(events.TaskAdd, func(any) { panic("listener bug") })

	var got domain.Task
	require.NotPanics(t, func() {
		got = c.AddTask(domain.Task{Name: "ok", Start: utc(2024, 1, 10), End: utc(2024, 1, 11)})
	})
	assert.Equal(t, "ok", got.Name)
	assert.Contains(t, buf.String(), "listener bug")
}

func TestChart_Destroy(t *testing.T) {
	c, rec := newChart(t, testOptions())
	c.AddTask(domain.Task{ID: "t", Start: utc(2024, 1, 10), End: utc(2024, 1, 11)})

	destroyed := 0
	c.On(events.Destroy, func(any) { destroyed++ })
	frames := len(rec.Frames)

	c.Destroy()
	c.Destroy()

	assert.Equal(t, 1, destroyed, "listeners run before being cleared")
	assert.True(t, c.Destroyed())
	assert.Empty(t, c.Tasks())
	assert.Nil(t, c.Scene())

	err := c.SetTasks(nil, nil)
	assert.True(t, errors.Is(err, domain.ErrDestroyed))
	c.AddTask(domain.Task{})
	assert.Equal(t, frames, len(rec.Frames), "no drawing after destroy")
	assert.Empty(t, c.Tasks())
}

func TestChart_IDGenerator(t *testing.T) {
	c, _ := newChart(t, testOptions(), WithIDGenerator(func() string { return "fixed" }))
	got := c.AddTask(domain.Task{Start: utc(2024, 1, 10)})
	assert.Equal(t, "fixed", got.ID)
}
