package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/gantt/internal/chart"
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/rows"
	"github.com/alexanderramin/gantt/internal/timeaxis"
)

func utc(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func snapshot(t *testing.T, tasks []domain.Task, groups []domain.Group, collapsed map[string]bool) chart.Snapshot {
	t.Helper()
	s := chart.Snapshot{Mode: domain.ViewDay, Tasks: tasks, Groups: groups, Collapsed: collapsed}
	tp := make([]*domain.Task, len(s.Tasks))
	for i := range s.Tasks {
		tp[i] = &s.Tasks[i]
	}
	gp := make([]*domain.Group, len(s.Groups))
	for i := range s.Groups {
		gp[i] = &s.Groups[i]
	}
	r, err := rows.Project(tp, gp, collapsed)
	require.NoError(t, err)
	s.Rows = r
	return s
}

func dayAxis(from, to time.Time) timeaxis.Axis {
	return timeaxis.New(timeaxis.Config{Mode: domain.ViewDay, Min: from, Max: to, ColumnWidth: 30})
}

func geometry() Geometry {
	return GeometryFrom(domain.DefaultOptions(), "gantt-arrow-test")
}

func TestBuild_TaskBarGeometry(t *testing.T) {
	snap := snapshot(t, []domain.Task{
		{ID: "t1", Name: "Build", Start: utc(2024, 1, 10), End: utc(2024, 1, 12), Progress: 50, Color: "#123"},
		{ID: "t2", Start: utc(2024, 1, 10), End: utc(2024, 1, 9), Progress: 150},
		{ID: "t3", Start: utc(2024, 1, 10), End: utc(2024, 1, 11)},
	}, nil, nil)
	s := Build(snap, dayAxis(utc(2024, 1, 3), utc(2024, 1, 20)), geometry())

	require.Len(t, s.Tasks, 3)
	bar := s.Tasks[0]
	assert.Equal(t, Rect{X: 210, Y: 110, W: 60, H: 20, RX: 4, Fill: "#123", Class: ClassTaskBar}, bar.Bar)
	require.NotNil(t, bar.Progress)
	assert.Equal(t, 30.0, bar.Progress.W)
	assert.Equal(t, 0.5, bar.Progress.Opacity)
	assert.Equal(t, 220.0, bar.Label.X)
	assert.Equal(t, "Build", bar.Label.Value)

	inverted := s.Tasks[1]
	assert.Equal(t, 40.0, inverted.Bar.W, "end before start clamps to the minimum width")
	assert.Equal(t, inverted.Bar.W, inverted.Progress.W, "progress clamps to 100")
	assert.Equal(t, 150.0, inverted.Bar.Y)

	assert.Nil(t, s.Tasks[2].Progress, "zero progress draws no overlay")
	assert.Equal(t, 100.0, s.BodyTop)
	assert.Equal(t, 100.0+3*40, s.Height)
}

func TestBuild_Milestone(t *testing.T) {
	snap := snapshot(t, []domain.Task{
		{ID: "m", Kind: domain.KindMilestone, Start: utc(2024, 1, 10), End: utc(2024, 1, 20), Progress: 80},
	}, nil, nil)
	s := Build(snap, dayAxis(utc(2024, 1, 3), utc(2024, 1, 20)), geometry())

	m := s.Tasks[0]
	assert.True(t, m.Milestone)
	assert.Nil(t, m.Progress)
	assert.Equal(t, Point{225, 120}, m.Center)
	assert.Equal(t, [4]Point{{225, 110}, {235, 120}, {225, 130}, {215, 120}}, m.Diamond)

	hit, ok := s.TaskAt(Point{228, 122})
	require.True(t, ok)
	assert.Equal(t, "m", hit.TaskID)
	_, ok = s.TaskAt(Point{234, 129})
	assert.False(t, ok, "corner of the bounding box is outside the diamond")
}

func TestBuild_Dependencies(t *testing.T) {
	tasks := []domain.Task{
		{ID: "a", GroupID: "g", Start: utc(2024, 1, 5), End: utc(2024, 1, 7)},
		{ID: "b", Start: utc(2024, 1, 8), End: utc(2024, 1, 9), Dependencies: []string{"a", "missing", "b"}},
		{ID: "c", Start: utc(2024, 1, 10), End: utc(2024, 1, 11)},
	}
	groups := []domain.Group{{ID: "g"}}
	ax := dayAxis(utc(2024, 1, 1), utc(2024, 1, 20))

	snap := snapshot(t, tasks, groups, nil)
	snap.Dependencies = []domain.Dependency{{From: "a", To: "b"}, {From: "b", To: "c"}}
	s := Build(snap, ax, geometry())

	require.Len(t, s.Dependencies, 2, "duplicate a->b, self and unresolved edges are skipped")
	ab := s.Dependencies[0]
	assert.Equal(t, "a", ab.From)
	assert.Equal(t, Point{180, 160}, ab.P0, "dependency end at row 1 mid")
	assert.Equal(t, Point{200, 160}, ab.C1)
	assert.Equal(t, Point{210 - 20, 200}, ab.C2)
	assert.Equal(t, Point{210, 200}, ab.P3)

	folded := snapshot(t, tasks, groups, map[string]bool{"g": true})
	folded.Dependencies = snap.Dependencies
	collapsed := Build(folded, ax, geometry())
	require.Len(t, collapsed.Dependencies, 1, "edges into a collapsed group disappear")
	assert.Equal(t, "b", collapsed.Dependencies[0].From)
}

func TestBuild_HeaderSegments(t *testing.T) {
	s := Build(snapshot(t, nil, nil, nil), dayAxis(utc(2024, 1, 25), utc(2024, 2, 5)), geometry())

	assert.Equal(t, 2, s.Header.Rows)
	require.Len(t, s.Header.Top, 2)
	assert.Equal(t, Segment{Label: "January 2024", StartCol: 0, EndCol: 6, Text: s.Header.Top[0].Text}, s.Header.Top[0])
	assert.Equal(t, "February 2024", s.Header.Top[1].Label)
	assert.Equal(t, 7*30+5*30/2.0, s.Header.Top[1].Text.X)
	assert.Equal(t, 30.0, s.Header.Top[0].Text.Y)
	assert.Equal(t, 80.0, s.Header.Bottom[0].Y)
	assert.Equal(t, "25", s.Header.Bottom[0].Value)
	assert.Equal(t, HeaderBackground, s.Header.Background.Fill)
	assert.Equal(t, 100.0, s.Header.Background.H)

	week := Build(snapshot(t, nil, nil, nil), timeaxis.New(timeaxis.Config{Mode: domain.ViewWeek, Min: utc(2024, 1, 1), Max: utc(2024, 2, 1), ColumnWidth: 30}), geometry())
	assert.Equal(t, 1, week.Header.Rows)
	assert.Empty(t, week.Header.Top)
	assert.Equal(t, 50.0, week.BodyTop)
}

func TestBuild_GridColumns(t *testing.T) {
	snap := snapshot(t, []domain.Task{{ID: "t", Start: utc(2024, 1, 29), End: utc(2024, 1, 30)}}, nil, nil)
	snap.MarkedDays = []domain.MarkedDay{{Date: "2024-01-30", Type: "holiday", Color: "#ff7675"}}
	s := Build(snap, dayAxis(utc(2024, 1, 26), utc(2024, 2, 2)), geometry())

	var weekend, marked int
	for _, c := range s.Grid.Columns {
		switch {
		case strings.Contains(c.Class, ClassMarkedDay):
			marked++
			assert.Equal(t, "#ff7675", c.Fill)
			assert.Equal(t, 4*30.0, c.X)
		case strings.Contains(c.Class, ClassWeekend):
			weekend++
		}
	}
	assert.Equal(t, 2, weekend, "Jan 27 and 28")
	assert.Equal(t, 1, marked)

	require.Len(t, s.Grid.VLines, 8)
	assert.Contains(t, s.Grid.VLines[6].Class, ClassMonthStart, "Feb 1")
	assert.NotContains(t, s.Grid.VLines[6].Class, ClassYearStart)
	assert.Len(t, s.Grid.HLines, 2)
}

func TestBuild_Sidebar(t *testing.T) {
	snap := snapshot(t,
		[]domain.Task{
			{ID: "t1", Name: "Spec", GroupID: "g", WorkOrder: "42", Assignee: "kim"},
			{ID: "t2", Name: "Loose", Assignee: "lee"},
		},
		[]domain.Group{{ID: "g", Name: "Phase", WorkOrder: "7"}},
		nil)
	s := Build(snap, dayAxis(utc(2024, 1, 1), utc(2024, 1, 5)), geometry())

	require.Len(t, s.Sidebar.Rows, 3)
	g := s.Sidebar.Rows[0]
	assert.Equal(t, "▼", g.Icon)
	assert.Equal(t, "WO: 7", g.Meta)
	assert.Equal(t, "WO: 42 • kim", s.Sidebar.Rows[1].Meta)
	assert.True(t, s.Sidebar.Rows[1].Child)
	assert.Equal(t, "lee", s.Sidebar.Rows[2].Meta)
	assert.False(t, s.Sidebar.Rows[2].Child)
	assert.Equal(t, "Tasks", s.Sidebar.Title)
	assert.Equal(t, 100.0, s.Sidebar.HeaderHeight)

	folded := Build(snapshot(t, snap.Tasks, snap.Groups, map[string]bool{"g": true}), dayAxis(utc(2024, 1, 1), utc(2024, 1, 5)), geometry())
	assert.Equal(t, "▶", folded.Sidebar.Rows[0].Icon)
}

func TestScene_RowAt(t *testing.T) {
	snap := snapshot(t, []domain.Task{{ID: "a"}, {ID: "b"}}, nil, nil)
	s := Build(snap, dayAxis(utc(2024, 1, 1), utc(2024, 1, 5)), geometry())

	assert.Equal(t, -1, s.RowAt(50))
	assert.Equal(t, 0, s.RowAt(100))
	assert.Equal(t, 1, s.RowAt(179))
	assert.Equal(t, -1, s.RowAt(180))
}

func TestWriteSVG(t *testing.T) {
	snap := snapshot(t, []domain.Task{
		{ID: "t1", Name: "R&D <core>", Start: utc(2024, 1, 2), End: utc(2024, 1, 4), Color: "#2196F3", Dependencies: []string{"m"}},
		{ID: "m", Kind: domain.KindMilestone, Start: utc(2024, 1, 1), End: utc(2024, 1, 1), Color: "#f00"},
	}, nil, nil)
	s := Build(snap, dayAxis(utc(2024, 1, 1), utc(2024, 1, 5)), geometry())

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, s))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0"`))
	assert.Contains(t, out, `<marker id="gantt-arrow-test" markerWidth="10" markerHeight="10" refX="9" refY="3"`)
	assert.Contains(t, out, `points="0,0 10,3 0,6" fill="#666"`)
	assert.Contains(t, out, `data-task-id="t1"`)
	assert.Contains(t, out, "R&amp;D &lt;core&gt;")
	assert.Contains(t, out, `marker-end="url(#gantt-arrow-test)"`)
	assert.Contains(t, out, `class="gantt-milestone"`)
	assert.Contains(t, out, `transform="translate(200,0)"`, "chart sits right of the sidebar")
	assert.Contains(t, out, ">Tasks</text>")
}

func TestSVGSurface_KeepsLatest(t *testing.T) {
	var surf SVGSurface
	ax := dayAxis(utc(2024, 1, 1), utc(2024, 1, 5))
	require.NoError(t, surf.Draw(Build(snapshot(t, []domain.Task{{ID: "one", Name: "first"}}, nil, nil), ax, geometry())))
	require.NoError(t, surf.Draw(Build(snapshot(t, []domain.Task{{ID: "two", Name: "second"}}, nil, nil), ax, geometry())))

	assert.Contains(t, string(surf.Bytes()), "second")
	assert.NotContains(t, string(surf.Bytes()), "first")
}
