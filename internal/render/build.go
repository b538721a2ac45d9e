package render

import (
	"math"
	"strings"

	"github.com/alexanderramin/gantt/internal/chart"
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/timeaxis"
)

// Bar and milestone geometry.
const (
	BarInset          = 10
	BarRadius         = 4
	ProgressOpacity   = 0.5
	LabelInset        = 10
	MilestoneOffset   = 15
	MilestoneHalfSize = 10
	CurveHandle       = 20
)

// Geometry carries the layout options the renderer needs.
type Geometry struct {
	RowHeight    float64
	HeaderHeight float64
	TaskMinWidth float64
	ShowSidebar  bool
	SidebarWidth float64
	SidebarTitle string
	Theme        string
	MarkerID     string
}

// GeometryFrom copies the layout fields of opts.
func GeometryFrom(opts domain.Options, markerID string) Geometry {
	return Geometry{
		RowHeight:    opts.RowHeight,
		HeaderHeight: opts.HeaderHeight,
		TaskMinWidth: opts.TaskMinWidth,
		ShowSidebar:  opts.ShowSidebar,
		SidebarWidth: opts.SidebarWidth,
		SidebarTitle: opts.SidebarTitle,
		Theme:        opts.Theme,
		MarkerID:     markerID,
	}
}

// Build lays out one frame. Header, grid and tasks all take their x
// coordinates from axis, so they agree on every column edge.
func Build(snap chart.Snapshot, axis timeaxis.Axis, g Geometry) *Scene {
	headerRows := axis.HeaderRows()
	headerH := g.HeaderHeight * float64(headerRows)
	s := &Scene{
		Width:       axis.Width(),
		Height:      headerH + float64(len(snap.Rows))*g.RowHeight,
		BodyTop:     headerH,
		RowHeight:   g.RowHeight,
		ColumnWidth: axis.ColumnWidth(),
		Theme:       g.Theme,
		Marker:      arrowMarker(g.MarkerID),
	}
	s.Header = buildHeader(axis, g, headerRows)
	s.Grid = buildGrid(snap, axis, g, headerH)
	s.Tasks = buildTasks(snap, axis, g, headerH)
	s.Dependencies = buildDependencies(snap, axis, g, headerH)
	s.Sidebar = buildSidebar(snap, g, headerH)
	return s
}

func arrowMarker(id string) Marker {
	return Marker{
		ID:      id,
		Width:   10,
		Height:  10,
		RefX:    9,
		RefY:    3,
		Polygon: [3]Point{{0, 0}, {10, 3}, {0, 6}},
		Fill:    "#666",
	}
}

func buildHeader(axis timeaxis.Axis, g Geometry, rows int) Header {
	cw := axis.ColumnWidth()
	total := g.HeaderHeight * float64(rows)
	h := Header{
		Rows:       rows,
		RowHeight:  g.HeaderHeight,
		Background: Rect{W: axis.Width(), H: total, Fill: HeaderBackground},
	}
	cols := axis.Columns()
	h.Bottom = make([]Text, len(cols))
	for i, c := range cols {
		h.Bottom[i] = Text{
			X:      float64(i)*cw + cw/2,
			Y:      total - g.HeaderHeight/2 + 5,
			Value:  c.Label,
			Class:  ClassHeaderText,
			Anchor: "middle",
		}
	}
	if rows < 2 {
		return h
	}
	for _, seg := range ParentSegments(axis) {
		startX := float64(seg.StartCol) * cw
		width := float64(seg.EndCol-seg.StartCol+1) * cw
		seg.Text = Text{
			X:      startX + width/2,
			Y:      g.HeaderHeight/2 + 5,
			Value:  seg.Label,
			Class:  ClassHeaderText,
			Anchor: "middle",
		}
		h.Top = append(h.Top, seg)
	}
	return h
}

// ParentSegments merges consecutive columns with the same parent label.
func ParentSegments(axis timeaxis.Axis) []Segment {
	var out []Segment
	for i, c := range axis.Columns() {
		label := axis.ParentLabelFor(c.Date)
		if n := len(out); n > 0 && out[n-1].Label == label {
			out[n-1].EndCol = i
			continue
		}
		out = append(out, Segment{Label: label, StartCol: i, EndCol: i})
	}
	return out
}

func buildGrid(snap chart.Snapshot, axis timeaxis.Axis, g Geometry, top float64) Grid {
	width := axis.Width()
	bodyH := float64(len(snap.Rows)) * g.RowHeight
	var grid Grid

	for i, r := range snap.Rows {
		class := ClassRow
		if r.Kind == domain.RowGroup {
			class = ClassRow + " " + ClassGroupRow
		}
		grid.Rows = append(grid.Rows, Rect{Y: float64(i)*g.RowHeight + top, W: width, H: g.RowHeight, Class: class})
	}
	for i := 0; i <= len(snap.Rows); i++ {
		y := float64(i)*g.RowHeight + top
		grid.HLines = append(grid.HLines, Line{X2: width, Y1: y, Y2: y, Class: ClassGridLine})
	}

	marks := make(map[string]domain.MarkedDay, len(snap.MarkedDays))
	for _, md := range snap.MarkedDays {
		marks[md.Date] = md
	}
	cw := axis.ColumnWidth()
	for i, c := range axis.Columns() {
		x := float64(i) * cw
		md, marked := marks[domain.DateKey(c.Date)]
		switch {
		case marked:
			grid.Columns = append(grid.Columns, Rect{X: x, Y: top, W: cw, H: bodyH, Fill: md.Color, Class: ClassGridLine + " " + ClassMarkedDay})
		case c.IsWeekend:
			grid.Columns = append(grid.Columns, Rect{X: x, Y: top, W: cw, H: bodyH, Class: ClassGridLine + " " + ClassWeekend})
		}
		class := ClassGridLine
		switch axis.Emphasis(c) {
		case timeaxis.EmphasisYear:
			class += " " + ClassMonthStart + " " + ClassYearStart
		case timeaxis.EmphasisMonth:
			class += " " + ClassMonthStart
		}
		grid.VLines = append(grid.VLines, Line{X1: x, X2: x, Y2: bodyH + top, Class: class})
	}
	return grid
}

func buildTasks(snap chart.Snapshot, axis timeaxis.Axis, g Geometry, top float64) []TaskShape {
	var out []TaskShape
	height := g.RowHeight - 2*BarInset
	for i, r := range snap.Rows {
		if r.Kind != domain.RowTask || r.Task == nil {
			continue
		}
		t := r.Task
		y := float64(i)*g.RowHeight + top + BarInset
		startX := axis.DateToX(t.Start)
		shape := TaskShape{TaskID: t.ID, Row: i}

		if t.IsMilestone() {
			cx, cy := startX+MilestoneOffset, y+height/2
			shape.Milestone = true
			shape.Center = Point{cx, cy}
			shape.Diamond = [4]Point{
				{cx, cy - MilestoneHalfSize},
				{cx + MilestoneHalfSize, cy},
				{cx, cy + MilestoneHalfSize},
				{cx - MilestoneHalfSize, cy},
			}
			shape.Bar = Rect{X: cx - MilestoneHalfSize, Y: cy - MilestoneHalfSize, W: 2 * MilestoneHalfSize, H: 2 * MilestoneHalfSize, Fill: t.Color, Class: ClassMilestone}
			out = append(out, shape)
			continue
		}

		width := math.Max(axis.DateToX(t.End)-startX, g.TaskMinWidth)
		shape.Bar = Rect{X: startX, Y: y, W: width, H: height, RX: BarRadius, Fill: t.Color, Class: ClassTaskBar}
		shape.Center = Point{startX + width/2, y + height/2}
		if p := clampProgress(t.Progress); p > 0 {
			shape.Progress = &Rect{X: startX, Y: y, W: width * p / 100, H: height, RX: BarRadius, Fill: t.Color, Opacity: ProgressOpacity, Class: ClassTaskProgress}
		}
		shape.Label = Text{X: startX + LabelInset, Y: y + height/2 + 4, Value: t.Name, Class: ClassTaskText, Fill: t.TextColor}
		out = append(out, shape)
	}
	return out
}

func clampProgress(p float64) float64 {
	return math.Min(math.Max(p, 0), 100)
}

// buildDependencies draws an edge for every dependency whose endpoints are
// both visible. Per-task dependency ids come first, then chart-level edges;
// a pair is drawn once.
func buildDependencies(snap chart.Snapshot, axis timeaxis.Axis, g Geometry, top float64) []Curve {
	rowOf := make(map[string]int)
	for i, r := range snap.Rows {
		if r.Kind == domain.RowTask && r.Task != nil {
			if _, dup := rowOf[r.Task.ID]; !dup {
				rowOf[r.Task.ID] = i
			}
		}
	}
	mid := func(row int) float64 { return float64(row)*g.RowHeight + top + g.RowHeight/2 }

	var out []Curve
	seen := make(map[[2]string]bool)
	add := func(from, to string) {
		if from == to || seen[[2]string{from, to}] {
			return
		}
		fi, okFrom := rowOf[from]
		ti, okTo := rowOf[to]
		if !okFrom || !okTo {
			return
		}
		seen[[2]string{from, to}] = true
		dep, task := snap.Rows[fi].Task, snap.Rows[ti].Task
		p0 := Point{axis.DateToX(dep.End), mid(fi)}
		p3 := Point{axis.DateToX(task.Start), mid(ti)}
		out = append(out, Curve{
			From: from,
			To:   to,
			P0:   p0,
			C1:   Point{p0.X + CurveHandle, p0.Y},
			C2:   Point{p3.X - CurveHandle, p3.Y},
			P3:   p3,
		})
	}
	for _, r := range snap.Rows {
		if r.Kind != domain.RowTask || r.Task == nil {
			continue
		}
		for _, dep := range r.Task.Dependencies {
			add(dep, r.Task.ID)
		}
	}
	for _, d := range snap.Dependencies {
		add(d.From, d.To)
	}
	return out
}

func buildSidebar(snap chart.Snapshot, g Geometry, headerH float64) Sidebar {
	sb := Sidebar{
		Visible:      g.ShowSidebar,
		Title:        g.SidebarTitle,
		Width:        g.SidebarWidth,
		HeaderHeight: headerH,
	}
	for i, r := range snap.Rows {
		row := SidebarRow{
			ID:     r.ID(),
			Kind:   r.Kind,
			Depth:  r.Depth,
			Name:   r.Name(),
			Y:      float64(i) * g.RowHeight,
			Height: g.RowHeight,
		}
		switch r.Kind {
		case domain.RowGroup:
			row.Collapsed = snap.Collapsed[r.Group.ID]
			row.Icon = "▼"
			if row.Collapsed {
				row.Icon = "▶"
			}
			if r.Group.WorkOrder != "" {
				row.Meta = "WO: " + r.Group.WorkOrder
			}
		case domain.RowTask:
			row.Child = r.Depth > 0
			row.Meta = TaskMeta(*r.Task)
		}
		sb.Rows = append(sb.Rows, row)
	}
	return sb
}

// TaskMeta is the secondary sidebar line for a task: work order and
// assignee joined by a bullet, each omitted when empty.
func TaskMeta(t domain.Task) string {
	var parts []string
	if t.WorkOrder != "" {
		parts = append(parts, "WO: "+t.WorkOrder)
	}
	if t.Assignee != "" {
		parts = append(parts, t.Assignee)
	}
	return strings.Join(parts, " • ")
}
