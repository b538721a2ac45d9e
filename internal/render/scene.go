// Package render turns a chart snapshot and its time axis into a Scene, a
// flat draw list that surfaces (SVG, terminal text) consume. Building a
// scene has no side effects.
package render

import (
	"math"

	"github.com/alexanderramin/gantt/internal/domain"
)

// CSS classes carried by scene elements. Surfaces map them to styles.
const (
	ClassRow          = "gantt-row"
	ClassGroupRow     = "gantt-group-row"
	ClassGridLine     = "gantt-grid-line"
	ClassWeekend      = "gantt-weekend"
	ClassMarkedDay    = "gantt-marked-day"
	ClassMonthStart   = "gantt-month-start"
	ClassYearStart    = "gantt-year-start"
	ClassHeaderText   = "gantt-header-text"
	ClassTaskBar      = "gantt-task-bar"
	ClassTaskProgress = "gantt-task-progress"
	ClassTaskText     = "gantt-task-text"
	ClassMilestone    = "gantt-milestone"
	ClassDependency   = "gantt-dependency"
)

// HeaderBackground is the fill behind the header rows.
const HeaderBackground = "#f8f9fa"

type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, W, H float64
	RX         float64
	Fill       string
	Opacity    float64
	Class      string
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

type Line struct {
	X1, Y1, X2, Y2 float64
	Class          string
}

type Text struct {
	X, Y   float64
	Value  string
	Class  string
	Anchor string
	Fill   string
}

// Segment is a run of adjacent columns sharing one parent header label.
// StartCol and EndCol are inclusive.
type Segment struct {
	Label    string
	StartCol int
	EndCol   int
	Text     Text
}

type Header struct {
	Rows       int
	RowHeight  float64
	Background Rect
	Top        []Segment
	Bottom     []Text
}

type Grid struct {
	Rows    []Rect
	HLines  []Line
	Columns []Rect
	VLines  []Line
}

// TaskShape is a task bar, or a diamond when Milestone is set.
type TaskShape struct {
	TaskID    string
	Row       int
	Milestone bool
	Bar       Rect
	Progress  *Rect
	Diamond   [4]Point
	Center    Point
	Label     Text
}

// Curve is a cubic dependency edge ending in the arrowhead marker.
type Curve struct {
	From, To       string
	P0, C1, C2, P3 Point
}

// Marker describes the arrowhead referenced by every Curve.
type Marker struct {
	ID      string
	Width   float64
	Height  float64
	RefX    float64
	RefY    float64
	Polygon [3]Point
	Fill    string
}

type SidebarRow struct {
	ID        string
	Kind      domain.RowKind
	Depth     int
	Icon      string
	Name      string
	Meta      string
	Child     bool
	Collapsed bool
	Y         float64
	Height    float64
}

type Sidebar struct {
	Visible      bool
	Title        string
	Width        float64
	HeaderHeight float64
	Rows         []SidebarRow
}

// Scene is everything needed to draw one frame.
type Scene struct {
	Width        float64
	Height       float64
	BodyTop      float64
	RowHeight    float64
	ColumnWidth  float64
	Theme        string
	Header       Header
	Grid         Grid
	Tasks        []TaskShape
	Dependencies []Curve
	Marker       Marker
	Sidebar      Sidebar
}

// RowAt returns the visible row index under y, or -1 outside the body.
func (s *Scene) RowAt(y float64) int {
	if y < s.BodyTop || s.RowHeight <= 0 {
		return -1
	}
	i := int((y - s.BodyTop) / s.RowHeight)
	if i >= len(s.Grid.Rows) {
		return -1
	}
	return i
}

// TaskAt returns the task drawn under p. Later shapes win, matching paint
// order.
func (s *Scene) TaskAt(p Point) (TaskShape, bool) {
	for i := len(s.Tasks) - 1; i >= 0; i-- {
		t := s.Tasks[i]
		if t.Milestone {
			dx, dy := p.X-t.Center.X, p.Y-t.Center.Y
			if math.Abs(dx)+math.Abs(dy) <= MilestoneHalfSize {
				return t, true
			}
			continue
		}
		if t.Bar.Contains(p) {
			return t, true
		}
	}
	return TaskShape{}, false
}
