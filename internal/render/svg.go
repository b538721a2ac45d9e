package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexanderramin/gantt/internal/domain"
)

type palette struct {
	Background string
	Row        string
	GroupRow   string
	GridLine   string
	Weekend    string
	MonthLine  string
	YearLine   string
	HeaderText string
	HeaderFill string
	TaskText   string
	Dependency string
	Sidebar    string
}

var themes = map[string]palette{
	"default": {
		Background: "#ffffff",
		Row:        "#ffffff",
		GroupRow:   "#f1f3f5",
		GridLine:   "#e0e0e0",
		Weekend:    "#f5f5f5",
		MonthLine:  "#adb5bd",
		YearLine:   "#495057",
		HeaderText: "#333333",
		HeaderFill: HeaderBackground,
		TaskText:   "#ffffff",
		Dependency: "#666666",
		Sidebar:    "#ffffff",
	},
	"dark": {
		Background: "#1e1e1e",
		Row:        "#1e1e1e",
		GroupRow:   "#2a2a2a",
		GridLine:   "#333333",
		Weekend:    "#252525",
		MonthLine:  "#555555",
		YearLine:   "#888888",
		HeaderText: "#dddddd",
		HeaderFill: "#2d2d2d",
		TaskText:   "#ffffff",
		Dependency: "#999999",
		Sidebar:    "#1e1e1e",
	},
}

func paletteFor(theme string) palette {
	if p, ok := themes[theme]; ok {
		return p
	}
	return themes["default"]
}

// SidebarIndent is the horizontal indentation per nesting level.
const SidebarIndent = 16

// WriteSVG writes the scene as a standalone SVG document. When the sidebar
// is visible it is drawn to the left of the chart.
func WriteSVG(w io.Writer, s *Scene) error {
	p := paletteFor(s.Theme)
	offsetX := 0.0
	if s.Sidebar.Visible {
		offsetX = s.Sidebar.Width
	}

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%s" height="%s" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
<defs>
<style>
.gantt-row { fill: %s; }
.gantt-group-row { fill: %s; }
.gantt-grid-line { stroke: %s; stroke-width: 1; }
.gantt-weekend { fill: %s; stroke: none; }
.gantt-marked-day { stroke: none; opacity: 0.5; }
.gantt-month-start { stroke: %s; }
.gantt-year-start { stroke: %s; stroke-width: 2; }
.gantt-header-text { font-family: sans-serif; font-size: 12px; fill: %s; }
.gantt-task-text { font-family: sans-serif; font-size: 12px; }
.gantt-dependency { fill: none; stroke: %s; stroke-width: 1.5; }
.gantt-sidebar-text { font-family: sans-serif; font-size: 13px; fill: %s; }
.gantt-sidebar-meta { font-family: sans-serif; font-size: 10px; fill: %s; }
</style>
<marker id="%s" markerWidth="%s" markerHeight="%s" refX="%s" refY="%s" orient="auto">
<polygon points="%s" fill="%s"/>
</marker>
</defs>
`,
		num(offsetX+s.Width), num(s.Height), p.Background,
		p.Row, p.GroupRow, p.GridLine, p.Weekend, p.MonthLine, p.YearLine, p.HeaderText,
		p.Dependency, p.HeaderText, p.GridLine,
		escapeXML(s.Marker.ID), num(s.Marker.Width), num(s.Marker.Height), num(s.Marker.RefX), num(s.Marker.RefY),
		points(s.Marker.Polygon[:]), s.Marker.Fill))

	if s.Sidebar.Visible {
		writeSidebar(&svg, s, p)
	}

	svg.WriteString(fmt.Sprintf(`<g class="gantt-chart" transform="translate(%s,0)">`+"\n", num(offsetX)))

	svg.WriteString(`<g class="gantt-grid">` + "\n")
	for _, r := range s.Grid.Rows {
		writeRect(&svg, r)
	}
	for _, l := range s.Grid.HLines {
		writeLine(&svg, l)
	}
	for _, c := range s.Grid.Columns {
		writeRect(&svg, c)
	}
	for _, l := range s.Grid.VLines {
		writeLine(&svg, l)
	}
	svg.WriteString("</g>\n")

	svg.WriteString(`<g class="gantt-header">` + "\n")
	writeRect(&svg, s.Header.Background)
	for _, t := range s.Header.Bottom {
		writeText(&svg, t)
	}
	for _, seg := range s.Header.Top {
		writeText(&svg, seg.Text)
	}
	svg.WriteString("</g>\n")

	svg.WriteString(`<g class="gantt-tasks">` + "\n")
	for _, t := range s.Tasks {
		svg.WriteString(fmt.Sprintf(`<g class="gantt-task" data-task-id="%s">`, escapeXML(t.TaskID)))
		if t.Milestone {
			svg.WriteString(fmt.Sprintf(`<polygon class="%s" points="%s" fill="%s"/>`,
				ClassMilestone, points(t.Diamond[:]), escapeXML(t.Bar.Fill)))
		} else {
			writeRect(&svg, t.Bar)
			if t.Progress != nil {
				writeRect(&svg, *t.Progress)
			}
			writeText(&svg, t.Label)
		}
		svg.WriteString("</g>\n")
	}
	svg.WriteString("</g>\n")

	svg.WriteString(`<g class="gantt-dependencies">` + "\n")
	for _, c := range s.Dependencies {
		svg.WriteString(fmt.Sprintf(`<path class="%s" d="M %s %s C %s %s, %s %s, %s %s" marker-end="url(#%s)"/>`+"\n",
			ClassDependency,
			num(c.P0.X), num(c.P0.Y), num(c.C1.X), num(c.C1.Y),
			num(c.C2.X), num(c.C2.Y), num(c.P3.X), num(c.P3.Y),
			escapeXML(s.Marker.ID)))
	}
	svg.WriteString("</g>\n")

	svg.WriteString("</g>\n</svg>\n")
	_, err := io.WriteString(w, svg.String())
	return err
}

func writeSidebar(svg *strings.Builder, s *Scene, p palette) {
	sb := s.Sidebar
	svg.WriteString(`<g class="gantt-sidebar">` + "\n")
	writeRect(svg, Rect{W: sb.Width, H: s.Height, Fill: p.Sidebar})
	writeRect(svg, Rect{W: sb.Width, H: sb.HeaderHeight, Fill: p.HeaderFill})
	writeText(svg, Text{X: 10, Y: sb.HeaderHeight/2 + 5, Value: sb.Title, Class: "gantt-sidebar-text"})
	for _, r := range sb.Rows {
		y := sb.HeaderHeight + r.Y
		class := "gantt-row-label"
		if r.Kind == domain.RowGroup {
			class += " gantt-group-label"
		}
		if r.Child {
			class += " gantt-child-task"
		}
		writeRect(svg, Rect{Y: y, W: sb.Width, H: r.Height, Class: class, Fill: p.Sidebar})
		x := 10 + float64(r.Depth*SidebarIndent)
		name := r.Name
		if r.Icon != "" {
			name = r.Icon + " " + name
		}
		nameY := y + r.Height/2 + 5
		if r.Meta != "" {
			nameY = y + r.Height/2 - 1
			writeText(svg, Text{X: x, Y: y + r.Height/2 + 12, Value: r.Meta, Class: "gantt-sidebar-meta"})
		}
		writeText(svg, Text{X: x, Y: nameY, Value: name, Class: "gantt-sidebar-text"})
	}
	writeLine(svg, Line{X1: sb.Width, X2: sb.Width, Y2: s.Height, Class: ClassGridLine})
	svg.WriteString("</g>\n")
}

func writeRect(svg *strings.Builder, r Rect) {
	svg.WriteString(fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s"`, num(r.X), num(r.Y), num(r.W), num(r.H)))
	if r.RX > 0 {
		svg.WriteString(fmt.Sprintf(` rx="%s"`, num(r.RX)))
	}
	if r.Fill != "" {
		svg.WriteString(fmt.Sprintf(` fill="%s"`, escapeXML(r.Fill)))
	}
	if r.Opacity > 0 {
		svg.WriteString(fmt.Sprintf(` opacity="%s"`, num(r.Opacity)))
	}
	if r.Class != "" {
		svg.WriteString(fmt.Sprintf(` class="%s"`, r.Class))
	}
	svg.WriteString("/>\n")
}

func writeLine(svg *strings.Builder, l Line) {
	svg.WriteString(fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" class="%s"/>`+"\n",
		num(l.X1), num(l.Y1), num(l.X2), num(l.Y2), l.Class))
}

func writeText(svg *strings.Builder, t Text) {
	svg.WriteString(fmt.Sprintf(`<text x="%s" y="%s"`, num(t.X), num(t.Y)))
	if t.Anchor != "" {
		svg.WriteString(fmt.Sprintf(` text-anchor="%s"`, t.Anchor))
	}
	if t.Fill != "" {
		svg.WriteString(fmt.Sprintf(` fill="%s"`, escapeXML(t.Fill)))
	}
	if t.Class != "" {
		svg.WriteString(fmt.Sprintf(` class="%s"`, t.Class))
	}
	svg.WriteString(">" + escapeXML(t.Value) + "</text>\n")
}

func points(ps []Point) string {
	parts := make([]string, len(ps))
	for i, pt := range ps {
		parts[i] = num(pt.X) + "," + num(pt.Y)
	}
	return strings.Join(parts, " ")
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// escapeXML replaces the five XML special characters with their entities.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
