package render

import (
	"io"
	"math"
	"strings"

	"github.com/alexanderramin/gantt/internal/domain"
)

// Glyphs used by the text surface.
const (
	GlyphWeekend   = '·'
	GlyphMarked    = '*'
	GlyphGroup     = '─'
	GlyphBar       = '▒'
	GlyphProgress  = '█'
	GlyphMilestone = '◆'
	GlyphSeparator = '│'
)

// TextOptions controls the character-grid rendering of a scene.
type TextOptions struct {
	CellWidth  float64 // pixels per character; defaults to 10
	Width      int     // chart characters to draw; 0 draws the whole scene
	OffsetX    float64 // horizontal scroll in pixels
	LabelWidth int     // sidebar characters; 0 hides the sidebar
}

func (o TextOptions) normalized(s *Scene) TextOptions {
	if o.CellWidth <= 0 {
		o.CellWidth = 10
	}
	if o.Width <= 0 {
		o.Width = int(math.Ceil((s.Width - o.OffsetX) / o.CellWidth))
	}
	if o.Width < 0 {
		o.Width = 0
	}
	return o
}

// TextLines renders the scene as one string per terminal line: the header
// rows followed by one line per visible row.
func TextLines(s *Scene, o TextOptions) []string {
	o = o.normalized(s)
	col := func(x float64) int { return int(math.Floor((x - o.OffsetX) / o.CellWidth)) }

	var lines []string
	bottom := []rune(strings.Repeat(" ", o.Width))
	for _, t := range s.Header.Bottom {
		start := col(t.X - s.ColumnWidth/2)
		place(bottom, start, t.Value, true)
	}
	if s.Header.Rows > 1 {
		top := []rune(strings.Repeat(" ", o.Width))
		for _, seg := range s.Header.Top {
			start := col(float64(seg.StartCol) * s.ColumnWidth)
			if start < 0 {
				start = 0
			}
			place(top, start, seg.Label, false)
		}
		lines = append(lines, withLabel(o, "", string(top)))
	}
	title := ""
	if s.Sidebar.Visible {
		title = s.Sidebar.Title
	}
	lines = append(lines, withLabel(o, title, string(bottom)))

	for i, row := range s.Grid.Rows {
		cells := []rune(strings.Repeat(" ", o.Width))
		for _, c := range s.Grid.Columns {
			glyph := GlyphWeekend
			if strings.Contains(c.Class, ClassMarkedDay) {
				glyph = GlyphMarked
			}
			fill(cells, col(c.X), col(c.X+c.W-1), glyph)
		}
		if strings.Contains(row.Class, ClassGroupRow) {
			fill(cells, 0, o.Width-1, GlyphGroup)
		}
		for _, t := range s.Tasks {
			if t.Row != i {
				continue
			}
			if t.Milestone {
				setCell(cells, col(t.Center.X), GlyphMilestone)
				continue
			}
			from, to := col(t.Bar.X), col(t.Bar.X+t.Bar.W-1)
			fill(cells, from, to, GlyphBar)
			if t.Progress != nil {
				fill(cells, from, col(t.Progress.X+t.Progress.W-1), GlyphProgress)
			}
		}
		label := ""
		if i < len(s.Sidebar.Rows) {
			label = SidebarLabel(s.Sidebar.Rows[i])
		}
		lines = append(lines, withLabel(o, label, string(cells)))
	}
	return lines
}

// WriteText writes TextLines to w, newline terminated.
func WriteText(w io.Writer, s *Scene, o TextOptions) error {
	for _, l := range TextLines(s, o) {
		if _, err := io.WriteString(w, l+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// SidebarLabel is the one-line text form of a sidebar row.
func SidebarLabel(r SidebarRow) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", r.Depth))
	if r.Kind == domain.RowGroup {
		b.WriteString(r.Icon + " ")
	}
	b.WriteString(r.Name)
	return b.String()
}

func withLabel(o TextOptions, label, chart string) string {
	if o.LabelWidth <= 0 {
		return chart
	}
	return fit(label, o.LabelWidth) + " " + string(GlyphSeparator) + chart
}

// fit pads or truncates s to exactly n runes.
func fit(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		if n <= 1 {
			return string(r[:n])
		}
		return string(r[:n-1]) + "…"
	}
	return s + strings.Repeat(" ", n-len(r))
}

// place writes s into row at start. With skipOverlap set, text that would
// touch an earlier label is dropped instead of overwriting it.
func place(row []rune, start int, s string, skipOverlap bool) {
	r := []rune(s)
	if skipOverlap {
		for i := start - 1; i < start+len(r)+1; i++ {
			if i >= 0 && i < len(row) && row[i] != ' ' {
				return
			}
		}
	}
	for i, ch := range r {
		setCell(row, start+i, ch)
	}
}

func fill(row []rune, from, to int, ch rune) {
	for i := max(from, 0); i <= to && i < len(row); i++ {
		row[i] = ch
	}
}

func setCell(row []rune, i int, ch rune) {
	if i >= 0 && i < len(row) {
		row[i] = ch
	}
}
