package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/alexanderramin/gantt/internal/cli/formatter"
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/events"
	"github.com/alexanderramin/gantt/internal/gantt"
	"github.com/alexanderramin/gantt/internal/interact"
	"github.com/alexanderramin/gantt/internal/render"
)

// scrollColumns is how many columns one arrow press scrolls.
const scrollColumns = 5

// footerLines is the status line plus the key help line.
const footerLines = 2

// statusLog holds the latest chart notification for the status line. It is
// shared by pointer so event handlers can update it under the value-typed
// model.
type statusLog struct {
	last string
}

// viewModel is the bubbletea model for the interactive viewer. Horizontal
// scroll goes through Chart.OnScroll, so scrolling near either edge extends
// the date range.
type viewModel struct {
	chart      *gantt.Chart
	keys       viewKeyMap
	log        zerolog.Logger
	status     *statusLog
	width      int
	height     int
	scrollLeft float64
	selected   int
	top        int
	quitting   bool
}

func newViewModel(c *gantt.Chart, log zerolog.Logger) viewModel {
	m := viewModel{
		chart:  c,
		keys:   defaultViewKeyMap(),
		log:    log,
		status: &statusLog{},
	}
	m.subscribe()
	return m
}

func (m viewModel) subscribe() {
	s := m.status
	m.chart.On(events.TaskDrop, func(p any) {
		if d, ok := p.(events.DropPayload); ok {
			s.last = fmt.Sprintf("moved %s to %s", d.Task.Name, formatter.FormatDateTime(d.Start))
		}
	})
	m.chart.On(events.RangeExtend, func(p any) {
		if r, ok := p.(events.RangeExtendPayload); ok {
			s.last = fmt.Sprintf("range extended %s: %s", r.Direction, formatter.FormatRange(domain.DateRange{Start: r.From, End: r.To}))
		}
	})
	m.chart.On(events.ViewModeChange, func(p any) {
		s.last = fmt.Sprintf("view mode %v", p)
	})
	m.chart.On(events.ZoomChange, func(p any) {
		if z, ok := p.(events.ZoomPayload); ok {
			s.last = fmt.Sprintf("column width %.0fpx", z.ColumnWidth)
		}
	})
	m.chart.On(events.TaskClick, func(p any) {
		if t, ok := p.(domain.Task); ok {
			s.last = formatter.TaskSummary(t)
		}
	})
}

func (m viewModel) Init() tea.Cmd { return nil }

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeChart()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m viewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.chart
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.ScrollLeft):
		m.scrollBy(-scrollColumns * c.Zoom())
	case key.Matches(msg, m.keys.ScrollRight):
		m.scrollBy(scrollColumns * c.Zoom())
	case key.Matches(msg, m.keys.Up):
		m.selectRow(m.selected - 1)
	case key.Matches(msg, m.keys.Down):
		m.selectRow(m.selected + 1)
	case key.Matches(msg, m.keys.ZoomIn):
		c.ZoomIn()
		m.clampScroll()
	case key.Matches(msg, m.keys.ZoomOut):
		c.ZoomOut()
		m.clampScroll()
	case key.Matches(msg, m.keys.CycleView):
		if err := c.SetViewMode(c.ViewMode().Next()); err != nil {
			m.log.Error().Err(err).Msg("cycle view mode")
		}
		m.scrollLeft = 0
	case key.Matches(msg, m.keys.Toggle):
		m.toggleSelected()
	case key.Matches(msg, m.keys.ExpandAll):
		c.ExpandAll()
		m.selectRow(m.selected)
	case key.Matches(msg, m.keys.CollapseAll):
		c.CollapseAll()
		m.selectRow(m.selected)
	case key.Matches(msg, m.keys.Today):
		m.scrollLeft = c.ScrollToToday(interact.ScrollOptions{})
	case key.Matches(msg, m.keys.DragLeft):
		m.dragSelected(-1)
	case key.Matches(msg, m.keys.DragRight):
		m.dragSelected(1)
	}
	return m, nil
}

// chartCols is the character width of the chart pane.
func (m *viewModel) chartCols() int {
	return max(m.width-chartTextInset(m.textOptions()), 1)
}

func (m *viewModel) textOptions() render.TextOptions {
	o := render.TextOptions{CellWidth: textCellWidth, OffsetX: m.scrollLeft}
	if m.chart.Options().ShowSidebar {
		o.LabelWidth = textLabelWidth
	}
	return o
}

// resizeChart maps the terminal size onto the chart viewport in pixels.
func (m *viewModel) resizeChart() {
	total := float64(m.chartCols() * textCellWidth)
	if m.chart.Options().ShowSidebar {
		total += m.chart.SidebarWidth()
	}
	m.chart.SetViewportSize(total, float64(m.bodyRows())*m.chart.Options().RowHeight)
	m.clampScroll()
}

func (m *viewModel) scrollBy(dx float64) {
	target := max(m.scrollLeft+dx, 0)
	target = min(target, m.maxScroll())
	m.scrollLeft = m.chart.OnScroll(target, m.chart.Viewport().ScrollTop)
}

func (m *viewModel) maxScroll() float64 {
	return max(m.chart.Axis().Width()-m.chart.Viewport().Width, 0)
}

func (m *viewModel) clampScroll() {
	m.scrollLeft = min(max(m.scrollLeft, 0), m.maxScroll())
}

// bodyRows is how many chart rows fit under the header; 0 means the size is
// not known yet and every row is shown.
func (m *viewModel) bodyRows() int {
	if m.height <= 0 {
		return 0
	}
	return max(m.height-m.headerLines()-footerLines, 1)
}

func (m *viewModel) headerLines() int {
	if s := m.chart.Scene(); s != nil && s.Header.Rows > 1 {
		return 2
	}
	return 1
}

func (m *viewModel) selectRow(i int) {
	n := len(m.chart.VisibleRows())
	if n == 0 {
		m.selected, m.top = 0, 0
		return
	}
	m.selected = min(max(i, 0), n-1)
	if body := m.bodyRows(); body > 0 {
		if m.selected < m.top {
			m.top = m.selected
		}
		if m.selected >= m.top+body {
			m.top = m.selected - body + 1
		}
	}
	m.top = min(m.top, m.selected)
	m.chart.ScrollSidebar(float64(m.top) * m.chart.Options().RowHeight)
}

func (m *viewModel) selectedRow() (domain.VisibleRow, bool) {
	rows := m.chart.VisibleRows()
	if m.selected < 0 || m.selected >= len(rows) {
		return domain.VisibleRow{}, false
	}
	return rows[m.selected], true
}

func (m *viewModel) toggleSelected() {
	r, ok := m.selectedRow()
	if !ok {
		return
	}
	m.chart.ClickRow(m.selected)
	if r.Kind == domain.RowGroup {
		m.chart.ToggleGroup(r.ID())
		m.selectRow(m.selected)
	}
}

// dragSelected moves the selected task by whole columns with a pointer
// down, move and up sequence on its bar.
func (m *viewModel) dragSelected(cols int) {
	r, ok := m.selectedRow()
	if !ok || r.Kind != domain.RowTask {
		return
	}
	scene := m.chart.Scene()
	if scene == nil {
		return
	}
	for _, shape := range scene.Tasks {
		if shape.TaskID != r.ID() {
			continue
		}
		p := shape.Center
		if !m.chart.PointerDown(p) {
			m.status.last = "task cannot be dragged"
			return
		}
		m.chart.PointerMove(render.Point{X: p.X + float64(cols)*m.chart.Zoom(), Y: p.Y})
		m.chart.PointerUp()
		return
	}
}

func (m viewModel) View() string {
	if m.quitting {
		return ""
	}
	scene := m.chart.Scene()
	if scene == nil {
		return "loading…"
	}
	o := m.textOptions()
	o.Width = m.chartCols()
	lines := render.TextLines(scene, o)

	head := m.headerLines()
	var b strings.Builder
	for _, l := range lines[:min(head, len(lines))] {
		b.WriteString(formatter.StyleHeader.Render(l) + "\n")
	}
	body := lines[min(head, len(lines)):]
	end := len(body)
	if n := m.bodyRows(); n > 0 {
		end = min(m.top+n, len(body))
	}
	for i := m.top; i < end; i++ {
		line := body[i]
		if i == m.selected {
			line = formatter.StyleSelected.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString(m.statusLine() + "\n")
	b.WriteString(m.helpLine())
	return b.String()
}

func (m viewModel) statusLine() string {
	c := m.chart
	parts := []string{
		string(c.ViewMode()),
		fmt.Sprintf("%.0fpx", c.Zoom()),
		formatter.FormatRange(c.DateRange()),
	}
	if m.status.last != "" {
		parts = append(parts, m.status.last)
	}
	return formatter.Dim(strings.Join(parts, "  ·  "))
}

func (m viewModel) helpLine() string {
	var parts []string
	for _, k := range m.keys.helpBindings() {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return formatter.Dim(strings.Join(parts, "  "))
}
