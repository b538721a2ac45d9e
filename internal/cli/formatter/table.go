package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Align positions a cell within its column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

const colGap = 2

// Table is an aligned text table with a header separator line. Column
// widths are the widest visible cell, so styled cells align correctly.
type Table struct {
	Headers []string
	Align   []Align
	Rows    [][]string
}

// AddRow appends a row; missing cells render empty.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}
	return widths
}

func (t *Table) align(i int) Align {
	if i < len(t.Align) {
		return t.Align[i]
	}
	return AlignLeft
}

// Render returns the table, or "" when it has no headers.
func (t *Table) Render() string {
	if len(t.Headers) == 0 {
		return ""
	}
	widths := t.widths()
	last := len(widths) - 1

	var b strings.Builder
	writeCell := func(i int, cell, styled string) {
		pad := max(widths[i]-lipgloss.Width(cell), 0)
		if t.align(i) == AlignRight {
			b.WriteString(strings.Repeat(" ", pad) + styled)
			if i < last {
				b.WriteString(strings.Repeat(" ", colGap))
			}
			return
		}
		b.WriteString(styled)
		if i < last {
			b.WriteString(strings.Repeat(" ", pad+colGap))
		}
	}

	for i, h := range t.Headers {
		writeCell(i, h, StyleHeader.Render(h))
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < last {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range t.Rows {
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			writeCell(i, cell, cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderTable renders headers and rows with every column left-aligned.
func RenderTable(headers []string, rows [][]string) string {
	t := Table{Headers: headers, Rows: rows}
	return t.Render()
}
