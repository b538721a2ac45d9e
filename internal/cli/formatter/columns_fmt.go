package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gantt/internal/timeaxis"
)

// FormatColumns renders the axis columns as a table. limit caps the number
// of rows; 0 shows every column.
func FormatColumns(axis timeaxis.Axis, limit int) string {
	cols := axis.Columns()
	shown := cols
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	t := Table{
		Headers: []string{"#", "DATE", "LABEL", "PARENT", "X", "WEEKEND"},
		Align:   []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignLeft},
	}
	for i, c := range shown {
		weekend := ""
		if c.IsWeekend {
			weekend = StyleYellow.Render("yes")
		}
		t.AddRow(
			fmt.Sprintf("%d", i),
			FormatDateTime(c.Date),
			c.Label,
			axis.ParentLabelFor(c.Date),
			fmt.Sprintf("%.0f", axis.DateToX(c.Date)),
			weekend,
		)
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Columns (%s)", axis.Mode())))
	b.WriteString("\n")
	b.WriteString(t.Render())
	summary := fmt.Sprintf("%d columns, %.0fpx wide", len(cols), axis.Width())
	if len(shown) < len(cols) {
		summary += fmt.Sprintf(", first %d shown", len(shown))
	}
	b.WriteString(Dim(summary))
	b.WriteString("\n")
	return b.String()
}
