package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gantt/internal/domain"
)

// FormatRows renders the visible rows as a tree with each task's span and
// progress as a badge.
func FormatRows(rows []domain.VisibleRow, collapsed func(id string) bool) string {
	if len(rows) == 0 {
		return Dim("No rows.") + "\n"
	}
	items := TreeItemsFromRows(rows, collapsed, rowDetail)

	var b strings.Builder
	b.WriteString(Header("Rows"))
	b.WriteString("\n")
	b.WriteString(RenderTree(items))
	b.WriteString(Dim(fmt.Sprintf("%d visible rows", len(rows))))
	b.WriteString("\n")
	return b.String()
}

func rowDetail(r domain.VisibleRow) string {
	if r.Kind == domain.RowGroup || r.Task == nil {
		return ""
	}
	t := r.Task
	if t.IsMilestone() {
		return "◆ " + FormatDateTime(t.Start)
	}
	return fmt.Sprintf("%s → %s  %3.0f%%", FormatDateTime(t.Start), FormatDateTime(t.End), t.Progress)
}
