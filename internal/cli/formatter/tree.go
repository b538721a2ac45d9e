package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/gantt/internal/domain"
)

// TreeItem is a single line of a tree display.
type TreeItem struct {
	Title     string
	Level     int
	IsLast    bool
	Group     bool
	Collapsed bool
	Detail    string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// TreeItemsFromRows converts projected rows into tree items. Level follows
// row depth and IsLast marks the final sibling under each parent.
func TreeItemsFromRows(rows []domain.VisibleRow, collapsed func(id string) bool, detail func(domain.VisibleRow) string) []TreeItem {
	items := make([]TreeItem, len(rows))
	for i, r := range rows {
		items[i] = TreeItem{
			Title:  r.Name(),
			Level:  r.Depth,
			IsLast: isLastSibling(rows, i),
			Group:  r.Kind == domain.RowGroup,
		}
		if items[i].Group && collapsed != nil {
			items[i].Collapsed = collapsed(r.ID())
		}
		if detail != nil {
			items[i].Detail = detail(r)
		}
	}
	return items
}

func isLastSibling(rows []domain.VisibleRow, i int) bool {
	d := rows[i].Depth
	for _, r := range rows[i+1:] {
		if r.Depth < d {
			return true
		}
		if r.Depth == d {
			return false
		}
	}
	return true
}

// RenderTree renders items as an indented tree using box-drawing
// connectors. Group titles carry a ▾/▸ expand marker and detail badges are
// right-aligned.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	// open[l] reports whether the ancestor at level l still has siblings
	// below, which decides between a pipe and a blank column.
	var open []bool

	for idx, item := range items {
		var prefix strings.Builder
		if item.Level > 0 {
			for l := 1; l < item.Level; l++ {
				if l < len(open) && open[l] {
					prefix.WriteString(treePipe)
				} else {
					prefix.WriteString(treeBlank)
				}
			}
			if item.IsLast {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
		}
		for len(open) <= item.Level {
			open = append(open, false)
		}
		open[item.Level] = !item.IsLast

		title := item.Title
		if item.Group {
			marker := "▾ "
			if item.Collapsed {
				marker = "▸ "
			}
			title = StylePurple.Render(marker + title)
		}

		content := prefix.String() + title
		lines[idx].content = content
		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render("[ " + item.Detail + " ]")
		}
		if w := lipgloss.Width(content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	var b strings.Builder
	for _, li := range lines {
		if li.badge == "" {
			b.WriteString(li.content + "\n")
			continue
		}
		pad := max(maxContentWidth-lipgloss.Width(li.content), 0)
		b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
	}
	return b.String()
}
