package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/gantt/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatDateTime prints a date, adding the clock time only when it is not
// midnight.
func FormatDateTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04")
}

// FormatRange prints an inclusive date range.
func FormatRange(r domain.DateRange) string {
	return FormatDateTime(r.Start) + " → " + FormatDateTime(r.End)
}

// FormatSpan converts a duration into a compact "3d 4h" form.
func FormatSpan(d time.Duration) string {
	if d <= 0 {
		return "0h"
	}
	days := int(d / (24 * time.Hour))
	hours := int((d % (24 * time.Hour)) / time.Hour)
	switch {
	case days > 0 && hours > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case days > 0:
		return fmt.Sprintf("%dd", days)
	default:
		return fmt.Sprintf("%dh", hours)
	}
}

// TaskSummary is the one-line status description of a task.
func TaskSummary(t domain.Task) string {
	if t.IsMilestone() {
		return fmt.Sprintf("%s  ◆ %s", Bold(t.Name), FormatDateTime(t.Start))
	}
	s := fmt.Sprintf("%s  %s → %s (%s)  %s",
		Bold(t.Name), FormatDateTime(t.Start), FormatDateTime(t.End),
		FormatSpan(t.Duration()), RenderProgress(t.Progress, 10))
	if t.Assignee != "" {
		s += "  " + StyleBlue.Render("@"+t.Assignee)
	}
	return s
}
