package events

import (
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
)

// Event names.
const (
	TasksSet          = "tasksSet"
	TaskAdd           = "taskAdd"
	TaskUpdate        = "taskUpdate"
	TaskRemove        = "taskRemove"
	TaskClick         = "taskClick"
	TaskDrag          = "taskDrag"
	TaskDrop          = "taskDrop"
	TaskMouseOver     = "taskMouseOver"
	TaskMouseOut      = "taskMouseOut"
	GroupAdd          = "groupAdd"
	GroupRemove       = "groupRemove"
	GroupClick        = "groupClick"
	GroupExpand       = "groupExpand"
	GroupCollapse     = "groupCollapse"
	ExpandAll         = "expandAll"
	CollapseAll       = "collapseAll"
	ViewModeChange    = "viewModeChange"
	ZoomChange        = "zoomChange"
	DayMarked         = "dayMarked"
	DayUnmarked       = "dayUnmarked"
	MarkedDaysCleared = "markedDaysCleared"
	DependenciesSet   = "dependenciesSet"
	RangeExtend       = "rangeExtend"
	ScrollToDate      = "scrollToDate"
	Destroy           = "destroy"
)

// TasksSetPayload accompanies TasksSet.
type TasksSetPayload struct {
	Tasks  []domain.Task
	Groups []domain.Group
}

// DragPayload accompanies TaskDrag.
type DragPayload struct {
	Task  domain.Task
	Start time.Time
	End   time.Time
}

// DropPayload accompanies TaskDrop.
type DropPayload struct {
	Task          domain.Task
	Start         time.Time
	End           time.Time
	OriginalStart time.Time
	OriginalEnd   time.Time
}

// ZoomPayload accompanies ZoomChange.
type ZoomPayload struct {
	ColumnWidth float64
}

// DayUnmarkedPayload accompanies DayUnmarked.
type DayUnmarkedPayload struct {
	Date string
}

// RangeExtendPayload accompanies RangeExtend. From and To are the new
// bounds of the date range.
type RangeExtendPayload struct {
	Direction domain.Direction
	From      time.Time
	To        time.Time
}

// ScrollToDatePayload accompanies ScrollToDate.
type ScrollToDatePayload struct {
	Date  time.Time
	Align domain.Align
}
