package importer

import (
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/gantt"
)

// Result holds the domain objects decoded from a Document. ViewMode is empty
// when the document does not pick one.
type Result struct {
	ViewMode     domain.ViewMode
	Tasks        []domain.Task
	Groups       []domain.Group
	Dependencies []domain.Dependency
	MarkedDays   []MarkedDay
	Collapsed    []string
}

// MarkedDay is a parsed marked_days entry.
type MarkedDay struct {
	Date  time.Time
	Type  string
	Color string
}

// Convert transforms a validated Document into domain objects. Dates without
// a zone are read in loc. Call Validate first; Convert only reports the first
// parse failure it meets.
func Convert(doc *Document, loc *time.Location) (*Result, error) {
	res := &Result{
		Collapsed: slices.Clone(doc.Collapsed),
	}

	if doc.ViewMode != "" {
		mode, err := domain.ParseViewMode(doc.ViewMode)
		if err != nil {
			return nil, err
		}
		res.ViewMode = mode
	}

	res.Groups = make([]domain.Group, 0, len(doc.Groups))
	for _, g := range doc.Groups {
		res.Groups = append(res.Groups, domain.Group{
			ID:        g.ID,
			Name:      g.Name,
			ParentID:  g.Parent,
			WorkOrder: g.WorkOrder,
			Color:     g.Color,
			Metadata:  g.Metadata,
		})
	}

	res.Tasks = make([]domain.Task, 0, len(doc.Tasks))
	for i, t := range doc.Tasks {
		start, err := domain.ParseDate(t.Start, loc)
		if err != nil {
			return nil, fmt.Errorf("tasks[%d].start: %w", i, err)
		}
		end, err := domain.ParseDate(t.End, loc)
		if err != nil {
			return nil, fmt.Errorf("tasks[%d].end: %w", i, err)
		}
		task := domain.Task{
			ID:           t.ID,
			Name:         t.Name,
			Start:        start,
			End:          end,
			GroupID:      t.Group,
			Dependencies: slices.Clone(t.Dependencies),
			Kind:         domain.TaskKind(t.Type),
			Color:        t.Color,
			TextColor:    t.TextColor,
			WorkOrder:    t.WorkOrder,
			Assignee:     t.Assignee,
			Metadata:     t.Metadata,
		}
		if t.Progress != nil {
			task.Progress = *t.Progress
		}
		res.Tasks = append(res.Tasks, task)
	}

	for _, d := range doc.Dependencies {
		res.Dependencies = append(res.Dependencies, domain.Dependency{From: d.From, To: d.To})
	}

	for i, m := range doc.MarkedDays {
		date, err := domain.ParseDate(m.Date, loc)
		if err != nil {
			return nil, fmt.Errorf("marked_days[%d].date: %w", i, err)
		}
		res.MarkedDays = append(res.MarkedDays, MarkedDay{Date: date, Type: m.Type, Color: m.Color})
	}

	return res, nil
}

// Apply loads the result into c: the view mode when set, then tasks and
// groups, chart-level dependencies, marked days and finally collapse state.
func (r *Result) Apply(c *gantt.Chart) error {
	if r.ViewMode != "" {
		if err := c.SetViewMode(r.ViewMode); err != nil {
			return err
		}
	}
	if err := c.SetTasks(r.Tasks, r.Groups); err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	if len(r.Dependencies) > 0 {
		c.SetDependencies(r.Dependencies)
	}
	for _, m := range r.MarkedDays {
		c.MarkDay(m.Date, m.Type, m.Color)
	}
	for _, id := range r.Collapsed {
		if !c.IsCollapsed(id) {
			c.ToggleGroup(id)
		}
	}
	return nil
}

// LoadFile reads, validates and converts a chart file. Validation warnings
// are returned alongside a successful result.
func LoadFile(path string, loc *time.Location) (*Result, []error, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, nil, err
	}
	report := Validate(doc)
	if !report.OK() {
		return nil, report.Warnings, fmt.Errorf("invalid chart file %s: %w", path, report.Err())
	}
	res, err := Convert(doc, loc)
	if err != nil {
		return nil, report.Warnings, err
	}
	return res, report.Warnings, nil
}
