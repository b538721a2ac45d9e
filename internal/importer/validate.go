package importer

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
)

var validTaskTypes = map[string]bool{"": true, "task": true, "milestone": true}

// Report collects validation findings. Errors block conversion; warnings
// describe references the renderer will skip.
type Report struct {
	Errors   []error
	Warnings []error
}

// OK reports whether the document has no blocking errors.
func (r Report) OK() bool { return len(r.Errors) == 0 }

// Err joins all blocking errors, or returns nil.
func (r Report) Err() error { return errors.Join(r.Errors...) }

// Validate checks the document before conversion and returns every problem
// found.
func Validate(doc *Document) Report {
	var r Report

	if doc.ViewMode != "" {
		if _, err := domain.ParseViewMode(doc.ViewMode); err != nil {
			r.Errors = append(r.Errors, fmt.Errorf("view_mode: %w", err))
		}
	}

	groupIDs := make(map[string]bool)
	r.Errors = append(r.Errors, validateGroups(doc.Groups, groupIDs)...)

	taskIDs := make(map[string]bool)
	r.Errors = append(r.Errors, validateTasks(doc.Tasks, groupIDs, taskIDs)...)

	r.Warnings = append(r.Warnings, validateDependencies(doc, taskIDs)...)

	for i, m := range doc.MarkedDays {
		prefix := fmt.Sprintf("marked_days[%d]", i)
		if m.Date == "" {
			r.Errors = append(r.Errors, fmt.Errorf("%s.date is required", prefix))
		} else if _, err := domain.ParseDate(m.Date, time.UTC); err != nil {
			r.Errors = append(r.Errors, fmt.Errorf("%s.date: %w", prefix, err))
		}
	}

	for i, id := range doc.Collapsed {
		if !groupIDs[id] {
			r.Warnings = append(r.Warnings, fmt.Errorf("collapsed[%d]: group %q not found", i, id))
		}
	}

	return r
}

func validateGroups(groups []GroupImport, groupIDs map[string]bool) []error {
	var errs []error

	for i, g := range groups {
		prefix := fmt.Sprintf("groups[%d]", i)
		if g.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if groupIDs[g.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, g.ID))
		} else {
			groupIDs[g.ID] = true
		}
	}

	// Parents may be declared after their children, so references are
	// checked once every id is known.
	for i, g := range groups {
		if g.Parent != "" && !groupIDs[g.Parent] {
			errs = append(errs, fmt.Errorf("groups[%d].parent: group %q not found", i, g.Parent))
		}
	}

	return append(errs, detectParentCycles(groups)...)
}

func validateTasks(tasks []TaskImport, groupIDs, taskIDs map[string]bool) []error {
	var errs []error

	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		if t.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if taskIDs[t.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, t.ID))
		} else {
			taskIDs[t.ID] = true
		}

		errs = append(errs, validateRequiredDate(prefix+".start", t.Start)...)
		errs = append(errs, validateRequiredDate(prefix+".end", t.End)...)

		if t.Progress != nil && (*t.Progress < 0 || *t.Progress > 100) {
			errs = append(errs, fmt.Errorf("%s.progress must be within [0, 100], got %v", prefix, *t.Progress))
		}
		if !validTaskTypes[t.Type] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q (must be task or milestone)", prefix, t.Type))
		}
		if t.Group != "" && !groupIDs[t.Group] {
			errs = append(errs, fmt.Errorf("%s.group: group %q not found", prefix, t.Group))
		}
	}

	return errs
}

func validateDependencies(doc *Document, taskIDs map[string]bool) []error {
	var warns []error

	for i, t := range doc.Tasks {
		for j, dep := range t.Dependencies {
			if !taskIDs[dep] {
				warns = append(warns, fmt.Errorf("tasks[%d].dependencies[%d]: task %q not found", i, j, dep))
			}
		}
	}
	for i, d := range doc.Dependencies {
		prefix := fmt.Sprintf("dependencies[%d]", i)
		if !taskIDs[d.From] {
			warns = append(warns, fmt.Errorf("%s.from: task %q not found", prefix, d.From))
		}
		if !taskIDs[d.To] {
			warns = append(warns, fmt.Errorf("%s.to: task %q not found", prefix, d.To))
		}
		if d.From != "" && d.From == d.To {
			warns = append(warns, fmt.Errorf("%s: self-dependency on %q", prefix, d.From))
		}
	}

	return warns
}

func detectParentCycles(groups []GroupImport) []error {
	parent := make(map[string]string, len(groups))
	for _, g := range groups {
		if g.ID != "" {
			parent[g.ID] = g.Parent
		}
	}

	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[string]int)
	var errs []error

	for _, g := range groups {
		if g.ID == "" || color[g.ID] != white {
			continue
		}
		var path []string
		id := g.ID
		for id != "" && color[id] == white {
			color[id] = gray
			path = append(path, id)
			id = parent[id]
		}
		if id != "" && color[id] == gray {
			errs = append(errs, fmt.Errorf("groups: parent cycle involving %q", id))
		}
		for _, p := range path {
			color[p] = black
		}
	}

	return errs
}

func validateRequiredDate(field, value string) []error {
	if value == "" {
		return []error{fmt.Errorf("%s is required", field)}
	}
	if _, err := domain.ParseDate(value, time.UTC); err != nil {
		return []error{fmt.Errorf("%s: %w", field, err)}
	}
	return nil
}
