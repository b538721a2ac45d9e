package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the top-level structure of a chart file. YAML and JSON share
// the same keys.
type Document struct {
	ViewMode     string             `yaml:"view_mode,omitempty" json:"view_mode,omitempty"`
	Tasks        []TaskImport       `yaml:"tasks" json:"tasks"`
	Groups       []GroupImport      `yaml:"groups,omitempty" json:"groups,omitempty"`
	Dependencies []DependencyImport `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
	MarkedDays   []MarkedDayImport  `yaml:"marked_days,omitempty" json:"marked_days,omitempty"`
	Collapsed    []string           `yaml:"collapsed,omitempty" json:"collapsed,omitempty"`
}

// TaskImport defines a task in the chart file. Start and End accept
// RFC3339, "2006-01-02 15:04" or "2006-01-02".
type TaskImport struct {
	ID           string         `yaml:"id" json:"id"`
	Name         string         `yaml:"name" json:"name"`
	Start        string         `yaml:"start" json:"start"`
	End          string         `yaml:"end" json:"end"`
	Progress     *float64       `yaml:"progress,omitempty" json:"progress,omitempty"`
	Group        string         `yaml:"group,omitempty" json:"group,omitempty"`
	Dependencies []string       `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
	Type         string         `yaml:"type,omitempty" json:"type,omitempty"`
	Color        string         `yaml:"color,omitempty" json:"color,omitempty"`
	TextColor    string         `yaml:"text_color,omitempty" json:"text_color,omitempty"`
	WorkOrder    string         `yaml:"work_order,omitempty" json:"work_order,omitempty"`
	Assignee     string         `yaml:"assignee,omitempty" json:"assignee,omitempty"`
	Metadata     map[string]any `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

// GroupImport defines a group. Parent may name any group in the file.
type GroupImport struct {
	ID        string         `yaml:"id" json:"id"`
	Name      string         `yaml:"name" json:"name"`
	Parent    string         `yaml:"parent,omitempty" json:"parent,omitempty"`
	WorkOrder string         `yaml:"work_order,omitempty" json:"work_order,omitempty"`
	Color     string         `yaml:"color,omitempty" json:"color,omitempty"`
	Metadata  map[string]any `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

// DependencyImport is a chart-level edge between two task ids.
type DependencyImport struct {
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to" json:"to"`
}

// MarkedDayImport highlights one calendar day.
type MarkedDayImport struct {
	Date  string `yaml:"date" json:"date"`
	Type  string `yaml:"type,omitempty" json:"type,omitempty"`
	Color string `yaml:"color,omitempty" json:"color,omitempty"`
}

// Format selects the decoder for Parse.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the decoder from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported chart file extension %q (expected .yaml, .yml or .json)", filepath.Ext(path))
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing chart json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing chart yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown chart format %q", format)
	}
	return &doc, nil
}

// Load reads and parses a chart file, choosing the format by extension.
func Load(path string) (*Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, format)
}
