package domain

import (
	"fmt"
	"time"
)

// Sidebar width bounds enforced by the resize handle.
const (
	MinSidebarWidth = 150
	MaxSidebarWidth = 400
)

// Options configures a chart. Field tags match the config file keys.
type Options struct {
	ViewMode       ViewMode   `mapstructure:"view_mode"`
	MinDate        *time.Time `mapstructure:"min_date"`
	MaxDate        *time.Time `mapstructure:"max_date"`
	RowHeight      float64    `mapstructure:"row_height"`
	HeaderHeight   float64    `mapstructure:"header_height"`
	ColumnWidth    float64    `mapstructure:"column_width"`
	TaskMinWidth   float64    `mapstructure:"task_min_width"`
	EnableDragDrop bool       `mapstructure:"enable_drag_drop"`
	ShowSidebar    bool       `mapstructure:"show_sidebar"`
	SidebarWidth   float64    `mapstructure:"sidebar_width"`
	SidebarTitle   string     `mapstructure:"sidebar_title"`
	Locale         string     `mapstructure:"locale"`
	DateFormat     string     `mapstructure:"date_format"`
	TimeFormat     string     `mapstructure:"time_format"`
	Theme          string     `mapstructure:"theme"`

	// ViewportWidth and ViewportHeight stand in for the host container's
	// client size until the host reports a resize.
	ViewportWidth  float64 `mapstructure:"viewport_width"`
	ViewportHeight float64 `mapstructure:"viewport_height"`

	// Timezone names the location used for calendar arithmetic
	// ("Local", "UTC" or an IANA name).
	Timezone string `mapstructure:"timezone"`
}

// DefaultOptions returns the normalized defaults.
func DefaultOptions() Options {
	return Options{
		ViewMode:       ViewDay,
		RowHeight:      40,
		HeaderHeight:   50,
		ColumnWidth:    30,
		TaskMinWidth:   40,
		EnableDragDrop: true,
		ShowSidebar:    true,
		SidebarWidth:   200,
		SidebarTitle:   "Tasks",
		Locale:         "en-US",
		DateFormat:     "YYYY-MM-DD",
		TimeFormat:     "HH:mm",
		Theme:          "default",
		ViewportWidth:  1200,
		ViewportHeight: 600,
		Timezone:       "Local",
	}
}

// Location resolves Timezone, falling back to UTC when it cannot be loaded.
// Validate reports an unloadable timezone.
func (o Options) Location() *time.Location {
	switch o.Timezone {
	case "", "Local":
		return time.Local
	case "UTC":
		return time.UTC
	}
	loc, err := time.LoadLocation(o.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Validate checks every option and returns the first problem found,
// wrapped in ErrInvalidArgument.
func (o Options) Validate() error {
	if !o.ViewMode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidViewMode, o.ViewMode)
	}
	positive := []struct {
		name string
		val  float64
	}{
		{"row_height", o.RowHeight},
		{"header_height", o.HeaderHeight},
		{"column_width", o.ColumnWidth},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidArgument, p.name, p.val)
		}
	}
	if o.TaskMinWidth < 0 {
		return fmt.Errorf("%w: task_min_width must not be negative, got %v", ErrInvalidArgument, o.TaskMinWidth)
	}
	if o.SidebarWidth < MinSidebarWidth || o.SidebarWidth > MaxSidebarWidth {
		return fmt.Errorf("%w: sidebar_width must be within [%d, %d], got %v",
			ErrInvalidArgument, MinSidebarWidth, MaxSidebarWidth, o.SidebarWidth)
	}
	if o.ViewportWidth < 0 || o.ViewportHeight < 0 {
		return fmt.Errorf("%w: viewport size must not be negative", ErrInvalidArgument)
	}
	if o.MinDate != nil && o.MaxDate != nil && o.MinDate.After(*o.MaxDate) {
		return fmt.Errorf("%w: min_date %s is after max_date %s",
			ErrInvalidArgument, o.MinDate.Format(time.RFC3339), o.MaxDate.Format(time.RFC3339))
	}
	switch o.Timezone {
	case "", "Local", "UTC":
	default:
		if _, err := time.LoadLocation(o.Timezone); err != nil {
			return fmt.Errorf("%w: timezone %q: %v", ErrInvalidArgument, o.Timezone, err)
		}
	}
	return nil
}
