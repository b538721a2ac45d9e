package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions_Valid(t *testing.T) {
	opts := DefaultOptions()
	require.NoError(t, opts.Validate())
	assert.Equal(t, ViewDay, opts.ViewMode)
	assert.Equal(t, 30.0, opts.ColumnWidth)
	assert.Equal(t, 40.0, opts.TaskMinWidth)
	assert.Equal(t, "Tasks", opts.SidebarTitle)
}

func TestOptionsValidate_Rejects(t *testing.T) {
	min := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	max := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mutate  func(o *Options)
		wantMsg string
	}{
		{"bogus view mode", func(o *Options) { o.ViewMode = "bogus" }, "view mode"},
		{"zero row height", func(o *Options) { o.RowHeight = 0 }, "row_height"},
		{"negative column width", func(o *Options) { o.ColumnWidth = -1 }, "column_width"},
		{"negative task min width", func(o *Options) { o.TaskMinWidth = -5 }, "task_min_width"},
		{"sidebar too narrow", func(o *Options) { o.SidebarWidth = 100 }, "sidebar_width"},
		{"sidebar too wide", func(o *Options) { o.SidebarWidth = 401 }, "sidebar_width"},
		{"min after max", func(o *Options) { o.MinDate = &min; o.MaxDate = &max }, "min_date"},
		{"unknown timezone", func(o *Options) { o.Timezone = "Mars/Olympus" }, "timezone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestOptionsLocation(t *testing.T) {
	assert.Equal(t, time.UTC, Options{Timezone: "UTC"}.Location())
	assert.Equal(t, time.Local, Options{}.Location())
	assert.Equal(t, time.UTC, Options{Timezone: "Nowhere/Invalid"}.Location())
}

func TestParseViewMode(t *testing.T) {
	for _, m := range ViewModes {
		got, err := ParseViewMode(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := ParseViewMode("bogus")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidViewMode)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestViewModeNext_Cycles(t *testing.T) {
	assert.Equal(t, ViewDay, ViewHour.Next())
	assert.Equal(t, ViewWeek, ViewDay.Next())
	assert.Equal(t, ViewMonth, ViewWeek.Next())
	assert.Equal(t, ViewHour, ViewMonth.Next())
}

func TestViewMode_DayOrFiner(t *testing.T) {
	assert.True(t, ViewHour.DayOrFiner())
	assert.True(t, ViewDay.DayOrFiner())
	assert.False(t, ViewWeek.DayOrFiner())
	assert.False(t, ViewMonth.DayOrFiner())
}
