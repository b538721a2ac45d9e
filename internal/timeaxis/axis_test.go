package timeaxis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/gantt/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekNumber(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{day(2024, 1, 1), 1},
		{day(2023, 12, 31), 52},
		{day(2020, 12, 31), 53},
		{day(2021, 1, 3), 53},
		{day(2024, 12, 30), 1},
	}
	for _, tt := range tests {
		t.Run(tt.date.Format("2006-01-02"), func(t *testing.T) {
			assert.Equal(t, tt.want, WeekNumber(tt.date))
		})
	}
}

func TestNew_DayColumns(t *testing.T) {
	a := New(Config{Mode: domain.ViewDay, Min: day(2024, 1, 1), Max: day(2024, 1, 7), ColumnWidth: 30})

	require.Equal(t, 7, a.ColumnCount())
	assert.Equal(t, 210.0, a.Width())
	cols := a.Columns()
	assert.Equal(t, "1", cols[0].Label)
	assert.False(t, cols[0].IsWeekend, "2024-01-01 is a Monday")
	assert.True(t, cols[5].IsWeekend)
	assert.True(t, cols[6].IsWeekend)
	assert.Equal(t, day(2024, 1, 8), a.End())
}

func TestNew_MaxBeforeMinYieldsOneColumn(t *testing.T) {
	a := New(Config{Mode: domain.ViewDay, Min: day(2024, 1, 5), Max: day(2024, 1, 1), ColumnWidth: 30})
	assert.Equal(t, 1, a.ColumnCount())
}

func TestLabels(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)
	tests := []struct {
		mode   domain.ViewMode
		label  string
		parent string
	}{
		{domain.ViewHour, "14", "Tue, Mar 5"},
		{domain.ViewDay, "5", "March 2024"},
		{domain.ViewWeek, "W10", ""},
		{domain.ViewMonth, "Mar", "2024"},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			a := New(Config{Mode: tt.mode, Min: ts, Max: ts, ColumnWidth: 30})
			assert.Equal(t, tt.label, a.LabelFor(ts))
			assert.Equal(t, tt.parent, a.ParentLabelFor(ts))
		})
	}
}

func TestLabels_Locale(t *testing.T) {
	a := New(Config{Mode: domain.ViewMonth, Min: day(2024, 3, 1), Max: day(2024, 3, 1), ColumnWidth: 30, Locale: "de-DE"})
	assert.Equal(t, "Mär", a.Columns()[0].Label)

	a = New(Config{Mode: domain.ViewMonth, Min: day(2024, 3, 1), Max: day(2024, 3, 1), ColumnWidth: 30, Locale: "xx"})
	assert.Equal(t, "Mar", a.Columns()[0].Label)
}

func TestHeaderRows(t *testing.T) {
	assert.Equal(t, 1, HeaderRows(domain.ViewWeek))
	for _, m := range []domain.ViewMode{domain.ViewHour, domain.ViewDay, domain.ViewMonth} {
		assert.Equal(t, 2, HeaderRows(m), m)
	}
}

func TestDateToX_ColumnEdges(t *testing.T) {
	a := New(Config{Mode: domain.ViewDay, Min: day(2024, 1, 1), Max: day(2024, 1, 10), ColumnWidth: 30})

	assert.Equal(t, 0.0, a.DateToX(day(2024, 1, 1)))
	assert.Equal(t, 90.0, a.DateToX(day(2024, 1, 4)))
	assert.InDelta(t, 45.0, a.DateToX(time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)), 1e-9)
	assert.Equal(t, -30.0, a.DateToX(day(2023, 12, 31)), "extrapolates before the range")
	assert.Equal(t, day(2024, 1, 4), a.XToDate(90))
}

func TestDateToX_MonthColumnsAreUniform(t *testing.T) {
	a := New(Config{Mode: domain.ViewMonth, Min: day(2024, 1, 1), Max: day(2024, 12, 1), ColumnWidth: 100})

	require.Equal(t, 12, a.ColumnCount())
	assert.Equal(t, 100.0, a.DateToX(day(2024, 2, 1)), "31-day January spans one column")
	assert.Equal(t, 200.0, a.DateToX(day(2024, 3, 1)), "29-day February spans one column")
}

func TestColumnAt(t *testing.T) {
	a := New(Config{Mode: domain.ViewDay, Min: day(2024, 1, 1), Max: day(2024, 1, 10), ColumnWidth: 30})
	assert.Equal(t, 0, a.ColumnAt(-5))
	assert.Equal(t, 1, a.ColumnAt(31))
	assert.Equal(t, 9, a.ColumnAt(10_000))
}

func TestEnsureFillsWidth(t *testing.T) {
	a := New(Config{Mode: domain.ViewDay, Min: day(2024, 1, 1), Max: day(2024, 1, 1), ColumnWidth: 30})

	filled := a.EnsureFillsWidth(300)
	assert.GreaterOrEqual(t, filled.Width(), 300.0)
	assert.Equal(t, day(2024, 1, 1), filled.Min())
	assert.Equal(t, day(2024, 1, 10), filled.Max())

	again := filled.EnsureFillsWidth(300)
	assert.Equal(t, filled.ColumnCount(), again.ColumnCount(), "idempotent once filled")
}

func TestExtend(t *testing.T) {
	base := New(Config{Mode: domain.ViewDay, Min: day(2024, 1, 10), Max: day(2024, 1, 20), ColumnWidth: 30})

	t.Run("left adds units times column width", func(t *testing.T) {
		next, added := base.Extend(domain.DirectionLeft, 30)
		assert.Equal(t, 900.0, added)
		assert.Equal(t, day(2023, 12, 11), next.Min())
		assert.Equal(t, base.Max(), next.Max())
		assert.InDelta(t, base.DateToX(day(2024, 1, 15))+added, next.DateToX(day(2024, 1, 15)), 1e-9,
			"existing content shifts right by exactly the added width")
	})

	t.Run("right", func(t *testing.T) {
		next, added := base.Extend(domain.DirectionRight, 5)
		assert.Equal(t, 150.0, added)
		assert.Equal(t, day(2024, 1, 25), next.Max())
		assert.Equal(t, base.DateToX(day(2024, 1, 15)), next.DateToX(day(2024, 1, 15)))
	})

	t.Run("zero units", func(t *testing.T) {
		next, added := base.Extend(domain.DirectionRight, 0)
		assert.Zero(t, added)
		assert.Equal(t, base.ColumnCount(), next.ColumnCount())
	})
}

func TestDragOneColumnIsOneStep(t *testing.T) {
	for _, mode := range []domain.ViewMode{domain.ViewHour, domain.ViewDay, domain.ViewWeek} {
		t.Run(string(mode), func(t *testing.T) {
			a := New(Config{Mode: mode, Min: day(2023, 6, 1), Max: day(2024, 6, 1), ColumnWidth: 40})
			start := day(2024, 1, 10)
			got := a.XToDate(a.DateToX(start) + a.ColumnWidth())
			assert.Equal(t, Step(mode, start, 1), got)
		})
	}
}

func TestXToDate_ResolvesToMilliseconds(t *testing.T) {
	a := New(Config{Mode: domain.ViewWeek, Min: day(2023, 1, 1), Max: day(2024, 6, 1), ColumnWidth: 30})
	got := a.XToDate(a.DateToX(day(2024, 1, 10)) + 30.000000001)
	assert.Equal(t, day(2024, 1, 17), got)
	assert.Zero(t, got.Nanosecond()%int(Resolution))
}

func TestNew_TruncatesLongRanges(t *testing.T) {
	a := New(Config{Mode: domain.ViewHour, Min: day(2010, 1, 1), Max: day(2030, 1, 1), ColumnWidth: 30})
	assert.Equal(t, maxColumns, a.ColumnCount())
	assert.True(t, a.Truncated())

	b := New(Config{Mode: domain.ViewHour, Min: day(2024, 1, 1), Max: day(2024, 1, 2), ColumnWidth: 30})
	assert.False(t, b.Truncated())
}

func TestDragOneColumnFromMonthStart(t *testing.T) {
	a := New(Config{Mode: domain.ViewMonth, Min: day(2023, 6, 1), Max: day(2024, 6, 1), ColumnWidth: 40})
	got := a.XToDate(a.DateToX(day(2024, 1, 1)) + a.ColumnWidth())
	assert.Equal(t, day(2024, 2, 1), got)
}

func TestEmphasis(t *testing.T) {
	tests := []struct {
		mode domain.ViewMode
		date time.Time
		want Emphasis
	}{
		{domain.ViewDay, day(2024, 1, 1), EmphasisYear},
		{domain.ViewDay, day(2024, 3, 1), EmphasisMonth},
		{domain.ViewDay, day(2024, 3, 2), EmphasisNone},
		{domain.ViewHour, time.Date(2024, 3, 1, 5, 0, 0, 0, time.UTC), EmphasisNone},
		{domain.ViewHour, day(2024, 3, 1), EmphasisMonth},
		{domain.ViewMonth, day(2024, 1, 1), EmphasisYear},
		{domain.ViewMonth, day(2024, 2, 1), EmphasisNone},
		{domain.ViewWeek, day(2024, 1, 1), EmphasisYear},
		{domain.ViewWeek, day(2024, 1, 8), EmphasisNone},
	}
	for _, tt := range tests {
		a := New(Config{Mode: tt.mode, Min: tt.date, Max: tt.date, ColumnWidth: 30})
		assert.Equal(t, tt.want, a.Emphasis(a.Columns()[0]), "%s %s", tt.mode, tt.date)
	}
}

func TestUnitsToReach(t *testing.T) {
	assert.Equal(t, 0, UnitsToReach(domain.ViewDay, day(2024, 1, 1), day(2024, 1, 1)))
	assert.Equal(t, 3, UnitsToReach(domain.ViewDay, day(2024, 1, 1), day(2024, 1, 4)))
	assert.Equal(t, 4, UnitsToReach(domain.ViewDay, day(2024, 1, 1), time.Date(2024, 1, 4, 1, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2, UnitsToReach(domain.ViewMonth, day(2024, 3, 1), day(2024, 1, 15)))
	assert.Equal(t, 1, UnitsToReach(domain.ViewWeek, day(2024, 1, 1), day(2024, 1, 3)))
}
