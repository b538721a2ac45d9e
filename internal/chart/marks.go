package chart

import (
	"slices"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/events"
)

// MarkDay highlights the calendar day of date. Marks are keyed by day:
// marking a day again replaces its type and color. An empty type means
// DefaultMarkType and an empty color picks the type's default.
func (m *Model) MarkDay(date time.Time, markType, color string) domain.MarkedDay {
	markType = firstNonEmpty(markType, domain.DefaultMarkType)
	md := domain.MarkedDay{
		Date:  domain.DateKey(date.In(m.loc)),
		Type:  markType,
		Color: firstNonEmpty(color, domain.MarkedDayColor(markType)),
	}
	if i := m.markIndex(md.Date); i >= 0 {
		m.marked[i] = md
	} else {
		m.marked = append(m.marked, md)
	}
	m.changed(events.DayMarked, md)
	return md
}

// UnmarkDay removes the mark on date's calendar day. It reports false, and
// emits nothing, when the day was not marked.
func (m *Model) UnmarkDay(date time.Time) bool {
	key := domain.DateKey(date.In(m.loc))
	i := m.markIndex(key)
	if i < 0 {
		return false
	}
	m.marked = slices.Delete(m.marked, i, i+1)
	m.changed(events.DayUnmarked, events.DayUnmarkedPayload{Date: key})
	return true
}

// ClearMarkedDays removes every mark.
func (m *Model) ClearMarkedDays() {
	m.marked = nil
	m.changed(events.MarkedDaysCleared, nil)
}

// MarkedDays returns the marks in the order they were first added.
func (m *Model) MarkedDays() []domain.MarkedDay { return slices.Clone(m.marked) }

// MarkedDay returns the mark for date's calendar day.
func (m *Model) MarkedDay(date time.Time) (domain.MarkedDay, bool) {
	i := m.markIndex(domain.DateKey(date.In(m.loc)))
	if i < 0 {
		return domain.MarkedDay{}, false
	}
	return m.marked[i], true
}

func (m *Model) markIndex(key string) int {
	return slices.IndexFunc(m.marked, func(d domain.MarkedDay) bool { return d.Date == key })
}
