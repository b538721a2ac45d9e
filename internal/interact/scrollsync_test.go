package interact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollSync_PropagatesWithoutFeedback(t *testing.T) {
	s := NewScrollSync()
	var sidebarTop, chartTop float64
	applied := 0

	// Each pane echoes the programmatic scroll back, like a DOM scroll
	// event would.
	s.Attach(PaneSidebar, func(top float64) {
		applied++
		sidebarTop = top
		s.Scrolled(PaneSidebar, top)
	})
	s.Attach(PaneChart, func(top float64) {
		applied++
		chartTop = top
		s.Scrolled(PaneChart, top)
	})

	assert.True(t, s.Scrolled(PaneChart, 120))
	assert.Equal(t, 120.0, sidebarTop)
	assert.Zero(t, chartTop, "origin pane is not re-applied")
	assert.Equal(t, 1, applied)

	assert.True(t, s.Scrolled(PaneSidebar, 40))
	assert.Equal(t, 40.0, chartTop)
	assert.Equal(t, 40.0, s.Top())
	assert.Equal(t, 2, applied)
}

func TestScrollSync_EchoIsDropped(t *testing.T) {
	s := NewScrollSync()
	var dropped bool
	s.Attach(PaneChart, func(float64) {})
	s.Attach(PaneSidebar, func(top float64) {
		dropped = !s.Scrolled(PaneSidebar, top+1)
	})

	s.Scrolled(PaneChart, 10)
	assert.True(t, dropped)
	assert.Equal(t, 10.0, s.Top())
}
