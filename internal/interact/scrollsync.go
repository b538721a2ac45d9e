package interact

// Pane names a scrollable region whose vertical offset is kept in sync.
type Pane string

const (
	PaneSidebar Pane = "sidebar"
	PaneChart   Pane = "chart"
)

// ScrollSync keeps one vertical offset for every attached pane. A scroll
// reported by one pane is applied to the others; while that propagation
// runs, scrolls reported by the other panes are their own echoes and are
// dropped.
type ScrollSync struct {
	top    float64
	origin Pane
	panes  []Pane
	apply  map[Pane]func(top float64)
}

func NewScrollSync() *ScrollSync {
	return &ScrollSync{apply: make(map[Pane]func(float64))}
}

// Attach registers the function that moves pane to a new offset.
func (s *ScrollSync) Attach(p Pane, apply func(top float64)) {
	if _, ok := s.apply[p]; !ok {
		s.panes = append(s.panes, p)
	}
	s.apply[p] = apply
}

// Top is the shared vertical offset.
func (s *ScrollSync) Top() float64 { return s.top }

// Scrolled reports that pane from moved to top. It returns false when the
// report was an echo and was ignored.
func (s *ScrollSync) Scrolled(from Pane, top float64) bool {
	if s.origin != "" && s.origin != from {
		return false
	}
	if s.origin == from {
		s.top = top
		return true
	}
	s.top = top
	s.origin = from
	defer func() { s.origin = "" }()
	for _, p := range s.panes {
		if p == from {
			continue
		}
		s.apply[p](top)
	}
	return true
}
