package domain

// Group is a collapsible row that owns tasks and, through ParentID, other
// groups. An empty ParentID places the group at the root.
type Group struct {
	ID        string
	Name      string
	WorkOrder string
	Color     string
	ParentID  string
	Metadata  map[string]any
}

// Clone returns a copy with its own metadata map.
func (g Group) Clone() Group {
	if g.Metadata != nil {
		m := make(map[string]any, len(g.Metadata))
		for k, v := range g.Metadata {
			m[k] = v
		}
		g.Metadata = m
	}
	return g
}
