package domain

// Dependency is a chart-level edge: To cannot start before From ends.
type Dependency struct {
	From string
	To   string
}
