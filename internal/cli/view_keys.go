package cli

import "github.com/charmbracelet/bubbles/key"

type viewKeyMap struct {
	ScrollLeft  key.Binding
	ScrollRight key.Binding
	Up          key.Binding
	Down        key.Binding
	ZoomIn      key.Binding
	ZoomOut     key.Binding
	CycleView   key.Binding
	Toggle      key.Binding
	ExpandAll   key.Binding
	CollapseAll key.Binding
	Today       key.Binding
	DragLeft    key.Binding
	DragRight   key.Binding
	Quit        key.Binding
}

func defaultViewKeyMap() viewKeyMap {
	return viewKeyMap{
		ScrollLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "scroll")),
		ScrollRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "scroll")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		ZoomIn:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:     key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		CycleView:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view mode")),
		Toggle:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle")),
		ExpandAll:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "expand all")),
		CollapseAll: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "collapse all")),
		Today:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		DragLeft:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "move earlier")),
		DragRight:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "move later")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// helpBindings lists the bindings shown in the footer, in order.
func (k viewKeyMap) helpBindings() []key.Binding {
	return []key.Binding{
		k.ScrollLeft, k.ScrollRight, k.Up, k.Down, k.Toggle, k.ZoomIn, k.ZoomOut,
		k.CycleView, k.ExpandAll, k.CollapseAll, k.Today, k.DragLeft, k.DragRight, k.Quit,
	}
}
