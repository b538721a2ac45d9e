package teatest

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type bumpMsg struct{}

type counter struct {
	n      int
	width  int
	inited bool
}

func (c counter) Init() tea.Cmd {
	return func() tea.Msg { return bumpMsg{} }
}

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bumpMsg:
		c.inited = true
	case tea.WindowSizeMsg:
		c.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "+":
			c.n++
		case "up":
			c.n += 10
		case "b":
			return c, tea.Batch(nil, func() tea.Msg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}} })
		case "q":
			return c, tea.Quit
		}
	}
	return c, nil
}

func (c counter) View() string { return fmt.Sprintf("n=%d w=%d", c.n, c.width) }

func TestDriver_InitAndSize(t *testing.T) {
	d := New(t, counter{}, WithSize(80, 24))
	m := d.Model.(counter)
	assert.True(t, m.inited)
	assert.Equal(t, "n=0 w=80", d.View())
}

func TestDriver_Keys(t *testing.T) {
	d := New(t, counter{})
	d.Type("++")
	d.Press(tea.KeyUp)
	d.PressN(tea.KeyUp, 2)
	assert.Equal(t, 32, d.Model.(counter).n)
}

func TestDriver_BatchAndQuit(t *testing.T) {
	d := New(t, counter{})
	d.PressKey('b')
	assert.Equal(t, 1, d.Model.(counter).n)

	d.PressKey('q')
	assert.True(t, d.Quitting)
	d.PressKey('+')
	assert.Equal(t, 1, d.Model.(counter).n, "keys after quit are ignored")
}
