package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type Mapping struct {
	GoBack key.Binding
	Quit   key.Binding

	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Select picks the item under the cursor, Submit confirms an answer.
	Select key.Binding
	Submit key.Binding

	NextKey  key.Binding
	PrevKey  key.Binding
	NextType key.Binding

	Toggle   key.Binding
	Faster   key.Binding
	Slower   key.Binding
	Play     key.Binding
	PickNote key.Binding
}

var DefaultMapping = Mapping{
	GoBack: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back to menu"),
	),
	Quit: key.NewBinding(
		key.WithKeys(tea.KeyCtrlC.String()),
		key.WithHelp("ctrl+c", "quit"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Select: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "select"),
	),
	Submit: key.NewBinding(
		key.WithKeys(tea.KeyEnter.String()),
		key.WithHelp("enter", "submit"),
	),
	NextKey: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next key"),
	),
	PrevKey: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "previous key"),
	),
	NextType: key.NewBinding(
		key.WithKeys(tea.KeyTab.String()),
		key.WithHelp("tab", "next scale/type"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "start/stop"),
	),
	Faster: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "faster"),
	),
	Slower: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "slower"),
	),
	Play: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "play"),
	),
	PickNote: key.NewBinding(
		key.WithKeys("1", "2", "3"),
		key.WithHelp("1-3", "pick note"),
	),
}

// Help lists a subset of bindings for a bubbles/help view.
type Help []key.Binding

func (h Help) ShortHelp() []key.Binding {
	return h
}

func (h Help) FullHelp() [][]key.Binding {
	return [][]key.Binding{h}
}
