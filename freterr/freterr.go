// Package freterr carries failures through the bubbletea update loop.
package freterr

import tea "github.com/charmbracelet/bubbletea"

type (
	ErrMsg struct {
		Err error
	}
)

func (m ErrMsg) Error() string {
	return m.Err.Error()
}

func (m ErrMsg) Unwrap() error {
	return m.Err
}

// Report wraps err in a command so it reaches the root model.
func Report(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrMsg{Err: err}
	}
}
