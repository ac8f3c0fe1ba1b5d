// Package action carries results from popups and bars back to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a component result. ActionType names it in logs.
type Action interface {
	ActionType() string
}

// Msg is the tea message an Action travels in.
type Msg struct {
	Source string // reporting component: "confirm", "editor", "searchbar"
	Action Action
}

// Cmd reports a from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg { return Msg{Source: source, Action: a} }
}

// String names the action, e.g. "confirm/confirm.result".
func (m Msg) String() string {
	if m.Action == nil {
		return m.Source
	}
	return m.Source + "/" + m.Action.ActionType()
}
