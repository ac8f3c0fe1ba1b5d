// Package handler chains input handlers: each handler gets the message in
// turn and the first one that handles it wins.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result represents the outcome of a handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler leaves the message to the next one.
var NotHandled = Result{}

// HandledNoCmd is returned by handlers that consume the message without
// producing a command.
var HandledNoCmd = Result{Handled: true}

// Handled creates a Result indicating the message was handled with cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle one input message, a tea.KeyMsg or a
// tea.MouseMsg.
type Handler[M tea.Msg] func(msg M) Result

// Chain runs handlers in order until one handles msg.
func Chain[M tea.Msg](msg M, handlers ...Handler[M]) Result {
	for _, h := range handlers {
		if h == nil {
			continue
		}
		if r := h(msg); r.Handled {
			return r
		}
	}
	return NotHandled
}
