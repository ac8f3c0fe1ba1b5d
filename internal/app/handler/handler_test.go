package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type quitMsg struct{}

func keyHandler(key string, cmd tea.Cmd, calls *[]string) Handler[tea.KeyMsg] {
	return func(msg tea.KeyMsg) Result {
		*calls = append(*calls, key)
		if msg.String() != key {
			return NotHandled
		}
		if cmd == nil {
			return HandledNoCmd
		}
		return Handled(cmd)
	}
}

func TestResults(t *testing.T) {
	if NotHandled.Handled || NotHandled.Cmd != nil {
		t.Error("NotHandled should be empty")
	}
	if !HandledNoCmd.Handled || HandledNoCmd.Cmd != nil {
		t.Error("HandledNoCmd should be handled without a command")
	}
	if r := Handled(nil); !r.Handled || r.Cmd != nil {
		t.Error("Handled(nil) should be handled without a command")
	}
	if r := Handled(func() tea.Msg { return quitMsg{} }); r.Cmd == nil {
		t.Error("Handled(cmd) should keep the command")
	}
}

func TestChain_NoHandlers(t *testing.T) {
	r := Chain(tea.KeyMsg{Type: tea.KeyEnter})
	if r.Handled || r.Cmd != nil {
		t.Error("Chain() with no handlers should not handle")
	}
}

func TestChain_StopsAtFirstHandled(t *testing.T) {
	var calls []string
	quit := func() tea.Msg { return quitMsg{} }
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}

	r := Chain(msg,
		keyHandler("q", quit, &calls),
		keyHandler("n", nil, &calls),
		keyHandler("n", quit, &calls),
	)

	if !r.Handled {
		t.Fatal("Chain should report handled")
	}
	if r.Cmd != nil {
		t.Error("the first matching handler returned no command")
	}
	if len(calls) != 2 {
		t.Errorf("handlers called = %v, want the first two only", calls)
	}
}

func TestChain_PassesCommandThrough(t *testing.T) {
	var calls []string
	quit := func() tea.Msg { return quitMsg{} }
	r := Chain(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, keyHandler("q", quit, &calls))
	if !r.Handled || r.Cmd == nil {
		t.Fatal("Chain should return the handler's command")
	}
	if _, ok := r.Cmd().(quitMsg); !ok {
		t.Error("command should produce quitMsg")
	}
}

func TestChain_SkipsNilAndUnhandled(t *testing.T) {
	var calls []string
	r := Chain(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, nil, keyHandler("q", nil, &calls))
	if r.Handled {
		t.Error("no handler matches x")
	}
	if len(calls) != 1 {
		t.Errorf("handlers called = %v, want 1", calls)
	}
}

func TestChain_MouseMessages(t *testing.T) {
	press := func(msg tea.MouseMsg) Result {
		if msg.Action == tea.MouseActionPress {
			return HandledNoCmd
		}
		return NotHandled
	}
	if !Chain(tea.MouseMsg{Action: tea.MouseActionPress}, press).Handled {
		t.Error("press should be handled")
	}
	if Chain(tea.MouseMsg{Action: tea.MouseActionMotion}, press).Handled {
		t.Error("motion should not be handled")
	}
}
