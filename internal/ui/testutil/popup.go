package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sukinote/internal/ui/action"
	"github.com/llehouerou/sukinote/internal/ui/popup"
)

// PopupHarness drives a popup the way the popup controller does and keeps
// every command it returns, starting with Init's.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	h.keep(p.Init())
	return h
}

func (h *PopupHarness) keep(cmd tea.Cmd) tea.Cmd {
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Popup returns the popup as last returned by Update.
func (h *PopupHarness) Popup() popup.Popup { return h.popup }

func (h *PopupHarness) SetSize(width, height int) { h.popup.SetSize(width, height) }

func (h *PopupHarness) View() string { return h.popup.View() }

// SendMsg delivers msg and returns the popup's command.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	return h.keep(cmd)
}

// SendKey sends key as literal runes, so "q" and "tab" are both text.
func (h *PopupHarness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendNamed sends a key by name (see Key).
func (h *PopupHarness) SendNamed(key string) tea.Cmd { return h.SendMsg(Key(key)) }

func (h *PopupHarness) SendEnter() tea.Cmd { return h.SendNamed("enter") }

func (h *PopupHarness) SendEscape() tea.Cmd { return h.SendNamed("esc") }

func (h *PopupHarness) SendTab() tea.Cmd { return h.SendNamed("tab") }

func (h *PopupHarness) SendUp() tea.Cmd { return h.SendNamed("up") }

func (h *PopupHarness) SendDown() tea.Cmd { return h.SendNamed("down") }

// Type sends text one rune at a time, as a terminal delivers typing.
func (h *PopupHarness) Type(text string) {
	for _, r := range text {
		h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *PopupHarness) Commands() []tea.Cmd { return h.cmds }

// LastCommand returns the newest kept command, or nil.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if n := len(h.cmds); n > 0 {
		return h.cmds[n-1]
	}
	return nil
}

func (h *PopupHarness) ClearCommands() { h.cmds = nil }

// LastAction runs the newest command and returns the action it reports,
// or nil when it reports none.
func (h *PopupHarness) LastAction() action.Action {
	if msg, ok := ExecuteCmd(h.LastCommand()).(action.Msg); ok {
		return msg.Action
	}
	return nil
}

// ExecuteCmd runs cmd and returns its message. A batch is run member by
// member: the first action.Msg wins, else the first message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return msg
	}
	var first tea.Msg
	for _, c := range batch {
		msg := ExecuteCmd(c)
		if _, isAction := msg.(action.Msg); isAction {
			return msg
		}
		if first == nil {
			first = msg
		}
	}
	return first
}

func (h *PopupHarness) ViewContains(substr string) bool {
	return strings.Contains(StripANSI(h.View()), substr)
}

func (h *PopupHarness) AssertViewContains(substr string) string {
	return AssertContains(h.View(), substr)
}

func (h *PopupHarness) AssertViewNotContains(substr string) string {
	return AssertNotContains(h.View(), substr)
}
