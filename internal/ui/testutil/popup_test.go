package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/sukinote/internal/ui/action"
	"github.com/llehouerou/sukinote/internal/ui/popup"
)

type renamed struct{ Title string }

func (renamed) ActionType() string { return "rename.done" }

// renamePopup collects a title and reports it on enter.
type renamePopup struct {
	title  string
	keys   []string
	active bool
	w, h   int
}

var _ popup.Popup = (*renamePopup)(nil)

func (p *renamePopup) Init() tea.Cmd { return func() tea.Msg { return "blink" } }

func (p *renamePopup) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	p.keys = append(p.keys, key.String())
	switch key.Type {
	case tea.KeyEnter:
		p.active = false
		title := p.title
		return p, func() tea.Msg {
			return action.Msg{Source: "rename", Action: renamed{Title: title}}
		}
	case tea.KeyEscape:
		p.active = false
	case tea.KeyRunes:
		p.title += string(key.Runes)
	}
	return p, nil
}

func (p *renamePopup) View() string { return "Title: \x1b[1m" + p.title + "\x1b[0m" }

func (p *renamePopup) SetSize(w, h int) { p.w, p.h = w, h }

func (p *renamePopup) Active() bool { return p.active }

func newRename() (*renamePopup, *PopupHarness) {
	p := &renamePopup{active: true}
	return p, NewPopupHarness(p)
}

func TestPopupHarness_KeepsInitCommand(t *testing.T) {
	p, h := newRename()
	assert.Same(t, p, h.Popup())
	require.Len(t, h.Commands(), 1)
	assert.Equal(t, "blink", ExecuteCmd(h.LastCommand()))
	assert.Nil(t, h.LastAction(), "init reports no action")
}

func TestPopupHarness_TypeAndEnter(t *testing.T) {
	p, h := newRename()
	h.ClearCommands()

	h.Type("Trip")
	assert.Empty(t, h.Commands(), "typing returns no commands")
	assert.True(t, h.ViewContains("Title: Trip"), "view is compared without styling")
	assert.Empty(t, h.AssertViewContains("Trip"))
	assert.NotEmpty(t, h.AssertViewNotContains("Trip"))

	h.SendEnter()
	assert.False(t, p.Active())
	assert.Equal(t, renamed{Title: "Trip"}, h.LastAction())
}

func TestPopupHarness_KeyNames(t *testing.T) {
	p, h := newRename()

	h.SendKey("tab")
	h.SendTab()
	h.SendUp()
	h.SendDown()
	h.SendNamed("backspace")
	h.SendEscape()

	assert.Equal(t, []string{"tab", "tab", "up", "down", "backspace", "esc"}, p.keys)
	assert.Equal(t, "tab", p.title, "SendKey types its argument")
	assert.False(t, p.Active())
}

func TestPopupHarness_SetSize(t *testing.T) {
	p, h := newRename()
	h.SetSize(64, 20)
	assert.Equal(t, [2]int{64, 20}, [2]int{p.w, p.h})
}

func TestPopupHarness_IgnoresOtherMessages(t *testing.T) {
	_, h := newRename()
	h.ClearCommands()
	assert.Nil(t, h.SendMsg(tea.WindowSizeMsg{Width: 80, Height: 24}))
	assert.Nil(t, h.LastCommand())
	assert.Nil(t, h.LastAction())
}

func TestExecuteCmd(t *testing.T) {
	done := action.Msg{Source: "rename", Action: renamed{Title: "x"}}
	blink := func() tea.Msg { return "blink" }

	tests := []struct {
		name string
		cmd  tea.Cmd
		want tea.Msg
	}{
		{"nil", nil, nil},
		{"plain", blink, "blink"},
		{"action wins in batch", tea.Batch(blink, func() tea.Msg { return done }), done},
		{"nested batch", tea.Batch(blink, tea.Batch(blink, func() tea.Msg { return done })), done},
		{"first message without action", tea.Batch(blink, func() tea.Msg { return "later" }), "blink"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExecuteCmd(tt.cmd))
		})
	}
}
