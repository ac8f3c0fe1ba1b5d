// internal/app/popupctl/manager.go
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sukinote/internal/notes"
	"github.com/llehouerou/sukinote/internal/ui/confirm"
	"github.com/llehouerou/sukinote/internal/ui/editor"
	"github.com/llehouerou/sukinote/internal/ui/helpbindings"
	"github.com/llehouerou/sukinote/internal/ui/popup"
)

// Manager owns the modal popups: the note editor, the delete
// confirmation and the key binding help.
type Manager struct {
	confirm *confirm.Model
	editor  *editor.Model
	help    *helpbindings.Model
	popups  map[Type]popup.Popup
	sizes   map[Type]popup.SizeConfig
	width   int
	height  int
}

// New creates a Manager around the editor the app configured.
func New(ed *editor.Model) *Manager {
	c := confirm.New()
	h := helpbindings.New()
	p := &Manager{
		confirm: &c,
		editor:  ed,
		help:    &h,
		sizes: map[Type]popup.SizeConfig{
			Confirm: popup.SizeAuto,
			Editor:  popup.SizeEditor,
			Help:    popup.SizeHelp,
		},
	}
	p.popups = map[Type]popup.Popup{
		Confirm: p.confirm,
		Editor:  p.editor,
		Help:    p.help,
	}
	return p
}

// SetSize updates the screen dimensions. An open editor is resized and
// its dial moved; the returned command carries the dial's ticks.
func (p *Manager) SetSize(width, height int) tea.Cmd {
	p.width = width
	p.height = height
	if p.help.Active() {
		p.help.SetSize(width, height)
	}
	if !p.editor.Active() {
		return nil
	}
	w, h := popup.InnerSize(width, height, p.sizes[Editor])
	cmd := p.editor.Resize(w, h)
	p.placeEditor()
	return cmd
}

// IsVisible returns true if the specified popup type is visible.
func (p *Manager) IsVisible(t Type) bool {
	pop, ok := p.popups[t]
	return ok && pop.Active()
}

// ActivePopup returns which popup is currently active (highest priority).
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// ShowConfirm displays a confirmation dialog. context comes back in the
// confirm.Result.
func (p *Manager) ShowConfirm(title, message string, context any) {
	size := p.sizes[Confirm]
	w := min(p.width, size.MaxWidth) - 6
	p.confirm.Show(title, message, context, max(w, 0), p.height)
}

// ShowEditor opens the editor on n, or on a new note of category when n
// is nil.
func (p *Manager) ShowEditor(n *notes.Note, category notes.Category) tea.Cmd {
	w, h := popup.InnerSize(p.width, p.height, p.sizes[Editor])
	cmd := p.editor.Start(n, category, w, h)
	p.placeEditor()
	return tea.Batch(cmd, p.editor.Init())
}

// ShowHelp opens the key binding help.
func (p *Manager) ShowHelp() {
	p.help.Show(p.width, p.height)
}

func (p *Manager) placeEditor() {
	x, y := popup.ContentOrigin(p.width, p.height, p.sizes[Editor])
	p.editor.SetOrigin(x, y)
}

// Hide closes the specified popup type.
func (p *Manager) Hide(t Type) {
	switch t {
	case None:
		// Nothing to hide
	case Confirm:
		p.confirm.Reset()
	case Editor:
		p.editor.Reset()
	case Help:
		p.help.Reset()
	}
}

// Editor returns the editor for direct access.
func (p *Manager) Editor() *editor.Model {
	return p.editor
}

// HandleInput routes a key or mouse event to the active popup. Returns
// (handled, cmd) where handled is true if a popup consumed the event.
func (p *Manager) HandleInput(msg tea.Msg) (bool, tea.Cmd) {
	active := p.ActivePopup()
	if active == None {
		return false, nil
	}
	_, cmd := p.popups[active].Update(msg)
	return true, cmd
}

// Update forwards a non-input message (ticks, blinks, editor dial events)
// to every open popup.
func (p *Manager) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range RenderOrder {
		if !p.IsVisible(t) {
			continue
		}
		_, cmd := p.popups[t].Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// RenderOverlay renders active popup(s) on top of the base view.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		if !p.IsVisible(t) {
			continue
		}
		rendered := popup.RenderBordered(p.popups[t].View(), p.width, p.height, p.sizes[t])
		base = popup.Compose(base, rendered, p.width, p.height)
	}
	return base
}
