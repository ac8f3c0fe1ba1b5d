// Package editor provides the note editor popup: a category dial, title,
// anniversary date and free-form content.
package editor

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sukinote/internal/config"
	"github.com/llehouerou/sukinote/internal/errmsg"
	"github.com/llehouerou/sukinote/internal/notes"
	"github.com/llehouerou/sukinote/internal/ui"
	"github.com/llehouerou/sukinote/internal/ui/action"
	"github.com/llehouerou/sukinote/internal/ui/dialview"
	"github.com/llehouerou/sukinote/internal/ui/popup"
	"github.com/llehouerou/sukinote/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// DialID identifies the editor's category dial in dialview messages.
const DialID = 3

// DateLayout is the anniversary date format typed by the user.
const DateLayout = notes.DateLayout

const (
	titleLimit   = 80
	contentLimit = 2000
	// Rows used by everything except the content area: headings, dial,
	// title, date line, error and hint.
	fixedRows = 14
)

// Field is an input the editor can focus.
type Field int

const (
	FieldCategory Field = iota
	FieldTitle
	FieldDate
	FieldAnnual
	FieldContent
)

// Model is the note editor popup.
type Model struct {
	ui.Base
	dialCfg  config.DialConfig
	dialOpts []dialview.Option
	now      func() time.Time

	active bool
	isNew  bool
	note   notes.Note
	focus  Field
	err    string

	category *dialview.Model
	title    textinput.Model
	date     textinput.Model
	annual   bool
	content  textarea.Model
}

// New creates an editor. dialCfg configures its category dial; the dial
// never compacts inside the editor.
func New(dialCfg config.DialConfig, opts ...dialview.Option) Model {
	off := false
	dialCfg.Compact = &off

	title := textinput.New()
	title.Placeholder = "What to remember"
	title.CharLimit = titleLimit
	title.Prompt = "> "

	date := textinput.New()
	date.Placeholder = DateLayout
	date.CharLimit = len(DateLayout)
	date.Width = len(DateLayout) + 1
	date.Prompt = "> "

	content := textarea.New()
	content.Placeholder = "Details..."
	content.CharLimit = contentLimit
	content.ShowLineNumbers = false

	return Model{
		dialCfg:  dialCfg,
		dialOpts: opts,
		now:      time.Now,
		title:    title,
		date:     date,
		content:  content,
	}
}

// Start opens the editor on an existing note, or on a new note of
// category when n is nil. All opens new notes on the first category.
func (m *Model) Start(n *notes.Note, category notes.Category, width, height int) tea.Cmd {
	if n == nil {
		if !category.Valid() {
			category = notes.Categories()[0]
		}
		m.note = notes.New(category, "", "", m.now())
		m.isNew = true
	} else {
		m.note = *n
		m.isNew = false
	}
	m.active = true
	m.err = ""

	m.title.SetValue(m.note.Title)
	m.title.CursorEnd()
	m.content.SetValue(m.note.Content)
	m.date.SetValue("")
	if m.note.AnniversaryDate != nil {
		m.date.SetValue(m.note.AnniversaryDate.Format(DateLayout))
	}
	m.date.CursorEnd()
	m.annual = m.note.Annual

	if m.category != nil {
		m.category.Dispose()
	}
	initial := max(0, m.note.Category.SortOrder())
	m.category = dialview.New(DialID, dialview.TerminalConfig(m.dialCfg, initial), notes.EditorDialItems(), m.dialOpts...)

	return tea.Batch(m.Resize(width, height), m.setFocus(FieldTitle))
}

// Reset closes the editor.
func (m *Model) Reset() {
	m.active = false
	m.err = ""
	if m.category != nil {
		m.category.Dispose()
		m.category = nil
	}
}

// Active returns whether the editor is open.
func (m Model) Active() bool {
	return m.active
}

// Focused returns the focused field.
func (m Model) Focused() Field {
	return m.focus
}

// Category returns the category currently centered in the dial.
func (m Model) Category() notes.Category {
	if m.category == nil {
		return m.note.Category
	}
	cats := notes.Categories()
	if i := m.category.Centered(); i >= 0 && i < len(cats) {
		return cats[i]
	}
	return m.note.Category
}

// SetOrigin places the category dial on screen for mouse input; x, y is
// the popup's content origin.
func (m *Model) SetOrigin(x, y int) {
	if m.category != nil {
		m.category.SetOrigin(x, y+dialRow)
	}
}

// dialRow is the dial's first row inside the popup content.
const dialRow = 3

// SetSize implements popup.Popup. It sizes the text inputs only; use
// Resize so the dial's resize ticks are not lost.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.title.Width = max(10, width-4)
	m.content.SetWidth(max(10, width))
	m.content.SetHeight(max(3, height-fixedRows))
}

// Resize sizes the editor and its category dial.
func (m *Model) Resize(width, height int) tea.Cmd {
	m.SetSize(width, height)
	if m.category == nil {
		return nil
	}
	return m.category.SetWidth(width)
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	switch msg := msg.(type) {
	case dialview.CenteredChangedMsg, dialview.ScrollEndedMsg, dialview.TappedMsg,
		dialview.ScrollBeganMsg, dialview.PulseMsg:
		// The dial is read through Category(); the date fields follow it.
		if m.focus == FieldDate || m.focus == FieldAnnual {
			if m.Category() != notes.CategoryAnniversary {
				return m, m.setFocus(FieldCategory)
			}
		}
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		if m.category.Contains(msg.X, msg.Y) && msg.Action == tea.MouseActionPress {
			cmd := m.setFocus(FieldCategory)
			return m, tea.Batch(cmd, m.category.Update(msg))
		}
		return m, m.category.Update(msg)
	}

	// Frame ticks for the dial and cursor blinks for the inputs.
	if cmd := m.category.Update(msg); cmd != nil {
		return m, cmd
	}
	return m, m.updateFocused(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.Reset()
		return action.Cmd(source, Result{Canceled: true})
	case "ctrl+s":
		return m.submit()
	case "tab":
		return m.setFocus(m.nextField(1))
	case "shift+tab":
		return m.setFocus(m.nextField(-1))
	case "enter":
		switch m.focus {
		case FieldCategory, FieldTitle, FieldDate:
			return m.setFocus(m.nextField(1))
		case FieldAnnual:
			m.annual = !m.annual
			return nil
		}
	case " ":
		if m.focus == FieldAnnual {
			m.annual = !m.annual
			return nil
		}
	}

	if m.focus == FieldCategory {
		return m.category.Update(msg)
	}
	return m.updateFocused(msg)
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case FieldTitle:
		m.title, cmd = m.title.Update(msg)
	case FieldDate:
		m.date, cmd = m.date.Update(msg)
	case FieldContent:
		m.content, cmd = m.content.Update(msg)
	}
	return cmd
}

// fields lists the focusable fields in tab order; the date fields only
// exist for anniversaries.
func (m *Model) fields() []Field {
	if m.Category() == notes.CategoryAnniversary {
		return []Field{FieldCategory, FieldTitle, FieldDate, FieldAnnual, FieldContent}
	}
	return []Field{FieldCategory, FieldTitle, FieldContent}
}

func (m *Model) nextField(delta int) Field {
	fields := m.fields()
	pos := 0
	for i, f := range fields {
		if f == m.focus {
			pos = i
		}
	}
	return fields[(pos+delta+len(fields))%len(fields)]
}

func (m *Model) setFocus(f Field) tea.Cmd {
	m.focus = f
	m.title.Blur()
	m.date.Blur()
	m.content.Blur()
	m.category.SetFocused(f == FieldCategory)
	switch f {
	case FieldTitle:
		return m.title.Focus()
	case FieldDate:
		return m.date.Focus()
	case FieldContent:
		return m.content.Focus()
	}
	return nil
}

func (m *Model) submit() tea.Cmd {
	n, err := m.build()
	if err != "" {
		m.err = err
		return nil
	}
	isNew := m.isNew
	m.Reset()
	return action.Cmd(source, Result{Note: n, IsNew: isNew})
}

// build assembles the note from the fields, returning a user-facing error
// message when it cannot be saved.
func (m *Model) build() (notes.Note, string) {
	n := m.note
	n.Category = m.Category()
	n.Title = m.title.Value()
	n.Content = m.content.Value()
	n.AnniversaryDate = nil
	n.Annual = false

	if n.Category == notes.CategoryAnniversary {
		if s := strings.TrimSpace(m.date.Value()); s != "" {
			d, err := notes.ParseDate(s)
			if err != nil {
				return notes.Note{}, errmsg.FormatWith(errmsg.OpDateParse, s, err)
			}
			n.AnniversaryDate = &d
		}
		n.Annual = m.annual
	}

	n = n.Normalize()
	if err := n.Validate(); err != nil {
		return notes.Note{}, errmsg.Format(errmsg.OpNoteValidate, err)
	}
	return n, ""
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active || !m.Sized() {
		return ""
	}
	t := styles.T()

	heading := "Edit note"
	if m.isNew {
		heading = "New note"
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render(heading))
	b.WriteString("\n\n")
	b.WriteString(m.label("Category", FieldCategory) + "\n")
	b.WriteString(m.category.View() + "\n")
	b.WriteString(m.label("Title", FieldTitle) + "\n")
	b.WriteString(m.title.View() + "\n\n")

	if m.Category() == notes.CategoryAnniversary {
		check := "[ ]"
		if m.annual {
			check = "[x]"
		}
		b.WriteString(m.label("Date", FieldDate) + "  " + m.date.View() + "   ")
		b.WriteString(m.label(check+" Every year", FieldAnnual) + "\n\n")
	} else {
		b.WriteString("\n\n")
	}

	b.WriteString(m.label("Content", FieldContent) + "\n")
	b.WriteString(m.content.View() + "\n")

	if m.err != "" {
		b.WriteString(t.S().Error.Render(m.err))
	}
	b.WriteString("\n")
	b.WriteString(t.S().Subtle.Render("Tab: next field · ←/→: category · Ctrl+S: save · Esc: cancel"))
	return b.String()
}

func (m *Model) label(text string, f Field) string {
	t := styles.T()
	if m.focus == f {
		return t.S().Selected.Render(text)
	}
	return t.S().Muted.Render(text)
}
