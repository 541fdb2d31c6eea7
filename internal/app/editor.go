package app

import (
	"strings"

	"quill/internal/types"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type editorFocus int

const (
	editorFocusTitle editorFocus = iota
	editorFocusContent
)

// EditorController drives the note editor: a title input over a content
// area. It is opened either empty (new note) or loaded from an existing
// note, and the model decides what to do with the draft on save.
type EditorController struct {
	active  bool
	noteID  string
	title   textinput.Model
	content textarea.Model
	focus   editorFocus
}

func NewEditorController() *EditorController {
	title := textinput.New()
	title.Placeholder = "title (optional)"
	title.CharLimit = 200

	content := textarea.New()
	content.Placeholder = "write something…"
	content.CharLimit = 0

	return &EditorController{
		title:   title,
		content: content,
	}
}

func (e *EditorController) IsOpen() bool {
	return e != nil && e.active
}

func (e *EditorController) OpenNew() {
	e.open("", "", "")
}

func (e *EditorController) OpenNote(note *types.Note) {
	if note == nil {
		e.OpenNew()
		return
	}
	e.open(note.ID, note.Title, note.Content)
}

func (e *EditorController) open(id, title, content string) {
	e.active = true
	e.noteID = id
	e.title.SetValue(title)
	e.content.SetValue(content)
	e.focus = editorFocusTitle
	e.title.Focus()
	e.content.Blur()
}

func (e *EditorController) Close() {
	e.active = false
	e.noteID = ""
	e.title.SetValue("")
	e.title.Blur()
	e.content.SetValue("")
	e.content.Blur()
	e.focus = editorFocusTitle
}

// Draft returns the current note id (empty for a new note) and the
// trimmed title plus content.
func (e *EditorController) Draft() (id, title, content string) {
	return e.noteID, strings.TrimSpace(e.title.Value()), strings.TrimSpace(e.content.Value())
}

func (e *EditorController) Editing() bool {
	return e.noteID != ""
}

func (e *EditorController) Resize(width, height int) {
	if width <= 0 {
		return
	}
	inner := width - 4
	if inner < 10 {
		inner = 10
	}
	e.title.Width = inner
	e.content.SetWidth(inner)
	if height > 8 {
		e.content.SetHeight(height - 6)
	}
}

// HandleKey updates the focused input. done reports that the editor is
// finished, save whether the draft should be persisted.
func (e *EditorController) HandleKey(msg tea.KeyMsg) (done, save bool, cmd tea.Cmd) {
	switch msg.String() {
	case "esc":
		return true, false, nil
	case "ctrl+s":
		return true, true, nil
	case "tab", "shift+tab":
		e.toggleFocus()
		return false, false, nil
	case "enter":
		if e.focus == editorFocusTitle {
			e.toggleFocus()
			return false, false, nil
		}
	}
	if e.focus == editorFocusTitle {
		e.title, cmd = e.title.Update(msg)
		return false, false, cmd
	}
	e.content, cmd = e.content.Update(msg)
	return false, false, cmd
}

func (e *EditorController) toggleFocus() {
	if e.focus == editorFocusTitle {
		e.focus = editorFocusContent
		e.title.Blur()
		e.content.Focus()
		return
	}
	e.focus = editorFocusTitle
	e.content.Blur()
	e.title.Focus()
}

func (e *EditorController) View(width int) string {
	if !e.active {
		return ""
	}
	header := "New note"
	if e.Editing() {
		header = "Edit note"
	}
	lines := []string{
		headerStyle.Render(header),
		"",
		e.title.View(),
		"",
		e.content.View(),
		"",
		helpStyle.Render("tab switch field · ctrl+s save · esc cancel"),
	}
	return strings.Join(lines, "\n")
}
