package app

import (
	"fmt"
	"time"

	"quill/internal/types"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type uiMode int

const (
	modeList uiMode = iota
	modeSearch
	modeConfirm
	modeEditor
	modePreview
)

type Model struct {
	api     NoteAPI
	version string

	list      *NoteList
	selection *SelectionController
	confirm   *ConfirmController
	editor    *EditorController
	preview   *PreviewController

	mode        uiMode
	cursor      int
	query       string
	searchInput textinput.Model
	spinner     spinner.Model

	loading  bool
	fetchSeq int
	pending  map[string]bool

	width  int
	height int

	toastText  string
	toastLevel toastLevel
	toastUntil time.Time

	quitting bool
}

func NewModel(api NoteAPI, version string) *Model {
	search := textinput.New()
	search.Placeholder = "search titles"
	search.Prompt = "/"
	search.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return &Model{
		api:         api,
		version:     version,
		list:        NewNoteList(),
		selection:   NewSelectionController(),
		confirm:     NewConfirmController(),
		editor:      NewEditorController(),
		preview:     NewPreviewController(),
		searchInput: search,
		spinner:     sp,
		pending:     map[string]bool{},
	}
}

func Run(api NoteAPI, version string) error {
	program := tea.NewProgram(NewModel(api, version), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.reload(), m.spinner.Tick)
}

// reload bumps the fetch sequence so stale in-flight responses are
// dropped when they finally land.
func (m *Model) reload() tea.Cmd {
	m.fetchSeq++
	m.loading = true
	return fetchNotesCmd(m.api, m.fetchSeq)
}

func (m *Model) visible() []*types.Note {
	return m.list.Visible(m.query)
}

func (m *Model) cursorNote() *types.Note {
	visible := m.visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return nil
	}
	return visible[m.cursor]
}

func (m *Model) clampCursor() {
	visible := m.visible()
	if len(visible) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= len(visible) {
		m.cursor = len(visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.Resize(msg.Width, msg.Height)
		m.preview.Resize(msg.Width, msg.Height)
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case notesMsg:
		return m.handleNotesMsg(msg)
	case pinToggledMsg:
		return m.handlePinToggledMsg(msg)
	case archiveToggledMsg:
		return m.handleArchiveToggledMsg(msg)
	case notesDeletedMsg:
		return m.handleNotesDeletedMsg(msg)
	case noteSavedMsg:
		return m.handleNoteSavedMsg(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleNotesMsg(msg notesMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.fetchSeq {
		return m, nil
	}
	m.loading = false
	if msg.err != nil {
		m.showErrorToast("load failed: " + msg.err.Error())
		return m, nil
	}
	m.list.Replace(msg.notes)
	m.selection.Clear()
	m.clampCursor()
	return m, nil
}

func (m *Model) handlePinToggledMsg(msg pinToggledMsg) (tea.Model, tea.Cmd) {
	delete(m.pending, msg.id)
	if msg.err != nil {
		m.showErrorToast("pin failed: " + msg.err.Error())
		return m, nil
	}
	if msg.note != nil {
		m.list.Apply(msg.note)
		m.clampCursor()
		if msg.note.Pinned.Bool() {
			m.showInfoToast("pinned")
		} else {
			m.showInfoToast("unpinned")
		}
	}
	return m, nil
}

func (m *Model) handleArchiveToggledMsg(msg archiveToggledMsg) (tea.Model, tea.Cmd) {
	delete(m.pending, msg.id)
	if msg.err != nil {
		m.showErrorToast("archive failed: " + msg.err.Error())
		return m, nil
	}
	if msg.note != nil {
		m.list.Apply(msg.note)
		m.clampCursor()
		if msg.note.Archived.Bool() {
			m.showInfoToast("archived")
		} else {
			m.showInfoToast("unarchived")
		}
	}
	return m, nil
}

func (m *Model) handleNotesDeletedMsg(msg notesDeletedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if len(msg.failed) > 0 {
		// Leave the list and selection untouched so nothing silently
		// disappears; the user can retry or reload.
		m.showErrorToast(fmt.Sprintf("delete failed for %d of %d notes", len(msg.failed), len(msg.ids)))
		return m, nil
	}
	removed := m.list.Remove(msg.ids)
	m.selection.Clear()
	m.clampCursor()
	if removed == 1 {
		m.showInfoToast("deleted 1 note")
	} else {
		m.showInfoToast(fmt.Sprintf("deleted %d notes", removed))
	}
	return m, nil
}

func (m *Model) handleNoteSavedMsg(msg noteSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.showErrorToast("save failed: " + msg.err.Error())
		return m, nil
	}
	m.editor.Close()
	m.mode = modeList
	m.showInfoToast("saved")
	return m, m.reload()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeConfirm:
		return m.handleConfirmKey(msg)
	case modeEditor:
		return m.handleEditorKey(msg)
	case modePreview:
		return m.handlePreviewKey(msg)
	}
	return m.handleListKey(msg)
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
		return m, nil
	case "g", "home":
		m.cursor = 0
		return m, nil
	case "G", "end":
		if n := len(m.visible()); n > 0 {
			m.cursor = n - 1
		}
		return m, nil
	case "enter":
		return m.tapCursorNote()
	case " ":
		if note := m.cursorNote(); note != nil {
			m.selection.LongPress(note.ID)
		}
		return m, nil
	case "esc":
		if m.selection.Selecting() {
			m.selection.Clear()
			return m, nil
		}
		if m.query != "" {
			m.query = ""
			m.searchInput.SetValue("")
			m.clampCursor()
		}
		return m, nil
	case "/":
		m.mode = modeSearch
		m.searchInput.SetValue(m.query)
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()
	case "p":
		return m.togglePinAtCursor()
	case "a":
		return m.toggleArchiveAtCursor()
	case "d":
		return m.requestDelete()
	case "n":
		m.mode = modeEditor
		m.editor.OpenNew()
		m.editor.Resize(m.width, m.height)
		return m, nil
	case "o":
		if note := m.cursorNote(); note != nil {
			m.mode = modePreview
			m.preview.Open(note)
			m.preview.Resize(m.width, m.height)
		}
		return m, nil
	case "y":
		return m.yankCursorNote()
	case "r":
		return m, m.reload()
	}
	return m, nil
}

// tapCursorNote is the tap dispatcher: open the note in browse mode,
// toggle its selection while selecting.
func (m *Model) tapCursorNote() (tea.Model, tea.Cmd) {
	note := m.cursorNote()
	if note == nil {
		return m, nil
	}
	switch m.selection.Tap(note.ID) {
	case tapActionOpen:
		m.mode = modeEditor
		m.editor.OpenNote(note)
		m.editor.Resize(m.width, m.height)
	}
	return m, nil
}

func (m *Model) togglePinAtCursor() (tea.Model, tea.Cmd) {
	note := m.cursorNote()
	if note == nil {
		return m, nil
	}
	if m.pending[note.ID] {
		return m, nil
	}
	m.pending[note.ID] = true
	return m, togglePinCmd(m.api, note)
}

func (m *Model) toggleArchiveAtCursor() (tea.Model, tea.Cmd) {
	note := m.cursorNote()
	if note == nil {
		return m, nil
	}
	if m.pending[note.ID] {
		return m, nil
	}
	m.pending[note.ID] = true
	return m, toggleArchiveCmd(m.api, note.ID, !note.Archived.Bool())
}

// requestDelete opens the confirmation prompt for either the current
// selection or, in browse mode, the note under the cursor.
func (m *Model) requestDelete() (tea.Model, tea.Cmd) {
	ids := m.deleteTargets()
	if len(ids) == 0 {
		return m, nil
	}
	title := "Delete note?"
	message := "This permanently deletes 1 note."
	if len(ids) > 1 {
		title = fmt.Sprintf("Delete %d notes?", len(ids))
		message = fmt.Sprintf("This permanently deletes %d notes.", len(ids))
	}
	m.mode = modeConfirm
	m.confirm.Open(title, message, "Delete", "Cancel")
	return m, nil
}

func (m *Model) deleteTargets() []string {
	if m.selection.Selecting() {
		return m.selection.IDs()
	}
	if note := m.cursorNote(); note != nil {
		return []string{note.ID}
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.searchInput.Blur()
		m.searchInput.SetValue(m.query)
		return m, nil
	case "enter":
		m.mode = modeList
		m.searchInput.Blur()
		m.query = m.searchInput.Value()
		m.cursor = 0
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	// Filter live while typing so results track each keystroke.
	m.query = m.searchInput.Value()
	m.clampCursor()
	return m, cmd
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	handled, choice := m.confirm.HandleKey(msg)
	if !handled {
		return m, nil
	}
	switch choice {
	case confirmChoiceConfirm:
		ids := m.deleteTargets()
		m.confirm.Close()
		m.mode = modeList
		m.loading = true
		return m, tea.Batch(deleteNotesCmd(m.api, ids), m.spinner.Tick)
	case confirmChoiceCancel:
		m.confirm.Close()
		m.mode = modeList
	}
	return m, nil
}

func (m *Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	done, save, cmd := m.editor.HandleKey(msg)
	if !done {
		return m, cmd
	}
	if !save {
		m.editor.Close()
		m.mode = modeList
		return m, nil
	}
	id, title, content := m.editor.Draft()
	if content == "" {
		m.showWarningToast("content is required")
		return m, nil
	}
	return m, saveNoteCmd(m.api, id, title, content)
}

func (m *Model) handlePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "o":
		m.preview.Close()
		m.mode = modeList
		return m, nil
	}
	return m, m.preview.HandleKey(msg)
}

func (m *Model) yankCursorNote() (tea.Model, tea.Cmd) {
	note := m.cursorNote()
	if note == nil {
		return m, nil
	}
	if err := copyTextToClipboard(note.Content); err != nil {
		m.showErrorToast("copy failed: " + err.Error())
		return m, nil
	}
	m.showInfoToast("copied to clipboard")
	return m, nil
}
