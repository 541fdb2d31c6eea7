package app

import (
	"fmt"
	"strings"

	"quill/internal/types"

	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"
)

const (
	minListWidth  = 40
	pinMarker     = "●"
	selectedMark  = "[x]"
	unselectedBox = "[ ]"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	width := m.width
	if width <= 0 {
		width = minListWidth
	}

	switch m.mode {
	case modeEditor:
		return m.editor.View(width)
	case modePreview:
		return m.preview.View()
	case modeConfirm:
		return m.viewWithDialog(width)
	}
	return m.viewList(width)
}

func (m *Model) viewWithDialog(width int) string {
	dialog := m.confirm.View(width)
	base := m.viewList(width)
	return base + "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, dialog)
}

func (m *Model) viewList(width int) string {
	var b strings.Builder

	header := "quill"
	if m.version != "" {
		header += " " + m.version
	}
	b.WriteString(headerStyle.Render(header))
	if m.loading {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n")

	if m.mode == modeSearch {
		b.WriteString(searchStyle.Render(m.searchInput.View()))
		b.WriteString("\n")
	} else if m.query != "" {
		b.WriteString(searchStyle.Render("/" + m.query))
		b.WriteString("\n")
	}

	visible := m.visible()
	if len(visible) == 0 {
		if m.query != "" {
			b.WriteString(statusStyle.Render("no notes match"))
		} else if m.loading {
			b.WriteString(statusStyle.Render("loading…"))
		} else {
			b.WriteString(statusStyle.Render("no notes yet — press n to create one"))
		}
		b.WriteString("\n")
	}
	for i, note := range visible {
		b.WriteString(m.renderRow(note, i == m.cursor, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine(width))
	if toast := m.toastLine(width); toast != "" {
		b.WriteString("\n")
		b.WriteString(toast)
	}
	return b.String()
}

func (m *Model) renderRow(note *types.Note, active bool, width int) string {
	var prefix string
	if m.selection.Selecting() {
		if m.selection.Selected(note.ID) {
			prefix = selectedMarkStyle.Render(selectedMark) + " "
		} else {
			prefix = unselectedBox + " "
		}
	}

	marker := "  "
	if note.Pinned.Bool() {
		marker = pinnedStyle.Render(pinMarker) + " "
	}

	title := note.Title
	if title == "" {
		title = firstContentLine(note.Content)
	}
	if title == "" {
		title = "(untitled)"
	}
	maxTitle := width - 8
	if maxTitle < 8 {
		maxTitle = 8
	}
	title = runewidth.Truncate(title, maxTitle, "…")

	line := marker + prefix + titleStyle.Render(title)
	if active {
		return selectedStyle.Render("> ") + line
	}
	return "  " + line
}

func firstContentLine(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}

func (m *Model) statusLine(width int) string {
	var status string
	if m.selection.Selecting() {
		status = fmt.Sprintf("%d selected · enter toggle · d delete · esc cancel", m.selection.Count())
	} else {
		status = "enter open · space select · p pin · a archive · / search · n new · o preview · y copy · r reload · q quit"
	}
	return helpStyle.Render(truncateToWidth(status, width))
}
