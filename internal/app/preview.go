package app

import (
	"strings"
	"sync"

	"quill/internal/types"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// PreviewController renders a note's content as markdown inside a
// scrollable viewport.
type PreviewController struct {
	active   bool
	title    string
	raw      string
	viewport viewport.Model
	width    int
}

func NewPreviewController() *PreviewController {
	return &PreviewController{
		viewport: viewport.New(80, 20),
	}
}

func (p *PreviewController) IsOpen() bool {
	return p != nil && p.active
}

func (p *PreviewController) Open(note *types.Note) {
	if note == nil {
		return
	}
	p.active = true
	p.title = note.Title
	p.raw = note.Content
	p.render()
	p.viewport.GotoTop()
}

func (p *PreviewController) Close() {
	p.active = false
	p.title = ""
	p.raw = ""
	p.viewport.SetContent("")
}

func (p *PreviewController) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.width = width
	p.viewport.Width = width
	if height > 4 {
		p.viewport.Height = height - 4
	}
	if p.active {
		p.render()
	}
}

func (p *PreviewController) render() {
	width := p.width
	if width <= 0 {
		width = 80
	}
	p.viewport.SetContent(renderMarkdown(p.raw, width-2))
}

func (p *PreviewController) HandleKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

func (p *PreviewController) View() string {
	if !p.active {
		return ""
	}
	title := p.title
	if title == "" {
		title = "Untitled"
	}
	lines := []string{
		headerStyle.Render(title),
		p.viewport.View(),
		helpStyle.Render("↑/↓ scroll · esc back"),
	}
	return strings.Join(lines, "\n")
}

var (
	rendererMu      sync.Mutex
	renderersByCols = map[int]*glamour.TermRenderer{}
)

func renderMarkdown(input string, width int) string {
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := getRenderer(width)
	if r == nil {
		return input
	}
	out, err := r.Render(input)
	if err != nil {
		return input
	}
	return strings.TrimRight(out, "\n")
}

func getRenderer(width int) *glamour.TermRenderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if renderer, ok := renderersByCols[width]; ok && renderer != nil {
		return renderer
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderersByCols[width] = r
	return r
}
