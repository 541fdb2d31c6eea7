package app

// selectionMode is the two-state tap dispatcher for the note list.
// In browse mode a tap opens the note; once a long-press starts a
// selection, taps toggle membership until the selection empties out.
type selectionMode int

const (
	selectionModeBrowse selectionMode = iota
	selectionModeSelecting
)

type tapAction int

const (
	tapActionNone tapAction = iota
	tapActionOpen
	tapActionToggled
)

type SelectionController struct {
	mode selectionMode
	ids  map[string]struct{}
}

func NewSelectionController() *SelectionController {
	return &SelectionController{
		mode: selectionModeBrowse,
		ids:  map[string]struct{}{},
	}
}

func (s *SelectionController) Selecting() bool {
	return s != nil && s.mode == selectionModeSelecting
}

// Tap dispatches on the current mode: open in browse, toggle while
// selecting. Toggling the last selected note off drops back to browse.
func (s *SelectionController) Tap(id string) tapAction {
	if id == "" {
		return tapActionNone
	}
	if s.mode == selectionModeBrowse {
		return tapActionOpen
	}
	s.toggle(id)
	if len(s.ids) == 0 {
		s.mode = selectionModeBrowse
	}
	return tapActionToggled
}

// LongPress enters selection mode with the pressed note selected. A
// long-press while already selecting behaves like a tap toggle.
func (s *SelectionController) LongPress(id string) {
	if id == "" {
		return
	}
	if s.mode == selectionModeBrowse {
		s.mode = selectionModeSelecting
		s.ids = map[string]struct{}{id: {}}
		return
	}
	s.toggle(id)
	if len(s.ids) == 0 {
		s.mode = selectionModeBrowse
	}
}

// Clear empties the selection and returns to browse mode.
func (s *SelectionController) Clear() {
	s.mode = selectionModeBrowse
	s.ids = map[string]struct{}{}
}

func (s *SelectionController) Selected(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *SelectionController) Count() int {
	return len(s.ids)
}

// IDs returns the selected ids in no particular order.
func (s *SelectionController) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}

func (s *SelectionController) toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}
