package app

import "testing"

func TestSelectionTapOpensInBrowseMode(t *testing.T) {
	s := NewSelectionController()
	if s.Selecting() {
		t.Fatalf("fresh controller must start in browse mode")
	}
	if got := s.Tap("note_1"); got != tapActionOpen {
		t.Fatalf("expected open action, got %v", got)
	}
	if s.Count() != 0 {
		t.Fatalf("browse tap must not select anything")
	}
}

func TestSelectionLongPressEntersSelecting(t *testing.T) {
	s := NewSelectionController()
	s.LongPress("note_1")
	if !s.Selecting() {
		t.Fatalf("long-press must enter selection mode")
	}
	if !s.Selected("note_1") || s.Count() != 1 {
		t.Fatalf("long-pressed note must be selected")
	}

	if got := s.Tap("note_2"); got != tapActionToggled {
		t.Fatalf("tap while selecting must toggle, got %v", got)
	}
	if s.Count() != 2 {
		t.Fatalf("expected 2 selected, got %d", s.Count())
	}

	if got := s.Tap("note_1"); got != tapActionToggled {
		t.Fatalf("expected toggle, got %v", got)
	}
	if s.Selected("note_1") {
		t.Fatalf("second tap must deselect")
	}
	if !s.Selecting() {
		t.Fatalf("selection mode persists while notes remain selected")
	}
}

func TestSelectionEmptiesBackToBrowse(t *testing.T) {
	s := NewSelectionController()
	s.LongPress("note_1")
	s.Tap("note_1")
	if s.Selecting() {
		t.Fatalf("deselecting the last note must return to browse mode")
	}
	if got := s.Tap("note_1"); got != tapActionOpen {
		t.Fatalf("taps open again after selection empties, got %v", got)
	}
}

func TestSelectionLongPressTogglesWhileSelecting(t *testing.T) {
	s := NewSelectionController()
	s.LongPress("note_1")
	s.LongPress("note_2")
	if s.Count() != 2 {
		t.Fatalf("long-press while selecting adds to the selection")
	}
	s.LongPress("note_2")
	if s.Count() != 1 || s.Selected("note_2") {
		t.Fatalf("repeat long-press removes from the selection")
	}
}

func TestSelectionClear(t *testing.T) {
	s := NewSelectionController()
	s.LongPress("note_1")
	s.Tap("note_2")
	s.Clear()
	if s.Selecting() || s.Count() != 0 {
		t.Fatalf("clear must reset mode and selection")
	}
}
