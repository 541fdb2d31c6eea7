package app

import (
	"testing"

	"quill/internal/types"
)

func testNote(id, title string, pinned, archived bool) *types.Note {
	return &types.Note{
		ID:       id,
		Title:    title,
		Content:  "content of " + id,
		Pinned:   types.Flag(pinned),
		Archived: types.Flag(archived),
	}
}

func visibleIDs(l *NoteList, query string) []string {
	notes := l.Visible(query)
	ids := make([]string, 0, len(notes))
	for _, note := range notes {
		ids = append(ids, note.ID)
	}
	return ids
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestSortNotesPinnedFirstIsStable(t *testing.T) {
	list := NewNoteList()
	list.Replace([]*types.Note{
		testNote("note_a", "alpha", false, false),
		testNote("note_b", "beta", true, false),
		testNote("note_c", "gamma", false, false),
		testNote("note_d", "delta", true, false),
	})

	got := visibleIDs(list, "")
	want := []string{"note_b", "note_d", "note_a", "note_c"}
	if !equalIDs(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestVisibleFiltersArchivedAndSearches(t *testing.T) {
	list := NewNoteList()
	list.Replace([]*types.Note{
		testNote("note_1", "Groceries", false, false),
		testNote("note_2", "Taxes", true, false),
		testNote("note_3", "Old draft", false, true),
	})

	if got := visibleIDs(list, ""); !equalIDs(got, []string{"note_2", "note_1"}) {
		t.Fatalf("empty query: got %v", got)
	}
	if got := visibleIDs(list, "tax"); !equalIDs(got, []string{"note_2"}) {
		t.Fatalf("query tax: got %v", got)
	}
	if got := visibleIDs(list, "TAX"); !equalIDs(got, []string{"note_2"}) {
		t.Fatalf("query should be case-insensitive: got %v", got)
	}
	if got := visibleIDs(list, "zzz"); len(got) != 0 {
		t.Fatalf("query zzz: got %v", got)
	}
	if got := visibleIDs(list, "draft"); len(got) != 0 {
		t.Fatalf("archived notes must stay hidden even when matching: got %v", got)
	}
}

func TestSetPinnedResorts(t *testing.T) {
	list := NewNoteList()
	list.Replace([]*types.Note{
		testNote("note_1", "first", false, false),
		testNote("note_2", "second", false, false),
	})

	if !list.SetPinned("note_2", true) {
		t.Fatalf("expected note_2 to exist")
	}
	if got := visibleIDs(list, ""); !equalIDs(got, []string{"note_2", "note_1"}) {
		t.Fatalf("pin should float note_2 to the top: got %v", got)
	}

	if !list.SetPinned("note_2", false) {
		t.Fatalf("expected note_2 to exist")
	}
	if got := visibleIDs(list, ""); !equalIDs(got, []string{"note_1", "note_2"}) {
		t.Fatalf("unpin should restore fetch order: got %v", got)
	}

	if list.SetPinned("note_missing", true) {
		t.Fatalf("missing note must not report success")
	}
}

func TestPinRoundTripRestoresPosition(t *testing.T) {
	list := NewNoteList()
	list.Replace([]*types.Note{
		testNote("note_1", "first", false, false),
		testNote("note_2", "second", false, false),
		testNote("note_3", "third", false, false),
	})
	before := visibleIDs(list, "")

	list.SetPinned("note_2", true)
	list.SetPinned("note_2", false)

	if got := visibleIDs(list, ""); !equalIDs(got, before) {
		t.Fatalf("pin round-trip must restore the original order: got %v, want %v", got, before)
	}
}

func TestRemoveDropsOnlyListedIDs(t *testing.T) {
	list := NewNoteList()
	list.Replace([]*types.Note{
		testNote("note_1", "one", false, false),
		testNote("note_2", "two", false, false),
		testNote("note_3", "three", false, false),
	})

	if removed := list.Remove([]string{"note_1", "note_3", "note_missing"}); removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if got := visibleIDs(list, ""); !equalIDs(got, []string{"note_2"}) {
		t.Fatalf("expected only note_2 left, got %v", got)
	}
	if list.Len() != 1 {
		t.Fatalf("expected len 1, got %d", list.Len())
	}
}
