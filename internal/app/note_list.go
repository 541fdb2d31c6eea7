package app

import (
	"sort"
	"strings"

	"quill/internal/types"
)

// NoteList holds the notes in the order the daemon returned them and
// derives the visible rows on demand. The pin ordering is applied at
// read time, never to the stored slice, so toggling a pin twice puts a
// note back exactly where it started.
type NoteList struct {
	notes []*types.Note
}

func NewNoteList() *NoteList {
	return &NoteList{notes: []*types.Note{}}
}

// Replace swaps in a freshly fetched slice.
func (l *NoteList) Replace(notes []*types.Note) {
	if notes == nil {
		notes = []*types.Note{}
	}
	l.notes = notes
}

// SortNotes returns a new slice with pinned notes first. The sort is
// stable so the incoming order is preserved within each group.
func SortNotes(notes []*types.Note) []*types.Note {
	out := make([]*types.Note, len(notes))
	copy(out, notes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Pinned.Bool() && !out[j].Pinned.Bool()
	})
	return out
}

// Visible derives what the screen shows: pinned notes first, archived
// notes never, and with a non-empty query only notes whose title
// contains it case-insensitively.
func (l *NoteList) Visible(query string) []*types.Note {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]*types.Note, 0, len(l.notes))
	for _, note := range SortNotes(l.notes) {
		if note == nil || note.Archived.Bool() {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(note.Title), query) {
			continue
		}
		out = append(out, note)
	}
	return out
}

// Get returns the note with the given id, or nil.
func (l *NoteList) Get(id string) *types.Note {
	for _, note := range l.notes {
		if note != nil && note.ID == id {
			return note
		}
	}
	return nil
}

// SetPinned updates one note's pin flag in place.
func (l *NoteList) SetPinned(id string, pinned bool) bool {
	note := l.Get(id)
	if note == nil {
		return false
	}
	note.Pinned = types.Flag(pinned)
	return true
}

// Apply replaces a single note with the daemon's copy, keeping its slot
// in the fetched order.
func (l *NoteList) Apply(updated *types.Note) bool {
	if updated == nil {
		return false
	}
	for i, note := range l.notes {
		if note != nil && note.ID == updated.ID {
			l.notes[i] = updated
			return true
		}
	}
	return false
}

// Remove drops every note whose id is in ids.
func (l *NoteList) Remove(ids []string) int {
	if len(ids) == 0 {
		return 0
	}
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := l.notes[:0]
	removed := 0
	for _, note := range l.notes {
		if note != nil {
			if _, ok := drop[note.ID]; ok {
				removed++
				continue
			}
		}
		kept = append(kept, note)
	}
	l.notes = kept
	return removed
}

func (l *NoteList) Len() int {
	return len(l.notes)
}
