package app

import (
	"context"
	"sync"
	"time"

	"quill/internal/types"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

const bulkDeleteConcurrency = 4

func fetchNotesCmd(api NoteAPI, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		notes, err := api.ListNotes(ctx)
		return notesMsg{seq: seq, notes: notes, err: err}
	}
}

// togglePinCmd asks the daemon to flip one note's pin flag, sending the
// full editable payload alongside it. The list is only touched once the
// daemon confirms, so a failed call leaves the screen exactly as it was.
func togglePinCmd(api NoteAPI, note *types.Note) tea.Cmd {
	id := note.ID
	patch := types.NotePatch{
		Title:   types.String(note.Title),
		Content: types.String(note.Content),
		Pinned:  types.FlagOf(!note.Pinned.Bool()),
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		updated, err := api.UpdateNote(ctx, id, patch)
		return pinToggledMsg{id: id, note: updated, err: err}
	}
}

func toggleArchiveCmd(api NoteAPI, id string, archived bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		note, err := api.UpdateNote(ctx, id, types.NotePatch{Archived: types.FlagOf(archived)})
		return archiveToggledMsg{id: id, note: note, err: err}
	}
}

// deleteNotesCmd deletes every selected note, fanning the calls out a
// few at a time. Per-id failures are collected rather than aborting the
// rest, so the caller can report exactly which notes survived.
func deleteNotesCmd(api NoteAPI, ids []string) tea.Cmd {
	ids = append([]string(nil), ids...)
	return func() tea.Msg {
		if len(ids) == 0 {
			return notesDeletedMsg{ids: ids}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
		defer cancel()

		var mu sync.Mutex
		failed := map[string]error{}
		group, groupCtx := errgroup.WithContext(ctx)
		group.SetLimit(bulkDeleteConcurrency)
		for _, id := range ids {
			id := id
			group.Go(func() error {
				if err := api.DeleteNote(groupCtx, id); err != nil {
					mu.Lock()
					failed[id] = err
					mu.Unlock()
				}
				return nil
			})
		}
		_ = group.Wait()
		if len(failed) == 0 {
			failed = nil
		}
		return notesDeletedMsg{ids: ids, failed: failed}
	}
}

func saveNoteCmd(api NoteAPI, id, title, content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		if id == "" {
			note, err := api.CreateNote(ctx, &types.Note{Title: title, Content: content})
			return noteSavedMsg{note: note, err: err}
		}
		note, err := api.UpdateNote(ctx, id, types.NotePatch{
			Title:   types.String(title),
			Content: types.String(content),
		})
		return noteSavedMsg{note: note, err: err}
	}
}
