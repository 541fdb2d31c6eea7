package daemon

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"quill/internal/store"
	"quill/internal/types"
)

func newTestNoteService(t *testing.T) *NoteService {
	t.Helper()
	notes := store.NewFileNoteStore(filepath.Join(t.TempDir(), "notes.json"))
	t.Cleanup(func() { _ = notes.Close() })
	return NewNoteService(notes)
}

func TestNoteServicePatchSemantics(t *testing.T) {
	svc := newTestNoteService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &types.Note{Title: "Groceries", Content: "milk", Pinned: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// An empty patch leaves everything alone.
	same, err := svc.Update(ctx, created.ID, &types.NotePatch{})
	if err != nil {
		t.Fatalf("empty patch: %v", err)
	}
	if same.Title != "Groceries" || same.Content != "milk" || !same.Pinned.Bool() {
		t.Fatalf("empty patch changed fields: %+v", same)
	}

	// Unpinning must be expressible: pinned=false is an explicit value,
	// not an omitted one.
	unpinned, err := svc.Update(ctx, created.ID, &types.NotePatch{Pinned: types.FlagOf(false)})
	if err != nil {
		t.Fatalf("unpin: %v", err)
	}
	if unpinned.Pinned.Bool() {
		t.Fatalf("expected note to be unpinned")
	}
	if unpinned.Content != "milk" {
		t.Fatalf("unpin touched content: %q", unpinned.Content)
	}

	archived, err := svc.Update(ctx, created.ID, &types.NotePatch{Archived: types.FlagOf(true)})
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if !archived.Archived.Bool() {
		t.Fatalf("expected archived note")
	}
}

func TestNoteServiceValidation(t *testing.T) {
	svc := newTestNoteService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &types.Note{Title: "no content"}); err == nil {
		t.Fatalf("expected error for empty content")
	} else if serviceErrorKind(err) != ServiceErrorInvalid {
		t.Fatalf("expected invalid kind, got %v", err)
	}

	created, err := svc.Create(ctx, &types.Note{Content: "body"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Update(ctx, created.ID, &types.NotePatch{Content: types.String("  ")}); err == nil {
		t.Fatalf("expected error for blank content patch")
	}

	if _, err := svc.Update(ctx, "note_missing", &types.NotePatch{}); serviceErrorKind(err) != ServiceErrorNotFound {
		t.Fatalf("expected not_found for unknown id, got %v", err)
	}
	if err := svc.Delete(ctx, "note_missing"); serviceErrorKind(err) != ServiceErrorNotFound {
		t.Fatalf("expected not_found for unknown delete, got %v", err)
	}
}

func serviceErrorKind(err error) ServiceErrorKind {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}
