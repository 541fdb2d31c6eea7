package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"quill/internal/types"
)

func TestBboltNoteStoreCRUD(t *testing.T) {
	ctx := context.Background()
	store, err := NewBboltNoteStore(filepath.Join(t.TempDir(), "quill.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	created, err := store.Upsert(ctx, &types.Note{Title: "Taxes", Content: "file by friday", Pinned: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}

	got, ok, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || !got.Pinned.Bool() {
		t.Fatalf("expected pinned note, ok=%v", ok)
	}

	time.Sleep(10 * time.Millisecond)
	if _, err := store.Upsert(ctx, &types.Note{Title: "Later", Content: "z"}); err != nil {
		t.Fatalf("second create: %v", err)
	}

	notes, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].Title != "Later" {
		t.Fatalf("expected newest first, got %q", notes[0].Title)
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, created.ID); !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}
