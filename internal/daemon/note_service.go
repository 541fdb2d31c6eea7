package daemon

import (
	"context"
	"errors"
	"strings"

	"quill/internal/store"
	"quill/internal/types"
)

// NoteService is the only path to the note store for API handlers. It
// validates payloads and keeps patch semantics in one place.
type NoteService struct {
	notes store.NoteStore
}

func NewNoteService(notes store.NoteStore) *NoteService {
	return &NoteService{notes: notes}
}

func (s *NoteService) List(ctx context.Context) ([]*types.Note, error) {
	if s.notes == nil {
		return nil, unavailableError("note store not available", nil)
	}
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, unavailableError(err.Error(), err)
	}
	return notes, nil
}

func (s *NoteService) Create(ctx context.Context, note *types.Note) (*types.Note, error) {
	if s.notes == nil {
		return nil, unavailableError("note store not available", nil)
	}
	if note == nil {
		return nil, invalidError("note payload is required", nil)
	}
	normalized := *note
	normalized.ID = ""
	normalized.Title = strings.TrimSpace(normalized.Title)
	if strings.TrimSpace(normalized.Content) == "" {
		return nil, invalidError("content is required", nil)
	}
	created, err := s.notes.Upsert(ctx, &normalized)
	if err != nil {
		return nil, unavailableError(err.Error(), err)
	}
	return created, nil
}

func (s *NoteService) Update(ctx context.Context, id string, patch *types.NotePatch) (*types.Note, error) {
	if s.notes == nil {
		return nil, unavailableError("note store not available", nil)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, invalidError("note id is required", nil)
	}
	if patch == nil {
		return nil, invalidError("note payload is required", nil)
	}

	existing, ok, err := s.notes.Get(ctx, id)
	if err != nil {
		return nil, unavailableError(err.Error(), err)
	}
	if !ok || existing == nil {
		return nil, notFoundError("note not found", store.ErrNoteNotFound)
	}

	merged := *existing
	if patch.Title != nil {
		merged.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Content != nil {
		if strings.TrimSpace(*patch.Content) == "" {
			return nil, invalidError("content is required", nil)
		}
		merged.Content = *patch.Content
	}
	if patch.Pinned != nil {
		merged.Pinned = *patch.Pinned
	}
	if patch.Archived != nil {
		merged.Archived = *patch.Archived
	}

	updated, err := s.notes.Upsert(ctx, &merged)
	if err != nil {
		return nil, unavailableError(err.Error(), err)
	}
	return updated, nil
}

func (s *NoteService) Delete(ctx context.Context, id string) error {
	if s.notes == nil {
		return unavailableError("note store not available", nil)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return invalidError("note id is required", nil)
	}
	if err := s.notes.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return notFoundError("note not found", err)
		}
		return unavailableError(err.Error(), err)
	}
	return nil
}
