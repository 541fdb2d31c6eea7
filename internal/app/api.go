package app

import (
	"context"

	"quill/internal/client"
	"quill/internal/types"
)

type NoteAPI interface {
	ListNotes(ctx context.Context) ([]*types.Note, error)
	CreateNote(ctx context.Context, note *types.Note) (*types.Note, error)
	UpdateNote(ctx context.Context, id string, patch types.NotePatch) (*types.Note, error)
	DeleteNote(ctx context.Context, id string) error
}

type ClientAPI struct {
	client *client.Client
}

func NewClientAPI(client *client.Client) *ClientAPI {
	return &ClientAPI{client: client}
}

func (a *ClientAPI) ListNotes(ctx context.Context) ([]*types.Note, error) {
	return a.client.ListNotes(ctx)
}

func (a *ClientAPI) CreateNote(ctx context.Context, note *types.Note) (*types.Note, error) {
	return a.client.CreateNote(ctx, note)
}

func (a *ClientAPI) UpdateNote(ctx context.Context, id string, patch types.NotePatch) (*types.Note, error) {
	return a.client.UpdateNote(ctx, id, patch)
}

func (a *ClientAPI) DeleteNote(ctx context.Context, id string) error {
	return a.client.DeleteNote(ctx, id)
}
