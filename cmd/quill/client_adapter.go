package main

import (
	"context"

	"quill/internal/app"
	quillclient "quill/internal/client"
	"quill/internal/types"
)

type clientFactory func() (commandClient, error)

type commandClient interface {
	EnsureDaemon(ctx context.Context) error
	EnsureDaemonVersion(ctx context.Context, expectedVersion string, restart bool) error
	ListNotes(ctx context.Context) ([]*types.Note, error)
	ShutdownDaemon(ctx context.Context) error
	Health(ctx context.Context) (*quillclient.HealthResponse, error)
	RunUI(version string) error
}

type quillClientAdapter struct {
	client *quillclient.Client
}

func newQuillClient() (commandClient, error) {
	client, err := quillclient.New()
	if err != nil {
		return nil, err
	}
	return &quillClientAdapter{client: client}, nil
}

func (c *quillClientAdapter) EnsureDaemon(ctx context.Context) error {
	return c.client.EnsureDaemon(ctx)
}

func (c *quillClientAdapter) EnsureDaemonVersion(ctx context.Context, expectedVersion string, restart bool) error {
	return c.client.EnsureDaemonVersion(ctx, expectedVersion, restart)
}

func (c *quillClientAdapter) ListNotes(ctx context.Context) ([]*types.Note, error) {
	return c.client.ListNotes(ctx)
}

func (c *quillClientAdapter) ShutdownDaemon(ctx context.Context) error {
	return c.client.ShutdownDaemon(ctx)
}

func (c *quillClientAdapter) Health(ctx context.Context) (*quillclient.HealthResponse, error) {
	return c.client.Health(ctx)
}

func (c *quillClientAdapter) RunUI(version string) error {
	return app.Run(app.NewClientAPI(c.client), version)
}
