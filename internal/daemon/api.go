package daemon

import (
	"context"

	"quill/internal/logging"
	"quill/internal/store"
)

type API struct {
	Version  string
	Notes    store.NoteStore
	Shutdown func(context.Context) error
	Logger   logging.Logger
}

type HealthResponse struct {
	OK      bool   `json:"ok"`
	Version string `json:"version"`
	PID     int    `json:"pid"`
}
