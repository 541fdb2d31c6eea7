package client

import "quill/internal/types"

type HealthResponse struct {
	OK      bool   `json:"ok"`
	Version string `json:"version,omitempty"`
	PID     int    `json:"pid,omitempty"`
}

type NotesResponse struct {
	Notes []*types.Note `json:"notes"`
}
