package app

import "quill/internal/types"

type notesMsg struct {
	seq   int
	notes []*types.Note
	err   error
}

type pinToggledMsg struct {
	id   string
	note *types.Note
	err  error
}

type notesDeletedMsg struct {
	ids    []string
	failed map[string]error
}

type noteSavedMsg struct {
	note *types.Note
	err  error
}

type archiveToggledMsg struct {
	id   string
	note *types.Note
	err  error
}
