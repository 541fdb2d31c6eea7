package store

import (
	"errors"
	"strings"
)

const (
	BackendFile  = "file"
	BackendBbolt = "bbolt"
)

type Paths struct {
	NotesPath string
	DBPath    string
}

// OpenNoteStore selects the persistence backend. File is the default; bbolt
// is the transactional alternative for larger collections.
func OpenNoteStore(paths Paths, backend string) (NoteStore, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		if strings.TrimSpace(paths.NotesPath) == "" {
			return nil, errors.New("notes path is required for file store")
		}
		return NewFileNoteStore(paths.NotesPath), nil
	case BackendBbolt:
		if strings.TrimSpace(paths.DBPath) == "" {
			return nil, errors.New("db path is required for bbolt store")
		}
		return NewBboltNoteStore(paths.DBPath)
	default:
		return nil, errors.New("unsupported store backend: " + backend)
	}
}
