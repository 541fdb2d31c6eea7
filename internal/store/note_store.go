package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"quill/internal/types"
)

var ErrNoteNotFound = errors.New("note not found")

const noteSchemaVersion = 1

type NoteStore interface {
	List(ctx context.Context) ([]*types.Note, error)
	Get(ctx context.Context, id string) (*types.Note, bool, error)
	Upsert(ctx context.Context, note *types.Note) (*types.Note, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

type FileNoteStore struct {
	path string
	mu   sync.Mutex
}

type noteFile struct {
	Version int           `json:"version"`
	Notes   []*types.Note `json:"notes"`
}

func NewFileNoteStore(path string) *FileNoteStore {
	return &FileNoteStore{path: path}
}

func (s *FileNoteStore) List(ctx context.Context) ([]*types.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		if errors.Is(err, ErrNoteNotFound) {
			return []*types.Note{}, nil
		}
		return nil, err
	}

	out := make([]*types.Note, 0, len(file.Notes))
	for _, note := range file.Notes {
		out = append(out, cloneNote(note))
	}
	sortNotesNewestFirst(out)
	return out, nil
}

func (s *FileNoteStore) Get(ctx context.Context, id string) (*types.Note, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		if errors.Is(err, ErrNoteNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	for _, note := range file.Notes {
		if note.ID == id {
			return cloneNote(note), true, nil
		}
	}
	return nil, false, nil
}

func (s *FileNoteStore) Upsert(ctx context.Context, note *types.Note) (*types.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if note == nil {
		return nil, errors.New("note is required")
	}

	file, err := s.load()
	if err != nil && !errors.Is(err, ErrNoteNotFound) {
		return nil, err
	}
	if file == nil {
		file = newNoteFile()
	}

	normalized := normalizeNote(note, nil)
	updated := false
	for i, existing := range file.Notes {
		if existing.ID != normalized.ID {
			continue
		}
		normalized = normalizeNote(note, existing)
		file.Notes[i] = normalized
		updated = true
		break
	}
	if !updated {
		file.Notes = append(file.Notes, normalized)
	}

	if err := s.save(file); err != nil {
		return nil, err
	}
	return cloneNote(normalized), nil
}

func (s *FileNoteStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		if errors.Is(err, ErrNoteNotFound) {
			return ErrNoteNotFound
		}
		return err
	}
	filtered := file.Notes[:0]
	found := false
	for _, note := range file.Notes {
		if note.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, note)
	}
	file.Notes = filtered
	if !found {
		return ErrNoteNotFound
	}
	return s.save(file)
}

func (s *FileNoteStore) Close() error {
	return nil
}

func (s *FileNoteStore) load() (*noteFile, error) {
	file := newNoteFile()
	if err := readJSON(s.path, file); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	if file.Version == 0 {
		file.Version = noteSchemaVersion
	}
	if file.Notes == nil {
		file.Notes = []*types.Note{}
	}
	return file, nil
}

func (s *FileNoteStore) save(file *noteFile) error {
	file.Version = noteSchemaVersion
	return writeJSONAtomic(s.path, file)
}

func newNoteFile() *noteFile {
	return &noteFile{Version: noteSchemaVersion, Notes: []*types.Note{}}
}

// Newest first so a fresh load shows recent edits on top before the
// client applies its own pin ordering.
func sortNotesNewestFirst(notes []*types.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].UpdatedAt.Equal(notes[j].UpdatedAt) {
			return notes[i].CreatedAt.After(notes[j].CreatedAt)
		}
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
}

func normalizeNote(note *types.Note, existing *types.Note) *types.Note {
	normalized := *note
	normalized.Title = strings.TrimSpace(normalized.Title)
	if strings.TrimSpace(normalized.ID) == "" {
		normalized.ID = newNoteID()
	}
	if existing != nil {
		normalized.ID = existing.ID
		normalized.CreatedAt = existing.CreatedAt
	} else if normalized.CreatedAt.IsZero() {
		normalized.CreatedAt = time.Now().UTC()
	}
	if normalized.UpdatedAt.IsZero() || existing != nil {
		normalized.UpdatedAt = time.Now().UTC()
	}
	return &normalized
}

func cloneNote(note *types.Note) *types.Note {
	if note == nil {
		return nil
	}
	copy := *note
	return &copy
}

func newNoteID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "note" + time.Now().UTC().Format("20060102150405")
	}
	return "note_" + hex.EncodeToString(buf)
}
