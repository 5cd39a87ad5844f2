package repository

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/tutorkit/tutorbook/internal/storage"
)

// NoteRepository holds the free-text note per student. Notes are keyed by
// the student's display name, matching the historical record format.
type NoteRepository struct {
	mu     sync.RWMutex
	store  *storage.Store
	logger *zap.Logger
	notes  map[string]string
}

func NewNoteRepository(store *storage.Store, logger *zap.Logger) *NoteRepository {
	r := &NoteRepository{store: store, logger: logger, notes: map[string]string{}}
	if err := store.Load(storage.KeyStudentNotes, &r.notes); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Failed to decode student notes record, starting empty", zap.Error(err))
		}
		r.notes = map[string]string{}
	}
	return r
}

func (r *NoteRepository) Get(studentName string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	note, ok := r.notes[studentName]
	return note, ok
}

func (r *NoteRepository) All() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.notes))
	for k, v := range r.notes {
		out[k] = v
	}
	return out
}

// Set stores the note for a student; an empty note removes the entry.
func (r *NoteRepository) Set(studentName, note string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if note == "" {
		delete(r.notes, studentName)
	} else {
		r.notes[studentName] = note
	}
	return r.store.Save(storage.KeyStudentNotes, r.notes)
}
