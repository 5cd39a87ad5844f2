// Package repository keeps each persisted record set as an in-memory
// collection backed by the storage file: loaded once at construction,
// rewritten in full after every mutation. A malformed record degrades to
// the empty default instead of failing startup.
package repository

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tutorkit/tutorbook/internal/model"
	"github.com/tutorkit/tutorbook/internal/storage"
)

type LessonRepository struct {
	mu      sync.RWMutex
	store   *storage.Store
	logger  *zap.Logger
	lessons []model.Lesson
}

func NewLessonRepository(store *storage.Store, logger *zap.Logger) *LessonRepository {
	r := &LessonRepository{store: store, logger: logger}
	if err := store.Load(storage.KeyLessons, &r.lessons); err != nil && !errors.Is(err, storage.ErrNotFound) {
		logger.Warn("Failed to decode lessons record, starting empty", zap.Error(err))
		r.lessons = nil
	}
	return r
}

// All returns a copy of every lesson.
func (r *LessonRepository) All() []model.Lesson {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Lesson(nil), r.lessons...)
}

// ByID returns the lesson with the given id, if present.
func (r *LessonRepository) ByID(id uuid.UUID) (model.Lesson, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.lessons {
		if l.ID == id {
			return l, true
		}
	}
	return model.Lesson{}, false
}

// LessonsBetween returns lessons whose start instant falls in [from, to).
func (r *LessonRepository) LessonsBetween(from, to time.Time) []model.Lesson {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Lesson
	for _, l := range r.lessons {
		start := l.StartTime()
		if !start.Before(from) && start.Before(to) {
			out = append(out, l)
		}
	}
	return out
}

// ExistsForSource reports whether a lesson generated by the given source
// already sits on day at the given time. This is the de-duplication key
// that keeps pattern re-expansion idempotent.
func (r *LessonRepository) ExistsForSource(sourceID uuid.UUID, day time.Time, at model.TimeOfDay) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	for _, l := range r.lessons {
		if l.SourceID == sourceID && l.Time == at && l.Day().Equal(dayStart) {
			return true
		}
	}
	return false
}

func (r *LessonRepository) Add(lesson model.Lesson) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lessons = append(r.lessons, lesson)
	return r.persist()
}

// Update replaces the lesson with the same ID. found is false when no such
// lesson exists; err reports a persistence failure.
func (r *LessonRepository) Update(lesson model.Lesson) (found bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, l := range r.lessons {
		if l.ID == lesson.ID {
			r.lessons[i] = lesson
			return true, r.persist()
		}
	}
	return false, nil
}

func (r *LessonRepository) Remove(id uuid.UUID) (found bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, l := range r.lessons {
		if l.ID == id {
			r.lessons = append(r.lessons[:i], r.lessons[i+1:]...)
			return true, r.persist()
		}
	}
	return false, nil
}

func (r *LessonRepository) persist() error {
	return r.store.Save(storage.KeyLessons, r.lessons)
}
