package repository

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tutorkit/tutorbook/internal/model"
	"github.com/tutorkit/tutorbook/internal/storage"
)

type PatternRepository struct {
	mu       sync.RWMutex
	store    *storage.Store
	logger   *zap.Logger
	patterns []model.RecurringLessonPattern
}

func NewPatternRepository(store *storage.Store, logger *zap.Logger) *PatternRepository {
	r := &PatternRepository{store: store, logger: logger}
	if err := store.Load(storage.KeyRecurringPatterns, &r.patterns); err != nil && !errors.Is(err, storage.ErrNotFound) {
		logger.Warn("Failed to decode recurring patterns record, starting empty", zap.Error(err))
		r.patterns = nil
	}
	return r
}

func (r *PatternRepository) All() []model.RecurringLessonPattern {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.RecurringLessonPattern(nil), r.patterns...)
}

func (r *PatternRepository) ByID(id uuid.UUID) (model.RecurringLessonPattern, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.patterns {
		if p.ID == id {
			return p, true
		}
	}
	return model.RecurringLessonPattern{}, false
}

func (r *PatternRepository) Add(pattern model.RecurringLessonPattern) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patterns = append(r.patterns, pattern)
	return r.persist()
}

func (r *PatternRepository) Remove(id uuid.UUID) (found bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.patterns {
		if p.ID == id {
			r.patterns = append(r.patterns[:i], r.patterns[i+1:]...)
			return true, r.persist()
		}
	}
	return false, nil
}

func (r *PatternRepository) persist() error {
	return r.store.Save(storage.KeyRecurringPatterns, r.patterns)
}
