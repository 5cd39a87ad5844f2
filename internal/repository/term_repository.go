package repository

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tutorkit/tutorbook/internal/model"
	"github.com/tutorkit/tutorbook/internal/storage"
)

type TermRepository struct {
	mu     sync.RWMutex
	store  *storage.Store
	logger *zap.Logger
	terms  []model.AcademicTermData
}

func NewTermRepository(store *storage.Store, logger *zap.Logger) *TermRepository {
	r := &TermRepository{store: store, logger: logger}
	if err := store.Load(storage.KeyTerms, &r.terms); err != nil && !errors.Is(err, storage.ErrNotFound) {
		logger.Warn("Failed to decode terms record, starting empty", zap.Error(err))
		r.terms = nil
	}
	return r
}

func (r *TermRepository) All() []model.AcademicTermData {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.AcademicTermData(nil), r.terms...)
}

func (r *TermRepository) ByID(id uuid.UUID) (model.AcademicTermData, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.terms {
		if t.ID == id {
			return t, true
		}
	}
	return model.AcademicTermData{}, false
}

func (r *TermRepository) Add(term model.AcademicTermData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.terms = append(r.terms, term)
	return r.persist()
}

func (r *TermRepository) Update(term model.AcademicTermData) (found bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.terms {
		if t.ID == term.ID {
			r.terms[i] = term
			return true, r.persist()
		}
	}
	return false, nil
}

func (r *TermRepository) Remove(id uuid.UUID) (found bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.terms {
		if t.ID == id {
			r.terms = append(r.terms[:i], r.terms[i+1:]...)
			return true, r.persist()
		}
	}
	return false, nil
}

func (r *TermRepository) persist() error {
	return r.store.Save(storage.KeyTerms, r.terms)
}
