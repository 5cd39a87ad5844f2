package repository

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tutorkit/tutorbook/internal/model"
	"github.com/tutorkit/tutorbook/internal/storage"
)

type EnquiryRepository struct {
	mu        sync.RWMutex
	store     *storage.Store
	logger    *zap.Logger
	enquiries []model.Enquiry
}

func NewEnquiryRepository(store *storage.Store, logger *zap.Logger) *EnquiryRepository {
	r := &EnquiryRepository{store: store, logger: logger}
	if err := store.Load(storage.KeyEnquiries, &r.enquiries); err != nil && !errors.Is(err, storage.ErrNotFound) {
		logger.Warn("Failed to decode enquiries record, starting empty", zap.Error(err))
		r.enquiries = nil
	}
	return r
}

func (r *EnquiryRepository) All() []model.Enquiry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Enquiry(nil), r.enquiries...)
}

func (r *EnquiryRepository) ByID(id uuid.UUID) (model.Enquiry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.enquiries {
		if e.ID == id {
			return e, true
		}
	}
	return model.Enquiry{}, false
}

func (r *EnquiryRepository) Add(enquiry model.Enquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enquiries = append(r.enquiries, enquiry)
	return r.persist()
}

func (r *EnquiryRepository) Remove(id uuid.UUID) (found bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.enquiries {
		if e.ID == id {
			r.enquiries = append(r.enquiries[:i], r.enquiries[i+1:]...)
			return true, r.persist()
		}
	}
	return false, nil
}

func (r *EnquiryRepository) persist() error {
	return r.store.Save(storage.KeyEnquiries, r.enquiries)
}
