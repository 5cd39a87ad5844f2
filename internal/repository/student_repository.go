package repository

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tutorkit/tutorbook/internal/model"
	"github.com/tutorkit/tutorbook/internal/storage"
)

type StudentRepository struct {
	mu       sync.RWMutex
	store    *storage.Store
	logger   *zap.Logger
	students []model.Student
}

func NewStudentRepository(store *storage.Store, logger *zap.Logger) *StudentRepository {
	r := &StudentRepository{store: store, logger: logger}
	if err := store.Load(storage.KeyStudents, &r.students); err != nil && !errors.Is(err, storage.ErrNotFound) {
		logger.Warn("Failed to decode students record, starting empty", zap.Error(err))
		r.students = nil
	}
	return r
}

func (r *StudentRepository) All() []model.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Student(nil), r.students...)
}

func (r *StudentRepository) ByID(id uuid.UUID) (model.Student, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.students {
		if s.ID == id {
			return s, true
		}
	}
	return model.Student{}, false
}

// FindByName matches on the full display name, case-insensitively. Kept for
// records that predate stable student IDs.
func (r *StudentRepository) FindByName(name string) (model.Student, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.students {
		if strings.EqualFold(s.FullName(), strings.TrimSpace(name)) {
			return s, true
		}
	}
	return model.Student{}, false
}

func (r *StudentRepository) Add(student model.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.students = append(r.students, student)
	return r.persist()
}

func (r *StudentRepository) Update(student model.Student) (found bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.students {
		if s.ID == student.ID {
			r.students[i] = student
			return true, r.persist()
		}
	}
	return false, nil
}

func (r *StudentRepository) Remove(id uuid.UUID) (found bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.students {
		if s.ID == id {
			r.students = append(r.students[:i], r.students[i+1:]...)
			return true, r.persist()
		}
	}
	return false, nil
}

func (r *StudentRepository) persist() error {
	return r.store.Save(storage.KeyStudents, r.students)
}
