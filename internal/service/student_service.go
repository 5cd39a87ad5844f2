package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tutorkit/tutorbook/internal/model"
	"github.com/tutorkit/tutorbook/internal/repository"
)

// NewStudentInput carries the fields of the add-student flow.
type NewStudentInput struct {
	FirstName       string `validate:"required"`
	LastName        string `validate:"required"`
	ParentFirstName string
	ParentLastName  string
	Mobile          string
	Email           string `validate:"omitempty,email"`
}

type StudentService struct {
	students *repository.StudentRepository
	notes    *repository.NoteRepository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewStudentService(students *repository.StudentRepository, notes *repository.NoteRepository, logger *zap.Logger) *StudentService {
	return &StudentService{
		students: students,
		notes:    notes,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *StudentService) Add(ctx context.Context, input NewStudentInput) (*model.Student, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	student := model.Student{
		ID:              uuid.New(),
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		ParentFirstName: input.ParentFirstName,
		ParentLastName:  input.ParentLastName,
		Mobile:          input.Mobile,
		Email:           input.Email,
	}
	if err := s.students.Add(student); err != nil {
		return nil, fmt.Errorf("add student: %w", err)
	}

	s.logger.Info("Student added",
		zap.String("student_id", student.ID.String()),
		zap.String("name", student.FullName()),
	)
	return &student, nil
}

func (s *StudentService) List(ctx context.Context) []model.Student {
	return s.students.All()
}

func (s *StudentService) ByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	student, ok := s.students.ByID(id)
	if !ok {
		return nil, fmt.Errorf("student %s: %w", id, ErrNotFound)
	}
	return &student, nil
}

func (s *StudentService) Update(ctx context.Context, student model.Student) error {
	if student.FirstName == "" {
		return fmt.Errorf("%w: first name is required", ErrValidation)
	}
	found, err := s.students.Update(student)
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	if !found {
		return fmt.Errorf("student %s: %w", student.ID, ErrNotFound)
	}
	return nil
}

// Remove deletes the contact record. Lessons referencing the student's name
// are deliberately left in place; history survives the contact.
func (s *StudentService) Remove(ctx context.Context, id uuid.UUID) error {
	found, err := s.students.Remove(id)
	if err != nil {
		return fmt.Errorf("remove student: %w", err)
	}
	if !found {
		return fmt.Errorf("student %s: %w", id, ErrNotFound)
	}
	s.logger.Info("Student removed", zap.String("student_id", id.String()))
	return nil
}

// Notes returns the free-text note for a student name, empty when unset.
func (s *StudentService) Notes(ctx context.Context, studentName string) string {
	note, _ := s.notes.Get(studentName)
	return note
}

func (s *StudentService) SetNotes(ctx context.Context, studentName, note string) error {
	if studentName == "" {
		return fmt.Errorf("%w: student name is required", ErrValidation)
	}
	if err := s.notes.Set(studentName, note); err != nil {
		return fmt.Errorf("set notes: %w", err)
	}
	return nil
}
