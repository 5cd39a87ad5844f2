package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tutorkit/tutorbook/internal/model"
	"github.com/tutorkit/tutorbook/internal/repository"
)

// NewEnquiryInput is an inbound request for lessons. Only the parent's name
// is required; everything else is whatever the caller managed to collect.
type NewEnquiryInput struct {
	ParentName  string `validate:"required"`
	StudentName string
	ContactInfo string
	Instrument  string
	Notes       string
	Slot        *time.Time
}

type EnquiryService struct {
	enquiries *repository.EnquiryRepository
	booking   *BookingService
	validate  *validator.Validate
	logger    *zap.Logger
}

func NewEnquiryService(enquiries *repository.EnquiryRepository, booking *BookingService, logger *zap.Logger) *EnquiryService {
	return &EnquiryService{
		enquiries: enquiries,
		booking:   booking,
		validate:  validator.New(),
		logger:    logger,
	}
}

func (s *EnquiryService) Add(ctx context.Context, input NewEnquiryInput) (*model.Enquiry, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	enquiry := model.Enquiry{
		ID:          uuid.New(),
		ParentName:  input.ParentName,
		StudentName: input.StudentName,
		ContactInfo: input.ContactInfo,
		Instrument:  input.Instrument,
		Notes:       input.Notes,
		Slot:        input.Slot,
	}
	if err := s.enquiries.Add(enquiry); err != nil {
		return nil, fmt.Errorf("add enquiry: %w", err)
	}

	s.logger.Info("Enquiry received",
		zap.String("enquiry_id", enquiry.ID.String()),
		zap.String("parent", enquiry.ParentName),
	)
	return &enquiry, nil
}

func (s *EnquiryService) List(ctx context.Context) []model.Enquiry {
	return s.enquiries.All()
}

// Decline deletes the enquiry outright.
func (s *EnquiryService) Decline(ctx context.Context, id uuid.UUID) error {
	found, err := s.enquiries.Remove(id)
	if err != nil {
		return fmt.Errorf("remove enquiry: %w", err)
	}
	if !found {
		return fmt.Errorf("enquiry %s: %w", id, ErrNotFound)
	}
	s.logger.Info("Enquiry declined", zap.String("enquiry_id", id.String()))
	return nil
}

// Book converts an enquiry into a booked lesson (registering the student as
// a side effect of booking) and consumes the enquiry. The enquiry survives
// when booking fails, so the caller can retry with a different slot.
func (s *EnquiryService) Book(ctx context.Context, id uuid.UUID, candidate BookingCandidate) (*model.Lesson, error) {
	enquiry, ok := s.enquiries.ByID(id)
	if !ok {
		return nil, fmt.Errorf("enquiry %s: %w", id, ErrNotFound)
	}

	if candidate.StudentName == "" {
		candidate.StudentName = enquiry.StudentName
	}
	if candidate.StudentName == "" {
		candidate.StudentName = enquiry.ParentName
	}
	if candidate.Instrument == "" {
		candidate.Instrument = enquiry.Instrument
	}

	lesson, err := s.booking.BookLesson(ctx, candidate)
	if err != nil {
		return nil, err
	}

	if _, err := s.enquiries.Remove(id); err != nil {
		s.logger.Warn("Lesson booked but enquiry could not be removed",
			zap.Error(err),
			zap.String("enquiry_id", id.String()),
		)
	}

	s.logger.Info("Enquiry converted to booking",
		zap.String("enquiry_id", id.String()),
		zap.String("lesson_id", lesson.ID.String()),
	)
	return lesson, nil
}
