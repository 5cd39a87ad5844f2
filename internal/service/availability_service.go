package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tutorkit/tutorbook/internal/repository"
	"github.com/tutorkit/tutorbook/internal/schedule"
)

// SlotAvailability is one grid slot with its display form and booking flag.
type SlotAvailability struct {
	Slot    string `json:"slot"`
	Display string `json:"display"`
	Enabled bool   `json:"enabled"`
}

type AvailabilityService struct {
	availability *repository.AvailabilityRepository
	logger       *zap.Logger
}

func NewAvailabilityService(availability *repository.AvailabilityRepository, logger *zap.Logger) *AvailabilityService {
	return &AvailabilityService{availability: availability, logger: logger}
}

// IsSlotEnabled reports whether the tutor takes bookings at this slot.
// Slots with no recorded flag are enabled.
func (s *AvailabilityService) IsSlotEnabled(slot string) bool {
	return s.availability.IsEnabled(slot)
}

// SetSlotEnabled toggles a grid slot. Keys off the half-hour catalog are
// rejected so a typo cannot create a phantom flag.
func (s *AvailabilityService) SetSlotEnabled(ctx context.Context, slot string, enabled bool) error {
	if !schedule.IsCatalogSlot(slot) {
		return fmt.Errorf("%w: unknown slot %q", ErrValidation, slot)
	}
	if err := s.availability.SetEnabled(slot, enabled); err != nil {
		return fmt.Errorf("set slot enabled: %w", err)
	}
	s.logger.Info("Availability updated",
		zap.String("slot", slot),
		zap.Bool("enabled", enabled),
	)
	return nil
}

// Snapshot returns every catalog slot in grid order with its current flag.
func (s *AvailabilityService) Snapshot(ctx context.Context) []SlotAvailability {
	slots := schedule.HalfHourSlots()
	out := make([]SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		out = append(out, SlotAvailability{
			Slot:    slot,
			Display: schedule.ToDisplayTime(slot),
			Enabled: s.availability.IsEnabled(slot),
		})
	}
	return out
}
