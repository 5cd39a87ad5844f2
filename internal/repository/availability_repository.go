package repository

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/tutorkit/tutorbook/internal/schedule"
	"github.com/tutorkit/tutorbook/internal/storage"
)

// AvailabilityRepository holds the global per-slot booking flags. The map is
// global across all dates: a disabled slot means the tutor never takes
// lessons at that half-hour, not "busy on one day".
type AvailabilityRepository struct {
	mu     sync.RWMutex
	store  *storage.Store
	logger *zap.Logger
	slots  map[string]bool
}

func NewAvailabilityRepository(store *storage.Store, logger *zap.Logger) *AvailabilityRepository {
	r := &AvailabilityRepository{store: store, logger: logger}
	if err := store.Load(storage.KeyDailyAvailability, &r.slots); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Failed to decode availability record, using defaults", zap.Error(err))
		}
		r.slots = defaultAvailability()
	}
	return r
}

func defaultAvailability() map[string]bool {
	slots := make(map[string]bool)
	for _, slot := range schedule.HalfHourSlots() {
		slots[slot] = true
	}
	return slots
}

// IsEnabled reports whether the slot accepts bookings. Unknown slots are
// enabled: absence of a flag fails open.
func (r *AvailabilityRepository) IsEnabled(slot string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	enabled, ok := r.slots[slot]
	return !ok || enabled
}

func (r *AvailabilityRepository) SetEnabled(slot string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[slot] = enabled
	return r.store.Save(storage.KeyDailyAvailability, r.slots)
}

func (r *AvailabilityRepository) Snapshot() map[string]bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]bool, len(r.slots))
	for k, v := range r.slots {
		out[k] = v
	}
	return out
}
