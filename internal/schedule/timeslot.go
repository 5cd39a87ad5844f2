// Package schedule holds the scheduling engine: the half-hour booking grid,
// the conflict check, and the expansion of weekly and term-cycle patterns
// into concrete lesson occurrences.
package schedule

import (
	"time"

	"github.com/tutorkit/tutorbook/internal/model"
)

// The bookable day runs 09:00-17:00 in half-hour steps.
const (
	dayStartHour = 9
	dayEndHour   = 17
)

// HalfHourSlots returns the fixed ordered booking grid: 17 slot keys from
// "09:00" to "17:00" inclusive, stepping 30 minutes.
func HalfHourSlots() []string {
	slots := make([]string, 0, (dayEndHour-dayStartHour)*2+1)
	for hour := dayStartHour; hour < dayEndHour; hour++ {
		slots = append(slots, model.TimeOfDay{Hour: hour}.String())
		slots = append(slots, model.TimeOfDay{Hour: hour, Minute: 30}.String())
	}
	slots = append(slots, model.TimeOfDay{Hour: dayEndHour}.String())
	return slots
}

// IsCatalogSlot reports whether key names a slot on the booking grid.
func IsCatalogSlot(key string) bool {
	t, err := model.ParseTimeOfDay(key)
	if err != nil {
		return false
	}
	if t.Minute != 0 && t.Minute != 30 {
		return false
	}
	if t.Hour < dayStartHour || t.Hour > dayEndHour {
		return false
	}
	return t.Hour != dayEndHour || t.Minute == 0
}

// ToDisplayTime converts a 24-hour "HH:MM" slot key into the short 12-hour
// form, e.g. "9:30 AM". Unparseable input is returned unchanged; this is a
// defensive fallback, not a validated contract.
func ToDisplayTime(slot string) string {
	t, err := model.ParseTimeOfDay(slot)
	if err != nil {
		return slot
	}
	return t.Display()
}

// ToSlotKey converts a short 12-hour display string back into its "HH:MM"
// slot key. ok is false when the string does not parse as a time.
func ToSlotKey(display string) (string, bool) {
	parsed, err := time.Parse("3:04 PM", display)
	if err != nil {
		return "", false
	}
	return model.TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute()}.String(), true
}
