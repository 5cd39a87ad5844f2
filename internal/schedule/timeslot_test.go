package schedule

import (
	"testing"

	"github.com/tutorkit/tutorbook/internal/model"
)

func TestHalfHourSlots(t *testing.T) {
	slots := HalfHourSlots()

	if len(slots) != 17 {
		t.Fatalf("expected 17 slots, got %d", len(slots))
	}
	if slots[0] != "09:00" {
		t.Errorf("expected first slot 09:00, got %s", slots[0])
	}
	if slots[len(slots)-1] != "17:00" {
		t.Errorf("expected last slot 17:00, got %s", slots[len(slots)-1])
	}

	seen := make(map[string]bool)
	prev := -1
	for _, slot := range slots {
		if seen[slot] {
			t.Errorf("duplicate slot %s", slot)
		}
		seen[slot] = true

		tod, err := model.ParseTimeOfDay(slot)
		if err != nil {
			t.Fatalf("slot %s does not parse: %v", slot, err)
		}
		if tod.MinuteOfDay() <= prev {
			t.Errorf("slot %s is not strictly after its predecessor", slot)
		}
		prev = tod.MinuteOfDay()
	}
}

func TestToDisplayTime(t *testing.T) {
	cases := []struct {
		slot string
		want string
	}{
		{"09:00", "9:00 AM"},
		{"09:30", "9:30 AM"},
		{"12:00", "12:00 PM"},
		{"14:30", "2:30 PM"},
		{"17:00", "5:00 PM"},
		{"garbage", "garbage"}, // fallback: unchanged
	}
	for _, c := range cases {
		if got := ToDisplayTime(c.slot); got != c.want {
			t.Errorf("ToDisplayTime(%q) = %q, want %q", c.slot, got, c.want)
		}
	}
}

func TestToSlotKey(t *testing.T) {
	key, ok := ToSlotKey("2:30 PM")
	if !ok || key != "14:30" {
		t.Errorf("ToSlotKey(2:30 PM) = %q, %v; want 14:30, true", key, ok)
	}

	if _, ok := ToSlotKey("half past two"); ok {
		t.Error("expected ToSlotKey to reject an unparseable display string")
	}

	// Every catalog slot survives a round trip through its display form.
	for _, slot := range HalfHourSlots() {
		key, ok := ToSlotKey(ToDisplayTime(slot))
		if !ok || key != slot {
			t.Errorf("round trip for %s gave %q, %v", slot, key, ok)
		}
	}
}

func TestIsCatalogSlot(t *testing.T) {
	for _, slot := range HalfHourSlots() {
		if !IsCatalogSlot(slot) {
			t.Errorf("catalog slot %s rejected", slot)
		}
	}
	for _, bad := range []string{"08:30", "17:30", "09:15", "18:00", "nope"} {
		if IsCatalogSlot(bad) {
			t.Errorf("non-catalog slot %s accepted", bad)
		}
	}
}
