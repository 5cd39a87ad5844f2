package schedule

import (
	"testing"
	"time"

	"github.com/tutorkit/tutorbook/internal/model"
)

func TestRecurringOccurrences(t *testing.T) {
	// A Monday, so a Monday pattern starts the same day.
	now := time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)
	expander := &RecurringExpander{HorizonWeeks: 12, Now: func() time.Time { return now }}

	pattern := model.RecurringLessonPattern{
		StudentName: "Ben Ward",
		Weekday:     2, // Monday
		Hour:        9,
		Minute:      30,
	}

	occs, err := expander.Occurrences(pattern)
	if err != nil {
		t.Fatal(err)
	}
	if len(occs) != 12 {
		t.Fatalf("expected 12 occurrences over a 12 week horizon, got %d", len(occs))
	}
	for i, occ := range occs {
		want := time.Date(2024, time.January, 1+7*i, 9, 30, 0, 0, time.UTC)
		if !occ.Equal(want) {
			t.Errorf("occurrence %d: got %s, want %s", i, occ, want)
		}
	}
}

func TestRecurringOccurrencesStartsAtNextMatchingWeekday(t *testing.T) {
	// Wednesday; a Saturday pattern first fires three days later.
	now := time.Date(2024, time.January, 3, 12, 0, 0, 0, time.UTC)
	expander := &RecurringExpander{HorizonWeeks: 4, Now: func() time.Time { return now }}

	occs, err := expander.Occurrences(model.RecurringLessonPattern{Weekday: 7, Hour: 14})
	if err != nil {
		t.Fatal(err)
	}
	if len(occs) != 4 {
		t.Fatalf("expected 4 occurrences, got %d", len(occs))
	}
	first := time.Date(2024, time.January, 6, 14, 0, 0, 0, time.UTC)
	if !occs[0].Equal(first) {
		t.Errorf("first occurrence: got %s, want %s", occs[0], first)
	}
}

func TestRecurringOccurrencesDeterministic(t *testing.T) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	expander := &RecurringExpander{HorizonWeeks: 8, Now: func() time.Time { return now }}
	pattern := model.RecurringLessonPattern{Weekday: 5, Hour: 16, Minute: 30}

	first, err := expander.Occurrences(pattern)
	if err != nil {
		t.Fatal(err)
	}
	second, err := expander.Occurrences(pattern)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("repeated expansion differs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Errorf("occurrence %d differs: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestRecurringOccurrencesRejectsBadWeekday(t *testing.T) {
	expander := NewRecurringExpander(4)
	for _, weekday := range []int{0, 8, -1} {
		if _, err := expander.Occurrences(model.RecurringLessonPattern{Weekday: weekday, Hour: 9}); err == nil {
			t.Errorf("weekday %d accepted", weekday)
		}
	}
}
