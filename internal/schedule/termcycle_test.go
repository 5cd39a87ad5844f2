package schedule

import (
	"testing"
	"time"

	"github.com/tutorkit/tutorbook/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandCycleTwoWeekRotation(t *testing.T) {
	// Four-week term starting on a Monday, alternating Monday 9:00 and
	// Saturday 14:00 weeks.
	term := model.AcademicTerm{
		SchoolName: "Highsted",
		StartDate:  date(2024, time.January, 1), // Monday
		EndDate:    date(2024, time.January, 28),
	}
	cycle := model.PatternCycle{
		CycleLengthInWeeks: 2,
		WeekPatterns: [][]model.PatternEntry{
			{{Weekday: 2, Hour: 9, Minute: 0}},  // week 1: Monday 09:00
			{{Weekday: 7, Hour: 14, Minute: 0}}, // week 2: Saturday 14:00
		},
	}

	occs := ExpandCycle(cycle, term)

	want := []Occurrence{
		{Date: date(2024, time.January, 1), Time: model.TimeOfDay{Hour: 9}},
		{Date: date(2024, time.January, 13), Time: model.TimeOfDay{Hour: 14}},
		{Date: date(2024, time.January, 15), Time: model.TimeOfDay{Hour: 9}},
		{Date: date(2024, time.January, 27), Time: model.TimeOfDay{Hour: 14}},
	}
	if len(occs) != len(want) {
		t.Fatalf("expected %d occurrences, got %d: %+v", len(want), len(occs), occs)
	}
	for i, w := range want {
		if !occs[i].Date.Equal(w.Date) || occs[i].Time != w.Time {
			t.Errorf("occurrence %d: got %s %s, want %s %s",
				i, occs[i].Date.Format("2006-01-02"), occs[i].Time,
				w.Date.Format("2006-01-02"), w.Time)
		}
	}
}

func TestExpandCycleSingleWeek(t *testing.T) {
	// Length-1 cycle behaves like a plain weekly pattern across the term.
	term := model.AcademicTerm{
		StartDate: date(2024, time.January, 3), // Wednesday
		EndDate:   date(2024, time.January, 31),
	}
	cycle := model.PatternCycle{
		CycleLengthInWeeks: 1,
		WeekPatterns:       [][]model.PatternEntry{{{Weekday: 4, Hour: 10, Minute: 30}}}, // Wednesdays
	}

	occs := ExpandCycle(cycle, term)
	if len(occs) != 5 {
		t.Fatalf("expected 5 Wednesdays, got %d", len(occs))
	}
	for i, occ := range occs {
		want := date(2024, time.January, 3+7*i)
		if !occ.Date.Equal(want) {
			t.Errorf("occurrence %d on %s, want %s", i, occ.Date.Format("2006-01-02"), want.Format("2006-01-02"))
		}
	}
}

func TestExpandCycleWeekBoundary(t *testing.T) {
	// Day 6 (Sunday) is still week 0; day 7 (Monday) flips to week 1.
	term := model.AcademicTerm{
		StartDate: date(2024, time.January, 1), // Monday
		EndDate:   date(2024, time.January, 14),
	}
	cycle := model.PatternCycle{
		CycleLengthInWeeks: 2,
		WeekPatterns: [][]model.PatternEntry{
			{{Weekday: 1, Hour: 9}}, // week 1: Sunday
			{{Weekday: 2, Hour: 9}}, // week 2: Monday
		},
	}

	occs := ExpandCycle(cycle, term)
	if len(occs) != 2 {
		t.Fatalf("expected 2 occurrences, got %d", len(occs))
	}
	if !occs[0].Date.Equal(date(2024, time.January, 7)) {
		t.Errorf("week 1 Sunday landed on %s", occs[0].Date.Format("2006-01-02"))
	}
	if !occs[1].Date.Equal(date(2024, time.January, 8)) {
		t.Errorf("week 2 Monday landed on %s", occs[1].Date.Format("2006-01-02"))
	}
}

func TestExpandCycleMalformed(t *testing.T) {
	term := model.AcademicTerm{
		StartDate: date(2024, time.January, 1),
		EndDate:   date(2024, time.January, 28),
	}

	if occs := ExpandCycle(model.PatternCycle{CycleLengthInWeeks: 0}, term); occs != nil {
		t.Errorf("zero-length cycle produced %d occurrences", len(occs))
	}

	// Declared longer than the weeks it actually carries: the missing week
	// is skipped, the present week still expands.
	short := model.PatternCycle{
		CycleLengthInWeeks: 2,
		WeekPatterns:       [][]model.PatternEntry{{{Weekday: 2, Hour: 9}}},
	}
	occs := ExpandCycle(short, term)
	if len(occs) != 2 {
		t.Fatalf("expected 2 occurrences from the surviving week, got %d", len(occs))
	}
}

func TestExpandCycleEndBeforeStart(t *testing.T) {
	term := model.AcademicTerm{
		StartDate: date(2024, time.February, 1),
		EndDate:   date(2024, time.January, 1),
	}
	cycle := model.PatternCycle{
		CycleLengthInWeeks: 1,
		WeekPatterns:       [][]model.PatternEntry{{{Weekday: 2, Hour: 9}}},
	}
	if occs := ExpandCycle(cycle, term); len(occs) != 0 {
		t.Errorf("inverted term produced %d occurrences", len(occs))
	}
}
