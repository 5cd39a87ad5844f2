package model

import (
	"time"

	"github.com/google/uuid"
)

// AcademicTerm is a school's bounded date range.
type AcademicTerm struct {
	SchoolName string    `json:"school_name"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
}

// PatternEntry is one (weekday, hour, minute) triple inside a cycle week.
type PatternEntry struct {
	Weekday int `json:"weekday"` // 1 = Sunday .. 7 = Saturday
	Hour    int `json:"hour"`
	Minute  int `json:"minute"`
}

// Time returns the entry's time of day.
func (e PatternEntry) Time() TimeOfDay {
	return TimeOfDay{Hour: e.Hour, Minute: e.Minute}
}

// PatternCycle is a rotating multi-week schedule: week N of the term uses
// WeekPatterns[N mod CycleLengthInWeeks].
type PatternCycle struct {
	CycleLengthInWeeks int              `json:"cycle_length_in_weeks"`
	WeekPatterns       [][]PatternEntry `json:"week_patterns"`
}

// AcademicTermData couples a term window with its pattern cycles.
type AcademicTermData struct {
	ID            uuid.UUID      `json:"id"`
	Term          AcademicTerm   `json:"term"`
	PatternCycles []PatternCycle `json:"pattern_cycles"`
}
