package model

import "github.com/google/uuid"

// Weekday numbering used by all patterns: 1 = Sunday .. 7 = Saturday.

// RecurringLessonPattern is a simple weekly slot for one student. It drives
// forward projection of concrete lessons and never expires on its own.
type RecurringLessonPattern struct {
	ID          uuid.UUID `json:"id"`
	StudentName string    `json:"student_name"`
	Weekday     int       `json:"weekday"` // 1 = Sunday .. 7 = Saturday
	Hour        int       `json:"hour"`
	Minute      int       `json:"minute"`
	Location    string    `json:"location"`
	Notes       string    `json:"notes,omitempty"`
	Instrument  string    `json:"instrument,omitempty"`
	Grade       int       `json:"grade"`
}

// Time returns the pattern's time of day.
func (p RecurringLessonPattern) Time() TimeOfDay {
	return TimeOfDay{Hour: p.Hour, Minute: p.Minute}
}
