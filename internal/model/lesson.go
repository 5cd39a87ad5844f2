package model

import (
	"time"

	"github.com/google/uuid"
)

type LessonStatus string

const (
	LessonStatusScheduled LessonStatus = "scheduled"
	LessonStatusAttended  LessonStatus = "attended"
	LessonStatusNoShow    LessonStatus = "noShow"
	LessonStatusCancelled LessonStatus = "cancelled"
)

// ValidLessonStatus reports whether s is one of the known statuses.
func ValidLessonStatus(s LessonStatus) bool {
	switch s {
	case LessonStatusScheduled, LessonStatusAttended, LessonStatusNoShow, LessonStatusCancelled:
		return true
	}
	return false
}

// Lesson is a single scheduled session.
type Lesson struct {
	ID        uuid.UUID `json:"id"`
	StudentID uuid.UUID `json:"student_id"` // uuid.Nil for records not linked to a student
	// StudentName is a denormalized display copy; StudentID is the stable key.
	StudentName string       `json:"student_name"`
	Date        time.Time    `json:"date"` // day precision, time carried separately
	Time        TimeOfDay    `json:"time"`
	Location    string       `json:"location"`
	Notes       string       `json:"notes,omitempty"`
	Grade       int          `json:"grade"` // 0-8
	Status      LessonStatus `json:"status"`
	FeePaid     bool         `json:"fee_paid"`
	// SourceID identifies the recurring pattern or term that generated this
	// lesson; uuid.Nil for manual bookings. Together with Date and Time it
	// keys de-duplication on re-expansion.
	SourceID uuid.UUID `json:"source_id,omitempty"`
}

// Category derives the skill band from the grade. It is never stored.
func (l Lesson) Category() string {
	switch {
	case l.Grade <= 2:
		return "Beginner"
	case l.Grade <= 5:
		return "Intermediate"
	default:
		return "Advanced"
	}
}

// Day returns the lesson's calendar day at midnight in the lesson's location.
func (l Lesson) Day() time.Time {
	return time.Date(l.Date.Year(), l.Date.Month(), l.Date.Day(), 0, 0, 0, 0, l.Date.Location())
}

// StartTime returns the concrete start instant of the lesson.
func (l Lesson) StartTime() time.Time {
	return l.Time.At(l.Date)
}
