package schedule

import (
	"time"

	"github.com/google/uuid"
	"github.com/tutorkit/tutorbook/internal/model"
)

// LessonSource yields the lessons whose start falls in [from, to).
type LessonSource interface {
	LessonsBetween(from, to time.Time) []model.Lesson
}

// Checker decides whether a (date, time) pair is free to book.
type Checker struct {
	lessons LessonSource
}

func NewChecker(lessons LessonSource) *Checker {
	return &Checker{lessons: lessons}
}

// IsTimeSlotAvailable reports whether the slot at (date's day, at) is free.
// A lesson with ID excluding is ignored, so a lesson never conflicts with
// itself when re-validated in place; pass uuid.Nil to exclude nothing.
// Cancelled lessons release their slot; every other status occupies it.
func (c *Checker) IsTimeSlotAvailable(date time.Time, at model.TimeOfDay, excluding uuid.UUID) bool {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	for _, lesson := range c.lessons.LessonsBetween(dayStart, dayEnd) {
		if excluding != uuid.Nil && lesson.ID == excluding {
			continue
		}
		if lesson.Status == model.LessonStatusCancelled {
			continue
		}
		if lesson.Time == at {
			return false
		}
	}
	return true
}
