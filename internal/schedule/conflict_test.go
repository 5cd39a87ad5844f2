package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/tutorkit/tutorbook/internal/model"
)

// lessonList is a trivial LessonSource over a fixed slice.
type lessonList []model.Lesson

func (l lessonList) LessonsBetween(from, to time.Time) []model.Lesson {
	var out []model.Lesson
	for _, lesson := range l {
		start := lesson.StartTime()
		if !start.Before(from) && start.Before(to) {
			out = append(out, lesson)
		}
	}
	return out
}

func mkLesson(day time.Time, at model.TimeOfDay, status model.LessonStatus) model.Lesson {
	return model.Lesson{
		ID:          uuid.New(),
		StudentName: "Alice Smith",
		Date:        day,
		Time:        at,
		Status:      status,
	}
}

func TestIsTimeSlotAvailable(t *testing.T) {
	day := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	nineThirty := model.TimeOfDay{Hour: 9, Minute: 30}

	existing := mkLesson(day, nineThirty, model.LessonStatusScheduled)
	checker := NewChecker(lessonList{existing})

	if checker.IsTimeSlotAvailable(day, nineThirty, uuid.Nil) {
		t.Error("slot with an existing lesson reported available")
	}
	if !checker.IsTimeSlotAvailable(day, model.TimeOfDay{Hour: 10}, uuid.Nil) {
		t.Error("free slot on the same day reported unavailable")
	}
	if !checker.IsTimeSlotAvailable(day.AddDate(0, 0, 1), nineThirty, uuid.Nil) {
		t.Error("same time on another day reported unavailable")
	}
}

func TestIsTimeSlotAvailableExcludesOwnLesson(t *testing.T) {
	day := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	at := model.TimeOfDay{Hour: 11}

	lesson := mkLesson(day, at, model.LessonStatusScheduled)
	checker := NewChecker(lessonList{lesson})

	// Re-validating a lesson against its own unchanged slot must pass.
	if !checker.IsTimeSlotAvailable(day, at, lesson.ID) {
		t.Error("lesson conflicts with itself when excluded")
	}

	other := mkLesson(day, at, model.LessonStatusScheduled)
	checker = NewChecker(lessonList{lesson, other})
	if checker.IsTimeSlotAvailable(day, at, lesson.ID) {
		t.Error("excluding one lesson must not hide a second occupant")
	}
}

func TestCancelledLessonReleasesSlot(t *testing.T) {
	day := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	at := model.TimeOfDay{Hour: 15}

	cancelled := mkLesson(day, at, model.LessonStatusCancelled)
	checker := NewChecker(lessonList{cancelled})
	if !checker.IsTimeSlotAvailable(day, at, uuid.Nil) {
		t.Error("cancelled lesson still blocks its slot")
	}

	// Attended and no-show lessons consumed their time and keep blocking.
	for _, status := range []model.LessonStatus{model.LessonStatusAttended, model.LessonStatusNoShow} {
		checker := NewChecker(lessonList{mkLesson(day, at, status)})
		if checker.IsTimeSlotAvailable(day, at, uuid.Nil) {
			t.Errorf("%s lesson released its slot", status)
		}
	}
}
