package service

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/tutorkit/tutorbook/internal/model"
	"github.com/tutorkit/tutorbook/internal/repository"
)

const lessonDuration = 30 * time.Minute

// ExportService renders the timetable as an iCalendar feed so lessons can
// be pulled into a phone or desktop calendar.
type ExportService struct {
	lessons *repository.LessonRepository
	logger  *zap.Logger
}

func NewExportService(lessons *repository.LessonRepository, logger *zap.Logger) *ExportService {
	return &ExportService{lessons: lessons, logger: logger}
}

// Calendar serializes every non-cancelled lesson in [from, to) as a VEVENT.
func (s *ExportService) Calendar(ctx context.Context, from, to time.Time) (string, error) {
	if !to.After(from) {
		return "", fmt.Errorf("%w: empty export range", ErrValidation)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//tutorbook//timetable//EN")

	count := 0
	for _, lesson := range s.lessons.LessonsBetween(from, to) {
		if lesson.Status == model.LessonStatusCancelled {
			continue
		}

		event := cal.AddEvent(lesson.ID.String())
		event.SetDtStampTime(time.Now())
		event.SetStartAt(lesson.StartTime())
		event.SetEndAt(lesson.StartTime().Add(lessonDuration))
		event.SetSummary(fmt.Sprintf("Lesson: %s", lesson.StudentName))
		if lesson.Location != "" {
			event.SetLocation(lesson.Location)
		}
		if lesson.Notes != "" {
			event.SetDescription(lesson.Notes)
		}
		count++
	}

	s.logger.Debug("Calendar exported",
		zap.Int("events", count),
		zap.String("from", from.Format("2006-01-02")),
		zap.String("to", to.Format("2006-01-02")),
	)
	return cal.Serialize(), nil
}
