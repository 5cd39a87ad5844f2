// Package httpapi exposes the scheduling engine as a small JSON API: the
// booking, enquiry, availability and term-management flows the mobile
// screens used to drive.
package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tutorkit/tutorbook/internal/model"
	"github.com/tutorkit/tutorbook/internal/service"
)

type Server struct {
	booking      *service.BookingService
	students     *service.StudentService
	enquiries    *service.EnquiryService
	availability *service.AvailabilityService
	export       *service.ExportService
	logger       *zap.Logger
}

func NewServer(
	booking *service.BookingService,
	students *service.StudentService,
	enquiries *service.EnquiryService,
	availability *service.AvailabilityService,
	export *service.ExportService,
	logger *zap.Logger,
) *Server {
	return &Server{
		booking:      booking,
		students:     students,
		enquiries:    enquiries,
		availability: availability,
		export:       export,
		logger:       logger,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/lessons", func(r chi.Router) {
			r.Get("/", s.listLessons)
			r.Post("/", s.bookLesson)
			r.Get("/{id}", s.getLesson)
			r.Put("/{id}", s.updateLesson)
			r.Delete("/{id}", s.deleteLesson)
			r.Post("/{id}/reschedule", s.rescheduleLesson)
			r.Post("/{id}/status", s.setLessonStatus)
			r.Post("/{id}/fee", s.setFeePaid)
		})

		r.Route("/students", func(r chi.Router) {
			r.Get("/", s.listStudents)
			r.Post("/", s.addStudent)
			r.Get("/{id}", s.getStudent)
			r.Put("/{id}", s.updateStudent)
			r.Delete("/{id}", s.deleteStudent)
			r.Get("/{id}/notes", s.getStudentNotes)
			r.Put("/{id}/notes", s.setStudentNotes)
		})

		r.Route("/enquiries", func(r chi.Router) {
			r.Get("/", s.listEnquiries)
			r.Post("/", s.addEnquiry)
			r.Delete("/{id}", s.declineEnquiry)
			r.Post("/{id}/book", s.bookEnquiry)
		})

		r.Route("/availability", func(r chi.Router) {
			r.Get("/", s.getAvailability)
			r.Put("/{slot}", s.setAvailability)
		})

		r.Route("/patterns", func(r chi.Router) {
			r.Get("/", s.listPatterns)
			r.Post("/", s.registerPattern)
			r.Delete("/{id}", s.deletePattern)
		})

		r.Route("/terms", func(r chi.Router) {
			r.Get("/", s.listTerms)
			r.Post("/", s.registerTerm)
			r.Put("/{id}", s.updateTerm)
			r.Delete("/{id}", s.deleteTerm)
		})

		r.Get("/export/calendar.ics", s.exportCalendar)
	})

	return r
}

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD, got %q", s)
	}
	return t, nil
}

func urlID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// lessonJSON is the wire form of a lesson; time is carried both as the
// canonical slot key and as the rendered display string.
type lessonJSON struct {
	ID          uuid.UUID `json:"id"`
	StudentID   uuid.UUID `json:"student_id,omitempty"`
	StudentName string    `json:"student_name"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	DisplayTime string    `json:"display_time"`
	Location    string    `json:"location,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Grade       int       `json:"grade"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	FeePaid     bool      `json:"fee_paid"`
	SourceID    uuid.UUID `json:"source_id,omitempty"`
}

func toLessonJSON(l model.Lesson) lessonJSON {
	return lessonJSON{
		ID:          l.ID,
		StudentID:   l.StudentID,
		StudentName: l.StudentName,
		Date:        l.Date.Format(dateLayout),
		Time:        l.Time.String(),
		DisplayTime: l.Time.Display(),
		Location:    l.Location,
		Notes:       l.Notes,
		Grade:       l.Grade,
		Category:    l.Category(),
		Status:      string(l.Status),
		FeePaid:     l.FeePaid,
		SourceID:    l.SourceID,
	}
}

func toLessonListJSON(lessons []model.Lesson) []lessonJSON {
	out := make([]lessonJSON, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, toLessonJSON(l))
	}
	return out
}
