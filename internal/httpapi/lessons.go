package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/tutorkit/tutorbook/internal/model"
	"github.com/tutorkit/tutorbook/internal/service"
)

type bookLessonRequest struct {
	StudentID    uuid.UUID       `json:"student_id,omitempty"`
	StudentName  string          `json:"student_name"`
	Date         string          `json:"date"`
	Time         model.TimeOfDay `json:"time"`
	Location     string          `json:"location"`
	Notes        string          `json:"notes"`
	Grade        int             `json:"grade"`
	Instrument   string          `json:"instrument"`
	RepeatWeekly bool            `json:"repeat_weekly"`
}

func (s *Server) listLessons(w http.ResponseWriter, r *http.Request) {
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		day, err := parseDate(dateStr)
		if err != nil {
			s.badRequest(w, r, err.Error())
			return
		}
		render.JSON(w, r, toLessonListJSON(s.booking.LessonsOn(r.Context(), day)))
		return
	}
	if fromStr, toStr := r.URL.Query().Get("from"), r.URL.Query().Get("to"); fromStr != "" && toStr != "" {
		from, err := parseDate(fromStr)
		if err != nil {
			s.badRequest(w, r, err.Error())
			return
		}
		to, err := parseDate(toStr)
		if err != nil {
			s.badRequest(w, r, err.Error())
			return
		}
		render.JSON(w, r, toLessonListJSON(s.booking.LessonsBetween(r.Context(), from, to.AddDate(0, 0, 1))))
		return
	}
	render.JSON(w, r, toLessonListJSON(s.booking.Lessons(r.Context())))
}

func (s *Server) bookLesson(w http.ResponseWriter, r *http.Request) {
	var req bookLessonRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.badRequest(w, r, "failed to decode request")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		s.badRequest(w, r, err.Error())
		return
	}

	lesson, err := s.booking.BookLesson(r.Context(), service.BookingCandidate{
		StudentID:    req.StudentID,
		StudentName:  req.StudentName,
		Date:         date,
		Time:         req.Time,
		Location:     req.Location,
		Notes:        req.Notes,
		Grade:        req.Grade,
		Instrument:   req.Instrument,
		RepeatWeekly: req.RepeatWeekly,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, toLessonJSON(*lesson))
}

func (s *Server) getLesson(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.badRequest(w, r, "invalid lesson id")
		return
	}
	lesson, err := s.booking.Lesson(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	render.JSON(w, r, toLessonJSON(*lesson))
}

func (s *Server) updateLesson(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.badRequest(w, r, "invalid lesson id")
		return
	}

	var req lessonJSON
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.badRequest(w, r, "failed to decode request")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		s.badRequest(w, r, err.Error())
		return
	}
	at, err := model.ParseTimeOfDay(req.Time)
	if err != nil {
		s.badRequest(w, r, "time must be HH:MM")
		return
	}

	lesson := model.Lesson{
		ID:          id,
		StudentID:   req.StudentID,
		StudentName: req.StudentName,
		Date:        date,
		Time:        at,
		Location:    req.Location,
		Notes:       req.Notes,
		Grade:       req.Grade,
		Status:      model.LessonStatus(req.Status),
		FeePaid:     req.FeePaid,
		SourceID:    req.SourceID,
	}
	if err := s.booking.UpdateLesson(r.Context(), lesson); err != nil {
		s.writeError(w, r, err)
		return
	}
	render.JSON(w, r, toLessonJSON(lesson))
}

func (s *Server) deleteLesson(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.badRequest(w, r, "invalid lesson id")
		return
	}
	if err := s.booking.RemoveLesson(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) rescheduleLesson(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.badRequest(w, r, "invalid lesson id")
		return
	}

	var req struct {
		Date string          `json:"date"`
		Time model.TimeOfDay `json:"time"`
	}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.badRequest(w, r, "failed to decode request")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		s.badRequest(w, r, err.Error())
		return
	}

	lesson, err := s.booking.RescheduleLesson(r.Context(), id, date, req.Time)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	render.JSON(w, r, toLessonJSON(*lesson))
}

func (s *Server) setLessonStatus(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.badRequest(w, r, "invalid lesson id")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.badRequest(w, r, "failed to decode request")
		return
	}

	lesson, err := s.booking.SetLessonStatus(r.Context(), id, model.LessonStatus(req.Status))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	render.JSON(w, r, toLessonJSON(*lesson))
}

func (s *Server) setFeePaid(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.badRequest(w, r, "invalid lesson id")
		return
	}

	var req struct {
		Paid bool `json:"paid"`
	}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.badRequest(w, r, "failed to decode request")
		return
	}

	lesson, err := s.booking.SetFeePaid(r.Context(), id, req.Paid)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	render.JSON(w, r, toLessonJSON(*lesson))
}

func (s *Server) exportCalendar(w http.ResponseWriter, r *http.Request) {
	from := time.Now()
	to := from.AddDate(0, 0, 12*7)

	var err error
	if v := r.URL.Query().Get("from"); v != "" {
		if from, err = parseDate(v); err != nil {
			s.badRequest(w, r, err.Error())
			return
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if to, err = parseDate(v); err != nil {
			s.badRequest(w, r, err.Error())
			return
		}
	}

	feed, err := s.export.Calendar(r.Context(), from, to)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Write([]byte(feed))
}
