package httpapi

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/tutorkit/tutorbook/internal/model"
	"github.com/tutorkit/tutorbook/internal/service"
)

type patternRequest struct {
	StudentName string `json:"student_name"`
	Weekday     int    `json:"weekday"` // 1 = Sunday .. 7 = Saturday
	Hour        int    `json:"hour"`
	Minute      int    `json:"minute"`
	Location    string `json:"location"`
	Notes       string `json:"notes"`
	Instrument  string `json:"instrument"`
	Grade       int    `json:"grade"`
}

type patternResponse struct {
	Pattern        model.RecurringLessonPattern `json:"pattern"`
	LessonsCreated int                          `json:"lessons_created"`
}

func (s *Server) listPatterns(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.booking.Patterns(r.Context()))
}

func (s *Server) registerPattern(w http.ResponseWriter, r *http.Request) {
	var req patternRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.badRequest(w, r, "failed to decode request")
		return
	}

	pattern, created, err := s.booking.RegisterRecurringPattern(r.Context(), service.PatternInput{
		StudentName: req.StudentName,
		Weekday:     req.Weekday,
		Hour:        req.Hour,
		Minute:      req.Minute,
		Location:    req.Location,
		Notes:       req.Notes,
		Instrument:  req.Instrument,
		Grade:       req.Grade,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, patternResponse{Pattern: *pattern, LessonsCreated: created})
}

func (s *Server) deletePattern(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.badRequest(w, r, "invalid pattern id")
		return
	}
	if err := s.booking.RemovePattern(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
