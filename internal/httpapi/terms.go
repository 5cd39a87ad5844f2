package httpapi

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/tutorkit/tutorbook/internal/model"
	"github.com/tutorkit/tutorbook/internal/service"
)

type termRequest struct {
	SchoolName    string               `json:"school_name"`
	StartDate     string               `json:"start_date"`
	EndDate       string               `json:"end_date"`
	PatternCycles []model.PatternCycle `json:"pattern_cycles"`
}

type termResponse struct {
	Term           model.AcademicTermData `json:"term"`
	LessonsCreated int                    `json:"lessons_created"`
}

func (s *Server) listTerms(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.booking.Terms(r.Context()))
}

func (s *Server) registerTerm(w http.ResponseWriter, r *http.Request) {
	var req termRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.badRequest(w, r, "failed to decode request")
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		s.badRequest(w, r, err.Error())
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		s.badRequest(w, r, err.Error())
		return
	}

	term, created, err := s.booking.RegisterTermPattern(r.Context(), service.TermInput{
		SchoolName:    req.SchoolName,
		StartDate:     start,
		EndDate:       end,
		PatternCycles: req.PatternCycles,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, termResponse{Term: *term, LessonsCreated: created})
}

func (s *Server) updateTerm(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.badRequest(w, r, "invalid term id")
		return
	}

	var req termRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.badRequest(w, r, "failed to decode request")
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		s.badRequest(w, r, err.Error())
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		s.badRequest(w, r, err.Error())
		return
	}

	term := model.AcademicTermData{
		ID: id,
		Term: model.AcademicTerm{
			SchoolName: req.SchoolName,
			StartDate:  start,
			EndDate:    end,
		},
		PatternCycles: req.PatternCycles,
	}
	created, err := s.booking.UpdateTerm(r.Context(), term)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	render.JSON(w, r, termResponse{Term: term, LessonsCreated: created})
}

func (s *Server) deleteTerm(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.badRequest(w, r, "invalid term id")
		return
	}
	if err := s.booking.RemoveTerm(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
