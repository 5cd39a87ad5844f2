package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/tutorkit/tutorbook/internal/service"
)

type enquiryRequest struct {
	ParentName  string     `json:"parent_name"`
	StudentName string     `json:"student_name"`
	ContactInfo string     `json:"contact_info"`
	Instrument  string     `json:"instrument"`
	Notes       string     `json:"notes"`
	Slot        *time.Time `json:"slot,omitempty"`
}

func (s *Server) listEnquiries(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.enquiries.List(r.Context()))
}

func (s *Server) addEnquiry(w http.ResponseWriter, r *http.Request) {
	var req enquiryRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.badRequest(w, r, "failed to decode request")
		return
	}

	enquiry, err := s.enquiries.Add(r.Context(), service.NewEnquiryInput{
		ParentName:  req.ParentName,
		StudentName: req.StudentName,
		ContactInfo: req.ContactInfo,
		Instrument:  req.Instrument,
		Notes:       req.Notes,
		Slot:        req.Slot,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, enquiry)
}

func (s *Server) declineEnquiry(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.badRequest(w, r, "invalid enquiry id")
		return
	}
	if err := s.enquiries.Decline(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// bookEnquiry converts an enquiry into a booked lesson using the same
// request body as a direct booking; omitted fields fall back to what the
// enquiry already holds.
func (s *Server) bookEnquiry(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.badRequest(w, r, "invalid enquiry id")
		return
	}

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

	lesson, err := s.enquiries.Book(r.Context(), id, service.BookingCandidate{
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
