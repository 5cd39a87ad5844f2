package httpapi

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/tutorkit/tutorbook/internal/model"
	"github.com/tutorkit/tutorbook/internal/service"
)

type studentRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	ParentFirstName string `json:"parent_first_name"`
	ParentLastName  string `json:"parent_last_name"`
	Mobile          string `json:"mobile"`
	Email           string `json:"email"`
}

func (s *Server) listStudents(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.students.List(r.Context()))
}

func (s *Server) addStudent(w http.ResponseWriter, r *http.Request) {
	var req studentRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.badRequest(w, r, "failed to decode request")
		return
	}

	student, err := s.students.Add(r.Context(), service.NewStudentInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ParentFirstName: req.ParentFirstName,
		ParentLastName:  req.ParentLastName,
		Mobile:          req.Mobile,
		Email:           req.Email,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, student)
}

func (s *Server) getStudent(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.badRequest(w, r, "invalid student id")
		return
	}
	student, err := s.students.ByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	render.JSON(w, r, student)
}

func (s *Server) updateStudent(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.badRequest(w, r, "invalid student id")
		return
	}

	var req studentRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.badRequest(w, r, "failed to decode request")
		return
	}

	student := model.Student{
		ID:              id,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ParentFirstName: req.ParentFirstName,
		ParentLastName:  req.ParentLastName,
		Mobile:          req.Mobile,
		Email:           req.Email,
	}
	if err := s.students.Update(r.Context(), student); err != nil {
		s.writeError(w, r, err)
		return
	}
	render.JSON(w, r, student)
}

func (s *Server) deleteStudent(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.badRequest(w, r, "invalid student id")
		return
	}
	if err := s.students.Remove(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getStudentNotes(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.badRequest(w, r, "invalid student id")
		return
	}
	student, err := s.students.ByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]string{"notes": s.students.Notes(r.Context(), student.FullName())})
}

func (s *Server) setStudentNotes(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.badRequest(w, r, "invalid student id")
		return
	}
	student, err := s.students.ByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req struct {
		Notes string `json:"notes"`
	}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.badRequest(w, r, "failed to decode request")
		return
	}
	if err := s.students.SetNotes(r.Context(), student.FullName(), req.Notes); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
