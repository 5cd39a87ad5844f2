package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func (s *Server) getAvailability(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.availability.Snapshot(r.Context()))
}

func (s *Server) setAvailability(w http.ResponseWriter, r *http.Request) {
	slot := chi.URLParam(r, "slot")

	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.badRequest(w, r, "failed to decode request")
		return
	}

	if err := s.availability.SetSlotEnabled(r.Context(), slot, req.Enabled); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
