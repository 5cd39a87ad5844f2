package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/tutorkit/tutorbook/internal/service"
)

// Error codes surfaced to API clients.
const (
	codeBadRequest    = "BAD_REQUEST"
	codeNotFound      = "NOT_FOUND"
	codeConflict      = "CONFLICT"
	codeSlotDisabled  = "SLOT_DISABLED"
	codeRequestFailed = "REQUEST_FAILED"
)

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func errResp(code, message string) errorResponse {
	return errorResponse{Error: errorBody{Code: code, Message: message}}
}

// writeError maps a service failure onto a status code and JSON body.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var code string

	switch {
	case errors.Is(err, service.ErrValidation):
		status, code = http.StatusBadRequest, codeBadRequest
	case errors.Is(err, service.ErrNotFound):
		status, code = http.StatusNotFound, codeNotFound
	case errors.Is(err, service.ErrConflict):
		status, code = http.StatusConflict, codeConflict
	case errors.Is(err, service.ErrSlotDisabled):
		status, code = http.StatusUnprocessableEntity, codeSlotDisabled
	default:
		s.logger.Error("Request failed", zap.Error(err), zap.String("path", r.URL.Path))
		status, code = http.StatusInternalServerError, codeRequestFailed
	}

	w.WriteHeader(status)
	render.JSON(w, r, errResp(code, err.Error()))
}

func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, message string) {
	w.WriteHeader(http.StatusBadRequest)
	render.JSON(w, r, errResp(codeBadRequest, message))
}
