package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/wire"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

// writeOK writes a success envelope. data may be nil.
func writeOK(w http.ResponseWriter, code int, message string, data any) {
	httpx.WriteJSON(w, code, tasksdk.Response[any]{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func writeFail(w http.ResponseWriter, code int, message string, fields []tasksdk.FieldError) {
	httpx.WriteJSON(w, code, tasksdk.Response[any]{
		Success: false,
		Message: message,
		Errors:  fields,
	})
}

// writeError maps a service error onto a status code. Anything that is not
// one of the domain error kinds is logged and reported as a 500 without
// detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		writeFail(w, http.StatusBadRequest, "Validation failed", wire.FieldErrors(verr))
		return
	}

	var derr *domain.Error
	if errors.As(err, &derr) {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeFail(w, http.StatusNotFound, derr.Message, nil)
			return
		case errors.Is(err, domain.ErrAccessDenied):
			writeFail(w, http.StatusForbidden, derr.Message, nil)
			return
		case errors.Is(err, domain.ErrConflict):
			writeFail(w, http.StatusConflict, derr.Message, nil)
			return
		case errors.Is(err, domain.ErrAuth):
			w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
			writeFail(w, http.StatusUnauthorized, derr.Message, nil)
			return
		}
	}

	slogx.FromContext(r.Context()).Error("request failed",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	writeFail(w, http.StatusInternalServerError, "Internal server error", nil)
}

// decodeBody reads a JSON body, answering 400 itself when it cannot.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(w, r, v); err != nil {
		slogx.FromContext(r.Context()).Debug("bad request body", slog.Any("error", err))
		writeFail(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}
	return true
}
