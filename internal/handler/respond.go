package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kojiauth/kojiauth-go/internal/apperr"
	"github.com/kojiauth/kojiauth-go/internal/model"
)

// writeData writes a success envelope: {"data": v}.
func writeData(w http.ResponseWriter, status int, v any) {
	writeJSON(w, status, model.SuccessResponse{Data: v})
}

// writeError maps an error to the {"message", "code"} envelope. Errors
// from the taxonomy carry their own status; anything else becomes an
// opaque 500 and only the log sees the cause.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.Unexpected(err)
	}

	if appErr.Status >= http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
	}

	writeJSON(w, appErr.Status, model.ErrorResponse{
		Message: appErr.Message,
		Code:    appErr.Status,
	})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
		Message: msg,
		Code:    http.StatusBadRequest,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
