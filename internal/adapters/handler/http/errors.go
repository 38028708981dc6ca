package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vncsmyrnk/polly/internal/core/domain"
	"github.com/vncsmyrnk/polly/internal/platform/apperr"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", "error", err)
	}
}

func errorResponse(w http.ResponseWriter, err error) {
	appErr := mapError(err)
	if appErr.StatusCode() >= http.StatusInternalServerError {
		logger.Error("request failed", "code", appErr.Code, "error", appErr.Err)
	}
	writeJSON(w, appErr.StatusCode(), appErr)
}

// mapError turns the domain taxonomy into a status and a user-safe message.
func mapError(err error) *apperr.AppError {
	if err == nil {
		return apperr.Internal("internal_error", "internal server error", nil)
	}

	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var (
		validationErr *domain.ValidationError
		authErr       *domain.AuthenticationError
		permErr       *domain.PermissionError
		storageErr    *domain.StorageError
	)
	switch {
	case errors.As(err, &validationErr):
		return apperr.BadRequest("validation_failed", validationErr.Message, err)
	case errors.As(err, &authErr):
		return apperr.Unauthorized("not_authenticated", authErr.Message, err)
	case errors.As(err, &permErr):
		return apperr.Forbidden("permission_denied", permErr.Message, err)
	case errors.Is(err, domain.ErrPollNotFound):
		return apperr.NotFound("poll_not_found", "Poll not found", err)
	case errors.Is(err, domain.ErrAlreadyVoted):
		return apperr.Conflict("already_voted", domain.ErrAlreadyVoted.Error(), err)
	case errors.Is(err, domain.ErrInvalidOption):
		return apperr.BadRequest("invalid_option", domain.ErrInvalidOption.Error(), err)
	case errors.As(err, &storageErr):
		return apperr.Internal("storage_error", storageErr.Message, err)
	default:
		return apperr.Internal("internal_error", http.StatusText(http.StatusInternalServerError), err)
	}
}
