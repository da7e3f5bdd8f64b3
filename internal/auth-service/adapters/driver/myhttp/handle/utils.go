package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetops/internal/auth-service/core/myerrors"
)

const (
	WaitTime = 10
)

// jsonResponse writes the given data as a JSON-encoded HTTP response with the given status code.
func jsonResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// JsonError writes an error response as JSON with the specified HTTP status code.
func JsonError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
		"code":  code,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, myerrors.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, myerrors.ErrFieldIsEmpty),
		errors.Is(err, myerrors.ErrEmailRegistered),
		errors.Is(err, myerrors.ErrUnknownRole):
		return http.StatusBadRequest
	case errors.Is(err, myerrors.ErrUnknownEmail),
		errors.Is(err, myerrors.ErrPasswordUnknown):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
