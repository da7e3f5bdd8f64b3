package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetops/internal/fleet-service/core/myerrors"
	"fleetops/internal/fleet-service/core/services"
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

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	var partial *services.PartialFailureError

	switch {
	case errors.Is(err, myerrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, myerrors.ErrFieldIsEmpty),
		errors.Is(err, myerrors.ErrUnknownProduct),
		errors.Is(err, myerrors.ErrInvalidStateTransition),
		errors.Is(err, myerrors.ErrEndBeforeStart),
		errors.Is(err, myerrors.ErrTripNotInProgress),
		errors.Is(err, myerrors.ErrTruckNotAvailable):
		return http.StatusBadRequest
	case errors.As(err, &partial):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
