package handle

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fleetops/internal/fleet-service/core/domain/dto"
	"fleetops/internal/fleet-service/core/domain/model"
	"fleetops/internal/fleet-service/core/myerrors"
	"fleetops/internal/fleet-service/core/ports"
	"fleetops/internal/mylogger"
)

type TripsHandler struct {
	tripsService ports.ITripsService
	log          mylogger.Logger
}

func NewTripsHandler(ts ports.ITripsService, log mylogger.Logger) *TripsHandler {
	return &TripsHandler{
		tripsService: ts,
		log:          log,
	}
}

func (th *TripsHandler) CreateTrip() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := dto.TripCreateRequestDto{}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		actor := r.Header.Get("X-UserId")
		trip, err := th.tripsService.CreateTrip(r.Context(), actor, req)
		if err != nil {
			JsonError(w, statusFor(err), err)
			return
		}

		jsonResponse(w, http.StatusCreated, dto.TripResponseDto{Success: true, Data: trip})
	}
}

func (th *TripsHandler) ListTrips() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := r.URL.Query().Get("status")

		trips, err := th.tripsService.ListTrips(r.Context(), status)
		if err != nil {
			JsonError(w, statusFor(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.TripListResponseDto{Data: trips})
	}
}

func (th *TripsHandler) GetTrip() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tripId := r.PathValue("trip_id")

		detail, err := th.tripsService.GetTrip(r.Context(), tripId)
		if err != nil {
			JsonError(w, statusFor(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.TripDetailResponseDto{Success: true, Data: detail})
	}
}

// UpdateTrip accepts a partial body and routes the requested status through the
// trip state machine instead of writing it directly.
func (th *TripsHandler) UpdateTrip() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tripId := r.PathValue("trip_id")

		req := dto.TripUpdateRequestDto{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		if req.Status == nil {
			JsonError(w, http.StatusBadRequest, fmt.Errorf("status: %w", myerrors.ErrFieldIsEmpty))
			return
		}

		switch *req.Status {
		case model.StatusInProgress:
			trip, err := th.tripsService.StartTrip(r.Context(), tripId)
			if err != nil {
				JsonError(w, statusFor(err), err)
				return
			}
			jsonResponse(w, http.StatusOK, dto.TripResponseDto{Success: true, Data: trip})

		case model.StatusCompleted:
			endTime := time.Now()
			if req.EndTime != nil {
				endTime = *req.EndTime
			}
			detail, err := th.tripsService.CompleteTrip(r.Context(), tripId, endTime)
			if err != nil {
				JsonError(w, statusFor(err), err)
				return
			}
			jsonResponse(w, http.StatusOK, dto.TripDetailResponseDto{Success: true, Data: detail})

		default:
			JsonError(w, http.StatusBadRequest,
				fmt.Errorf("cannot set status %q: %w", *req.Status, myerrors.ErrInvalidStateTransition))
		}
	}
}

func (th *TripsHandler) DeleteTrip() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tripId := r.PathValue("trip_id")

		if err := th.tripsService.DeleteTrip(r.Context(), tripId); err != nil {
			JsonError(w, statusFor(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.MessageResponseDto{Success: true, Message: "trip deleted"})
	}
}
