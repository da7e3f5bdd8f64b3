package handle

import (
	"encoding/json"
	"net/http"

	"fleetops/internal/fleet-service/core/domain/dto"
	"fleetops/internal/fleet-service/core/ports"
	"fleetops/internal/mylogger"
)

type TrucksHandler struct {
	trucksService ports.ITrucksService
	log           mylogger.Logger
}

func NewTrucksHandler(ts ports.ITrucksService, log mylogger.Logger) *TrucksHandler {
	return &TrucksHandler{
		trucksService: ts,
		log:           log,
	}
}

func (th *TrucksHandler) CreateTruck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := dto.TruckRequestDto{}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		truck, err := th.trucksService.CreateTruck(r.Context(), req)
		if err != nil {
			JsonError(w, statusFor(err), err)
			return
		}

		jsonResponse(w, http.StatusCreated, dto.TruckResponseDto{Success: true, Data: truck})
	}
}

func (th *TrucksHandler) ListTrucks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trucks, err := th.trucksService.ListTrucks(r.Context())
		if err != nil {
			JsonError(w, statusFor(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.TruckListResponseDto{Data: trucks})
	}
}

func (th *TrucksHandler) GetTruck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		truckId := r.PathValue("truck_id")

		truck, err := th.trucksService.GetTruck(r.Context(), truckId)
		if err != nil {
			JsonError(w, statusFor(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.TruckResponseDto{Success: true, Data: truck})
	}
}

func (th *TrucksHandler) UpdateTruck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		truckId := r.PathValue("truck_id")

		req := dto.TruckRequestDto{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		truck, err := th.trucksService.UpdateTruck(r.Context(), truckId, req)
		if err != nil {
			JsonError(w, statusFor(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.TruckResponseDto{Success: true, Data: truck})
	}
}

func (th *TrucksHandler) DeleteTruck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		truckId := r.PathValue("truck_id")

		if err := th.trucksService.DeleteTruck(r.Context(), truckId); err != nil {
			JsonError(w, statusFor(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.MessageResponseDto{Success: true, Message: "truck deleted"})
	}
}
