package services

import (
	"context"
	"fmt"

	"fleetops/internal/fleet-service/core/domain/dto"
	"fleetops/internal/fleet-service/core/domain/model"
	"fleetops/internal/fleet-service/core/myerrors"
	"fleetops/internal/fleet-service/core/ports"
	"fleetops/internal/mylogger"
)

type TrucksService struct {
	mylog      mylogger.Logger
	trucksRepo ports.ITrucksRepo
}

func NewTrucksService(log mylogger.Logger, trucksRepo ports.ITrucksRepo) ports.ITrucksService {
	return &TrucksService{
		mylog:      log,
		trucksRepo: trucksRepo,
	}
}

func (ts *TrucksService) CreateTruck(ctx context.Context, req dto.TruckRequestDto) (model.Truck, error) {
	log := ts.mylog.Action("CreateTruck")

	if err := validateTruckRequest(req); err != nil {
		return model.Truck{}, err
	}

	truck := model.Truck{
		PlateNumber: *req.PlateNumber,
		Model:       *req.Model,
		Capacity:    *req.Capacity,
		Status:      model.TruckAvailable,
		DriverName:  req.DriverName,
		DriverPhone: req.DriverPhone,
	}
	if req.Status != nil && *req.Status != "" {
		if !model.AllowedTruckStatuses[*req.Status] {
			return model.Truck{}, fmt.Errorf("unknown truck status %s", *req.Status)
		}
		truck.Status = *req.Status
	}

	truckId, err := ts.trucksRepo.Create(ctx, truck)
	if err != nil {
		log.Error("cannot save truck", err)
		return model.Truck{}, fmt.Errorf("cannot save truck: %w", err)
	}
	truck.TruckId = truckId

	log.Info("truck created", "truck_id", truckId, "plate_number", truck.PlateNumber)
	return truck, nil
}

func (ts *TrucksService) GetTruck(ctx context.Context, truckId string) (model.Truck, error) {
	return ts.trucksRepo.GetById(ctx, truckId)
}

func (ts *TrucksService) ListTrucks(ctx context.Context) ([]model.Truck, error) {
	return ts.trucksRepo.List(ctx)
}

func (ts *TrucksService) UpdateTruck(ctx context.Context, truckId string, req dto.TruckRequestDto) (model.Truck, error) {
	log := ts.mylog.Action("UpdateTruck")

	truck, err := ts.trucksRepo.GetById(ctx, truckId)
	if err != nil {
		return model.Truck{}, err
	}

	if req.PlateNumber != nil && *req.PlateNumber != "" {
		truck.PlateNumber = *req.PlateNumber
	}
	if req.Model != nil && *req.Model != "" {
		truck.Model = *req.Model
	}
	if req.Capacity != nil {
		truck.Capacity = *req.Capacity
	}
	if req.Status != nil && *req.Status != "" {
		if !model.AllowedTruckStatuses[*req.Status] {
			return model.Truck{}, fmt.Errorf("unknown truck status %s", *req.Status)
		}
		truck.Status = *req.Status
	}
	if req.DriverName != nil {
		truck.DriverName = req.DriverName
	}
	if req.DriverPhone != nil {
		truck.DriverPhone = req.DriverPhone
	}

	if err := ts.trucksRepo.Update(ctx, truck); err != nil {
		log.Error("cannot update truck", err, "truck_id", truckId)
		return model.Truck{}, fmt.Errorf("cannot update truck: %w", err)
	}

	log.Info("truck updated", "truck_id", truckId)
	return truck, nil
}

func (ts *TrucksService) DeleteTruck(ctx context.Context, truckId string) error {
	log := ts.mylog.Action("DeleteTruck")

	if err := ts.trucksRepo.Delete(ctx, truckId); err != nil {
		return err
	}
	log.Info("truck deleted", "truck_id", truckId)
	return nil
}

func validateTruckRequest(req dto.TruckRequestDto) error {
	if req.PlateNumber == nil || *req.PlateNumber == "" {
		return fmt.Errorf("plateNumber: %w", myerrors.ErrFieldIsEmpty)
	}
	if req.Model == nil || *req.Model == "" {
		return fmt.Errorf("model: %w", myerrors.ErrFieldIsEmpty)
	}
	if req.Capacity == nil {
		return fmt.Errorf("capacity: %w", myerrors.ErrFieldIsEmpty)
	}
	return nil
}
