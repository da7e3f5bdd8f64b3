package services

import (
	"context"
	"errors"
	"testing"

	"fleetops/internal/fleet-service/core/domain/dto"
	"fleetops/internal/fleet-service/core/domain/model"
	"fleetops/internal/fleet-service/core/myerrors"
)

func TestCreateTruckDefaultsToAvailable(t *testing.T) {
	svc := NewTrucksService(testLogger(), newFakeTrucksRepo())

	truck, err := svc.CreateTruck(context.Background(), dto.TruckRequestDto{
		PlateNumber: strPtr("KZ 123 ABC"),
		Model:       strPtr("Volvo FH16"),
		Capacity:    f64Ptr(25),
	})
	if err != nil {
		t.Fatalf("CreateTruck: %v", err)
	}
	if truck.Status != model.TruckAvailable {
		t.Errorf("status = %s, want %s", truck.Status, model.TruckAvailable)
	}
	if truck.TruckId == "" {
		t.Error("expected truck id to be assigned")
	}
}

func TestCreateTruckValidation(t *testing.T) {
	svc := NewTrucksService(testLogger(), newFakeTrucksRepo())

	tests := []struct {
		name string
		req  dto.TruckRequestDto
	}{
		{"missing plate", dto.TruckRequestDto{Model: strPtr("Volvo"), Capacity: f64Ptr(25)}},
		{"missing model", dto.TruckRequestDto{PlateNumber: strPtr("KZ 1"), Capacity: f64Ptr(25)}},
		{"missing capacity", dto.TruckRequestDto{PlateNumber: strPtr("KZ 1"), Model: strPtr("Volvo")}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateTruck(context.Background(), tc.req); !errors.Is(err, myerrors.ErrFieldIsEmpty) {
				t.Errorf("err = %v, want ErrFieldIsEmpty", err)
			}
		})
	}
}

func TestCreateTruckRejectsUnknownStatus(t *testing.T) {
	svc := NewTrucksService(testLogger(), newFakeTrucksRepo())

	_, err := svc.CreateTruck(context.Background(), dto.TruckRequestDto{
		PlateNumber: strPtr("KZ 1"),
		Model:       strPtr("Volvo"),
		Capacity:    f64Ptr(25),
		Status:      strPtr("PARKED"),
	})
	if err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestUpdateTruckPartial(t *testing.T) {
	repo := newFakeTrucksRepo()
	svc := NewTrucksService(testLogger(), repo)

	truck, err := svc.CreateTruck(context.Background(), dto.TruckRequestDto{
		PlateNumber: strPtr("KZ 123 ABC"),
		Model:       strPtr("Volvo FH16"),
		Capacity:    f64Ptr(25),
	})
	if err != nil {
		t.Fatalf("CreateTruck: %v", err)
	}

	updated, err := svc.UpdateTruck(context.Background(), truck.TruckId, dto.TruckRequestDto{
		Status:     strPtr(model.TruckMaintenance),
		DriverName: strPtr("Askar"),
	})
	if err != nil {
		t.Fatalf("UpdateTruck: %v", err)
	}
	if updated.Status != model.TruckMaintenance {
		t.Errorf("status = %s, want %s", updated.Status, model.TruckMaintenance)
	}
	if updated.PlateNumber != "KZ 123 ABC" {
		t.Errorf("plate changed unexpectedly: %s", updated.PlateNumber)
	}
	if updated.DriverName == nil || *updated.DriverName != "Askar" {
		t.Error("driver name not applied")
	}
}

func TestDeleteTruckNotFound(t *testing.T) {
	svc := NewTrucksService(testLogger(), newFakeTrucksRepo())

	if err := svc.DeleteTruck(context.Background(), "ghost"); !errors.Is(err, myerrors.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
