package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fleetops/internal/fleet-service/core/domain/dto"
	"fleetops/internal/fleet-service/core/domain/model"
	"fleetops/internal/fleet-service/core/myerrors"
	"fleetops/internal/fleet-service/core/ports"
	"fleetops/internal/mylogger"

	messagebrokerdto "fleetops/internal/fleet-service/core/domain/message_broker_dto"
	websocketdto "fleetops/internal/fleet-service/core/domain/websocket_dto"

	"github.com/google/uuid"
)

type TripsService struct {
	mylog        mylogger.Logger
	tripsRepo    ports.ITripsRepo
	trucksRepo   ports.ITrucksRepo
	expensesRepo ports.IExpensesRepo
	broker       ports.IFleetBroker
	dashboard    ports.INotifyDashboard
}

func NewTripsService(
	log mylogger.Logger,
	tripsRepo ports.ITripsRepo,
	trucksRepo ports.ITrucksRepo,
	expensesRepo ports.IExpensesRepo,
	broker ports.IFleetBroker,
	dashboard ports.INotifyDashboard,
) ports.ITripsService {
	return &TripsService{
		mylog:        log,
		tripsRepo:    tripsRepo,
		trucksRepo:   trucksRepo,
		expensesRepo: expensesRepo,
		broker:       broker,
		dashboard:    dashboard,
	}
}

func (ts *TripsService) CreateTrip(ctx context.Context, actor string, req dto.TripCreateRequestDto) (model.Trip, error) {
	log := ts.mylog.Action("CreateTrip")

	if err := validateTripRequest(req); err != nil {
		return model.Trip{}, err
	}

	// the referenced truck has to exist before we allocate a budget against it
	truck, err := ts.trucksRepo.GetById(ctx, *req.TruckId)
	if err != nil {
		log.Warn("truck lookup failed", "truck_id", *req.TruckId)
		return model.Trip{}, fmt.Errorf("truck %s: %w", *req.TruckId, err)
	}

	trip := model.Trip{
		TruckId:   *req.TruckId,
		Product:   *req.Product,
		Route:     model.Route{Origin: *req.Route.Origin, Destination: *req.Route.Destination},
		Transport: *req.Transport,
		Status:    model.StatusScheduled,
		StartTime: *req.StartTime,
		CreatedBy: actor,
	}

	if req.Status != nil && *req.Status != "" {
		switch *req.Status {
		case model.StatusScheduled, model.StatusInProgress:
			trip.Status = *req.Status
		case model.StatusCompleted:
			if req.EndTime == nil {
				return model.Trip{}, fmt.Errorf("endTime: %w", myerrors.ErrFieldIsEmpty)
			}
			if req.EndTime.Before(trip.StartTime) {
				return model.Trip{}, myerrors.ErrEndBeforeStart
			}
			trip.Status = model.StatusCompleted
			trip.EndTime = req.EndTime
		default:
			return model.Trip{}, fmt.Errorf("%w: unknown status %s", myerrors.ErrInvalidStateTransition, *req.Status)
		}
	}

	// a trip born IN_PROGRESS claims the truck the same way StartTrip does
	if trip.Status == model.StatusInProgress && truck.Status != model.TruckAvailable {
		log.Warn("truck busy", "truck_id", truck.TruckId, "status", truck.Status)
		return model.Trip{}, fmt.Errorf("%w: truck %s is %s", myerrors.ErrTruckNotAvailable, truck.PlateNumber, truck.Status)
	}

	tripId, err := ts.tripsRepo.Create(ctx, trip)
	if err != nil {
		log.Error("cannot save trip", err)
		return model.Trip{}, fmt.Errorf("cannot save trip: %w", err)
	}
	trip.TripId = tripId

	if trip.Status == model.StatusInProgress {
		if err := ts.tripsRepo.ApplyTransition(ctx, trip, model.TruckInUse); err != nil {
			log.Error("cannot claim truck for in-progress trip", err, "trip_id", tripId)
			return model.Trip{}, fmt.Errorf("cannot claim truck: %w", err)
		}
		ts.publishStatus(ctx, trip, 0)
	}

	log.Info("trip created", "trip_id", tripId, "truck_id", trip.TruckId, "transport", trip.Transport, "created_by", actor)
	return trip, nil
}

func (ts *TripsService) GetTrip(ctx context.Context, tripId string) (dto.TripDetailDto, error) {
	trip, err := ts.tripsRepo.GetById(ctx, tripId)
	if err != nil {
		return dto.TripDetailDto{}, err
	}
	expenses, err := ts.expensesRepo.ListByTrip(ctx, tripId)
	if err != nil {
		return dto.TripDetailDto{}, fmt.Errorf("cannot load expenses for trip %s: %w", tripId, err)
	}

	totals := Reconcile(trip, expenses)
	return dto.TripDetailDto{
		Trip:          trip,
		TotalExpenses: totals.Total,
		NetProfit:     totals.Remaining,
	}, nil
}

func (ts *TripsService) ListTrips(ctx context.Context, status string) ([]model.Trip, error) {
	return ts.tripsRepo.List(ctx, status)
}

func (ts *TripsService) StartTrip(ctx context.Context, tripId string) (model.Trip, error) {
	log := ts.mylog.Action("StartTrip")

	trip, err := ts.tripsRepo.GetById(ctx, tripId)
	if err != nil {
		return model.Trip{}, err
	}

	truck, err := ts.trucksRepo.GetById(ctx, trip.TruckId)
	if err != nil {
		return model.Trip{}, fmt.Errorf("truck %s: %w", trip.TruckId, err)
	}
	if truck.Status != model.TruckAvailable {
		log.Warn("truck busy", "truck_id", truck.TruckId, "status", truck.Status)
		return model.Trip{}, fmt.Errorf("%w: truck %s is %s", myerrors.ErrTruckNotAvailable, truck.PlateNumber, truck.Status)
	}

	if err := trip.Start(); err != nil {
		return model.Trip{}, err
	}

	if err := ts.tripsRepo.ApplyTransition(ctx, trip, model.TruckInUse); err != nil {
		log.Error("cannot persist start transition", err, "trip_id", tripId)
		return model.Trip{}, fmt.Errorf("cannot start trip: %w", err)
	}

	ts.publishStatus(ctx, trip, 0)
	log.Info("trip started", "trip_id", tripId, "truck_id", trip.TruckId)
	return trip, nil
}

func (ts *TripsService) CompleteTrip(ctx context.Context, tripId string, endTime time.Time) (dto.TripDetailDto, error) {
	log := ts.mylog.Action("CompleteTrip")

	trip, err := ts.tripsRepo.GetById(ctx, tripId)
	if err != nil {
		return dto.TripDetailDto{}, err
	}

	if err := trip.Complete(endTime); err != nil {
		return dto.TripDetailDto{}, err
	}

	if err := ts.tripsRepo.ApplyTransition(ctx, trip, model.TruckAvailable); err != nil {
		log.Error("cannot persist complete transition", err, "trip_id", tripId)
		return dto.TripDetailDto{}, fmt.Errorf("cannot complete trip: %w", err)
	}

	// transport stays the allocated budget forever, net profit is derived here
	expenses, err := ts.expensesRepo.ListByTrip(ctx, tripId)
	if err != nil {
		return dto.TripDetailDto{}, fmt.Errorf("cannot load expenses for trip %s: %w", tripId, err)
	}
	totals := Reconcile(trip, expenses)

	ts.publishStatus(ctx, trip, totals.Remaining)
	log.Info("trip completed", "trip_id", tripId, "truck_id", trip.TruckId, "net_profit", totals.Remaining)

	return dto.TripDetailDto{
		Trip:          trip,
		TotalExpenses: totals.Total,
		NetProfit:     totals.Remaining,
	}, nil
}

func (ts *TripsService) DeleteTrip(ctx context.Context, tripId string) error {
	log := ts.mylog.Action("DeleteTrip")

	if err := ts.tripsRepo.Delete(ctx, tripId); err != nil {
		return err
	}
	log.Info("trip deleted", "trip_id", tripId)
	return nil
}

// publishStatus fans the transition out to the broker and the dashboard feed.
// Neither consumer is load-bearing for the transition itself, failures are
// logged and swallowed.
func (ts *TripsService) publishStatus(ctx context.Context, trip model.Trip, netProfit float64) {
	log := ts.mylog.Action("publishStatus")
	correlationID := uuid.NewString()

	if ts.broker != nil {
		msg := messagebrokerdto.TripStatusEvent{
			TripId:        trip.TripId,
			TruckId:       trip.TruckId,
			Status:        trip.Status,
			Transport:     trip.Transport,
			Timestamp:     time.Now().Format(time.RFC3339),
			CorrelationID: correlationID,
		}
		if err := ts.broker.PushTripStatus(ctx, msg); err != nil {
			log.Error("cannot publish trip status", err, "trip_id", trip.TripId)
		}
	}

	if ts.dashboard != nil {
		data, err := json.Marshal(websocketdto.TripStatusUpdateDto{
			TripId:        trip.TripId,
			TruckId:       trip.TruckId,
			Status:        trip.Status,
			NetProfit:     netProfit,
			CorrelationID: correlationID,
		})
		if err != nil {
			log.Error("cannot marshal dashboard event", err)
			return
		}
		ts.dashboard.Broadcast(websocketdto.Event{Type: "trip_status_update", Data: data})
	}
}

func validateTripRequest(req dto.TripCreateRequestDto) error {
	if req.TruckId == nil || *req.TruckId == "" {
		return fmt.Errorf("truckId: %w", myerrors.ErrFieldIsEmpty)
	}
	if req.Product == nil || *req.Product == "" {
		return fmt.Errorf("product: %w", myerrors.ErrFieldIsEmpty)
	}
	if !model.AllowedProducts[*req.Product] {
		return fmt.Errorf("%w: %s", myerrors.ErrUnknownProduct, *req.Product)
	}
	if req.Route == nil || req.Route.Origin == nil || *req.Route.Origin == "" {
		return fmt.Errorf("route.origin: %w", myerrors.ErrFieldIsEmpty)
	}
	if req.Route.Destination == nil || *req.Route.Destination == "" {
		return fmt.Errorf("route.destination: %w", myerrors.ErrFieldIsEmpty)
	}
	if req.Transport == nil {
		return fmt.Errorf("transport: %w", myerrors.ErrFieldIsEmpty)
	}
	if req.StartTime == nil || req.StartTime.IsZero() {
		return fmt.Errorf("startTime: %w", myerrors.ErrFieldIsEmpty)
	}
	return nil
}
