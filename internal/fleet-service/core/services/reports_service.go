package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"fleetops/internal/fleet-service/core/domain/dto"
	"fleetops/internal/fleet-service/core/domain/model"
	"fleetops/internal/fleet-service/core/ports"
	"fleetops/internal/mylogger"
)

// PartialFailureError reports which per-trip expense fetches did not resolve
// during aggregation. Aggregates are never silently computed over holes.
type PartialFailureError struct {
	FailedTripIds []string
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("expense fetch failed for %d trip(s): %v", len(e.FailedTripIds), e.FailedTripIds)
}

type ReportsService struct {
	mylog        mylogger.Logger
	tripsRepo    ports.ITripsRepo
	trucksRepo   ports.ITrucksRepo
	expensesRepo ports.IExpensesRepo
}

func NewReportsService(log mylogger.Logger, tripsRepo ports.ITripsRepo, trucksRepo ports.ITrucksRepo, expensesRepo ports.IExpensesRepo) ports.IReportsService {
	return &ReportsService{
		mylog:        log,
		tripsRepo:    tripsRepo,
		trucksRepo:   trucksRepo,
		expensesRepo: expensesRepo,
	}
}

func (rs *ReportsService) Summary(ctx context.Context, window string) (dto.WindowSummaryDto, error) {
	if !AllowedWindows[window] {
		return dto.WindowSummaryDto{}, fmt.Errorf("unknown window %q, allowed: today, month, year", window)
	}

	trips, err := rs.tripsRepo.List(ctx, model.StatusCompleted)
	if err != nil {
		return dto.WindowSummaryDto{}, fmt.Errorf("cannot list completed trips: %w", err)
	}

	expensesByTrip, err := rs.collectExpenses(ctx, trips)
	if err != nil {
		return dto.WindowSummaryDto{}, err
	}

	return SummarizeWindow(trips, expensesByTrip, window, time.Now()), nil
}

func (rs *ReportsService) MonthlyBreakdown(ctx context.Context, year int) (dto.MonthlyReportDto, error) {
	trips, err := rs.tripsRepo.List(ctx, model.StatusCompleted)
	if err != nil {
		return dto.MonthlyReportDto{}, fmt.Errorf("cannot list completed trips: %w", err)
	}

	expensesByTrip, err := rs.collectExpenses(ctx, trips)
	if err != nil {
		return dto.MonthlyReportDto{}, err
	}

	return SummarizeMonths(trips, expensesByTrip, year), nil
}

func (rs *ReportsService) TruckReport(ctx context.Context) (dto.TruckReportDto, error) {
	trips, err := rs.tripsRepo.List(ctx, model.StatusCompleted)
	if err != nil {
		return dto.TruckReportDto{}, fmt.Errorf("cannot list completed trips: %w", err)
	}

	trucks, err := rs.trucksRepo.List(ctx)
	if err != nil {
		return dto.TruckReportDto{}, fmt.Errorf("cannot list trucks: %w", err)
	}
	plates := make(map[string]string, len(trucks))
	for _, t := range trucks {
		plates[t.TruckId] = t.PlateNumber
	}

	expensesByTrip, err := rs.collectExpenses(ctx, trips)
	if err != nil {
		return dto.TruckReportDto{}, err
	}

	return SummarizeByTruck(trips, expensesByTrip, plates), nil
}

// collectExpenses fans out one ledger fetch per trip. A failed fetch is never
// treated as an empty ledger: the failing trip ids come back in a
// PartialFailureError and the caller decides. Cancelling ctx cancels every
// in-flight fetch.
func (rs *ReportsService) collectExpenses(ctx context.Context, trips []model.Trip) (map[string][]model.Expense, error) {
	log := rs.mylog.Action("collectExpenses")

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		byTrip = make(map[string][]model.Expense, len(trips))
		failed []string
	)

	for _, t := range trips {
		wg.Add(1)
		go func(tripId string) {
			defer wg.Done()
			expenses, err := rs.expensesRepo.ListByTrip(ctx, tripId)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Error("expense fetch failed", err, "trip_id", tripId)
				failed = append(failed, tripId)
				return
			}
			byTrip[tripId] = expenses
		}(t.TripId)
	}
	wg.Wait()

	if len(failed) > 0 {
		sort.Strings(failed)
		return byTrip, &PartialFailureError{FailedTripIds: failed}
	}
	return byTrip, nil
}
