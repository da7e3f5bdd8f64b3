package services

import (
	"context"
	"fmt"
	"time"

	"fleetops/internal/fleet-service/core/domain/dto"
	"fleetops/internal/fleet-service/core/domain/model"
	"fleetops/internal/fleet-service/core/myerrors"
	"fleetops/internal/fleet-service/core/ports"
	"fleetops/internal/mylogger"
)

type ExpensesService struct {
	mylog        mylogger.Logger
	expensesRepo ports.IExpensesRepo
	tripsRepo    ports.ITripsRepo
}

func NewExpensesService(log mylogger.Logger, expensesRepo ports.IExpensesRepo, tripsRepo ports.ITripsRepo) ports.IExpensesService {
	return &ExpensesService{
		mylog:        log,
		expensesRepo: expensesRepo,
		tripsRepo:    tripsRepo,
	}
}

func (es *ExpensesService) AddExpense(ctx context.Context, actor, tripId string, req dto.ExpenseRequestDto) (model.Expense, error) {
	log := es.mylog.Action("AddExpense")

	if req.Payment == nil {
		return model.Expense{}, fmt.Errorf("Payment: %w", myerrors.ErrFieldIsEmpty)
	}
	if req.Rate == nil {
		return model.Expense{}, fmt.Errorf("rate: %w", myerrors.ErrFieldIsEmpty)
	}

	trip, err := es.tripsRepo.GetById(ctx, tripId)
	if err != nil {
		return model.Expense{}, err
	}

	// the ledger only accepts records while the trip is underway, the UI rule
	// is enforced here so it holds for every caller
	if trip.Status != model.StatusInProgress {
		log.Warn("expense rejected", "trip_id", tripId, "status", trip.Status)
		return model.Expense{}, fmt.Errorf("%w: trip %s is %s", myerrors.ErrTripNotInProgress, tripId, trip.Status)
	}

	expense := model.Expense{
		TripId:    tripId,
		Payment:   *req.Payment,
		Rate:      *req.Rate,
		Amount:    model.ExpenseAmount(*req.Payment, *req.Rate),
		AddedBy:   actor,
		CreatedAt: time.Now(),
	}
	if req.Reason != nil {
		expense.Reason = *req.Reason
	}

	expenseId, err := es.expensesRepo.Create(ctx, expense)
	if err != nil {
		log.Error("cannot save expense", err, "trip_id", tripId)
		return model.Expense{}, fmt.Errorf("cannot save expense: %w", err)
	}
	expense.ExpenseId = expenseId

	log.Info("expense recorded", "expense_id", expenseId, "trip_id", tripId, "amount", expense.Amount, "added_by", actor)
	return expense, nil
}

func (es *ExpensesService) ListForTrip(ctx context.Context, tripId string) ([]model.Expense, error) {
	return es.expensesRepo.ListByTrip(ctx, tripId)
}

func (es *ExpensesService) DeleteExpense(ctx context.Context, expenseId string) error {
	log := es.mylog.Action("DeleteExpense")

	if err := es.expensesRepo.Delete(ctx, expenseId); err != nil {
		return err
	}
	log.Info("expense deleted", "expense_id", expenseId)
	return nil
}

// TotalForTrip recomputes the ledger sum on every call, nothing is cached.
func (es *ExpensesService) TotalForTrip(ctx context.Context, tripId string) (float64, error) {
	expenses, err := es.expensesRepo.ListByTrip(ctx, tripId)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, e := range expenses {
		total += e.Amount
	}
	return total, nil
}
