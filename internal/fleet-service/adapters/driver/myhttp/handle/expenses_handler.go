package handle

import (
	"encoding/json"
	"net/http"

	"fleetops/internal/fleet-service/core/domain/dto"
	"fleetops/internal/fleet-service/core/ports"
	"fleetops/internal/mylogger"
)

type ExpensesHandler struct {
	expensesService ports.IExpensesService
	log             mylogger.Logger
}

func NewExpensesHandler(es ports.IExpensesService, log mylogger.Logger) *ExpensesHandler {
	return &ExpensesHandler{
		expensesService: es,
		log:             log,
	}
}

func (eh *ExpensesHandler) AddExpense() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tripId := r.PathValue("trip_id")

		req := dto.ExpenseRequestDto{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		actor := r.Header.Get("X-UserId")
		expense, err := eh.expensesService.AddExpense(r.Context(), actor, tripId, req)
		if err != nil {
			JsonError(w, statusFor(err), err)
			return
		}

		jsonResponse(w, http.StatusCreated, dto.ExpenseResponseDto{Success: true, Data: expense})
	}
}

func (eh *ExpensesHandler) ListExpenses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tripId := r.PathValue("trip_id")

		expenses, err := eh.expensesService.ListForTrip(r.Context(), tripId)
		if err != nil {
			JsonError(w, statusFor(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.ExpenseListResponseDto{Success: true, Data: expenses})
	}
}

func (eh *ExpensesHandler) DeleteExpense() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		expenseId := r.PathValue("expense_id")

		if err := eh.expensesService.DeleteExpense(r.Context(), expenseId); err != nil {
			JsonError(w, statusFor(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.MessageResponseDto{Success: true, Message: "expense deleted"})
	}
}
