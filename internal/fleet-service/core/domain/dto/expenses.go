package dto

import "fleetops/internal/fleet-service/core/domain/model"

type ExpenseRequestDto struct {
	Payment *float64 `json:"Payment"`
	Rate    *float64 `json:"rate"`
	Reason  *string  `json:"reason,omitempty"`
}

type ExpenseResponseDto struct {
	Success bool          `json:"success"`
	Data    model.Expense `json:"data"`
}

type ExpenseListResponseDto struct {
	Success bool            `json:"success"`
	Data    []model.Expense `json:"data"`
}
