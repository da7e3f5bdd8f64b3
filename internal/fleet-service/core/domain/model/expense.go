package model

import "time"

type Expense struct {
	ExpenseId string    `json:"expense_id"`
	TripId    string    `json:"trip_id"`
	Payment   float64   `json:"payment"`
	Rate      float64   `json:"rate"`
	Amount    float64   `json:"amount"`
	Reason    string    `json:"reason,omitempty"`
	AddedBy   string    `json:"added_by"`
	CreatedAt time.Time `json:"created_at"`
}

// ExpenseAmount converts a paid quantity (e.g. liters) into money using the
// price per unit. A zero rate yields a zero amount, never a division by zero.
func ExpenseAmount(payment, rate float64) float64 {
	if rate == 0 {
		return 0
	}
	return payment / rate
}
