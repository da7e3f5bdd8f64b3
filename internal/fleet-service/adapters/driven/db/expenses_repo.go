package db

import (
	"context"
	"fmt"

	"fleetops/internal/fleet-service/core/domain/model"
	"fleetops/internal/fleet-service/core/myerrors"
	"fleetops/internal/fleet-service/core/ports"
)

type ExpensesRepo struct {
	db *DB
}

func NewExpensesRepo(db *DB) ports.IExpensesRepo {
	return &ExpensesRepo{
		db: db,
	}
}

func (er *ExpensesRepo) Create(ctx context.Context, m model.Expense) (string, error) {
	q := `INSERT INTO expenses(
			trip_id,
			payment,
			rate,
			amount,
			reason,
			added_by
		) VALUES ($1, $2, $3, $4, $5, $6) RETURNING expense_id`

	row := er.db.pool.QueryRow(ctx, q,
		m.TripId,
		m.Payment,
		m.Rate,
		m.Amount,
		m.Reason,
		m.AddedBy,
	)

	expenseId := ""
	if err := row.Scan(&expenseId); err != nil {
		return "", err
	}
	return expenseId, nil
}

func (er *ExpensesRepo) ListByTrip(ctx context.Context, tripId string) ([]model.Expense, error) {
	q := `
	SELECT
		expense_id,
		trip_id,
		payment,
		rate,
		amount,
		reason,
		added_by,
		created_at
	FROM
		expenses
	WHERE
		trip_id = $1
	ORDER BY
		created_at`

	rows, err := er.db.pool.Query(ctx, q, tripId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []model.Expense{}
	for rows.Next() {
		var m model.Expense
		if err := rows.Scan(
			&m.ExpenseId,
			&m.TripId,
			&m.Payment,
			&m.Rate,
			&m.Amount,
			&m.Reason,
			&m.AddedBy,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		expenses = append(expenses, m)
	}
	return expenses, rows.Err()
}

func (er *ExpensesRepo) Delete(ctx context.Context, expenseId string) error {
	ct, err := er.db.pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1`, expenseId)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("expense %s: %w", expenseId, myerrors.ErrNotFound)
	}
	return nil
}
