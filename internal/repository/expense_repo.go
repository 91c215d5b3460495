package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"expense_api/internal/model"

	"github.com/shopspring/decimal"
)

// ExpenseFilters narrows an expense listing. Nil fields are not applied.
type ExpenseFilters struct {
	UserID       *int64
	From         *time.Time // inclusive
	To           *time.Time // exclusive
	ItemContains *string
}

// ExpenseRepository defines operations for expense data
type ExpenseRepository interface {
	Create(ctx context.Context, expense *model.Expense) error
	List(ctx context.Context, filters ExpenseFilters) ([]model.Expense, error)
	Delete(ctx context.Context, id, userID int64) error
}

type expenseRepository struct {
	db DBTX
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository(db DBTX) ExpenseRepository {
	return &expenseRepository{db: db}
}

// Create inserts a new expense and fills in its id
func (r *expenseRepository) Create(ctx context.Context, e *model.Expense) error {
	sql := `INSERT INTO expense (user_id, item, paid, date) VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRow(ctx, sql, e.UserID, e.Item, e.Paid.String(), e.Date).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// List retrieves expenses matching filters, ordered by id
func (r *expenseRepository) List(ctx context.Context, filters ExpenseFilters) ([]model.Expense, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT id, user_id, item, paid::text, date FROM expense`)

	args := []any{}
	var conditions []string

	if filters.UserID != nil {
		args = append(args, *filters.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filters.From != nil {
		args = append(args, *filters.From)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filters.To != nil {
		args = append(args, *filters.To)
		conditions = append(conditions, fmt.Sprintf("date < $%d", len(args)))
	}
	if filters.ItemContains != nil {
		args = append(args, *filters.ItemContains)
		conditions = append(conditions, fmt.Sprintf("strpos(item, $%d) > 0", len(args)))
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY id")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]model.Expense, 0)
	for rows.Next() {
		var (
			e    model.Expense
			paid string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Item, &paid, &e.Date); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		if e.Paid, err = decimal.NewFromString(paid); err != nil {
			return nil, fmt.Errorf("invalid paid amount %q in expense %d: %w", paid, e.ID, err)
		}
		expenses = append(expenses, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return expenses, nil
}

// Delete removes an expense only if it belongs to userID
func (r *expenseRepository) Delete(ctx context.Context, id, userID int64) error {
	sql := `DELETE FROM expense WHERE id = $1 AND user_id = $2`
	cmdTag, err := r.db.Exec(ctx, sql, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
