package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"expense_api/internal/model"
	"expense_api/internal/repository"

	"github.com/shopspring/decimal"
)

var ErrExpenseNotFound = errors.New("expense not found")

// ExpenseService manages expenses scoped to an owner id
type ExpenseService interface {
	List(ctx context.Context, ownerID *int64) ([]model.Expense, error)
	ListToday(ctx context.Context, ownerID int64) ([]model.Expense, error)
	Search(ctx context.Context, ownerID int64, q string) ([]model.Expense, error)
	Add(ctx context.Context, ownerID int64, item string, paid decimal.Decimal) (*model.Expense, error)
	Delete(ctx context.Context, ownerID, expenseID int64) error
}

type expenseService struct {
	repo repository.ExpenseRepository
	now  func() time.Time
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(repo repository.ExpenseRepository) ExpenseService {
	return &expenseService{repo: repo, now: time.Now}
}

// List returns the owner's expenses, or every expense when ownerID is nil
func (s *expenseService) List(ctx context.Context, ownerID *int64) ([]model.Expense, error) {
	expenses, err := s.repo.List(ctx, repository.ExpenseFilters{UserID: ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses from repo: %w", err)
	}
	return expenses, nil
}

// ListToday returns the owner's expenses dated on the current server-local day
func (s *expenseService) ListToday(ctx context.Context, ownerID int64) ([]model.Expense, error) {
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfNextDay := startOfDay.AddDate(0, 0, 1)

	expenses, err := s.repo.List(ctx, repository.ExpenseFilters{
		UserID: &ownerID,
		From:   &startOfDay,
		To:     &startOfNextDay,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list today's expenses from repo: %w", err)
	}
	return expenses, nil
}

// Search returns the owner's expenses whose item contains q
func (s *expenseService) Search(ctx context.Context, ownerID int64, q string) ([]model.Expense, error) {
	expenses, err := s.repo.List(ctx, repository.ExpenseFilters{
		UserID:       &ownerID,
		ItemContains: &q,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search expenses in repo: %w", err)
	}
	return expenses, nil
}

// Add stores a new expense dated now. The owner id is not checked against
// the users table.
func (s *expenseService) Add(ctx context.Context, ownerID int64, item string, paid decimal.Decimal) (*model.Expense, error) {
	expense := &model.Expense{
		UserID: ownerID,
		Item:   item,
		Paid:   paid,
		Date:   s.now(),
	}
	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense in repo: %w", err)
	}
	return expense, nil
}

// Delete removes the expense if ownerID owns it
func (s *expenseService) Delete(ctx context.Context, ownerID, expenseID int64) error {
	if err := s.repo.Delete(ctx, expenseID, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExpenseNotFound
		}
		return fmt.Errorf("failed to delete expense in repo: %w", err)
	}
	return nil
}
