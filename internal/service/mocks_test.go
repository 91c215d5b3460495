package service

import (
	"context"

	"expense_api/internal/model"
	"expense_api/internal/repository"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) ([]model.User, error) {
	args := m.Called(ctx, username)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

type mockExpenseRepo struct {
	mock.Mock
}

func (m *mockExpenseRepo) Create(ctx context.Context, expense *model.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *mockExpenseRepo) List(ctx context.Context, filters repository.ExpenseFilters) ([]model.Expense, error) {
	args := m.Called(ctx, filters)
	expenses, _ := args.Get(0).([]model.Expense)
	return expenses, args.Error(1)
}

func (m *mockExpenseRepo) Delete(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// failingHasher fails every operation with err
type failingHasher struct {
	err error
}

func (f failingHasher) Hash(string) (string, error)         { return "", f.err }
func (f failingHasher) Verify(string, string) (bool, error) { return false, f.err }
