package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"expense_api/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockAuthService) HashPreview(raw string) (string, error) {
	args := m.Called(raw)
	return args.String(0), args.Error(1)
}

type mockExpenseService struct {
	mock.Mock
}

func (m *mockExpenseService) List(ctx context.Context, ownerID *int64) ([]model.Expense, error) {
	args := m.Called(ctx, ownerID)
	expenses, _ := args.Get(0).([]model.Expense)
	return expenses, args.Error(1)
}

func (m *mockExpenseService) ListToday(ctx context.Context, ownerID int64) ([]model.Expense, error) {
	args := m.Called(ctx, ownerID)
	expenses, _ := args.Get(0).([]model.Expense)
	return expenses, args.Error(1)
}

func (m *mockExpenseService) Search(ctx context.Context, ownerID int64, q string) ([]model.Expense, error) {
	args := m.Called(ctx, ownerID, q)
	expenses, _ := args.Get(0).([]model.Expense)
	return expenses, args.Error(1)
}

func (m *mockExpenseService) Add(ctx context.Context, ownerID int64, item string, paid decimal.Decimal) (*model.Expense, error) {
	args := m.Called(ctx, ownerID, item, paid)
	expense, _ := args.Get(0).(*model.Expense)
	return expense, args.Error(1)
}

func (m *mockExpenseService) Delete(ctx context.Context, ownerID, expenseID int64) error {
	args := m.Called(ctx, ownerID, expenseID)
	return args.Error(0)
}

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error { return s.err }

func performRequest(r http.Handler, method, path string, body string, contentType string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func performJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	return performRequest(r, method, path, body, "application/json")
}

func performForm(r http.Handler, method, path string, form url.Values) *httptest.ResponseRecorder {
	return performRequest(r, method, path, form.Encode(), "application/x-www-form-urlencoded")
}
