package expense

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/service"
)

type mockExpenseFilterer struct {
	mock.Mock
}

func (m *mockExpenseFilterer) FilterByCategory(ctx context.Context, category string) ([]*service.Expense, error) {
	args := m.Called(ctx, category)
	expenses, _ := args.Get(0).([]*service.Expense)
	return expenses, args.Error(1)
}

func newFilterTestAPI(t *testing.T, svc expenseFilterer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewFilterExpensesHandler(svc).Register(api)
	return api
}

func TestHTTP_FilterExpenses_ByCategory(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockSvc := new(mockExpenseFilterer)
	mockSvc.On("FilterByCategory", mock.Anything, "Food").Return([]*service.Expense{
		{
			ID:          1,
			Description: "Coffee",
			Amount:      decimal.RequireFromString("3.50"),
			Category:    "Food",
			Date:        now,
			CreatedAt:   now,
		},
	}, nil)

	resp := newFilterTestAPI(t, mockSvc).Get("/v1/expenses/filter?category=Food")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body FilterExpensesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Expenses, 1)
	assert.Equal(t, "Food", body.Expenses[0].Category)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_FilterExpenses_EmptyCategoryReturnsAll(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockSvc := new(mockExpenseFilterer)
	mockSvc.On("FilterByCategory", mock.Anything, "").Return([]*service.Expense{
		{
			ID:          1,
			Description: "Coffee",
			Amount:      decimal.RequireFromString("3.50"),
			Category:    "Food",
			Date:        now,
			CreatedAt:   now,
		},
		{
			ID:          2,
			Description: "Bus ticket",
			Amount:      decimal.RequireFromString("2.75"),
			Category:    "Transport",
			Date:        now,
			CreatedAt:   now,
		},
	}, nil)

	resp := newFilterTestAPI(t, mockSvc).Get("/v1/expenses/filter")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body FilterExpensesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Expenses, 2)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_FilterExpenses_NoMatches(t *testing.T) {
	mockSvc := new(mockExpenseFilterer)
	mockSvc.On("FilterByCategory", mock.Anything, "Travel").Return([]*service.Expense{}, nil)

	resp := newFilterTestAPI(t, mockSvc).Get("/v1/expenses/filter?category=Travel")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body FilterExpensesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Expenses)
	mockSvc.AssertExpectations(t)
}
