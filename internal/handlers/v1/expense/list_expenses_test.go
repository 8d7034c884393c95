package expense

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/service"
)

type mockExpenseLister struct {
	mock.Mock
}

func (m *mockExpenseLister) ListPage(ctx context.Context, page, limit int) ([]*service.Expense, int64, error) {
	args := m.Called(ctx, page, limit)
	expenses, _ := args.Get(0).([]*service.Expense)
	total, _ := args.Get(1).(int64)
	return expenses, total, args.Error(2)
}

func newListTestAPI(t *testing.T, svc expenseLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListExpensesHandler(svc).Register(api)
	return api
}

func TestHTTP_ListExpenses_DefaultPagination(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Omitted query params arrive as zero values; the engine applies the
	// page 1 / limit 10 defaults.
	mockSvc := new(mockExpenseLister)
	mockSvc.On("ListPage", mock.Anything, 0, 0).Return([]*service.Expense{
		{
			ID:          2,
			Description: "Lunch",
			Amount:      decimal.RequireFromString("10.00"),
			Category:    "Food",
			Date:        now,
			CreatedAt:   now,
		},
		{
			ID:          1,
			Description: "Coffee",
			Amount:      decimal.RequireFromString("3.50"),
			Category:    "Food",
			Date:        now.Add(-time.Hour),
			CreatedAt:   now.Add(-time.Hour),
		},
	}, int64(2), nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/expenses")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListExpensesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Expenses, 2)
	assert.Equal(t, int64(2), body.Total)
	assert.Equal(t, int64(2), body.Expenses[0].ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListExpenses_ExplicitPageAndLimit(t *testing.T) {
	mockSvc := new(mockExpenseLister)
	mockSvc.On("ListPage", mock.Anything, 3, 5).Return([]*service.Expense{}, int64(15), nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/expenses?page=3&limit=5")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListExpensesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Expenses)
	assert.Equal(t, int64(15), body.Total)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListExpenses_NoResults(t *testing.T) {
	mockSvc := new(mockExpenseLister)
	mockSvc.On("ListPage", mock.Anything, 0, 0).Return([]*service.Expense{}, int64(0), nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/expenses")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListExpensesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Expenses)
	assert.Equal(t, int64(0), body.Total)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListExpenses_ServiceError(t *testing.T) {
	mockSvc := new(mockExpenseLister)
	mockSvc.On("ListPage", mock.Anything, 0, 0).
		Return(([]*service.Expense)(nil), int64(0), errors.New("database unavailable"))

	resp := newListTestAPI(t, mockSvc).Get("/v1/expenses")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
