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

type mockExpenseUpdater struct {
	mock.Mock
}

func (m *mockExpenseUpdater) Update(ctx context.Context, id int64, update service.ExpenseUpdate) (*service.Expense, error) {
	args := m.Called(ctx, id, update)
	exp, _ := args.Get(0).(*service.Expense)
	return exp, args.Error(1)
}

func newUpdateTestAPI(t *testing.T, svc expenseUpdater) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewUpdateExpenseHandler(svc).Register(api)
	return api
}

// -- parseUpdateExpenseBody unit tests --

func TestParseUpdateExpenseBody_AllFields(t *testing.T) {
	description := "Espresso"
	amount := "4.25"
	category := "Drinks"
	date := "2025-06-01T12:00:00Z"

	update, err := parseUpdateExpenseBody(UpdateExpenseBody{
		Description: &description,
		Amount:      &amount,
		Category:    &category,
		Date:        &date,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Espresso", *update.Description)
	assert.True(t, update.Amount.Equal(decimal.RequireFromString("4.25")))
	assert.Equal(t, "Drinks", *update.Category)
	expectedDate, _ := time.Parse(time.RFC3339, date)
	assert.True(t, update.Date.Equal(expectedDate))
}

func TestParseUpdateExpenseBody_NoFields(t *testing.T) {
	update, err := parseUpdateExpenseBody(UpdateExpenseBody{})

	assert.NoError(t, err)
	assert.Nil(t, update.Description)
	assert.Nil(t, update.Amount)
	assert.Nil(t, update.Category)
	assert.Nil(t, update.Date)
}

func TestParseUpdateExpenseBody_InvalidAmount(t *testing.T) {
	amount := "not-a-decimal"

	_, err := parseUpdateExpenseBody(UpdateExpenseBody{Amount: &amount})
	assert.Error(t, err)
}

func TestParseUpdateExpenseBody_InvalidDate(t *testing.T) {
	date := "not-a-date"

	_, err := parseUpdateExpenseBody(UpdateExpenseBody{Date: &date})
	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_UpdateExpense_PartialUpdate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	description := "Espresso"

	mockSvc := new(mockExpenseUpdater)
	mockSvc.On("Update", mock.Anything, int64(7), mock.MatchedBy(func(update service.ExpenseUpdate) bool {
		return update.Description != nil && *update.Description == description &&
			update.Amount == nil && update.Category == nil && update.Date == nil
	})).Return(&service.Expense{
		ID:          7,
		Description: "Espresso",
		Amount:      decimal.RequireFromString("3.50"),
		Category:    "Food",
		Date:        now,
		CreatedAt:   now,
	}, nil)

	resp := newUpdateTestAPI(t, mockSvc).Put("/v1/expense/7", UpdateExpenseBody{
		Description: &description,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Expense
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Espresso", body.Description)
	assert.Equal(t, "3.50", body.Amount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateExpense_NotFound(t *testing.T) {
	description := "Espresso"

	mockSvc := new(mockExpenseUpdater)
	mockSvc.On("Update", mock.Anything, int64(99), mock.Anything).
		Return((*service.Expense)(nil), service.ErrExpenseNotFound)

	resp := newUpdateTestAPI(t, mockSvc).Put("/v1/expense/99", UpdateExpenseBody{
		Description: &description,
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateExpense_InvalidAmount(t *testing.T) {
	amount := "not-a-decimal"

	mockSvc := new(mockExpenseUpdater)

	resp := newUpdateTestAPI(t, mockSvc).Put("/v1/expense/7", UpdateExpenseBody{
		Amount: &amount,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Update")
}

func TestHTTP_UpdateExpense_ValidationError(t *testing.T) {
	description := ""

	mockSvc := new(mockExpenseUpdater)
	mockSvc.On("Update", mock.Anything, int64(7), mock.Anything).
		Return((*service.Expense)(nil), &service.ValidationError{Field: "description", Reason: "must not be empty"})

	resp := newUpdateTestAPI(t, mockSvc).Put("/v1/expense/7", UpdateExpenseBody{
		Description: &description,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertExpectations(t)
}
