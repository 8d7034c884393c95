package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/service"
)

// FilterExpensesInput is the Huma input for the category filter. An empty
// category returns all active expenses.
type FilterExpensesInput struct {
	Category string `query:"category" doc:"Exact category to filter on; empty returns all active expenses"`
}

// FilterExpensesResponseBody is the response body for the category filter.
type FilterExpensesResponseBody struct {
	Expenses []Expense `json:"expenses" doc:"Active expenses matching the filter"`
}

// FilterExpensesOutput is the Huma output for the category filter.
type FilterExpensesOutput struct {
	Body FilterExpensesResponseBody
}

// expenseFilterer is the interface for the category filter.
type expenseFilterer interface {
	FilterByCategory(ctx context.Context, category string) ([]*service.Expense, error)
}

// FilterExpensesHandler handles GET /v1/expenses/filter.
type FilterExpensesHandler struct {
	ExpenseService expenseFilterer
}

// NewFilterExpensesHandler creates a new FilterExpensesHandler.
func NewFilterExpensesHandler(svc expenseFilterer) *FilterExpensesHandler {
	return &FilterExpensesHandler{ExpenseService: svc}
}

// Register registers the filter expenses endpoint with the Huma API.
func (h *FilterExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "filter-expenses",
		Method:      http.MethodGet,
		Path:        "/v1/expenses/filter",
		Summary:     "Filter expenses",
		Description: "Returns active expenses, restricted to an exact category match when one is supplied.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *FilterExpensesHandler) handle(ctx context.Context, input *FilterExpensesInput) (*FilterExpensesOutput, error) {
	expenses, err := h.ExpenseService.FilterByCategory(ctx, input.Category)
	if err != nil {
		return nil, serviceError(err, "failed to filter expenses")
	}

	return &FilterExpensesOutput{Body: FilterExpensesResponseBody{
		Expenses: fromServiceSlice(expenses),
	}}, nil
}
