package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// ListExpensesInput is the Huma input for the paginated listing. Omitted or
// non-positive values fall back to the engine defaults (page 1, limit 10).
type ListExpensesInput struct {
	Page  int `query:"page" doc:"1-based page number, defaults to 1"`
	Limit int `query:"limit" doc:"Page size, defaults to 10"`
}

// ListExpensesResponseBody is the response body for the paginated listing.
type ListExpensesResponseBody struct {
	Expenses []Expense `json:"expenses" doc:"Page of active expenses, newest date first"`
	Total    int64     `json:"total" doc:"Count of active expenses across all pages"`
}

// ListExpensesOutput is the Huma output for the paginated listing.
type ListExpensesOutput struct {
	Body ListExpensesResponseBody
}

// expenseLister is the interface for the paginated listing.
type expenseLister interface {
	ListPage(ctx context.Context, page, limit int) ([]*service.Expense, int64, error)
}

// ListExpensesHandler handles GET /v1/expenses.
type ListExpensesHandler struct {
	ExpenseService expenseLister
}

// NewListExpensesHandler creates a new ListExpensesHandler.
func NewListExpensesHandler(svc expenseLister) *ListExpensesHandler {
	return &ListExpensesHandler{ExpenseService: svc}
}

// Register registers the list expenses endpoint with the Huma API.
func (h *ListExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-expenses",
		Method:      http.MethodGet,
		Path:        "/v1/expenses",
		Summary:     "List expenses",
		Description: "Returns one page of active expenses ordered by date descending, plus the total active count.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *ListExpensesHandler) handle(ctx context.Context, input *ListExpensesInput) (*ListExpensesOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listExpensesMs")
	}
	expenses, total, err := h.ExpenseService.ListPage(ctx, input.Page, input.Limit)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, serviceError(err, "failed to list expenses")
	}

	if logData != nil {
		logData.AddData("expenseCount", len(expenses))
	}

	return &ListExpensesOutput{Body: ListExpensesResponseBody{
		Expenses: fromServiceSlice(expenses),
		Total:    total,
	}}, nil
}
