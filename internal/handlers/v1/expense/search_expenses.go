package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/service"
)

// SearchExpensesInput is the Huma input for the description search. An empty
// query yields an empty result set, not every expense.
type SearchExpensesInput struct {
	Query string `query:"query" doc:"Substring to match against descriptions, case-insensitively"`
}

// SearchExpensesResponseBody is the response body for the description search.
type SearchExpensesResponseBody struct {
	Expenses []Expense `json:"expenses" doc:"Active expenses whose description contains the query"`
}

// SearchExpensesOutput is the Huma output for the description search.
type SearchExpensesOutput struct {
	Body SearchExpensesResponseBody
}

// expenseSearcher is the interface for the description search.
type expenseSearcher interface {
	Search(ctx context.Context, query string) ([]*service.Expense, error)
}

// SearchExpensesHandler handles GET /v1/expenses/search.
type SearchExpensesHandler struct {
	ExpenseService expenseSearcher
}

// NewSearchExpensesHandler creates a new SearchExpensesHandler.
func NewSearchExpensesHandler(svc expenseSearcher) *SearchExpensesHandler {
	return &SearchExpensesHandler{ExpenseService: svc}
}

// Register registers the search expenses endpoint with the Huma API.
func (h *SearchExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "search-expenses",
		Method:      http.MethodGet,
		Path:        "/v1/expenses/search",
		Summary:     "Search expenses",
		Description: "Returns active expenses whose description contains the query as a case-insensitive substring.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *SearchExpensesHandler) handle(ctx context.Context, input *SearchExpensesInput) (*SearchExpensesOutput, error) {
	expenses, err := h.ExpenseService.Search(ctx, input.Query)
	if err != nil {
		return nil, serviceError(err, "failed to search expenses")
	}

	return &SearchExpensesOutput{Body: SearchExpensesResponseBody{
		Expenses: fromServiceSlice(expenses),
	}}, nil
}
