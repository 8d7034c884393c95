package expense

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/service"
)

// CreateExpenseBody is the request body for creating an expense.
type CreateExpenseBody struct {
	Description string `json:"description" required:"true" doc:"Description of the expense"`
	Amount      string `json:"amount" required:"true" doc:"Non-negative decimal amount"`
	Category    string `json:"category" required:"true" doc:"Category label"`
	Date        string `json:"date,omitempty" doc:"RFC3339 expense date, defaults to now"`
}

// CreateExpenseInput is the Huma input for creating an expense.
type CreateExpenseInput struct {
	Body CreateExpenseBody
}

// CreateExpenseOutput is the Huma output for creating an expense.
type CreateExpenseOutput struct {
	Body Expense
}

// expenseCreator is the interface for creating expenses.
type expenseCreator interface {
	Create(ctx context.Context, create service.ExpenseCreate) (*service.Expense, error)
}

// CreateExpenseHandler handles POST /v1/expense.
type CreateExpenseHandler struct {
	ExpenseService expenseCreator
}

// NewCreateExpenseHandler creates a new CreateExpenseHandler.
func NewCreateExpenseHandler(svc expenseCreator) *CreateExpenseHandler {
	return &CreateExpenseHandler{ExpenseService: svc}
}

// Register registers the create expense endpoint with the Huma API.
func (h *CreateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-expense",
		Method:        http.MethodPost,
		Path:          "/v1/expense",
		Summary:       "Create expense",
		Description:   "Creates a new expense record.",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateExpenseHandler) handle(ctx context.Context, input *CreateExpenseInput) (*CreateExpenseOutput, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.Error400BadRequest("invalid amount", err)
	}

	var date time.Time
	if input.Body.Date != "" {
		date, err = time.Parse(time.RFC3339, input.Body.Date)
		if err != nil {
			return nil, huma.Error400BadRequest("invalid date", err)
		}
	}

	created, err := h.ExpenseService.Create(ctx, service.ExpenseCreate{
		Description: input.Body.Description,
		Amount:      amount,
		Category:    input.Body.Category,
		Date:        date,
	})
	if err != nil {
		return nil, serviceError(err, "failed to create expense")
	}

	return &CreateExpenseOutput{Body: fromService(created)}, nil
}
