package expense

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/service"
)

// UpdateExpenseBody is the request body for updating an expense. Absent
// fields are left unchanged; id and deletedAt cannot be updated.
type UpdateExpenseBody struct {
	Description *string `json:"description,omitempty" doc:"New description"`
	Amount      *string `json:"amount,omitempty" doc:"New non-negative decimal amount"`
	Category    *string `json:"category,omitempty" doc:"New category label"`
	Date        *string `json:"date,omitempty" doc:"New RFC3339 expense date"`
}

// UpdateExpenseInput is the Huma input for updating an expense.
type UpdateExpenseInput struct {
	ID   int64 `path:"id" doc:"Expense id"`
	Body UpdateExpenseBody
}

// UpdateExpenseOutput is the Huma output for updating an expense.
type UpdateExpenseOutput struct {
	Body Expense
}

// expenseUpdater is the interface for partial updates.
type expenseUpdater interface {
	Update(ctx context.Context, id int64, update service.ExpenseUpdate) (*service.Expense, error)
}

// UpdateExpenseHandler handles PUT /v1/expense/{id}.
type UpdateExpenseHandler struct {
	ExpenseService expenseUpdater
}

// NewUpdateExpenseHandler creates a new UpdateExpenseHandler.
func NewUpdateExpenseHandler(svc expenseUpdater) *UpdateExpenseHandler {
	return &UpdateExpenseHandler{ExpenseService: svc}
}

// Register registers the update expense endpoint with the Huma API.
func (h *UpdateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-expense",
		Method:      http.MethodPut,
		Path:        "/v1/expense/{id}",
		Summary:     "Update expense",
		Description: "Applies the supplied fields to an expense and returns the updated record.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

// parseUpdateExpenseBody converts the wire body into the service update,
// rejecting malformed amounts and dates before the engine is involved.
func parseUpdateExpenseBody(body UpdateExpenseBody) (service.ExpenseUpdate, error) {
	update := service.ExpenseUpdate{
		Description: body.Description,
		Category:    body.Category,
	}

	if body.Amount != nil {
		amount, err := decimal.NewFromString(*body.Amount)
		if err != nil {
			return service.ExpenseUpdate{}, huma.Error400BadRequest("invalid amount", err)
		}
		update.Amount = &amount
	}

	if body.Date != nil {
		date, err := time.Parse(time.RFC3339, *body.Date)
		if err != nil {
			return service.ExpenseUpdate{}, huma.Error400BadRequest("invalid date", err)
		}
		update.Date = &date
	}

	return update, nil
}

func (h *UpdateExpenseHandler) handle(ctx context.Context, input *UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	update, err := parseUpdateExpenseBody(input.Body)
	if err != nil {
		return nil, err
	}

	updated, err := h.ExpenseService.Update(ctx, input.ID, update)
	if err != nil {
		return nil, serviceError(err, "failed to update expense")
	}

	return &UpdateExpenseOutput{Body: fromService(updated)}, nil
}
