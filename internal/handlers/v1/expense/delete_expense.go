package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// DeleteExpenseInput is the Huma input for soft-deleting an expense.
type DeleteExpenseInput struct {
	ID int64 `path:"id" doc:"Expense id"`
}

// DeleteExpenseOutput is the Huma output for soft-deleting an expense.
type DeleteExpenseOutput struct{}

// expenseDeleter is the interface for soft deletion.
type expenseDeleter interface {
	SoftDelete(ctx context.Context, id int64) error
}

// DeleteExpenseHandler handles DELETE /v1/expense/{id}.
type DeleteExpenseHandler struct {
	ExpenseService expenseDeleter
}

// NewDeleteExpenseHandler creates a new DeleteExpenseHandler.
func NewDeleteExpenseHandler(svc expenseDeleter) *DeleteExpenseHandler {
	return &DeleteExpenseHandler{ExpenseService: svc}
}

// Register registers the delete expense endpoint with the Huma API.
func (h *DeleteExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-expense",
		Method:        http.MethodDelete,
		Path:          "/v1/expense/{id}",
		Summary:       "Delete expense",
		Description:   "Soft-deletes an expense. The record stays retrievable by id.",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteExpenseHandler) handle(ctx context.Context, input *DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	if err := h.ExpenseService.SoftDelete(ctx, input.ID); err != nil {
		return nil, serviceError(err, "failed to delete expense")
	}
	return &DeleteExpenseOutput{}, nil
}
