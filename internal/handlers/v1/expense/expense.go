package expense

import (
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/service"
)

// Expense is the API response model for an expense.
// It is used only for responses, not for request bodies.
type Expense struct {
	ID          int64   `json:"id" doc:"Store-assigned expense id"`
	Description string  `json:"description" doc:"Description of the expense"`
	Amount      string  `json:"amount" doc:"Decimal amount with two fractional digits"`
	Category    string  `json:"category" doc:"Category label"`
	Date        string  `json:"date" doc:"RFC3339 expense date"`
	CreatedAt   string  `json:"createdAt" doc:"RFC3339 creation time"`
	DeletedAt   *string `json:"deletedAt" doc:"RFC3339 soft-delete time, null while active"`
}

func fromService(exp *service.Expense) Expense {
	converted := Expense{
		ID:          exp.ID,
		Description: exp.Description,
		Amount:      exp.Amount.StringFixed(2),
		Category:    exp.Category,
		Date:        exp.Date.Format(time.RFC3339),
		CreatedAt:   exp.CreatedAt.Format(time.RFC3339),
	}
	if exp.DeletedAt != nil {
		deletedAt := exp.DeletedAt.Format(time.RFC3339)
		converted.DeletedAt = &deletedAt
	}
	return converted
}

func fromServiceSlice(expenses []*service.Expense) []Expense {
	converted := make([]Expense, len(expenses))
	for i, exp := range expenses {
		converted[i] = fromService(exp)
	}
	return converted
}

// serviceError maps engine errors onto HTTP statuses: validation failures are
// client errors, unknown ids are 404s, anything else is a store failure.
func serviceError(err error, msg string) error {
	var validationErr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrExpenseNotFound):
		return huma.Error404NotFound("expense not found")
	case errors.As(err, &validationErr):
		return huma.Error422UnprocessableEntity(validationErr.Error())
	default:
		return huma.Error500InternalServerError(msg, err)
	}
}
