package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// Expense represents an expense in the service layer. DeletedAt is nil while
// the expense is active.
type Expense struct {
	ID          int64
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	CreatedAt   time.Time
	DeletedAt   *time.Time
}

// ExpenseCreate is the input for creating a new expense. A zero Date means
// "now", filled in by the store.
type ExpenseCreate struct {
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
}

// ExpenseUpdate carries the fields to change on an existing expense.
// Nil fields are left as they are.
type ExpenseUpdate struct {
	Description *string
	Amount      *decimal.Decimal
	Category    *string
	Date        *time.Time
}

func expenseFromStorage(row *sqlconfig.Expense) *Expense {
	return &Expense{
		ID:          row.ID,
		Description: row.Description,
		Amount:      row.Amount,
		Category:    row.Category,
		Date:        row.Date,
		CreatedAt:   row.CreatedAt,
		DeletedAt:   row.DeletedAt,
	}
}

func expensesFromStorage(rows []*sqlconfig.Expense) []*Expense {
	converted := make([]*Expense, len(rows))
	for i, row := range rows {
		converted[i] = expenseFromStorage(row)
	}
	return converted
}
