package sqlconfig

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents an expense record as stored.
type Expense struct {
	ID          int64           `db:"id"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Category    string          `db:"category"`
	Date        time.Time       `db:"date"`
	CreatedAt   time.Time       `db:"created_at"`
	DeletedAt   *time.Time      `db:"deleted_at"`
}

// ExpenseCreate is the input for inserting a new expense.
type ExpenseCreate struct {
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time // defaults to now if zero
}

// ExpenseUpdate carries the columns to overwrite on an existing expense.
// Nil fields are left untouched. ID and deleted_at are never part of an
// update; deleted_at only moves through SoftDelete.
type ExpenseUpdate struct {
	Description *string
	Amount      *decimal.Decimal
	Category    *string
	Date        *time.Time
}

// IExpensesTable defines the interface for expense storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
// FindByID and Update see every row including soft-deleted ones; the
// List/Count/Search operations only see rows where deleted_at is null.
//
//go:generate mockery --name IExpensesTable --output mock_IExpensesTable.go
type IExpensesTable interface {
	FindByID(ctx context.Context, id int64) (*Expense, error)
	Insert(ctx context.Context, create *ExpenseCreate) (int64, error)
	Update(ctx context.Context, id int64, update *ExpenseUpdate) (int64, error)
	SoftDelete(ctx context.Context, id int64, deletedAt time.Time) (int64, error)
	ListActive(ctx context.Context, limit, offset int) ([]*Expense, error)
	CountActive(ctx context.Context) (int64, error)
	ListActiveByCategory(ctx context.Context, category string) ([]*Expense, error)
	SearchActive(ctx context.Context, substring string) ([]*Expense, error)
}
