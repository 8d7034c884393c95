package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ExpenseService owns the expense lifecycle: create, lookup, partial update,
// soft delete, paginated listing, category filtering, and description search.
//
// Visibility rules: listing, filtering, and search only return active rows
// (deleted_at null); GetByID and Update see soft-deleted rows too. Every
// operation is a single-row store call; Create and Update refetch after the
// write, so the result can reflect a concurrent write that landed in between.
type ExpenseService struct {
	storage *storage.Storage
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(store *storage.Storage) *ExpenseService {
	return &ExpenseService{storage: store}
}

// Create validates and persists a new expense and returns the stored record.
// A zero Date is filled with the store's current time.
func (s *ExpenseService) Create(ctx context.Context, create ExpenseCreate) (*Expense, error) {
	if strings.TrimSpace(create.Description) == "" {
		return nil, &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if strings.TrimSpace(create.Category) == "" {
		return nil, &ValidationError{Field: "category", Reason: "must not be empty"}
	}
	if create.Amount.IsNegative() {
		return nil, &ValidationError{Field: "amount", Reason: "must not be negative"}
	}

	id, err := s.storage.Expenses.Insert(ctx, &sqlconfig.ExpenseCreate{
		Description: create.Description,
		Amount:      normalizeAmount(create.Amount),
		Category:    create.Category,
		Date:        create.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("insert expense: %w", err)
	}

	return s.GetByID(ctx, id)
}

// GetByID returns the expense with the given id whether or not it has been
// soft-deleted. Returns ErrExpenseNotFound if the id never existed.
func (s *ExpenseService) GetByID(ctx context.Context, id int64) (*Expense, error) {
	row, err := s.storage.Expenses.FindByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExpenseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find expense %d: %w", id, err)
	}
	return expenseFromStorage(row), nil
}

// Update overwrites the non-nil fields of the expense with the given id and
// returns the refetched record. Soft-deleted expenses remain updatable; the
// returned record then still carries its DeletedAt timestamp.
func (s *ExpenseService) Update(ctx context.Context, id int64, update ExpenseUpdate) (*Expense, error) {
	if update.Description != nil && strings.TrimSpace(*update.Description) == "" {
		return nil, &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if update.Category != nil && strings.TrimSpace(*update.Category) == "" {
		return nil, &ValidationError{Field: "category", Reason: "must not be empty"}
	}
	if update.Amount != nil {
		if update.Amount.IsNegative() {
			return nil, &ValidationError{Field: "amount", Reason: "must not be negative"}
		}
		normalized := normalizeAmount(*update.Amount)
		update.Amount = &normalized
	}

	storageUpdate := &sqlconfig.ExpenseUpdate{
		Description: update.Description,
		Amount:      update.Amount,
		Category:    update.Category,
		Date:        update.Date,
	}

	// An update with no fields would produce an empty SET clause; the refetch
	// below already covers the not-found case.
	if update.Description != nil || update.Amount != nil || update.Category != nil || update.Date != nil {
		affected, err := s.storage.Expenses.Update(ctx, id, storageUpdate)
		if err != nil {
			return nil, fmt.Errorf("update expense %d: %w", id, err)
		}
		if affected == 0 {
			return nil, ErrExpenseNotFound
		}
	}

	return s.GetByID(ctx, id)
}

// SoftDelete stamps the expense as deleted. Deleting an already-deleted
// expense refreshes the timestamp and succeeds; only an id that never existed
// returns ErrExpenseNotFound.
func (s *ExpenseService) SoftDelete(ctx context.Context, id int64) error {
	affected, err := s.storage.Expenses.SoftDelete(ctx, id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("soft delete expense %d: %w", id, err)
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// ListPage returns one page of active expenses ordered by date descending
// (id descending on ties) together with the total count of active expenses.
// Non-positive page or limit values fall back to page 1 and limit 10.
func (s *ExpenseService) ListPage(ctx context.Context, page, limit int) ([]*Expense, int64, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	offset := (page - 1) * limit

	rows, err := s.storage.Expenses.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list expenses: %w", err)
	}

	total, err := s.storage.Expenses.CountActive(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count expenses: %w", err)
	}

	return expensesFromStorage(rows), total, nil
}

// FilterByCategory returns all active expenses, restricted to an exact
// category match when category is non-empty.
func (s *ExpenseService) FilterByCategory(ctx context.Context, category string) ([]*Expense, error) {
	rows, err := s.storage.Expenses.ListActiveByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("filter expenses: %w", err)
	}
	return expensesFromStorage(rows), nil
}

// Search returns active expenses whose description contains the query as a
// case-insensitive substring. An empty or whitespace-only query returns an
// empty result rather than matching everything.
func (s *ExpenseService) Search(ctx context.Context, query string) ([]*Expense, error) {
	if strings.TrimSpace(query) == "" {
		return []*Expense{}, nil
	}
	rows, err := s.storage.Expenses.SearchActive(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search expenses: %w", err)
	}
	return expensesFromStorage(rows), nil
}

// normalizeAmount fixes amounts to two decimal places using half-up rounding
// away from zero, so 10.005 is stored as 10.01.
func normalizeAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}
