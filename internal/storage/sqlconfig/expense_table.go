package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const expensesTable = "expenses"

// expenseColumns is the column set every query selects. The schema itself is
// owned by the migrations under migrations/; this file never issues DDL.
var expenseColumns = []any{"id", "description", "amount", "category", "date", "created_at", "deleted_at"}

var _ IExpensesTable = (*ExpensesTable)(nil)

// ExpensesTable provides access to the expenses table.
type ExpensesTable struct {
	exec bob.Executor
}

// NewExpensesTable creates an ExpensesTable for the given database.
func NewExpensesTable(db *sql.DB) ExpensesTable {
	return ExpensesTable{exec: bob.NewDB(db)}
}

// FindByID retrieves an expense by primary key, soft-deleted rows included.
// Returns sql.ErrNoRows when no row with the id exists.
func (t *ExpensesTable) FindByID(ctx context.Context, id int64) (*Expense, error) {
	q := psql.Select(
		sm.Columns(expenseColumns...),
		sm.From(expensesTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Expense]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new expense and returns its generated ID. A zero Date is
// omitted so the column default (now()) applies.
func (t *ExpensesTable) Insert(ctx context.Context, create *ExpenseCreate) (int64, error) {
	cols := []string{"description", "amount", "category"}
	args := []any{create.Description, create.Amount, create.Category}
	if !create.Date.IsZero() {
		cols = append(cols, "date")
		args = append(args, create.Date)
	}

	q := psql.Insert(
		im.Into(expensesTable, cols...),
		im.Values(psql.Arg(args...)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
}

// Update overwrites the non-nil fields of the row with the given id and
// returns the number of rows affected. It does not filter on deleted_at.
func (t *ExpensesTable) Update(ctx context.Context, id int64, update *ExpenseUpdate) (int64, error) {
	mods := []bob.Mod[*dialect.UpdateQuery]{um.Table(expensesTable)}
	if update.Description != nil {
		mods = append(mods, um.SetCol("description").ToArg(*update.Description))
	}
	if update.Amount != nil {
		mods = append(mods, um.SetCol("amount").ToArg(*update.Amount))
	}
	if update.Category != nil {
		mods = append(mods, um.SetCol("category").ToArg(*update.Category))
	}
	if update.Date != nil {
		mods = append(mods, um.SetCol("date").ToArg(*update.Date))
	}
	mods = append(mods, um.Where(psql.Quote("id").EQ(psql.Arg(id))))

	res, err := bob.Exec(ctx, t.exec, psql.Update(mods...))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// SoftDelete stamps deleted_at on the row with the given id and returns the
// number of rows affected. The update is unconditional: re-deleting an
// already-deleted row refreshes the timestamp rather than failing.
func (t *ExpensesTable) SoftDelete(ctx context.Context, id int64, deletedAt time.Time) (int64, error) {
	q := psql.Update(
		um.Table(expensesTable),
		um.SetCol("deleted_at").ToArg(deletedAt),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListActive returns a page of non-deleted expenses ordered by date
// descending, ties broken by id descending so pages are stable.
func (t *ExpensesTable) ListActive(ctx context.Context, limit, offset int) ([]*Expense, error) {
	q := psql.Select(
		sm.Columns(expenseColumns...),
		sm.From(expensesTable),
		sm.Where(psql.Quote("deleted_at").IsNull()),
		sm.OrderBy("date").Desc(),
		sm.OrderBy("id").Desc(),
		sm.Limit(limit),
		sm.Offset(offset),
	)
	return t.queryExpenses(ctx, q)
}

// CountActive returns the number of non-deleted expenses.
func (t *ExpensesTable) CountActive(ctx context.Context) (int64, error) {
	q := psql.Select(
		sm.Columns("count(*)"),
		sm.From(expensesTable),
		sm.Where(psql.Quote("deleted_at").IsNull()),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
}

// ListActiveByCategory returns non-deleted expenses, restricted to an exact
// category match when category is non-empty.
func (t *ExpensesTable) ListActiveByCategory(ctx context.Context, category string) ([]*Expense, error) {
	mods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(expenseColumns...),
		sm.From(expensesTable),
		sm.Where(psql.Quote("deleted_at").IsNull()),
	}
	if category != "" {
		mods = append(mods, sm.Where(psql.Quote("category").EQ(psql.Arg(category))))
	}
	mods = append(mods,
		sm.OrderBy("date").Desc(),
		sm.OrderBy("id").Desc(),
	)
	return t.queryExpenses(ctx, psql.Select(mods...))
}

// SearchActive returns non-deleted expenses whose description contains the
// substring, matched case-insensitively.
func (t *ExpensesTable) SearchActive(ctx context.Context, substring string) ([]*Expense, error) {
	q := psql.Select(
		sm.Columns(expenseColumns...),
		sm.From(expensesTable),
		sm.Where(psql.Quote("deleted_at").IsNull()),
		sm.Where(psql.Raw("description ILIKE ?", "%"+substring+"%")),
		sm.OrderBy("date").Desc(),
		sm.OrderBy("id").Desc(),
	)
	return t.queryExpenses(ctx, q)
}

func (t *ExpensesTable) queryExpenses(ctx context.Context, q bob.Query) ([]*Expense, error) {
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[Expense]())
	if err != nil {
		return nil, err
	}
	result := make([]*Expense, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
