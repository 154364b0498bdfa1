package repositories

import (
	"context"
	"time"

	"github.com/bizbooks/bizbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerRepository defines the read-side query shapes the reporting engine
// needs from the journal store. Every method is a pure read scoped to the
// request context; implementations must release their connection on all
// exit paths.
type LedgerRepository interface {
	// GetAccountBalances returns one row per account of the given types with
	// debit/credit totals over entries dated on or before asOf. Accounts with
	// no matching entries are still returned with zero totals (left-join
	// semantics): a trial balance must show every account that exists.
	GetAccountBalances(ctx context.Context, businessID string, accountTypes []domain.AccountType, asOf time.Time) ([]domain.AccountBalance, error)

	// GetPeriodActivity returns one row per account of the given types with
	// debit/credit totals over entries dated inside [from, to]. Used by the
	// period-bounded flow statements; accounts without activity in the period
	// are omitted.
	GetPeriodActivity(ctx context.Context, businessID string, accountTypes []domain.AccountType, from, to time.Time) ([]domain.AccountBalance, error)

	// GetLifetimeIncomeExpense returns the cumulative net income total
	// (credits minus debits over INCOME accounts) and cumulative net expense
	// total (debits minus credits over EXPENSE accounts) for all entries
	// dated on or before asOf. Backs the retained-earnings rollup.
	GetLifetimeIncomeExpense(ctx context.Context, businessID string, asOf time.Time) (income, expense decimal.Decimal, err error)

	// GetMonthlyAggregates returns per-calendar-month revenue, expense and
	// COGS sums for entries dated on or after from. COGS is the subset of
	// expense activity posted to the account matching cogsCode; an empty
	// cogsCode yields zero COGS columns. Months without postings produce no
	// row; gap filling is the caller's job.
	GetMonthlyAggregates(ctx context.Context, businessID string, from time.Time, cogsCode string) ([]domain.MonthlyAggregate, error)
}
