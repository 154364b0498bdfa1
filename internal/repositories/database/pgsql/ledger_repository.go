package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/bizbooks/bizbooks_app/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ledgerRepository implements the LedgerRepository interface over the
// append-only journal_entries table.
type ledgerRepository struct {
	BaseRepository
}

func newLedgerRepository(db *pgxpool.Pool) portsrepo.LedgerRepository {
	return &ledgerRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// accountTypeStrings converts the enum slice for use with = ANY($n).
func accountTypeStrings(accountTypes []domain.AccountType) []string {
	out := make([]string, len(accountTypes))
	for i, t := range accountTypes {
		out[i] = string(t)
	}
	return out
}

// GetAccountBalances retrieves per-account debit/credit totals as of a date.
// The LEFT JOIN keeps accounts with no matching entries in the result with
// zero totals.
func (r *ledgerRepository) GetAccountBalances(ctx context.Context, businessID string, accountTypes []domain.AccountType, asOf time.Time) ([]domain.AccountBalance, error) {
	query := `
		SELECT
			a.account_id,
			a.code,
			a.name,
			a.account_type,
			COALESCE(SUM(e.debit), 0) AS total_debit,
			COALESCE(SUM(e.credit), 0) AS total_credit
		FROM accounts a
		LEFT JOIN journal_entries e
			ON e.account_id = a.account_id
			AND e.transaction_date <= $2
		WHERE a.business_id = $1
			AND a.account_type = ANY($3)
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code
	`

	rows, err := r.Pool.Query(ctx, query, businessID, asOf, accountTypeStrings(accountTypes))
	if err != nil {
		return nil, fmt.Errorf("error querying account balances: %w", err)
	}
	defer rows.Close()

	var result []domain.AccountBalance
	for rows.Next() {
		var row domain.AccountBalance
		var accountType string

		if err := rows.Scan(
			&row.AccountID,
			&row.Code,
			&row.Name,
			&accountType,
			&row.TotalDebit,
			&row.TotalCredit,
		); err != nil {
			return nil, fmt.Errorf("error scanning account balance row: %w", err)
		}

		row.AccountType = domain.AccountType(accountType)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account balance rows: %w", err)
	}

	if result == nil {
		result = []domain.AccountBalance{}
	}
	return result, nil
}

// GetPeriodActivity retrieves per-account debit/credit totals for entries
// dated inside [from, to]. Flow statements only; accounts without activity
// in the period are omitted.
func (r *ledgerRepository) GetPeriodActivity(ctx context.Context, businessID string, accountTypes []domain.AccountType, from, to time.Time) ([]domain.AccountBalance, error) {
	query := `
		SELECT
			a.account_id,
			a.code,
			a.name,
			a.account_type,
			SUM(e.debit) AS total_debit,
			SUM(e.credit) AS total_credit
		FROM journal_entries e
		JOIN accounts a ON e.account_id = a.account_id
		WHERE e.business_id = $1
			AND e.transaction_date BETWEEN $2 AND $3
			AND a.account_type = ANY($4)
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code
	`

	rows, err := r.Pool.Query(ctx, query, businessID, from, to, accountTypeStrings(accountTypes))
	if err != nil {
		return nil, fmt.Errorf("error querying period activity: %w", err)
	}
	defer rows.Close()

	var result []domain.AccountBalance
	for rows.Next() {
		var row domain.AccountBalance
		var accountType string

		if err := rows.Scan(
			&row.AccountID,
			&row.Code,
			&row.Name,
			&accountType,
			&row.TotalDebit,
			&row.TotalCredit,
		); err != nil {
			return nil, fmt.Errorf("error scanning period activity row: %w", err)
		}

		row.AccountType = domain.AccountType(accountType)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating period activity rows: %w", err)
	}

	if result == nil {
		result = []domain.AccountBalance{}
	}
	return result, nil
}

// GetLifetimeIncomeExpense computes the all-time net income and net expense
// totals up to asOf, backing the retained-earnings rollup.
func (r *ledgerRepository) GetLifetimeIncomeExpense(ctx context.Context, businessID string, asOf time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN a.account_type = 'INCOME' THEN e.credit - e.debit ELSE 0 END), 0) AS net_income,
			COALESCE(SUM(CASE WHEN a.account_type = 'EXPENSE' THEN e.debit - e.credit ELSE 0 END), 0) AS net_expense
		FROM journal_entries e
		JOIN accounts a ON e.account_id = a.account_id
		WHERE e.business_id = $1
			AND e.transaction_date <= $2
			AND a.account_type IN ('INCOME', 'EXPENSE')
	`

	var income, expense decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, businessID, asOf).Scan(&income, &expense); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("error querying lifetime income/expense: %w", err)
	}
	return income, expense, nil
}

// GetMonthlyAggregates retrieves per-calendar-month revenue, expense and COGS
// sums for entries dated on or after from. An empty cogsCode matches nothing,
// yielding zero COGS columns.
func (r *ledgerRepository) GetMonthlyAggregates(ctx context.Context, businessID string, from time.Time, cogsCode string) ([]domain.MonthlyAggregate, error) {
	query := `
		SELECT
			EXTRACT(YEAR FROM e.transaction_date)::int AS year,
			EXTRACT(MONTH FROM e.transaction_date)::int AS month,
			COALESCE(SUM(CASE WHEN a.account_type = 'INCOME' THEN e.credit - e.debit ELSE 0 END), 0) AS revenue,
			COALESCE(SUM(CASE WHEN a.account_type = 'EXPENSE' THEN e.debit - e.credit ELSE 0 END), 0) AS expense,
			COALESCE(SUM(CASE WHEN a.account_type = 'EXPENSE' AND a.code = $3 THEN e.debit - e.credit ELSE 0 END), 0) AS cogs
		FROM journal_entries e
		JOIN accounts a ON e.account_id = a.account_id
		WHERE e.business_id = $1
			AND e.transaction_date >= $2
			AND a.account_type IN ('INCOME', 'EXPENSE')
		GROUP BY 1, 2
		ORDER BY 1, 2
	`

	rows, err := r.Pool.Query(ctx, query, businessID, from, cogsCode)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly aggregates: %w", err)
	}
	defer rows.Close()

	var result []domain.MonthlyAggregate
	for rows.Next() {
		var agg domain.MonthlyAggregate
		var month int

		if err := rows.Scan(&agg.Year, &month, &agg.Revenue, &agg.Expense, &agg.COGS); err != nil {
			return nil, fmt.Errorf("error scanning monthly aggregate row: %w", err)
		}

		agg.Month = time.Month(month)
		result = append(result, agg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly aggregate rows: %w", err)
	}

	if result == nil {
		result = []domain.MonthlyAggregate{}
	}
	return result, nil
}
