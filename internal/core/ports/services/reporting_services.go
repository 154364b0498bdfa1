package services

import (
	"context"
	"time"

	"github.com/bizbooks/bizbooks_app/internal/core/domain"
)

// ReportingService defines the financial statement generators. Position
// statements (trial balance, balance sheet) take a single as-of cutoff;
// flow statements (income statement) take an explicit from/to period. The
// two parameter shapes are deliberately distinct and must not be conflated.
type ReportingService interface {
	// TrialBalance lists every account with its debit/credit totals as of a
	// date, plus the balanced self-check flag.
	TrialBalance(ctx context.Context, businessID string, asOf time.Time, userID string) (*domain.TrialBalanceReport, error)

	// IncomeStatement reports revenue, COGS and other expenses for entries
	// dated inside [from, to], with gross profit and net income.
	IncomeStatement(ctx context.Context, businessID string, from, to time.Time, userID string) (*domain.IncomeStatementReport, error)

	// BalanceSheet reports assets, liabilities and equity as of a date,
	// folding an all-time retained-earnings rollup into equity.
	BalanceSheet(ctx context.Context, businessID string, asOf time.Time, userID string) (*domain.BalanceSheetReport, error)

	// MonthlyFinancials returns exactly monthCount chronologically ordered
	// buckets covering the trailing calendar months ending at the current
	// month; months without postings appear zero-valued.
	MonthlyFinancials(ctx context.Context, businessID string, monthCount int, userID string) ([]domain.MonthlyFinancial, error)
}

// InventoryReportingService defines the inventory valuation and aging reports.
type InventoryReportingService interface {
	// StockAging buckets active lots by age into 0-30, 31-60, 61-90 and 90+
	// days, summing quantity * cost_price per bucket.
	StockAging(ctx context.Context, businessID string, now time.Time, userID string) (*domain.StockAgingReport, error)

	// Valuation reconstructs per-product stock and value as of a date by
	// replaying the movement ledger; products at exactly zero quantity are
	// excluded.
	Valuation(ctx context.Context, businessID string, asOf time.Time, userID string) (*domain.ValuationReport, error)
}
