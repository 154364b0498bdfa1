package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountBalance represents one account's aggregated ledger activity as of a
// cutoff date. Accounts with no activity still appear with zero totals, since
// a trial balance must show every account that exists.
type AccountBalance struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	NetBalance  decimal.Decimal `json:"netBalance"` // Signed per the account type's normal-balance rule
}

// TrialBalanceReport lists every account with its totals plus the ledger's
// core self-check: Balanced is false whenever total debits and credits
// diverge. Callers must inspect the flag; it is never raised as an error.
type TrialBalanceReport struct {
	Rows        []AccountBalance `json:"rows"`
	TotalDebit  decimal.Decimal  `json:"totalDebit"`
	TotalCredit decimal.Decimal  `json:"totalCredit"`
	Balanced    bool             `json:"balanced"`
}

// AccountAmount represents an account with its net amount for financial reports.
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// IncomeStatementReport is a period-bounded flow statement: only entries
// dated inside [from, to] contribute. COGS accounts are singled out by the
// business's configured COGS account code, never by name.
type IncomeStatementReport struct {
	Income            []AccountAmount `json:"income"`
	COGS              []AccountAmount `json:"cogs"`
	OtherExpenses     []AccountAmount `json:"otherExpenses"`
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalCOGS         decimal.Decimal `json:"totalCOGS"`
	GrossProfit       decimal.Decimal `json:"grossProfit"`
	TotalOtherExpense decimal.Decimal `json:"totalOtherExpense"`
	TotalExpense      decimal.Decimal `json:"totalExpense"`
	NetIncome         decimal.Decimal `json:"netIncome"`
}

// BalanceSheetReport is an as-of position statement. RetainedEarnings is a
// separate all-time income-minus-expense rollup up to the cutoff and is
// already folded into TotalEquity.
type BalanceSheetReport struct {
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	RetainedEarnings decimal.Decimal `json:"retainedEarnings"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	IsBalanced       bool            `json:"isBalanced"`
}

// MonthlyAggregate is one calendar month's raw revenue/expense/COGS sums as
// returned by the ledger store. Months without postings produce no aggregate;
// the trend analyzer fills those gaps with zero buckets.
type MonthlyAggregate struct {
	Year    int             `json:"year"`
	Month   time.Month      `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
	COGS    decimal.Decimal `json:"cogs"`
}

// MonthlyFinancial is one fully populated bucket in the monthly trend series.
type MonthlyFinancial struct {
	Label    string          `json:"label"` // e.g. "Jan 2026"
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	COGS     decimal.Decimal `json:"cogs"`
	Profit   decimal.Decimal `json:"profit"`
}

// AgedLot is an active lot annotated with its age and extended value.
type AgedLot struct {
	LotID     string          `json:"lotID"`
	ProductID string          `json:"productID"`
	AgeDays   int             `json:"ageDays"`
	Quantity  decimal.Decimal `json:"quantity"`
	CostPrice decimal.Decimal `json:"costPrice"`
	Value     decimal.Decimal `json:"value"`
}

// StockAgingBucket groups active lots falling inside one age band.
type StockAgingBucket struct {
	Label    string          `json:"label"` // "0-30", "31-60", "61-90", "90+"
	Lots     []AgedLot       `json:"lots"`
	Quantity decimal.Decimal `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

// StockAgingReport buckets every active lot by age in days.
type StockAgingReport struct {
	Buckets    []StockAgingBucket `json:"buckets"`
	TotalValue decimal.Decimal    `json:"totalValue"`
}

// ProductValuation is one product's reconstructed stock position at a cutoff.
type ProductValuation struct {
	ProductID string          `json:"productID"`
	Quantity  decimal.Decimal `json:"quantity"`
	Value     decimal.Decimal `json:"value"`
}

// ValuationReport is a point-in-time inventory valuation derived by replaying
// the movement ledger up to the cutoff. Products whose cumulative quantity is
// exactly zero are excluded.
type ValuationReport struct {
	Products      []ProductValuation `json:"products"`
	TotalQuantity decimal.Decimal    `json:"totalQuantity"`
	TotalValue    decimal.Decimal    `json:"totalValue"`
}
