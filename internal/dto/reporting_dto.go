package dto

import (
	"time"

	"github.com/bizbooks/bizbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	NetBalance  decimal.Decimal `json:"netBalance"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	Success bool                      `json:"success"`
	AsOf    string                    `json:"asOf"`
	Rows    []TrialBalanceRowResponse `json:"rows"`
	Totals  struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
	Balanced bool `json:"balanced"`
}

// AccountAmountResponse represents an account with its amount in a financial report
type AccountAmountResponse struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// IncomeStatementResponse represents the income statement report response
type IncomeStatementResponse struct {
	Success       bool                    `json:"success"`
	FromDate      string                  `json:"fromDate"`
	ToDate        string                  `json:"toDate"`
	Income        []AccountAmountResponse `json:"income"`
	COGS          []AccountAmountResponse `json:"cogs"`
	OtherExpenses []AccountAmountResponse `json:"otherExpenses"`
	Summary       struct {
		TotalIncome       decimal.Decimal `json:"totalIncome"`
		TotalCOGS         decimal.Decimal `json:"totalCOGS"`
		GrossProfit       decimal.Decimal `json:"grossProfit"`
		TotalOtherExpense decimal.Decimal `json:"totalOtherExpense"`
		TotalExpense      decimal.Decimal `json:"totalExpense"`
		NetIncome         decimal.Decimal `json:"netIncome"`
	} `json:"summary"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	Success     bool                    `json:"success"`
	AsOf        string                  `json:"asOf"`
	Assets      []AccountAmountResponse `json:"assets"`
	Liabilities []AccountAmountResponse `json:"liabilities"`
	Equity      []AccountAmountResponse `json:"equity"`
	Summary     struct {
		RetainedEarnings decimal.Decimal `json:"retainedEarnings"`
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		TotalEquity      decimal.Decimal `json:"totalEquity"`
	} `json:"summary"`
	IsBalanced bool `json:"isBalanced"`
}

// MonthlyFinancialResponse is one bucket in the monthly trend response.
type MonthlyFinancialResponse struct {
	Label    string          `json:"label"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	COGS     decimal.Decimal `json:"cogs"`
	Profit   decimal.Decimal `json:"profit"`
}

// MonthlyTrendResponse represents the monthly trend report response
type MonthlyTrendResponse struct {
	Success bool                       `json:"success"`
	Months  []MonthlyFinancialResponse `json:"months"`
}

// ToTrialBalanceResponse converts a domain trial balance report to a DTO response
func ToTrialBalanceResponse(report *domain.TrialBalanceReport, asOf time.Time) TrialBalanceResponse {
	response := TrialBalanceResponse{
		Success:  true,
		AsOf:     asOf.Format("2006-01-02"),
		Rows:     make([]TrialBalanceRowResponse, len(report.Rows)),
		Balanced: report.Balanced,
	}

	for i, row := range report.Rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountID:   row.AccountID,
			Code:        row.Code,
			AccountName: row.Name,
			AccountType: string(row.AccountType),
			Debit:       row.TotalDebit,
			Credit:      row.TotalCredit,
			NetBalance:  row.NetBalance,
		}
	}

	response.Totals.Debit = report.TotalDebit
	response.Totals.Credit = report.TotalCredit

	return response
}

func toAccountAmountResponses(accounts []domain.AccountAmount) []AccountAmountResponse {
	out := make([]AccountAmountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = AccountAmountResponse{
			AccountID: a.AccountID,
			Code:      a.Code,
			Name:      a.Name,
			Amount:    a.NetAmount,
		}
	}
	return out
}

// ToIncomeStatementResponse converts a domain income statement to a DTO response
func ToIncomeStatementResponse(report *domain.IncomeStatementReport, from, to time.Time) IncomeStatementResponse {
	response := IncomeStatementResponse{
		Success:       true,
		FromDate:      from.Format("2006-01-02"),
		ToDate:        to.Format("2006-01-02"),
		Income:        toAccountAmountResponses(report.Income),
		COGS:          toAccountAmountResponses(report.COGS),
		OtherExpenses: toAccountAmountResponses(report.OtherExpenses),
	}

	response.Summary.TotalIncome = report.TotalIncome
	response.Summary.TotalCOGS = report.TotalCOGS
	response.Summary.GrossProfit = report.GrossProfit
	response.Summary.TotalOtherExpense = report.TotalOtherExpense
	response.Summary.TotalExpense = report.TotalExpense
	response.Summary.NetIncome = report.NetIncome

	return response
}

// ToBalanceSheetResponse converts a domain balance sheet report to a DTO response
func ToBalanceSheetResponse(report *domain.BalanceSheetReport, asOf time.Time) BalanceSheetResponse {
	response := BalanceSheetResponse{
		Success:     true,
		AsOf:        asOf.Format("2006-01-02"),
		Assets:      toAccountAmountResponses(report.Assets),
		Liabilities: toAccountAmountResponses(report.Liabilities),
		Equity:      toAccountAmountResponses(report.Equity),
		IsBalanced:  report.IsBalanced,
	}

	response.Summary.RetainedEarnings = report.RetainedEarnings
	response.Summary.TotalAssets = report.TotalAssets
	response.Summary.TotalLiabilities = report.TotalLiabilities
	response.Summary.TotalEquity = report.TotalEquity

	return response
}

// ToMonthlyTrendResponse converts the domain trend series to a DTO response
func ToMonthlyTrendResponse(series []domain.MonthlyFinancial) MonthlyTrendResponse {
	response := MonthlyTrendResponse{
		Success: true,
		Months:  make([]MonthlyFinancialResponse, len(series)),
	}

	for i, bucket := range series {
		response.Months[i] = MonthlyFinancialResponse{
			Label:    bucket.Label,
			Revenue:  bucket.Revenue,
			Expenses: bucket.Expenses,
			COGS:     bucket.COGS,
			Profit:   bucket.Profit,
		}
	}

	return response
}
