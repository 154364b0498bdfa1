package accounting

import (
	"fmt"

	"github.com/bizbooks/bizbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NetBalance applies the normal-balance rule for an account type to its
// aggregated debit and credit totals. This is the single most safety-critical
// branch in the reporting engine, so it is an exhaustive dispatch over the
// account-type enum: an unknown type returns an error rather than falling
// into either rule.
//
// DEBIT-normal (ASSET, EXPENSE): net = debit - credit.
// CREDIT-normal (LIABILITY, EQUITY, INCOME): net = credit - debit.
func NetBalance(accountType domain.AccountType, totalDebit, totalCredit decimal.Decimal) (decimal.Decimal, error) {
	switch accountType {
	case domain.Asset, domain.Expense:
		return totalDebit.Sub(totalCredit), nil
	case domain.Liability, domain.Equity, domain.Income:
		return totalCredit.Sub(totalDebit), nil
	}
	return decimal.Zero, fmt.Errorf("unknown account type %q", accountType)
}

// IsDebitNormal reports whether the account type's balance is conventionally
// positive on the debit side.
func IsDebitNormal(accountType domain.AccountType) (bool, error) {
	switch accountType {
	case domain.Asset, domain.Expense:
		return true, nil
	case domain.Liability, domain.Equity, domain.Income:
		return false, nil
	}
	return false, fmt.Errorf("unknown account type %q", accountType)
}

// SumBalances totals the debit and credit columns of a set of account
// balances. The caller compares the two sums to derive the balanced flag.
func SumBalances(rows []domain.AccountBalance) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit = decimal.Zero
	totalCredit = decimal.Zero
	for _, row := range rows {
		totalDebit = totalDebit.Add(row.TotalDebit)
		totalCredit = totalCredit.Add(row.TotalCredit)
	}
	return totalDebit, totalCredit
}

// SumNetAmounts totals the net amounts of a list of report accounts.
func SumNetAmounts(accounts []domain.AccountAmount) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range accounts {
		sum = sum.Add(a.NetAmount)
	}
	return sum
}
