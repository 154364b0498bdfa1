package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizbooks/bizbooks_app/internal/apperrors"
	"github.com/bizbooks/bizbooks_app/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_app/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_app/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// maxTrendMonths caps the trailing window of the monthly trend report.
const maxTrendMonths = 60

// reportingService implements the ReportingService interface. All methods
// are pure reads: they recompute every statement from the raw journal on
// each call and hold no internal state, so concurrent requests are safe
// without locking.
type reportingService struct {
	BaseService
	ledgerRepo   portsrepo.LedgerRepository
	settingsRepo portsrepo.SettingsRepository
	now          func() time.Time
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingBusinessAuthorizer sets the business authorizer for the reporting service.
func WithReportingBusinessAuthorizer(authorizer portssvc.BusinessAuthorizerSvc) ReportingServiceOption {
	return func(s *reportingService) {
		s.BusinessAuthorizer = authorizer
	}
}

// WithReportingClock overrides the wall clock used to anchor the trailing
// monthly trend window.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(ledgerRepo portsrepo.LedgerRepository, settingsRepo portsrepo.SettingsRepository, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		ledgerRepo:   ledgerRepo,
		settingsRepo: settingsRepo,
		now:          time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance generates a trial balance report as of a specific date.
func (s *reportingService) TrialBalance(ctx context.Context, businessID string, asOf time.Time, userID string) (*domain.TrialBalanceReport, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to view trial balance report",
			slog.String("user_id", userID),
			slog.String("business_id", businessID))
		return nil, err
	}

	rows, err := s.ledgerRepo.GetAccountBalances(ctx, businessID, domain.AllAccountTypes, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trial balance data",
			slog.String("business_id", businessID),
			slog.String("asOf", asOf.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	for i := range rows {
		net, err := accounting.NetBalance(rows[i].AccountType, rows[i].TotalDebit, rows[i].TotalCredit)
		if err != nil {
			s.LogError(ctx, err, "Failed to compute net balance",
				slog.String("business_id", businessID),
				slog.String("account_id", rows[i].AccountID))
			return nil, fmt.Errorf("failed to compute net balance for account %s: %w", rows[i].AccountID, err)
		}
		rows[i].NetBalance = net
	}

	totalDebit, totalCredit := accounting.SumBalances(rows)
	report := &domain.TrialBalanceReport{
		Rows:        rows,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		Balanced:    totalDebit.Equal(totalCredit),
	}

	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("business_id", businessID),
		slog.String("asOf", asOf.Format(time.RFC3339)),
		slog.Int("row_count", len(rows)),
		slog.Bool("balanced", report.Balanced))
	return report, nil
}

// IncomeStatement generates a profit and loss report for a specific period.
// Only entries dated inside [from, to] contribute; the COGS subset is picked
// out by the business's configured COGS account code.
func (s *reportingService) IncomeStatement(ctx context.Context, businessID string, from, to time.Time, userID string) (*domain.IncomeStatementReport, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to view income statement",
			slog.String("user_id", userID),
			slog.String("business_id", businessID))
		return nil, err
	}

	if to.Before(from) {
		return nil, fmt.Errorf("%w: period end %s precedes start %s",
			apperrors.ErrValidation, to.Format("2006-01-02"), from.Format("2006-01-02"))
	}

	cogsCode, err := s.cogsCode(ctx, businessID)
	if err != nil {
		return nil, err
	}

	rows, err := s.ledgerRepo.GetPeriodActivity(ctx, businessID, []domain.AccountType{domain.Income, domain.Expense}, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve income statement data",
			slog.String("business_id", businessID),
			slog.String("from", from.Format(time.RFC3339)),
			slog.String("to", to.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve income statement data: %w", err)
	}

	report := &domain.IncomeStatementReport{
		Income:        []domain.AccountAmount{},
		COGS:          []domain.AccountAmount{},
		OtherExpenses: []domain.AccountAmount{},
	}

	for _, row := range rows {
		net, err := accounting.NetBalance(row.AccountType, row.TotalDebit, row.TotalCredit)
		if err != nil {
			return nil, fmt.Errorf("failed to compute net balance for account %s: %w", row.AccountID, err)
		}
		amount := domain.AccountAmount{
			AccountID: row.AccountID,
			Code:      row.Code,
			Name:      row.Name,
			NetAmount: net,
		}

		switch row.AccountType {
		case domain.Income:
			report.Income = append(report.Income, amount)
		case domain.Expense:
			if cogsCode != "" && row.Code == cogsCode {
				report.COGS = append(report.COGS, amount)
			} else {
				report.OtherExpenses = append(report.OtherExpenses, amount)
			}
		}
	}

	report.TotalIncome = accounting.SumNetAmounts(report.Income)
	report.TotalCOGS = accounting.SumNetAmounts(report.COGS)
	report.TotalOtherExpense = accounting.SumNetAmounts(report.OtherExpenses)
	report.GrossProfit = report.TotalIncome.Sub(report.TotalCOGS)
	report.TotalExpense = report.TotalCOGS.Add(report.TotalOtherExpense)
	report.NetIncome = report.GrossProfit.Sub(report.TotalOtherExpense)

	s.LogInfo(ctx, "Income statement generated successfully",
		slog.String("business_id", businessID),
		slog.String("from", from.Format(time.RFC3339)),
		slog.String("to", to.Format(time.RFC3339)),
		slog.Int("income_accounts", len(report.Income)),
		slog.Int("cogs_accounts", len(report.COGS)),
		slog.Int("expense_accounts", len(report.OtherExpenses)))
	return report, nil
}

// BalanceSheet generates a balance sheet report as of a specific date.
// Retained earnings is a second, independent all-time aggregation up to the
// cutoff, folded into total equity.
func (s *reportingService) BalanceSheet(ctx context.Context, businessID string, asOf time.Time, userID string) (*domain.BalanceSheetReport, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to view balance sheet report",
			slog.String("user_id", userID),
			slog.String("business_id", businessID))
		return nil, err
	}

	rows, err := s.ledgerRepo.GetAccountBalances(ctx, businessID, []domain.AccountType{domain.Asset, domain.Liability, domain.Equity}, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve balance sheet data",
			slog.String("business_id", businessID),
			slog.String("asOf", asOf.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve balance sheet data: %w", err)
	}

	report := &domain.BalanceSheetReport{
		Assets:      []domain.AccountAmount{},
		Liabilities: []domain.AccountAmount{},
		Equity:      []domain.AccountAmount{},
	}

	for _, row := range rows {
		net, err := accounting.NetBalance(row.AccountType, row.TotalDebit, row.TotalCredit)
		if err != nil {
			return nil, fmt.Errorf("failed to compute net balance for account %s: %w", row.AccountID, err)
		}
		amount := domain.AccountAmount{
			AccountID: row.AccountID,
			Code:      row.Code,
			Name:      row.Name,
			NetAmount: net,
		}

		switch row.AccountType {
		case domain.Asset:
			report.Assets = append(report.Assets, amount)
		case domain.Liability:
			report.Liabilities = append(report.Liabilities, amount)
		case domain.Equity:
			report.Equity = append(report.Equity, amount)
		}
	}

	income, expense, err := s.ledgerRepo.GetLifetimeIncomeExpense(ctx, businessID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve retained earnings data",
			slog.String("business_id", businessID),
			slog.String("asOf", asOf.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve retained earnings data: %w", err)
	}

	report.RetainedEarnings = income.Sub(expense)
	report.TotalAssets = accounting.SumNetAmounts(report.Assets)
	report.TotalLiabilities = accounting.SumNetAmounts(report.Liabilities)
	report.TotalEquity = accounting.SumNetAmounts(report.Equity).Add(report.RetainedEarnings)
	report.IsBalanced = report.TotalAssets.Equal(report.TotalLiabilities.Add(report.TotalEquity))

	s.LogInfo(ctx, "Balance sheet report generated successfully",
		slog.String("business_id", businessID),
		slog.String("asOf", asOf.Format(time.RFC3339)),
		slog.Int("asset_accounts", len(report.Assets)),
		slog.Int("liability_accounts", len(report.Liabilities)),
		slog.Int("equity_accounts", len(report.Equity)),
		slog.Bool("is_balanced", report.IsBalanced))
	return report, nil
}

// MonthlyFinancials returns the trailing monthly revenue/expense/profit
// series. Every month in the window gets a zero-valued bucket before any
// aggregated rows are merged in, so months with no postings still appear.
func (s *reportingService) MonthlyFinancials(ctx context.Context, businessID string, monthCount int, userID string) ([]domain.MonthlyFinancial, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to view monthly trend",
			slog.String("user_id", userID),
			slog.String("business_id", businessID))
		return nil, err
	}

	if monthCount < 1 || monthCount > maxTrendMonths {
		return nil, fmt.Errorf("%w: month count must be between 1 and %d, got %d",
			apperrors.ErrValidation, maxTrendMonths, monthCount)
	}

	cogsCode, err := s.cogsCode(ctx, businessID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(monthCount - 1), 0)

	aggregates, err := s.ledgerRepo.GetMonthlyAggregates(ctx, businessID, windowStart, cogsCode)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve monthly aggregates",
			slog.String("business_id", businessID),
			slog.Int("month_count", monthCount))
		return nil, fmt.Errorf("failed to retrieve monthly aggregates: %w", err)
	}

	type monthKey struct {
		year  int
		month time.Month
	}
	byMonth := make(map[monthKey]domain.MonthlyAggregate, len(aggregates))
	for _, agg := range aggregates {
		byMonth[monthKey{agg.Year, agg.Month}] = agg
	}

	series := make([]domain.MonthlyFinancial, 0, monthCount)
	for i := 0; i < monthCount; i++ {
		monthStart := windowStart.AddDate(0, i, 0)
		bucket := domain.MonthlyFinancial{
			Label:    monthStart.Format("Jan 2006"),
			Revenue:  decimal.Zero,
			Expenses: decimal.Zero,
			COGS:     decimal.Zero,
			Profit:   decimal.Zero,
		}
		if agg, ok := byMonth[monthKey{monthStart.Year(), monthStart.Month()}]; ok {
			bucket.Revenue = agg.Revenue
			bucket.Expenses = agg.Expense
			bucket.COGS = agg.COGS
			bucket.Profit = agg.Revenue.Sub(agg.Expense)
		}
		series = append(series, bucket)
	}

	s.LogInfo(ctx, "Monthly trend generated successfully",
		slog.String("business_id", businessID),
		slog.Int("month_count", monthCount))
	return series, nil
}

// cogsCode resolves the business's configured COGS account code. Missing
// settings simply mean no COGS breakdown; any other failure aborts the report.
func (s *reportingService) cogsCode(ctx context.Context, businessID string) (string, error) {
	settings, err := s.settingsRepo.GetAccountCodeSettings(ctx, businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "No account code settings configured",
				slog.String("business_id", businessID))
			return "", nil
		}
		s.LogError(ctx, err, "Failed to retrieve account code settings",
			slog.String("business_id", businessID))
		return "", fmt.Errorf("failed to retrieve account code settings: %w", err)
	}
	return settings.COGSCode, nil
}
