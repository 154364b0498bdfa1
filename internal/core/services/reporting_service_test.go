package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bizbooks/bizbooks_app/internal/apperrors"
	"github.com/bizbooks/bizbooks_app/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_app/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_app/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepository = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) GetAccountBalances(ctx context.Context, businessID string, accountTypes []domain.AccountType, asOf time.Time) ([]domain.AccountBalance, error) {
	args := m.Called(ctx, businessID, accountTypes, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalance), args.Error(1)
}

func (m *MockLedgerRepository) GetPeriodActivity(ctx context.Context, businessID string, accountTypes []domain.AccountType, from, to time.Time) ([]domain.AccountBalance, error) {
	args := m.Called(ctx, businessID, accountTypes, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalance), args.Error(1)
}

func (m *MockLedgerRepository) GetLifetimeIncomeExpense(ctx context.Context, businessID string, asOf time.Time) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, businessID, asOf)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockLedgerRepository) GetMonthlyAggregates(ctx context.Context, businessID string, from time.Time, cogsCode string) ([]domain.MonthlyAggregate, error) {
	args := m.Called(ctx, businessID, from, cogsCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyAggregate), args.Error(1)
}

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

var _ portsrepo.SettingsRepository = (*MockSettingsRepository)(nil)

func (m *MockSettingsRepository) GetAccountCodeSettings(ctx context.Context, businessID string) (*domain.AccountCodeSettings, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountCodeSettings), args.Error(1)
}

// --- Mock BusinessAuthorizer ---
type MockBusinessAuthorizer struct {
	mock.Mock
}

var _ portssvc.BusinessAuthorizerSvc = (*MockBusinessAuthorizer)(nil)

func (m *MockBusinessAuthorizer) AuthorizeUserAction(ctx context.Context, userID, businessID string, requiredRole domain.BusinessUserRole) error {
	args := m.Called(ctx, userID, businessID, requiredRole)
	return args.Error(0)
}

// --- Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo   *MockLedgerRepository
	mockSettingsRepo *MockSettingsRepository
	mockAuthorizer   *MockBusinessAuthorizer
	service          portssvc.ReportingService

	businessID string
	userID     string
	now        time.Time
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.mockLedgerRepo = new(MockLedgerRepository)
	s.mockSettingsRepo = new(MockSettingsRepository)
	s.mockAuthorizer = new(MockBusinessAuthorizer)
	s.now = time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	s.service = services.NewReportingService(
		s.mockLedgerRepo,
		s.mockSettingsRepo,
		services.WithReportingBusinessAuthorizer(s.mockAuthorizer),
		services.WithReportingClock(func() time.Time { return s.now }),
	)

	s.businessID = uuid.NewString()
	s.userID = uuid.NewString()
}

func (s *ReportingServiceTestSuite) expectAuthorized() {
	s.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, s.userID, s.businessID, domain.RoleReadOnly).Return(nil).Once()
}

// scenarioBalances are the cash-sale-plus-COGS postings:
// debit Cash 1000 / credit Revenue 1000, debit COGS 600 / credit Inventory Asset 600.
func (s *ReportingServiceTestSuite) scenarioBalances() []domain.AccountBalance {
	return []domain.AccountBalance{
		{AccountID: "acc-cash", Code: "1000", Name: "Cash", AccountType: domain.Asset,
			TotalDebit: decimal.NewFromInt(1000), TotalCredit: decimal.Zero},
		{AccountID: "acc-inv", Code: "1200", Name: "Inventory Asset", AccountType: domain.Asset,
			TotalDebit: decimal.Zero, TotalCredit: decimal.NewFromInt(600)},
		{AccountID: "acc-rev", Code: "4000", Name: "Revenue", AccountType: domain.Income,
			TotalDebit: decimal.Zero, TotalCredit: decimal.NewFromInt(1000)},
		{AccountID: "acc-cogs", Code: "5000", Name: "Cost of Goods Sold", AccountType: domain.Expense,
			TotalDebit: decimal.NewFromInt(600), TotalCredit: decimal.Zero},
	}
}

func (s *ReportingServiceTestSuite) TestTrialBalanceBalancedScenario() {
	ctx := context.Background()
	asOf := s.now
	s.expectAuthorized()
	s.mockLedgerRepo.On("GetAccountBalances", mock.Anything, s.businessID, domain.AllAccountTypes, asOf).
		Return(s.scenarioBalances(), nil).Once()

	report, err := s.service.TrialBalance(ctx, s.businessID, asOf, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(report)
	s.Len(report.Rows, 4)
	s.True(decimal.NewFromInt(1600).Equal(report.TotalDebit), "total debit = %s", report.TotalDebit)
	s.True(decimal.NewFromInt(1600).Equal(report.TotalCredit), "total credit = %s", report.TotalCredit)
	s.True(report.Balanced)

	// Net balances follow the per-type normal-balance rule.
	nets := map[string]decimal.Decimal{}
	for _, row := range report.Rows {
		nets[row.Code] = row.NetBalance
	}
	s.True(decimal.NewFromInt(1000).Equal(nets["1000"]))
	s.True(decimal.NewFromInt(-600).Equal(nets["1200"]))
	s.True(decimal.NewFromInt(1000).Equal(nets["4000"]))
	s.True(decimal.NewFromInt(600).Equal(nets["5000"]))

	s.mockLedgerRepo.AssertExpectations(s.T())
	s.mockAuthorizer.AssertExpectations(s.T())
}

func (s *ReportingServiceTestSuite) TestTrialBalanceIncludesZeroActivityAccounts() {
	ctx := context.Background()
	asOf := s.now
	rows := []domain.AccountBalance{
		{AccountID: "acc-dormant", Code: "1900", Name: "Dormant Asset", AccountType: domain.Asset,
			TotalDebit: decimal.Zero, TotalCredit: decimal.Zero},
	}
	s.expectAuthorized()
	s.mockLedgerRepo.On("GetAccountBalances", mock.Anything, s.businessID, domain.AllAccountTypes, asOf).
		Return(rows, nil).Once()

	report, err := s.service.TrialBalance(ctx, s.businessID, asOf, s.userID)

	s.Require().NoError(err)
	s.Require().Len(report.Rows, 1)
	s.True(report.Rows[0].NetBalance.IsZero())
	s.True(report.Balanced)
}

func (s *ReportingServiceTestSuite) TestTrialBalanceUnbalancedFlagExposed() {
	ctx := context.Background()
	asOf := s.now
	rows := []domain.AccountBalance{
		{AccountID: "acc-cash", Code: "1000", Name: "Cash", AccountType: domain.Asset,
			TotalDebit: decimal.NewFromInt(100), TotalCredit: decimal.Zero},
	}
	s.expectAuthorized()
	s.mockLedgerRepo.On("GetAccountBalances", mock.Anything, s.businessID, domain.AllAccountTypes, asOf).
		Return(rows, nil).Once()

	report, err := s.service.TrialBalance(ctx, s.businessID, asOf, s.userID)

	s.Require().NoError(err)
	s.False(report.Balanced, "one-sided entry must surface as unbalanced, not as an error")
}

func (s *ReportingServiceTestSuite) TestTrialBalanceUnknownAccountTypeAborts() {
	ctx := context.Background()
	asOf := s.now
	rows := []domain.AccountBalance{
		{AccountID: "acc-weird", Code: "9999", Name: "Mystery", AccountType: domain.AccountType("CONTRA"),
			TotalDebit: decimal.NewFromInt(10), TotalCredit: decimal.Zero},
	}
	s.expectAuthorized()
	s.mockLedgerRepo.On("GetAccountBalances", mock.Anything, s.businessID, domain.AllAccountTypes, asOf).
		Return(rows, nil).Once()

	report, err := s.service.TrialBalance(ctx, s.businessID, asOf, s.userID)

	s.Require().Error(err)
	s.Nil(report)
}

func (s *ReportingServiceTestSuite) TestTrialBalanceQueryFailureAborts() {
	ctx := context.Background()
	asOf := s.now
	s.expectAuthorized()
	s.mockLedgerRepo.On("GetAccountBalances", mock.Anything, s.businessID, domain.AllAccountTypes, asOf).
		Return(nil, errors.New("connection refused")).Once()

	report, err := s.service.TrialBalance(ctx, s.businessID, asOf, s.userID)

	s.Require().Error(err)
	s.Nil(report, "no partial statement on query failure")
}

func (s *ReportingServiceTestSuite) TestTrialBalanceForbidden() {
	ctx := context.Background()
	s.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, s.userID, s.businessID, domain.RoleReadOnly).
		Return(apperrors.ErrForbidden).Once()

	report, err := s.service.TrialBalance(ctx, s.businessID, s.now, s.userID)

	s.Require().ErrorIs(err, apperrors.ErrForbidden)
	s.Nil(report)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "GetAccountBalances", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReportingServiceTestSuite) cogsSettings() *domain.AccountCodeSettings {
	return &domain.AccountCodeSettings{
		BusinessID:         s.businessID,
		InventoryAssetCode: "1200",
		COGSCode:           "5000",
	}
}

func (s *ReportingServiceTestSuite) TestIncomeStatementScenario() {
	ctx := context.Background()
	from := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)
	periodRows := []domain.AccountBalance{
		{AccountID: "acc-rev", Code: "4000", Name: "Revenue", AccountType: domain.Income,
			TotalDebit: decimal.Zero, TotalCredit: decimal.NewFromInt(1000)},
		{AccountID: "acc-cogs", Code: "5000", Name: "Cost of Goods Sold", AccountType: domain.Expense,
			TotalDebit: decimal.NewFromInt(600), TotalCredit: decimal.Zero},
	}

	s.expectAuthorized()
	s.mockSettingsRepo.On("GetAccountCodeSettings", mock.Anything, s.businessID).Return(s.cogsSettings(), nil).Once()
	s.mockLedgerRepo.On("GetPeriodActivity", mock.Anything, s.businessID, []domain.AccountType{domain.Income, domain.Expense}, from, to).
		Return(periodRows, nil).Once()

	report, err := s.service.IncomeStatement(ctx, s.businessID, from, to, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(report)
	s.Len(report.Income, 1)
	s.Len(report.COGS, 1)
	s.Empty(report.OtherExpenses)
	s.True(decimal.NewFromInt(1000).Equal(report.TotalIncome))
	s.True(decimal.NewFromInt(600).Equal(report.TotalCOGS))
	s.True(decimal.NewFromInt(400).Equal(report.GrossProfit))
	s.True(decimal.NewFromInt(600).Equal(report.TotalExpense))
	s.True(report.TotalOtherExpense.IsZero())
	s.True(decimal.NewFromInt(400).Equal(report.NetIncome))
}

func (s *ReportingServiceTestSuite) TestIncomeStatementWithoutSettingsTreatsAllExpensesAsOther() {
	ctx := context.Background()
	from := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)
	periodRows := []domain.AccountBalance{
		{AccountID: "acc-cogs", Code: "5000", Name: "Cost of Goods Sold", AccountType: domain.Expense,
			TotalDebit: decimal.NewFromInt(600), TotalCredit: decimal.Zero},
	}

	s.expectAuthorized()
	s.mockSettingsRepo.On("GetAccountCodeSettings", mock.Anything, s.businessID).Return(nil, apperrors.ErrNotFound).Once()
	s.mockLedgerRepo.On("GetPeriodActivity", mock.Anything, s.businessID, []domain.AccountType{domain.Income, domain.Expense}, from, to).
		Return(periodRows, nil).Once()

	report, err := s.service.IncomeStatement(ctx, s.businessID, from, to, s.userID)

	s.Require().NoError(err)
	s.Empty(report.COGS)
	s.Len(report.OtherExpenses, 1)
	s.True(report.TotalCOGS.IsZero())
	s.True(decimal.NewFromInt(600).Equal(report.TotalExpense))
}

// TestIncomeStatementPeriodAdditivity splits a period at a mid boundary and
// checks netIncome(first) + netIncome(second) = netIncome(whole).
func (s *ReportingServiceTestSuite) TestIncomeStatementPeriodAdditivity() {
	ctx := context.Background()
	start := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	mid := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)
	midPlusDay := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC)

	firstHalf := []domain.AccountBalance{
		{AccountID: "acc-rev", Code: "4000", Name: "Revenue", AccountType: domain.Income,
			TotalDebit: decimal.Zero, TotalCredit: decimal.NewFromInt(300)},
		{AccountID: "acc-rent", Code: "6100", Name: "Rent", AccountType: domain.Expense,
			TotalDebit: decimal.NewFromInt(120), TotalCredit: decimal.Zero},
	}
	secondHalf := []domain.AccountBalance{
		{AccountID: "acc-rev", Code: "4000", Name: "Revenue", AccountType: domain.Income,
			TotalDebit: decimal.Zero, TotalCredit: decimal.NewFromInt(500)},
		{AccountID: "acc-rent", Code: "6100", Name: "Rent", AccountType: domain.Expense,
			TotalDebit: decimal.NewFromInt(120), TotalCredit: decimal.Zero},
	}
	whole := []domain.AccountBalance{
		{AccountID: "acc-rev", Code: "4000", Name: "Revenue", AccountType: domain.Income,
			TotalDebit: decimal.Zero, TotalCredit: decimal.NewFromInt(800)},
		{AccountID: "acc-rent", Code: "6100", Name: "Rent", AccountType: domain.Expense,
			TotalDebit: decimal.NewFromInt(240), TotalCredit: decimal.Zero},
	}

	types := []domain.AccountType{domain.Income, domain.Expense}
	s.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, s.userID, s.businessID, domain.RoleReadOnly).Return(nil).Times(3)
	s.mockSettingsRepo.On("GetAccountCodeSettings", mock.Anything, s.businessID).Return(s.cogsSettings(), nil).Times(3)
	s.mockLedgerRepo.On("GetPeriodActivity", mock.Anything, s.businessID, types, start, mid).Return(firstHalf, nil).Once()
	s.mockLedgerRepo.On("GetPeriodActivity", mock.Anything, s.businessID, types, midPlusDay, end).Return(secondHalf, nil).Once()
	s.mockLedgerRepo.On("GetPeriodActivity", mock.Anything, s.businessID, types, start, end).Return(whole, nil).Once()

	first, err := s.service.IncomeStatement(ctx, s.businessID, start, mid, s.userID)
	s.Require().NoError(err)
	second, err := s.service.IncomeStatement(ctx, s.businessID, midPlusDay, end, s.userID)
	s.Require().NoError(err)
	full, err := s.service.IncomeStatement(ctx, s.businessID, start, end, s.userID)
	s.Require().NoError(err)

	s.True(first.NetIncome.Add(second.NetIncome).Equal(full.NetIncome),
		"%s + %s != %s", first.NetIncome, second.NetIncome, full.NetIncome)
}

func (s *ReportingServiceTestSuite) TestIncomeStatementRejectsInvertedPeriod() {
	ctx := context.Background()
	from := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	s.expectAuthorized()

	report, err := s.service.IncomeStatement(ctx, s.businessID, from, to, s.userID)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.Nil(report)
}

func (s *ReportingServiceTestSuite) TestBalanceSheetScenario() {
	ctx := context.Background()
	asOf := s.now
	positionTypes := []domain.AccountType{domain.Asset, domain.Liability, domain.Equity}
	rows := []domain.AccountBalance{
		{AccountID: "acc-cash", Code: "1000", Name: "Cash", AccountType: domain.Asset,
			TotalDebit: decimal.NewFromInt(1000), TotalCredit: decimal.Zero},
		{AccountID: "acc-inv", Code: "1200", Name: "Inventory Asset", AccountType: domain.Asset,
			TotalDebit: decimal.Zero, TotalCredit: decimal.NewFromInt(600)},
	}

	s.expectAuthorized()
	s.mockLedgerRepo.On("GetAccountBalances", mock.Anything, s.businessID, positionTypes, asOf).
		Return(rows, nil).Once()
	s.mockLedgerRepo.On("GetLifetimeIncomeExpense", mock.Anything, s.businessID, asOf).
		Return(decimal.NewFromInt(1000), decimal.NewFromInt(600), nil).Once()

	report, err := s.service.BalanceSheet(ctx, s.businessID, asOf, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(report)
	s.Len(report.Assets, 2)
	s.Empty(report.Liabilities)
	s.Empty(report.Equity)
	s.True(decimal.NewFromInt(400).Equal(report.RetainedEarnings))
	s.True(decimal.NewFromInt(400).Equal(report.TotalAssets))
	s.True(report.TotalLiabilities.IsZero())
	s.True(decimal.NewFromInt(400).Equal(report.TotalEquity), "retained earnings folds into equity")
	s.True(report.IsBalanced)
}

func (s *ReportingServiceTestSuite) TestBalanceSheetRetainedEarningsQueryFailureAborts() {
	ctx := context.Background()
	asOf := s.now
	positionTypes := []domain.AccountType{domain.Asset, domain.Liability, domain.Equity}

	s.expectAuthorized()
	s.mockLedgerRepo.On("GetAccountBalances", mock.Anything, s.businessID, positionTypes, asOf).
		Return([]domain.AccountBalance{}, nil).Once()
	s.mockLedgerRepo.On("GetLifetimeIncomeExpense", mock.Anything, s.businessID, asOf).
		Return(decimal.Zero, decimal.Zero, errors.New("query timeout")).Once()

	report, err := s.service.BalanceSheet(ctx, s.businessID, asOf, s.userID)

	s.Require().Error(err)
	s.Nil(report)
}

func (s *ReportingServiceTestSuite) TestMonthlyFinancialsGapFilling() {
	ctx := context.Background()
	windowStart := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	aggregates := []domain.MonthlyAggregate{
		{Year: 2026, Month: time.May,
			Revenue: decimal.NewFromInt(500), Expense: decimal.NewFromInt(200), COGS: decimal.NewFromInt(120)},
	}

	s.expectAuthorized()
	s.mockSettingsRepo.On("GetAccountCodeSettings", mock.Anything, s.businessID).Return(s.cogsSettings(), nil).Once()
	s.mockLedgerRepo.On("GetMonthlyAggregates", mock.Anything, s.businessID, windowStart, "5000").
		Return(aggregates, nil).Once()

	series, err := s.service.MonthlyFinancials(ctx, s.businessID, 6, s.userID)

	s.Require().NoError(err)
	s.Require().Len(series, 6, "exactly monthCount buckets, empty months included")

	labels := make([]string, len(series))
	for i, bucket := range series {
		labels[i] = bucket.Label
	}
	s.Equal([]string{"Mar 2026", "Apr 2026", "May 2026", "Jun 2026", "Jul 2026", "Aug 2026"}, labels)

	for i, bucket := range series {
		if bucket.Label == "May 2026" {
			s.True(decimal.NewFromInt(500).Equal(bucket.Revenue))
			s.True(decimal.NewFromInt(200).Equal(bucket.Expenses))
			s.True(decimal.NewFromInt(120).Equal(bucket.COGS))
			s.True(decimal.NewFromInt(300).Equal(bucket.Profit))
			continue
		}
		s.True(bucket.Revenue.IsZero(), "bucket %d revenue", i)
		s.True(bucket.Expenses.IsZero(), "bucket %d expenses", i)
		s.True(bucket.COGS.IsZero(), "bucket %d cogs", i)
		s.True(bucket.Profit.IsZero(), "bucket %d profit", i)
	}
}

func (s *ReportingServiceTestSuite) TestMonthlyFinancialsRejectsBadMonthCount() {
	ctx := context.Background()

	for _, monthCount := range []int{0, -3, 61} {
		s.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, s.userID, s.businessID, domain.RoleReadOnly).Return(nil).Once()
		series, err := s.service.MonthlyFinancials(ctx, s.businessID, monthCount, s.userID)
		s.Require().ErrorIs(err, apperrors.ErrValidation, "monthCount=%d", monthCount)
		s.Nil(series)
	}
}

func (s *ReportingServiceTestSuite) TestMonthlyFinancialsSingleMonthWindow() {
	ctx := context.Background()
	windowStart := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	s.expectAuthorized()
	s.mockSettingsRepo.On("GetAccountCodeSettings", mock.Anything, s.businessID).Return(nil, apperrors.ErrNotFound).Once()
	s.mockLedgerRepo.On("GetMonthlyAggregates", mock.Anything, s.businessID, windowStart, "").
		Return([]domain.MonthlyAggregate{}, nil).Once()

	series, err := s.service.MonthlyFinancials(ctx, s.businessID, 1, s.userID)

	s.Require().NoError(err)
	s.Require().Len(series, 1)
	s.Equal("Aug 2026", series[0].Label)
	s.True(series[0].Revenue.IsZero())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
