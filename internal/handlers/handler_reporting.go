package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bizbooks/bizbooks_app/internal/apperrors"
	portssvc "github.com/bizbooks/bizbooks_app/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_app/internal/dto"
	"github.com/bizbooks/bizbooks_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// asOfQuery binds the cutoff date shared by the position statements.
type asOfQuery struct {
	AsOf string `form:"asOf" binding:"omitempty,reportdate"`
}

// periodQuery binds the explicit period of the flow statements. Flow and
// position statements deliberately use different parameter shapes.
type periodQuery struct {
	FromDate string `form:"fromDate" binding:"omitempty,reportdate"`
	ToDate   string `form:"toDate" binding:"omitempty,reportdate"`
}

// trendQuery binds the trailing window length of the monthly trend report.
type trendQuery struct {
	Months int `form:"months" binding:"omitempty,min=1,max=60"`
}

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers routes related to financial reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/income-statement", h.getIncomeStatement)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/monthly-trend", h.getMonthlyTrend)
	}
}

// respondReportError maps service failures onto the failure envelope. Every
// failure aborts the whole statement; no partial report body is ever written.
func respondReportError(c *gin.Context, err error, reportName string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("User forbidden to access report", slog.String("report", reportName))
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("You do not have permission to access this report"))
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Invalid report parameters", slog.String("report", reportName), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Business not found", slog.String("report", reportName))
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Business not found"))
	default:
		logger.Error("Failed to generate report", slog.String("report", reportName), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to generate "+reportName))
	}
}

// reportRequestContext pulls the business ID and the authenticated user out
// of the request, writing the failure envelope itself when either is missing.
func reportRequestContext(c *gin.Context) (businessID, userID string, ok bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	businessID = c.Param("business_id")
	if businessID == "" {
		logger.Error("Business ID missing from path")
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Business ID required in path"))
		return "", "", false
	}

	userID, found := middleware.GetUserIDFromContext(c)
	if !found {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return "", "", false
	}

	return businessID, userID, true
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Lists every account with its debit/credit totals as of a date, plus the balanced self-check flag
// @Tags reports
// @Produce json
// @Param business_id path string true "Business ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden (User not authorized)"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /businesses/{business_id}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	businessID, userID, ok := reportRequestContext(c)
	if !ok {
		return
	}

	var query asOfQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid asOf date format. Use YYYY-MM-DD"))
		return
	}
	asOf := time.Now()
	if query.AsOf != "" {
		asOf, _ = time.Parse(dateLayout, query.AsOf)
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), businessID, asOf, userID)
	if err != nil {
		respondReportError(c, err, "trial balance report")
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report, asOf))
}

// getIncomeStatement godoc
// @Summary Generate income statement report
// @Description Reports revenue, COGS and other expenses for entries dated inside the period, with gross profit and net income
// @Tags reports
// @Produce json
// @Param business_id path string true "Business ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden (User not authorized)"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /businesses/{business_id}/reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	businessID, userID, ok := reportRequestContext(c)
	if !ok {
		return
	}

	var query periodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid date format. Use YYYY-MM-DD"))
		return
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if query.FromDate != "" {
		from, _ = time.Parse(dateLayout, query.FromDate)
	}
	to := now
	if query.ToDate != "" {
		to, _ = time.Parse(dateLayout, query.ToDate)
	}

	report, err := h.reportingService.IncomeStatement(c.Request.Context(), businessID, from, to, userID)
	if err != nil {
		respondReportError(c, err, "income statement")
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(report, from, to))
}

// getBalanceSheet godoc
// @Summary Generate balance sheet report
// @Description Reports assets, liabilities and equity as of a date, folding an all-time retained-earnings rollup into equity
// @Tags reports
// @Produce json
// @Param business_id path string true "Business ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden (User not authorized)"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /businesses/{business_id}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	businessID, userID, ok := reportRequestContext(c)
	if !ok {
		return
	}

	var query asOfQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid asOf date format. Use YYYY-MM-DD"))
		return
	}
	asOf := time.Now()
	if query.AsOf != "" {
		asOf, _ = time.Parse(dateLayout, query.AsOf)
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), businessID, asOf, userID)
	if err != nil {
		respondReportError(c, err, "balance sheet report")
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report, asOf))
}

// getMonthlyTrend godoc
// @Summary Generate monthly trend report
// @Description Returns a trailing monthly revenue/expense/profit series; months without postings appear zero-valued
// @Tags reports
// @Produce json
// @Param business_id path string true "Business ID"
// @Param months query int false "Number of trailing months (1-60)" default(6)
// @Success 200 {object} dto.MonthlyTrendResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden (User not authorized)"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /businesses/{business_id}/reports/monthly-trend [get]
func (h *reportingHandler) getMonthlyTrend(c *gin.Context) {
	businessID, userID, ok := reportRequestContext(c)
	if !ok {
		return
	}

	var query trendQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid months value. Use an integer between 1 and 60"))
		return
	}
	months := query.Months
	if months == 0 {
		months = 6
	}

	series, err := h.reportingService.MonthlyFinancials(c.Request.Context(), businessID, months, userID)
	if err != nil {
		respondReportError(c, err, "monthly trend report")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyTrendResponse(series))
}
