package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/money-manager/backend/internal/application/usecase/dashboard"
	domainerror "github.com/money-manager/backend/internal/domain/error"
	"github.com/money-manager/backend/internal/domain/valueobject"
	"github.com/money-manager/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles the aggregate views over transactions.
type DashboardController struct {
	getStatsUseCase     *dashboard.GetStatsUseCase
	getAnalyticsUseCase *dashboard.GetAnalyticsUseCase
	getReportUseCase    *dashboard.GetReportUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getStatsUseCase *dashboard.GetStatsUseCase,
	getAnalyticsUseCase *dashboard.GetAnalyticsUseCase,
	getReportUseCase *dashboard.GetReportUseCase,
) *DashboardController {
	return &DashboardController{
		getStatsUseCase:     getStatsUseCase,
		getAnalyticsUseCase: getAnalyticsUseCase,
		getReportUseCase:    getReportUseCase,
	}
}

// GetStats handles GET /transactions/stats requests.
func (c *DashboardController) GetStats(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	stats, err := c.getStatsUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

// GetAnalytics handles GET /transactions/analytics requests.
func (c *DashboardController) GetAnalytics(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var query dto.AnalyticsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		c.respondInvalidDate(ctx)
		return
	}

	start, end, ok := c.parseRange(ctx, query.StartDate, query.EndDate)
	if !ok {
		return
	}

	analytics, err := c.getAnalyticsUseCase.Execute(ctx.Request.Context(), dashboard.GetAnalyticsInput{
		UserID:    userID,
		Period:    valueobject.AnalyticsPeriod(query.Period),
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalyticsResponse(analytics))
}

// GetReport handles GET /transactions/report requests.
func (c *DashboardController) GetReport(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var query dto.ReportQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		c.respondInvalidDate(ctx)
		return
	}

	start, end, ok := c.parseRange(ctx, query.StartDate, query.EndDate)
	if !ok {
		return
	}

	report, err := c.getReportUseCase.Execute(ctx.Request.Context(), dashboard.GetReportInput{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(report))
}

func (c *DashboardController) parseRange(ctx *gin.Context, startValue, endValue string) (start, end *time.Time, ok bool) {
	var err error
	if start, err = valueobject.ParseRangeBound(startValue, false); err != nil {
		c.respondInvalidDate(ctx)
		return nil, nil, false
	}
	if end, err = valueobject.ParseRangeBound(endValue, true); err != nil {
		c.respondInvalidDate(ctx)
		return nil, nil, false
	}
	return start, end, true
}

func (c *DashboardController) respondInvalidDate(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Message: "startDate and endDate must be YYYY-MM-DD or RFC 3339",
		Code:    string(domainerror.ErrCodeInvalidDateFormat),
	})
}

// handleDashboardError handles analytics errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var analyticsErr *domainerror.AnalyticsError
	if errors.As(err, &analyticsErr) {
		ctx.JSON(c.getStatusCodeForDashboardError(analyticsErr.Code), dto.ErrorResponse{
			Message: analyticsErr.Message,
			Code:    string(analyticsErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForDashboardError maps analytics error codes to HTTP status codes.
func (c *DashboardController) getStatusCodeForDashboardError(code domainerror.AnalyticsErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidPeriod,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidDateFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
