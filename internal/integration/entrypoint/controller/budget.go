package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/application/usecase/budget"
	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
	"github.com/money-manager/backend/internal/domain/valueobject"
	"github.com/money-manager/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	listUseCase   *budget.ListBudgetsUseCase
	createUseCase *budget.CreateBudgetUseCase
	updateUseCase *budget.UpdateBudgetUseCase
	deleteUseCase *budget.DeleteBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	createUseCase *budget.CreateBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output))
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateBudgetRequest
	if !bindJSON(ctx, &req, budgetBindRules("Please provide category and amount")) {
		return
	}

	input := budget.CreateBudgetInput{
		UserID:   userID,
		Category: entity.Category(req.Category),
		Amount:   decimal.NewFromFloat(*req.Amount),
		Period:   entity.BudgetPeriod(req.Period),
	}
	if req.StartDate != "" {
		startDate, _, err := valueobject.ParseDate(req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "startDate must be YYYY-MM-DD or RFC 3339",
				Code:    string(domainerror.ErrCodeInvalidBudgetDate),
			})
			return
		}
		input.StartDate = startDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// Update handles PUT /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	budgetID, ok := parseIDParam(ctx)
	if !ok {
		c.respondNotFound(ctx)
		return
	}

	var req dto.UpdateBudgetRequest
	if !bindJSON(ctx, &req, budgetBindRules("Invalid request body")) {
		return
	}

	input := budget.UpdateBudgetInput{
		BudgetID: budgetID,
		UserID:   userID,
		IsActive: req.IsActive,
	}
	if req.Category != nil {
		category := entity.Category(*req.Category)
		input.Category = &category
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Period != nil {
		period := entity.BudgetPeriod(*req.Period)
		input.Period = &period
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	budgetID, ok := parseIDParam(ctx)
	if !ok {
		c.respondNotFound(ctx)
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		BudgetID: budgetID,
		UserID:   userID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Budget removed"})
}

func (c *BudgetController) respondNotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
		Message: "Budget not found",
		Code:    string(domainerror.ErrCodeBudgetNotFound),
	})
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(c.getStatusCodeForBudgetError(budgetErr.Code), dto.ErrorResponse{
			Message: budgetErr.Message,
			Code:    string(budgetErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetAlreadyExists,
		domainerror.ErrCodeInvalidBudgetAmount,
		domainerror.ErrCodeInvalidBudgetCategory,
		domainerror.ErrCodeInvalidBudgetPeriod,
		domainerror.ErrCodeMissingBudgetFields,
		domainerror.ErrCodeInvalidBudgetDate:
		return http.StatusBadRequest
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedBudgetAccess:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func budgetBindRules(missingMessage string) bindRules[domainerror.BudgetErrorCode] {
	return bindRules[domainerror.BudgetErrorCode]{
		missing:        domainerror.ErrCodeMissingBudgetFields,
		missingMessage: missingMessage,
		fields: map[string]domainerror.BudgetErrorCode{
			"category": domainerror.ErrCodeInvalidBudgetCategory,
			"amount":   domainerror.ErrCodeInvalidBudgetAmount,
			"period":   domainerror.ErrCodeInvalidBudgetPeriod,
		},
	}
}
