package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/application/usecase/goal"
	domainerror "github.com/money-manager/backend/internal/domain/error"
	"github.com/money-manager/backend/internal/domain/valueobject"
	"github.com/money-manager/backend/internal/integration/entrypoint/dto"
)

// GoalController handles savings goal endpoints.
type GoalController struct {
	listUseCase   *goal.ListGoalsUseCase
	createUseCase *goal.CreateGoalUseCase
	updateUseCase *goal.UpdateGoalUseCase
	deleteUseCase *goal.DeleteGoalUseCase
	addUseCase    *goal.AddToGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	addUseCase *goal.AddToGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		addUseCase:    addUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if !bindJSON(ctx, &req, goalBindRules("Please provide name and targetAmount")) {
		return
	}

	input := goal.CreateGoalInput{
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: decimal.NewFromFloat(*req.TargetAmount),
	}
	if req.CurrentAmount != nil {
		input.CurrentAmount = decimal.NewFromFloat(*req.CurrentAmount)
	}
	if req.Deadline != "" {
		deadline, ok := c.parseDeadline(ctx, req.Deadline)
		if !ok {
			return
		}
		input.Deadline = &deadline
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// Update handles PUT /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	goalID, ok := parseIDParam(ctx)
	if !ok {
		c.respondNotFound(ctx)
		return
	}

	var req dto.UpdateGoalRequest
	if !bindJSON(ctx, &req, goalBindRules("Invalid request body")) {
		return
	}

	input := goal.UpdateGoalInput{
		GoalID:      goalID,
		UserID:      userID,
		Name:        req.Name,
		IsCompleted: req.IsCompleted,
	}
	if req.TargetAmount != nil {
		target := decimal.NewFromFloat(*req.TargetAmount)
		input.TargetAmount = &target
	}
	if req.CurrentAmount != nil {
		current := decimal.NewFromFloat(*req.CurrentAmount)
		input.CurrentAmount = &current
	}
	if req.Deadline != nil {
		deadline, ok := c.parseDeadline(ctx, *req.Deadline)
		if !ok {
			return
		}
		input.Deadline = &deadline
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalWithProgressResponse(output))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	goalID, ok := parseIDParam(ctx)
	if !ok {
		c.respondNotFound(ctx)
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Goal removed"})
}

// Add handles POST /goals/:id/add requests.
func (c *GoalController) Add(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	goalID, ok := parseIDParam(ctx)
	if !ok {
		c.respondNotFound(ctx)
		return
	}

	var req dto.AddToGoalRequest
	contribution := bindRules[domainerror.GoalErrorCode]{
		missing:        domainerror.ErrCodeInvalidContribution,
		missingMessage: "Please provide amount",
		fields:         map[string]domainerror.GoalErrorCode{"amount": domainerror.ErrCodeInvalidContribution},
	}
	if !bindJSON(ctx, &req, contribution) {
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), goal.AddToGoalInput{
		GoalID: goalID,
		UserID: userID,
		Amount: decimal.NewFromFloat(*req.Amount),
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalWithProgressResponse(output))
}

func (c *GoalController) parseDeadline(ctx *gin.Context, value string) (time.Time, bool) {
	deadline, _, err := valueobject.ParseDate(value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "deadline must be YYYY-MM-DD or RFC 3339",
			Code:    string(domainerror.ErrCodeInvalidGoalDeadline),
		})
		return time.Time{}, false
	}
	return deadline, true
}

func (c *GoalController) respondNotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
		Message: "Goal not found",
		Code:    string(domainerror.ErrCodeGoalNotFound),
	})
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(c.getStatusCodeForGoalError(goalErr.Code), dto.ErrorResponse{
			Message: goalErr.Message,
			Code:    string(goalErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidGoalAmount,
		domainerror.ErrCodeInvalidContribution,
		domainerror.ErrCodeMissingGoalFields,
		domainerror.ErrCodeInvalidGoalDeadline:
		return http.StatusBadRequest
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedGoalAccess:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func goalBindRules(missingMessage string) bindRules[domainerror.GoalErrorCode] {
	return bindRules[domainerror.GoalErrorCode]{
		missing:        domainerror.ErrCodeMissingGoalFields,
		missingMessage: missingMessage,
		fields: map[string]domainerror.GoalErrorCode{
			"name":          domainerror.ErrCodeMissingGoalFields,
			"targetAmount":  domainerror.ErrCodeInvalidGoalAmount,
			"currentAmount": domainerror.ErrCodeInvalidGoalAmount,
		},
	}
}
