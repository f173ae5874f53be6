// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/application/usecase/transaction"
	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
	"github.com/money-manager/backend/internal/domain/valueobject"
	"github.com/money-manager/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
	exportUseCase *transaction.ExportTransactionsUseCase
	clock         adapter.Clock
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	exportUseCase *transaction.ExportTransactionsUseCase,
	clock adapter.Clock,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		exportUseCase: exportUseCase,
		clock:         clock,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	input, ok := c.bindListInput(ctx, userID)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Export handles GET /transactions/export requests with the same filters as List.
func (c *TransactionController) Export(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	input, ok := c.bindListInput(ctx, userID)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := c.exportUseCase.Execute(ctx.Request.Context(), input, &buf); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	filename := fmt.Sprintf("transactions-%s.csv", c.clock.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if !bindJSON(ctx, &req, transactionBindRules("Please provide type, amount, category and division")) {
		return
	}

	input := transaction.CreateTransactionInput{
		UserID:      userID,
		Type:        entity.TransactionType(req.Type),
		Amount:      decimal.NewFromFloat(*req.Amount),
		Category:    entity.Category(req.Category),
		Division:    entity.Division(req.Division),
		Description: req.Description,
	}
	if req.Date != "" {
		date, _, err := valueobject.ParseDate(req.Date)
		if err != nil {
			c.respondInvalidDate(ctx)
			return
		}
		input.Date = date
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	transactionID, ok := parseIDParam(ctx)
	if !ok {
		c.respondNotFound(ctx)
		return
	}

	var req dto.UpdateTransactionRequest
	if !bindJSON(ctx, &req, transactionBindRules("Invalid request body")) {
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
		Description:   req.Description,
	}
	if req.Type != nil {
		t := entity.TransactionType(*req.Type)
		input.Type = &t
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Category != nil {
		category := entity.Category(*req.Category)
		input.Category = &category
	}
	if req.Division != nil {
		division := entity.Division(*req.Division)
		input.Division = &division
	}
	if req.Date != nil {
		date, _, err := valueobject.ParseDate(*req.Date)
		if err != nil {
			c.respondInvalidDate(ctx)
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	transactionID, ok := parseIDParam(ctx)
	if !ok {
		c.respondNotFound(ctx)
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction removed"})
}

// bindListInput reads the list filters from the query string.
func (c *TransactionController) bindListInput(ctx *gin.Context, userID uuid.UUID) (transaction.ListTransactionsInput, bool) {
	var query dto.TransactionQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		c.respondInvalidFilter(ctx, "Invalid query parameters")
		return transaction.ListTransactionsInput{}, false
	}

	input := transaction.ListTransactionsInput{UserID: userID}
	if query.Type != "" {
		t := entity.TransactionType(query.Type)
		input.Type = &t
	}
	if query.Category != "" {
		category := entity.Category(query.Category)
		input.Category = &category
	}
	if query.Division != "" {
		division := entity.Division(query.Division)
		input.Division = &division
	}

	var err error
	if input.StartDate, err = valueobject.ParseRangeBound(query.StartDate, false); err != nil {
		c.respondInvalidFilter(ctx, "startDate must be YYYY-MM-DD or RFC 3339")
		return transaction.ListTransactionsInput{}, false
	}
	if input.EndDate, err = valueobject.ParseRangeBound(query.EndDate, true); err != nil {
		c.respondInvalidFilter(ctx, "endDate must be YYYY-MM-DD or RFC 3339")
		return transaction.ListTransactionsInput{}, false
	}

	return input, true
}

func (c *TransactionController) respondInvalidFilter(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Message: message,
		Code:    string(domainerror.ErrCodeInvalidTransactionFilter),
	})
}

func (c *TransactionController) respondInvalidDate(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Message: "date must be YYYY-MM-DD or RFC 3339",
		Code:    string(domainerror.ErrCodeInvalidTransactionDate),
	})
}

func (c *TransactionController) respondNotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
		Message: "Transaction not found",
		Code:    string(domainerror.ErrCodeTransactionNotFound),
	})
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(c.getStatusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Message: txnErr.Message,
			Code:    string(txnErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeInvalidCategory,
		domainerror.ErrCodeInvalidDivision,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeMissingTransactionFields,
		domainerror.ErrCodeInvalidTransactionFilter:
		return http.StatusBadRequest
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeTransactionLocked,
		domainerror.ErrCodeNotAuthorizedTransaction:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func transactionBindRules(missingMessage string) bindRules[domainerror.TransactionErrorCode] {
	return bindRules[domainerror.TransactionErrorCode]{
		missing:        domainerror.ErrCodeMissingTransactionFields,
		missingMessage: missingMessage,
		fields: map[string]domainerror.TransactionErrorCode{
			"type":        domainerror.ErrCodeInvalidTransactionType,
			"amount":      domainerror.ErrCodeInvalidTransactionAmount,
			"category":    domainerror.ErrCodeInvalidCategory,
			"division":    domainerror.ErrCodeInvalidDivision,
			"description": domainerror.ErrCodeDescriptionTooLong,
		},
	}
}
