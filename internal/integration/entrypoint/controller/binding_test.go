package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/money-manager/backend/internal/domain/error"
	"github.com/money-manager/backend/internal/integration/entrypoint/dto"
)

func bindingEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/transactions", func(c *gin.Context) {
		var req dto.CreateTransactionRequest
		if bindJSON(c, &req, transactionBindRules("Please provide type, amount, category and division")) {
			c.Status(http.StatusCreated)
		}
	})
	engine.PUT("/transactions", func(c *gin.Context) {
		var req dto.UpdateTransactionRequest
		if bindJSON(c, &req, transactionBindRules("Invalid request body")) {
			c.Status(http.StatusOK)
		}
	})
	engine.POST("/budgets", func(c *gin.Context) {
		var req dto.CreateBudgetRequest
		if bindJSON(c, &req, budgetBindRules("Please provide category and amount")) {
			c.Status(http.StatusCreated)
		}
	})
	engine.POST("/goals", func(c *gin.Context) {
		var req dto.CreateGoalRequest
		if bindJSON(c, &req, goalBindRules("Please provide name and targetAmount")) {
			c.Status(http.StatusCreated)
		}
	})
	return engine
}

func TestBindJSON_RequestSchemas(t *testing.T) {
	engine := bindingEngine()
	longDescription := strings.Repeat("é", 201)

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode int
		wantErr  string
	}{
		{"zero amount is a valid transaction", http.MethodPost, "/transactions",
			`{"type":"expense","amount":0,"category":"Food","division":"Personal"}`, http.StatusCreated, ""},
		{"negative amount", http.MethodPost, "/transactions",
			`{"type":"expense","amount":-5,"category":"Food","division":"Personal"}`, http.StatusBadRequest, string(domainerror.ErrCodeInvalidTransactionAmount)},
		{"missing amount", http.MethodPost, "/transactions",
			`{"type":"expense","category":"Food","division":"Personal"}`, http.StatusBadRequest, string(domainerror.ErrCodeMissingTransactionFields)},
		{"unknown type", http.MethodPost, "/transactions",
			`{"type":"transfer","amount":5,"category":"Food","division":"Personal"}`, http.StatusBadRequest, string(domainerror.ErrCodeInvalidTransactionType)},
		{"unknown division", http.MethodPost, "/transactions",
			`{"type":"expense","amount":5,"category":"Food","division":"Home"}`, http.StatusBadRequest, string(domainerror.ErrCodeInvalidDivision)},
		{"description over 200 characters", http.MethodPost, "/transactions",
			`{"type":"expense","amount":5,"category":"Food","division":"Personal","description":"` + longDescription + `"}`, http.StatusBadRequest, string(domainerror.ErrCodeDescriptionTooLong)},
		{"malformed json", http.MethodPost, "/transactions",
			`{"type":`, http.StatusBadRequest, string(domainerror.ErrCodeMissingTransactionFields)},
		{"partial update", http.MethodPut, "/transactions",
			`{"amount":25}`, http.StatusOK, ""},
		{"update to negative amount", http.MethodPut, "/transactions",
			`{"amount":-1}`, http.StatusBadRequest, string(domainerror.ErrCodeInvalidTransactionAmount)},
		{"budget period", http.MethodPost, "/budgets",
			`{"category":"Food","amount":100,"period":"weekly"}`, http.StatusBadRequest, string(domainerror.ErrCodeInvalidBudgetPeriod)},
		{"budget without amount", http.MethodPost, "/budgets",
			`{"category":"Food"}`, http.StatusBadRequest, string(domainerror.ErrCodeMissingBudgetFields)},
		{"goal without name", http.MethodPost, "/goals",
			`{"targetAmount":1000}`, http.StatusBadRequest, string(domainerror.ErrCodeMissingGoalFields)},
		{"goal with negative target", http.MethodPost, "/goals",
			`{"name":"Laptop","targetAmount":-1}`, http.StatusBadRequest, string(domainerror.ErrCodeInvalidGoalAmount)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			engine.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantErr == "" {
				return
			}
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantErr, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}
