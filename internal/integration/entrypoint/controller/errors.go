package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/money-manager/backend/internal/domain/error"
	"github.com/money-manager/backend/internal/integration/entrypoint/dto"
	"github.com/money-manager/backend/internal/integration/entrypoint/middleware"
)

// respondInternalError logs err and returns a generic 500. The cause is only
// exposed while gin runs in debug mode.
func respondInternalError(ctx *gin.Context, err error) {
	slog.Error("request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)

	response := dto.ErrorResponse{
		Message: "Server error",
	}
	if gin.IsDebugging() {
		response.Details = err.Error()
	}
	ctx.JSON(http.StatusInternalServerError, response)
}

// requireUserID returns the authenticated user id or writes a 401.
func requireUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Message: "Not authorized, no token",
			Code:    string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// parseIDParam parses the :id path parameter. Malformed ids cannot match a record.
func parseIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
