package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/money-manager/backend/internal/application/usecase/category"
	"github.com/money-manager/backend/internal/integration/entrypoint/dto"
)

// CategoryController serves the fixed category catalogue.
type CategoryController struct {
	listUseCase *category.ListCategoriesUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(listUseCase *category.ListCategoriesUseCase) *CategoryController {
	return &CategoryController{
		listUseCase: listUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToCategoriesResponse(c.listUseCase.Execute()))
}
