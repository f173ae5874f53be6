// Package category contains category-related use cases.
package category

import (
	"github.com/money-manager/backend/internal/domain/entity"
)

// ListCategoriesOutput is the fixed catalogue used by transaction and budget forms.
type ListCategoriesOutput struct {
	Income    []entity.Category
	Expense   []entity.Category
	Divisions []entity.Division
}

// ListCategoriesUseCase returns the category catalogue.
type ListCategoriesUseCase struct{}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase() *ListCategoriesUseCase {
	return &ListCategoriesUseCase{}
}

// Execute returns fresh copies of the catalogue lists.
func (uc *ListCategoriesUseCase) Execute() *ListCategoriesOutput {
	return &ListCategoriesOutput{
		Income:    entity.IncomeCategories(),
		Expense:   entity.ExpenseCategories(),
		Divisions: entity.Divisions(),
	}
}
