package dto

import (
	"github.com/money-manager/backend/internal/application/usecase/category"
)

// CategoriesResponse represents the category catalogue.
type CategoriesResponse struct {
	Income    []string `json:"income"`
	Expense   []string `json:"expense"`
	Divisions []string `json:"divisions"`
}

// ToCategoriesResponse converts the catalogue to a CategoriesResponse DTO.
func ToCategoriesResponse(output *category.ListCategoriesOutput) CategoriesResponse {
	response := CategoriesResponse{
		Income:    make([]string, len(output.Income)),
		Expense:   make([]string, len(output.Expense)),
		Divisions: make([]string, len(output.Divisions)),
	}
	for i, c := range output.Income {
		response.Income[i] = string(c)
	}
	for i, c := range output.Expense {
		response.Expense[i] = string(c)
	}
	for i, d := range output.Divisions {
		response.Divisions[i] = string(d)
	}
	return response
}
