package dto

import "github.com/kasku/kasku_backend/internal/core/domain"

// CreateCategoryRequest adds a category to the caller's registry.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required,oneof=INCOME EXPENSE"`
}

// CategoryResponse is the listed view of a category.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// ToCategoryResponse converts a domain.Category to its listed view.
func ToCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.CategoryID, Name: c.Name, Type: string(c.Type)}
}

// ListCategoriesResponse wraps the category list.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
