package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kasku/kasku_backend/internal/core/ports/services"
	"github.com/kasku/kasku_backend/internal/dto"
)

// categoryHandler handles the per-user category registry endpoints.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

// registerCategoryRoutes registers routes related to categories.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := &categoryHandler{categoryService: categoryService}

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.DELETE("/:id", h.deleteCategory)
	}
}

// createCategory godoc
// @Summary Add a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.Response{data=dto.CategoryResponse}
// @Failure 400 {object} dto.Response "Validation error or duplicate name"
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, "Category created successfully", gin.H{"category": dto.ToCategoryResponse(*category)})
}

// listCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} dto.Response{data=dto.ListCategoriesResponse}
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ListCategoriesResponse{Categories: make([]dto.CategoryResponse, 0, len(categories))}
	for _, cat := range categories {
		resp.Categories = append(resp.Categories, dto.ToCategoryResponse(cat))
	}
	respondSuccess(c, http.StatusOK, "", resp)
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Removes the category from the registry; ledger entries keep their category name
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Category not found"
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Category deleted successfully", nil)
}
