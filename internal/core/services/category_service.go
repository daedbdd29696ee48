package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kasku/kasku_backend/internal/apperrors"
	"github.com/kasku/kasku_backend/internal/core/domain"
	portsrepo "github.com/kasku/kasku_backend/internal/core/ports/repositories"
	portssvc "github.com/kasku/kasku_backend/internal/core/ports/services"
	"github.com/kasku/kasku_backend/internal/dto"
)

type categoryService struct {
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// CreateCategory adds a category to the caller's registry.
func (s *categoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	catType := domain.TransactionType(req.Type)
	if !catType.Valid() {
		return nil, fmt.Errorf("%w: type must be INCOME or EXPENSE", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Type:        catType,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, err
	}
	return &category, nil
}

// ListCategories returns the caller's categories.
func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	return s.categoryRepo.ListCategoriesByUser(ctx, userID)
}

// DeleteCategory removes a category from the registry. Existing ledger
// entries keep their category name.
func (s *categoryService) DeleteCategory(ctx context.Context, categoryID, userID string) error {
	return s.categoryRepo.DeleteCategory(ctx, categoryID, userID)
}
