package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rl1809/campus-market/internal/core/domain"
	"github.com/rl1809/campus-market/internal/port"
)

type CategoryService struct {
	categories port.CategoryRepository
}

func NewCategoryService(categories port.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) CreateCategory(ctx context.Context, name, description string) (*domain.Category, error) {
	category := domain.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
	}
	if err := s.categories.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.ListCategories(ctx)
}

func (s *CategoryService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	category, err := s.categories.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load category: %w", err)
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// DeleteCategory is restricted: it fails with domain.ErrCategoryInUse while
// any item still references the category.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.categories.GetCategoryByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load category: %w", err)
	}
	if category == nil {
		return ErrNotFound
	}
	return s.categories.DeleteCategory(ctx, id)
}
