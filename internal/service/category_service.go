// Package service provides application business logic for categories, posts,
// comments, and authentication. Every operation takes the acting principal
// explicitly; nothing reads ambient request state.
package service

import (
	"context"

	"inkwell/internal/authz"
	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/slugs"
)

// CategoryService provides category management business logic.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// CreateCategoryInput is the input for creating a category.
type CreateCategoryInput struct {
	Principal   *authz.Principal
	Name        string
	Description string
}

// UpdateCategoryInput is the input for a partial category update. Nil fields
// retain the current value.
type UpdateCategoryInput struct {
	Principal   *authz.Principal
	Slug        string
	Name        *string
	Description *string
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List returns all categories in store-default order. The list is served
// cache-aside from Redis; every mutation invalidates it.
func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := cache.Aside(ctx, cache.CategoryListKey(), &categories, cache.CategoryListTTL, func() error {
		var fetchErr error
		categories, fetchErr = s.categoryRepo.List(ctx)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Get returns the category with the given slug.
func (s *CategoryService) Get(ctx context.Context, slug string) (*models.Category, error) {
	return s.categoryRepo.GetBySlug(ctx, slug)
}

// Create derives the slug from the name and persists a new category.
//
// The slug-existence pre-check is best-effort: two concurrent creates can
// both pass it. The store's unique constraint is the authoritative guard and
// surfaces as the same validation error.
func (s *CategoryService) Create(ctx context.Context, in CreateCategoryInput) (*models.Category, error) {
	if err := authz.CanManageCategories(in.Principal).Err(); err != nil {
		return nil, err
	}

	if in.Name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	slug := slugs.Make(in.Name)
	if slug == "" {
		return nil, models.NewValidationError("Name must contain at least one word character")
	}

	exists, err := s.categoryRepo.SlugExists(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewValidationError("Category already exists")
	}

	category := &models.Category{
		Name:        in.Name,
		Slug:        slug,
		Description: in.Description,
		IsActive:    true,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	cache.InvalidateCategoryList(ctx)
	return category, nil
}

// Update applies the present fields and re-derives the slug from the
// resulting name.
func (s *CategoryService) Update(ctx context.Context, in UpdateCategoryInput) (*models.Category, error) {
	if err := authz.CanManageCategories(in.Principal).Err(); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetBySlug(ctx, in.Slug)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, models.NewValidationError("Name cannot be empty")
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	category.Slug = slugs.Make(category.Name)

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	cache.InvalidateCategoryList(ctx)
	return category, nil
}

// Delete removes the category and returns its last representation.
// Dependent posts keep existing with a cleared category reference.
func (s *CategoryService) Delete(ctx context.Context, slug string, principal *authz.Principal) (*models.Category, error) {
	if err := authz.CanManageCategories(principal).Err(); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Delete(ctx, category); err != nil {
		return nil, err
	}

	cache.InvalidateCategoryList(ctx)
	return category, nil
}
