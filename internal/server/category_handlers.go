package server

import (
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetCategories returns all categories (public)
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.categoryService.List(c.UserContext())
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"categories": categories,
	})
}

// GetCategory returns a single category by slug (public)
func (s *Server) GetCategory(c *fiber.Ctx) error {
	category, err := s.categoryService.Get(c.UserContext(), c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"category": category,
	})
}

// CreateCategory creates a category (staff only)
func (s *Server) CreateCategory(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return failBadBody(c)
	}

	category, err := s.categoryService.Create(c.UserContext(), service.CreateCategoryInput{
		Principal:   currentPrincipal(c),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusCreated, fiber.Map{
		"message":  "Category created",
		"category": category,
	})
}

// UpdateCategory partially updates a category (staff only)
func (s *Server) UpdateCategory(c *fiber.Ctx) error {
	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return failBadBody(c)
	}

	category, err := s.categoryService.Update(c.UserContext(), service.UpdateCategoryInput{
		Principal:   currentPrincipal(c),
		Slug:        c.Params("slug"),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"message":  "Category updated",
		"category": category,
	})
}

// DeleteCategory deletes a category (staff only). Posts in the category
// survive with the reference cleared.
func (s *Server) DeleteCategory(c *fiber.Ctx) error {
	category, err := s.categoryService.Delete(c.UserContext(), c.Params("slug"), currentPrincipal(c))
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"message":  "Category deleted",
		"category": category,
	})
}
