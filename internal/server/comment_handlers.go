package server

import (
	"strconv"

	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments returns all comments on a post in creation order (public)
func (s *Server) GetComments(c *fiber.Ctx) error {
	comments, err := s.commentService.List(c.UserContext(), c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"comments": comments,
		"count":    len(comments),
	})
}

// CreateComment creates a comment on a post (authenticated)
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return failBadBody(c)
	}

	comment, err := s.commentService.Create(c.UserContext(), service.CreateCommentInput{
		Principal: currentPrincipal(c),
		PostSlug:  c.Params("slug"),
		Content:   req.Content,
	})
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusCreated, fiber.Map{
		"message": "Comment created",
		"comment": comment,
	})
}

// DeleteComment deletes a comment (author only)
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return fail(c, models.NewValidationError("Invalid comment ID"))
	}

	comment, err := s.commentService.Delete(c.UserContext(), uint(id), currentPrincipal(c))
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"message": "Comment deleted",
		"comment": comment,
	})
}
