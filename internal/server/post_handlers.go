package server

import (
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts returns published posts matching the query filters (public)
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.List(c.UserContext(), service.ListPostsInput{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Author:   c.Query("author"),
		Ordering: c.Query("ordering"),
		Limit:    c.QueryInt("limit", service.DefaultPostLimit),
		Offset:   c.QueryInt("offset", 0),
	})
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"posts": posts,
		"count": len(posts),
	})
}

// GetMyPosts returns every post of the authenticated user, drafts included
func (s *Server) GetMyPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListMine(c.UserContext(), currentPrincipal(c))
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"posts": posts,
		"count": len(posts),
	})
}

// GetPost returns the detail view of a post by slug (public)
func (s *Server) GetPost(c *fiber.Ctx) error {
	post, err := s.postService.Get(c.UserContext(), c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"post": post,
	})
}

// CreatePost creates a post authored by the authenticated user
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title      string `json:"title"`
		CategoryID *uint  `json:"category_id"`
		Content    string `json:"content"`
		Excerpt    string `json:"excerpt"`
		Status     string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return failBadBody(c)
	}

	post, err := s.postService.Create(c.UserContext(), service.CreatePostInput{
		Principal:  currentPrincipal(c),
		Title:      req.Title,
		CategoryID: req.CategoryID,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		Status:     req.Status,
	})
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusCreated, fiber.Map{
		"message": "Post created",
		"post":    post,
	})
}

// UpdatePost partially updates a post (author only)
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return failBadBody(c)
	}

	post, err := s.postService.Update(c.UserContext(), service.UpdatePostInput{
		Principal: currentPrincipal(c),
		Slug:      c.Params("slug"),
		Title:     req.Title,
		Content:   req.Content,
	})
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"message": "Post updated",
		"post":    post,
	})
}

// DeletePost deletes a post and its comments (author only)
func (s *Server) DeletePost(c *fiber.Ctx) error {
	post, err := s.postService.Delete(c.UserContext(), c.Params("slug"), currentPrincipal(c))
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"message": "Post deleted",
		"post":    post,
	})
}
