package service

import (
	"context"

	"inkwell/internal/authz"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

const maxCommentLen = 10000

// CommentService provides commenting business logic.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// CreateCommentInput is the input for creating a comment.
type CreateCommentInput struct {
	Principal *authz.Principal
	PostSlug  string
	Content   string
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

// List returns a post's comments in creation order. A missing post is
// reported as not found.
func (s *CommentService) List(ctx context.Context, postSlug string) ([]*models.Comment, error) {
	post, err := s.postRepo.GetBySlug(ctx, postSlug)
	if err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, post.ID)
}

// Create persists a comment by the acting principal on an existing post.
// Comments are created approved; there is no moderation workflow.
func (s *CommentService) Create(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if err := authz.CanComment(in.Principal).Err(); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetBySlug(ctx, in.PostSlug)
	if err != nil {
		return nil, err
	}

	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	comment := &models.Comment{
		PostID:     post.ID,
		AuthorID:   in.Principal.ID,
		Content:    in.Content,
		IsApproved: true,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// Delete removes a comment and returns its last representation. Author only.
func (s *CommentService) Delete(ctx context.Context, id uint, principal *authz.Principal) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.CanDeleteComment(principal, comment).Err(); err != nil {
		return nil, err
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return comment, nil
}
