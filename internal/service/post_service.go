package service

import (
	"context"

	"inkwell/internal/authz"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/slugs"
)

// Pagination defaults for the public post listing.
const (
	DefaultPostLimit = 10
	maxTitleLen      = 200
	maxExcerptLen    = 300
)

// PostService provides post publishing business logic.
type PostService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
}

// ListPostsInput carries the optional filters of the public listing.
type ListPostsInput struct {
	Query    string
	Category string
	Author   string
	Ordering string
	Limit    int
	Offset   int
}

// CreatePostInput is the input for creating a post. The author is always the
// acting principal, never client-supplied.
type CreatePostInput struct {
	Principal  *authz.Principal
	Title      string
	CategoryID *uint
	Content    string
	Excerpt    string
	Status     string
}

// UpdatePostInput is the input for a partial post update. Only title and
// content are updatable through this operation; category, status, and
// excerpt deliberately are not.
type UpdatePostInput struct {
	Principal *authz.Principal
	Slug      string
	Title     *string
	Content   *string
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repository.PostRepository, categoryRepo repository.CategoryRepository) *PostService {
	return &PostService{postRepo: postRepo, categoryRepo: categoryRepo}
}

// List returns published posts matching the filters. Ordering values outside
// the allow-list are ignored; negative pagination values are rejected.
func (s *PostService) List(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	if in.Limit < 0 || in.Offset < 0 {
		return nil, models.NewValidationError("limit and offset must not be negative")
	}
	if in.Limit == 0 {
		in.Limit = DefaultPostLimit
	}

	posts, err := s.postRepo.ListPublished(ctx, repository.PostFilter{
		Query:        in.Query,
		CategorySlug: in.Category,
		Author:       in.Author,
		Ordering:     in.Ordering,
		Limit:        in.Limit,
		Offset:       in.Offset,
	})
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		asListItem(p)
	}
	return posts, nil
}

// ListMine returns every post of the acting principal regardless of status.
func (s *PostService) ListMine(ctx context.Context, principal *authz.Principal) ([]*models.Post, error) {
	if err := authz.CanListOwnPosts(principal).Err(); err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListByAuthor(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		asListItem(p)
	}
	return posts, nil
}

// Get returns the detail representation: full content plus the complete
// comment list.
func (s *PostService) Get(ctx context.Context, slug string) (*models.Post, error) {
	post, err := s.postRepo.GetDetailBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	return post, nil
}

// Create persists a new post authored by the acting principal.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := authz.CanCreatePost(in.Principal).Err(); err != nil {
		return nil, err
	}

	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 200 characters)")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Excerpt) > maxExcerptLen {
		return nil, models.NewValidationError("Excerpt too long (max 300 characters)")
	}

	status := in.Status
	if status == "" {
		status = models.PostStatusDraft
	}
	if status != models.PostStatusDraft && status != models.PostStatusPublished {
		return nil, models.NewValidationError("Status must be draft or published")
	}

	if in.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *in.CategoryID); err != nil {
			return nil, models.NewValidationError("Invalid category")
		}
	}

	post := &models.Post{
		Title:      in.Title,
		Slug:       slugs.Make(in.Title),
		AuthorID:   in.Principal.ID,
		CategoryID: in.CategoryID,
		Content:    in.Content,
		Excerpt:    in.Excerpt,
		Status:     status,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	created, err := s.postRepo.GetBySlug(ctx, post.Slug)
	if err != nil {
		return nil, err
	}
	asListItem(created)
	return created, nil
}

// Update applies the present fields, re-derives the slug from the resulting
// title, and persists. Author only.
func (s *PostService) Update(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetBySlug(ctx, in.Slug)
	if err != nil {
		return nil, err
	}

	if err := authz.CanMutatePost(in.Principal, post).Err(); err != nil {
		return nil, err
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, models.NewValidationError("Title cannot be empty")
		}
		post.Title = *in.Title
	}
	if in.Content != nil {
		if *in.Content == "" {
			return nil, models.NewValidationError("Content cannot be empty")
		}
		post.Content = *in.Content
	}
	post.Slug = slugs.Make(post.Title)

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	updated, err := s.postRepo.GetBySlug(ctx, post.Slug)
	if err != nil {
		return nil, err
	}
	asListItem(updated)
	return updated, nil
}

// Delete removes the post and all of its comments, returning the last
// representation. Author only.
func (s *PostService) Delete(ctx context.Context, slug string, principal *authz.Principal) (*models.Post, error) {
	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := authz.CanMutatePost(principal, post).Err(); err != nil {
		return nil, err
	}

	if err := s.postRepo.Delete(ctx, post.ID); err != nil {
		return nil, err
	}

	asListItem(post)
	return post, nil
}

// asListItem trims a post down to its list representation: content stays in
// the detail view only, and the comment list is carried as an explicit empty
// array (comments_count remains authoritative).
func asListItem(p *models.Post) {
	p.Content = ""
	p.Comments = []models.Comment{}
}
