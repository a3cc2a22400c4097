package repository

import (
	"context"
	"errors"
	"strings"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// PostFilter describes the optional predicates of the public post listing.
// Zero values mean "no filter"; filters compose with AND except Query, which
// is itself an OR across title and content.
type PostFilter struct {
	Query        string
	CategorySlug string
	Author       string
	Ordering     string
	Limit        int
	Offset       int
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	GetDetailBySlug(ctx context.Context, slug string) (*models.Post, error)
	ListPublished(ctx context.Context, filter PostFilter) ([]*models.Post, error)
	ListByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// applyPostDetails selects post columns plus the live comment count. The
// count always reflects current comment rows, never a stored counter.
func (r *postRepository) applyPostDetails(db *gorm.DB) *gorm.DB {
	return db.Select("posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comments_count")
}

// applyOrdering maps the ordering parameter onto the allow-list; anything
// outside it falls back to the default order without erroring.
func (r *postRepository) applyOrdering(db *gorm.DB, ordering string) *gorm.DB {
	switch ordering {
	case "created_at":
		return db.Order("posts.created_at ASC")
	case "-created_at":
		return db.Order("posts.created_at DESC")
	case "title":
		return db.Order("posts.title ASC")
	case "-title":
		return db.Order("posts.title DESC")
	default:
		return db.Order("posts.id ASC")
	}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewValidationError("A post with this title already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx)).
		Preload("Author").
		Preload("Category").
		Where("posts.slug = ?", slug).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post")
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// GetDetailBySlug loads a post with its full comment list for the detail
// representation.
func (r *postRepository) GetDetailBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx)).
		Preload("Author").
		Preload("Category").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author").
		Where("posts.slug = ?", slug).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post")
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) ListPublished(ctx context.Context, filter PostFilter) ([]*models.Post, error) {
	db := r.applyPostDetails(r.db.WithContext(ctx)).
		Preload("Author").
		Preload("Category").
		Where("posts.status = ?", models.PostStatusPublished)

	if filter.Query != "" {
		pattern := "%" + strings.ToLower(filter.Query) + "%"
		db = db.Where("LOWER(posts.title) LIKE ? OR LOWER(posts.content) LIKE ?", pattern, pattern)
	}
	if filter.CategorySlug != "" {
		db = db.Joins("JOIN categories ON categories.id = posts.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.Author != "" {
		db = db.Joins("JOIN users ON users.id = posts.author_id").
			Where("users.username = ?", filter.Author)
	}

	var posts []*models.Post
	err := r.applyOrdering(db, filter.Ordering).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx)).
		Preload("Author").
		Preload("Category").
		Where("posts.author_id = ?", authorID).
		Order("posts.id ASC").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewValidationError("A post with this title already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the post and all of its comments. The post owns its
// comments, so they go with it.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
