// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/slugs"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

var categoryNames = []string{
	"Technology", "Programming", "Travel", "Food", "Music",
	"Books", "Science", "Gaming", "Fitness", "Photography",
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)
	gofakeit.Seed(time.Now().UnixNano())

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d test users created", len(users))

	categories, err := createOrGetCategories(db)
	if err != nil {
		return fmt.Errorf("failed to create categories: %w", err)
	}
	log.Printf("%d categories available", len(categories))

	posts, err := createPosts(db, users, categories, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("%d posts created", len(posts))

	comments, err := createComments(db, users, posts)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("%d comments created", comments)

	log.Println("Seeding complete")
	return nil
}

// clearData removes existing rows in dependency order.
func clearData(db *gorm.DB) error {
	for _, model := range []any{&models.Comment{}, &models.Post{}, &models.Category{}, &models.User{}} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUsers(db *gorm.DB, count int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		user := &models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Email:    gofakeit.Email(),
			Password: string(hashed),
			// The first user is staff so category management is usable
			// out of the box.
			IsStaff: i == 0,
		}
		if err := db.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createOrGetCategories(db *gorm.DB) ([]*models.Category, error) {
	categories := make([]*models.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		category := &models.Category{
			Name:        name,
			Slug:        slugs.Make(name),
			Description: gofakeit.Sentence(8),
			IsActive:    true,
		}
		if err := db.Where("slug = ?", category.Slug).FirstOrCreate(category).Error; err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func createPosts(db *gorm.DB, users []*models.User, categories []*models.Category, count int) ([]*models.Post, error) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[r.Intn(len(users))]
		title := fmt.Sprintf("%s %d", gofakeit.Sentence(4), i)

		status := models.PostStatusPublished
		if r.Intn(5) == 0 {
			status = models.PostStatusDraft
		}

		post := &models.Post{
			Title:    title,
			Slug:     slugs.Make(title),
			AuthorID: author.ID,
			Content:  gofakeit.Paragraph(2, 4, 8, "\n\n"),
			Excerpt:  gofakeit.Sentence(12),
			Status:   status,
			// realistic created_at spread
			CreatedAt: time.Now().Add(-time.Duration(r.Intn(90*24)) * time.Hour),
		}
		if r.Intn(4) != 0 {
			post.CategoryID = &categories[r.Intn(len(categories))].ID
		}
		if err := db.Create(post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func createComments(db *gorm.DB, users []*models.User, posts []*models.Post) (int, error) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	total := 0
	for _, post := range posts {
		if post.Status != models.PostStatusPublished {
			continue
		}
		for i := 0; i < r.Intn(6); i++ {
			comment := &models.Comment{
				PostID:     post.ID,
				AuthorID:   users[r.Intn(len(users))].ID,
				Content:    gofakeit.Sentence(10),
				IsApproved: true,
			}
			if err := db.Create(comment).Error; err != nil {
				return total, err
			}
			total++
		}
	}
	return total, nil
}
