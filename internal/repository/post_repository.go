package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"goblog/internal/model"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts the post and re-reads it with the author populated, so the
// caller always observes the eagerly loaded relationship.
func (r *PostRepository) Create(post *model.Post) error {
	if post.DatePosted.IsZero() {
		post.DatePosted = time.Now()
	}
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("create post failed: %w", err)
	}
	if err := r.db.Preload("Author").First(post, post.ID).Error; err != nil {
		return fmt.Errorf("reload created post failed: %w", err)
	}
	return nil
}

func (r *PostRepository) GetByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.Preload("Author").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query post by id failed: %w", err)
	}
	return &post, nil
}

func (r *PostRepository) ListAll() ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.Preload("Author").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts failed: %w", err)
	}
	return posts, nil
}

// ListNewestFirst backs the user-facing home page.
func (r *PostRepository) ListNewestFirst() ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.Preload("Author").Order("date_posted DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts newest-first failed: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) ListByUserID(userID uint) ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.Preload("Author").Where("user_id = ?", userID).Order("date_posted DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts by user failed: %w", err)
	}
	return posts, nil
}

// Save overwrites every mutable column of an existing post.
func (r *PostRepository) Save(post *model.Post) error {
	err := r.db.Model(&model.Post{ID: post.ID}).
		Select("title", "content", "published", "user_id").
		Updates(map[string]any{
			"title":     post.Title,
			"content":   post.Content,
			"published": post.Published,
			"user_id":   post.UserID,
		}).Error
	if err != nil {
		return fmt.Errorf("save post failed: %w", err)
	}
	if err := r.db.Preload("Author").First(post, post.ID).Error; err != nil {
		return fmt.Errorf("reload saved post failed: %w", err)
	}
	return nil
}

func (r *PostRepository) UpdateFields(id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.Model(&model.Post{ID: id}).Updates(fields).Error; err != nil {
		return fmt.Errorf("update post fields failed: %w", err)
	}
	return nil
}

func (r *PostRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Post{}, id).Error; err != nil {
		return fmt.Errorf("delete post failed: %w", err)
	}
	return nil
}
