package app

import (
	"context"
	"time"

	"goblog/internal/model"
	"goblog/internal/pkg/optional"
	"goblog/internal/repository"
)

type PostService struct {
	postRepo  *repository.PostRepository
	userRepo  *repository.UserRepository
	cache     HomeCache
	publisher AuditPublisher
}

type CreatePostInput struct {
	Title     string
	Content   string
	Published bool
	UserID    uint
}

type ReplacePostInput struct {
	Title     string
	Content   string
	Published bool
	UserID    uint
}

type PatchPostInput struct {
	Title     optional.Field[string]
	Content   optional.Field[string]
	Published optional.Field[bool]
}

func NewPostService(postRepo *repository.PostRepository, userRepo *repository.UserRepository, cache HomeCache, publisher AuditPublisher) *PostService {
	return &PostService{
		postRepo:  postRepo,
		userRepo:  userRepo,
		cache:     cache,
		publisher: publisher,
	}
}

func (s *PostService) Create(ctx context.Context, input CreatePostInput) (*model.Post, error) {
	if input.Title == "" || input.Content == "" || input.UserID == 0 {
		return nil, ErrInvalidInput
	}
	if err := s.checkUserExists(input.UserID); err != nil {
		return nil, err
	}

	post := &model.Post{
		Title:     input.Title,
		Content:   input.Content,
		Published: input.Published,
		UserID:    input.UserID,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	s.invalidateHome(ctx)
	s.audit(ctx, post.ID, "create")
	return post, nil
}

func (s *PostService) GetByID(id uint) (*model.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *PostService) List() ([]model.Post, error) {
	return s.postRepo.ListAll()
}

// ListHome serves the home page: newest first, read through the cache when
// one is wired.
func (s *PostService) ListHome(ctx context.Context) ([]model.Post, error) {
	if s.cache != nil {
		if cached, hit, err := s.cache.GetHome(ctx); err == nil && hit {
			return cached, nil
		}
	}

	posts, err := s.postRepo.ListNewestFirst()
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetHome(ctx, posts)
	}
	return posts, nil
}

// Replace overwrites every core field. The owning-user reference is
// re-validated only when it differs from the stored row.
func (s *PostService) Replace(ctx context.Context, id uint, input ReplacePostInput) (*model.Post, error) {
	post, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if input.UserID != post.UserID {
		if err := s.checkUserExists(input.UserID); err != nil {
			return nil, err
		}
	}

	post.Title = input.Title
	post.Content = input.Content
	post.Published = input.Published
	post.UserID = input.UserID
	if err := s.postRepo.Save(post); err != nil {
		return nil, err
	}

	s.invalidateHome(ctx)
	s.audit(ctx, id, "update")
	return post, nil
}

// Patch applies only the fields present in the input.
func (s *PostService) Patch(ctx context.Context, id uint, input PatchPostInput) (*model.Post, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if title, ok := input.Title.Get(); ok {
		fields["title"] = title
	}
	if content, ok := input.Content.Get(); ok {
		fields["content"] = content
	}
	if published, ok := input.Published.Get(); ok {
		fields["published"] = published
	}

	if err := s.postRepo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	updated, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.invalidateHome(ctx)
	s.audit(ctx, id, "update")
	return updated, nil
}

func (s *PostService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.postRepo.Delete(id); err != nil {
		return err
	}

	s.invalidateHome(ctx)
	s.audit(ctx, id, "delete")
	return nil
}

func (s *PostService) checkUserExists(userID uint) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}

func (s *PostService) invalidateHome(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}

func (s *PostService) audit(ctx context.Context, id uint, action string) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.Publish(ctx, model.AuditEntry{
		Entity:     "post",
		EntityID:   id,
		Action:     action,
		OccurredAt: time.Now(),
	})
}
