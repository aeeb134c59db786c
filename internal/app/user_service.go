package app

import (
	"context"
	"strings"
	"time"

	"goblog/internal/model"
	"goblog/internal/pkg/optional"
	"goblog/internal/repository"
)

type UserService struct {
	userRepo  *repository.UserRepository
	postRepo  *repository.PostRepository
	cache     HomeCache
	publisher AuditPublisher
}

type CreateUserInput struct {
	Username string
	Email    string
}

type PatchUserInput struct {
	Username  optional.Field[string]
	Email     optional.Field[string]
	ImageFile optional.Field[string]
}

func NewUserService(userRepo *repository.UserRepository, postRepo *repository.PostRepository, cache HomeCache, publisher AuditPublisher) *UserService {
	return &UserService{
		userRepo:  userRepo,
		postRepo:  postRepo,
		cache:     cache,
		publisher: publisher,
	}
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*model.User, error) {
	// usernames are stored as submitted; only the email is normalized
	username := input.Username
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if username == "" || email == "" {
		return nil, ErrInvalidInput
	}

	if err := s.checkUsernameFree(username); err != nil {
		return nil, err
	}
	if err := s.checkEmailFree(email); err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Email:    email,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	s.audit(ctx, "user", user.ID, "create")
	return user, nil
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Patch mutates only the fields present in the input. Uniqueness is
// re-checked for username and email when they actually change; a present-null
// image_file clears the stored reference.
func (s *UserService) Patch(ctx context.Context, id uint, input PatchUserInput) (*model.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if username, ok := input.Username.Get(); ok {
		if username == "" {
			return nil, ErrInvalidInput
		}
		if username != user.Username {
			if err := s.checkUsernameFree(username); err != nil {
				return nil, err
			}
			fields["username"] = username
		}
	}
	if email, ok := input.Email.Get(); ok {
		email = strings.TrimSpace(strings.ToLower(email))
		if email == "" {
			return nil, ErrInvalidInput
		}
		if email != user.Email {
			if err := s.checkEmailFree(email); err != nil {
				return nil, err
			}
			fields["email"] = email
		}
	}
	if input.ImageFile.Set() {
		if file, ok := input.ImageFile.Get(); ok {
			fields["image_file"] = file
		} else {
			fields["image_file"] = nil
		}
	}

	if err := s.userRepo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	updated, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.invalidateHome(ctx)
	s.audit(ctx, "user", id, "update")
	return updated, nil
}

// Delete removes the user and all posts the user owns.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.userRepo.DeleteCascade(id); err != nil {
		return err
	}

	s.invalidateHome(ctx)
	s.audit(ctx, "user", id, "delete")
	return nil
}

// ListPosts returns the user's posts, newest first, authors loaded.
func (s *UserService) ListPosts(id uint) ([]model.Post, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}
	return s.postRepo.ListByUserID(id)
}

func (s *UserService) checkUsernameFree(username string) error {
	existing, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUsernameExists
	}
	return nil
}

func (s *UserService) checkEmailFree(email string) error {
	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailExists
	}
	return nil
}

func (s *UserService) invalidateHome(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}

func (s *UserService) audit(ctx context.Context, entity string, id uint, action string) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.Publish(ctx, model.AuditEntry{
		Entity:     entity,
		EntityID:   id,
		Action:     action,
		OccurredAt: time.Now(),
	})
}
