package app

import (
	"context"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"goblog/internal/model"
	"goblog/internal/repository"
)

type recordingPublisher struct {
	mu      sync.Mutex
	entries []model.AuditEntry
}

func (p *recordingPublisher) Publish(_ context.Context, entry model.AuditEntry) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = append(p.entries, entry)
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}

type fakeHomeCache struct {
	mu            sync.Mutex
	posts         []model.Post
	filled        bool
	sets          int
	invalidations int
}

func (c *fakeHomeCache) GetHome(_ context.Context) ([]model.Post, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.filled {
		return nil, false, nil
	}
	return c.posts, true, nil
}

func (c *fakeHomeCache) SetHome(_ context.Context, posts []model.Post) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.posts = posts
	c.filled = true
	c.sets++
	return nil
}

func (c *fakeHomeCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.posts = nil
	c.filled = false
	c.invalidations++
	return nil
}

func (c *fakeHomeCache) invalidationCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.invalidations
}

func newServiceDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.User{}, &model.Post{}, &model.AuditEntry{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func newServices(t *testing.T) (*UserService, *PostService, *recordingPublisher) {
	t.Helper()

	db := newServiceDB(t)
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	publisher := &recordingPublisher{}
	users := NewUserService(userRepo, postRepo, nil, publisher)
	posts := NewPostService(postRepo, userRepo, nil, publisher)
	return users, posts, publisher
}

func newCachedServices(t *testing.T) (*UserService, *PostService, *fakeHomeCache) {
	t.Helper()

	db := newServiceDB(t)
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	cache := &fakeHomeCache{}
	users := NewUserService(userRepo, postRepo, cache, nil)
	posts := NewPostService(postRepo, userRepo, cache, nil)
	return users, posts, cache
}
