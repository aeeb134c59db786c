package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"goblog/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.User{}, &model.Post{}, &model.AuditEntry{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, email string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Email: email}
	if err := NewUserRepository(db).Create(user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedPost(t *testing.T, db *gorm.DB, userID uint, title string) *model.Post {
	t.Helper()
	post := &model.Post{Title: title, Content: "content of " + title, UserID: userID}
	if err := NewPostRepository(db).Create(post); err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return post
}
