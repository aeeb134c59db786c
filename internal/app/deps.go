package app

import (
	"context"

	"goblog/internal/model"
)

// AuditPublisher hands a mutation record to the async audit pipeline.
// Publishing is best-effort: services never fail a request over it.
type AuditPublisher interface {
	Publish(ctx context.Context, entry model.AuditEntry) error
}

// HomeCache holds the newest-first post list backing the home page.
type HomeCache interface {
	GetHome(ctx context.Context) ([]model.Post, bool, error)
	SetHome(ctx context.Context, posts []model.Post) error
	Invalidate(ctx context.Context) error
}
