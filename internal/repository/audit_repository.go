package repository

import (
	"fmt"

	"gorm.io/gorm"

	"goblog/internal/model"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Create(entry *model.AuditEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("create audit entry failed: %w", err)
	}
	return nil
}
