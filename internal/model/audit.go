package model

import "time"

// AuditEntry records one entity mutation. Rows are written asynchronously by
// the audit worker, never on the request path.
type AuditEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Entity     string    `gorm:"size:32;not null;index" json:"entity"`
	EntityID   uint      `gorm:"not null;index" json:"entity_id"`
	Action     string    `gorm:"size:16;not null" json:"action"`
	OccurredAt time.Time `gorm:"not null" json:"occurred_at"`
}
