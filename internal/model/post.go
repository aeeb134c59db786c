package model

import "time"

type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Published  bool      `gorm:"not null;default:false" json:"published"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	DatePosted time.Time `gorm:"not null;index" json:"date_posted"`

	Author User `gorm:"foreignKey:UserID" json:"author"`
}
