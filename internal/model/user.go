package model

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email     string    `gorm:"size:120;not null;uniqueIndex" json:"email"`
	ImageFile *string   `gorm:"size:200" json:"image_file"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Posts []Post `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
