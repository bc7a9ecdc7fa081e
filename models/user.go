package models

import "time"

// User model
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Username       string    `gorm:"size:255;not null;unique" json:"username"`
	HashedPassword []byte    `gorm:"not null" json:"-"`
}
