package models

import "time"

// Income is a canonical income record. Source is the canonical label;
// Description is the accepted alias surface and is retained as supplied.
type Income struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Source      string    `gorm:"size:255;not null" json:"source"`
	Description string    `gorm:"size:255" json:"description,omitempty"`
	Category    string    `gorm:"size:128" json:"category"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Date        string    `gorm:"size:64;not null;index" json:"date"`
	Notes       string    `gorm:"size:1024" json:"notes,omitempty"`
}
