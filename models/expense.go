package models

import "time"

// Expense is a canonical expense record. Date is stored as an ISO-8601
// string so stored values and filter bounds compare in one representation.
type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Description string    `gorm:"size:255;not null" json:"description"`
	Category    string    `gorm:"size:128;not null" json:"category"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Date        string    `gorm:"size:64;not null;index" json:"date"`
	Notes       string    `gorm:"size:1024" json:"notes,omitempty"`
}
