package models

import "time"

// Transaction kinds. The kind decides which aliasing rules apply.
const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// Transaction is a unified income/expense record.
type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Kind        string    `gorm:"size:16;not null;index" json:"kind"`
	Description string    `gorm:"size:255" json:"description,omitempty"`
	Source      string    `gorm:"size:255" json:"source,omitempty"`
	Category    string    `gorm:"size:128" json:"category"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Date        string    `gorm:"size:64;not null;index" json:"date"`
	Notes       string    `gorm:"size:1024" json:"notes,omitempty"`
}
