package main

import (
	"context"

	"fintrack/models"
)

func validateExpenseCreate(b expenseBody) error {
	if err := validAmount(b.Amount); err != nil {
		return err
	}
	if strVal(b.Description) == "" {
		return invalidField("description", "required")
	}
	if strVal(b.Category) == "" {
		return invalidField("category", "required")
	}
	if !b.Date.IsSet() {
		return invalidField("date", "required")
	}
	return nil
}

func (s *Store) CreateExpense(ctx context.Context, ownerID uint, body expenseBody) (*models.Expense, error) {
	b := normalizeExpensePayload(body)
	if err := validateExpenseCreate(b); err != nil {
		return nil, err
	}
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	exp := models.Expense{
		UserID:      ownerID,
		Description: strVal(b.Description),
		Category:    strVal(b.Category),
		Amount:      *b.Amount,
		Date:        b.Date.String(),
		Notes:       strVal(b.Notes),
	}
	if err := db.Create(&exp).Error; err != nil {
		return nil, err
	}
	return &exp, nil
}

func (s *Store) ListExpenses(ctx context.Context, ownerID uint, f listFilter) ([]models.Expense, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	items := []models.Expense{}
	q := f.apply(db.Where("user_id = ?", ownerID))
	if err := q.Order("date desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) UpdateExpense(ctx context.Context, id, ownerID uint, patch expenseBody) (*models.Expense, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	var exp models.Expense
	if err := db.Where("id = ? AND user_id = ?", id, ownerID).First(&exp).Error; err != nil {
		return nil, mapRecordError(err)
	}
	p := normalizeExpensePayload(patch)
	if p.Amount != nil {
		if err := validAmount(p.Amount); err != nil {
			return nil, err
		}
		exp.Amount = *p.Amount
	}
	if p.Description != nil {
		if *p.Description == "" {
			return nil, invalidField("description", "must not be empty")
		}
		exp.Description = *p.Description
	}
	if p.Category != nil {
		if *p.Category == "" {
			return nil, invalidField("category", "must not be empty")
		}
		exp.Category = *p.Category
	}
	if p.Date.IsSet() {
		exp.Date = p.Date.String()
	}
	if p.Notes != nil {
		exp.Notes = *p.Notes
	}
	if err := db.Save(&exp).Error; err != nil {
		return nil, err
	}
	return &exp, nil
}

func (s *Store) DeleteExpense(ctx context.Context, id, ownerID uint) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	res := db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.Expense{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
