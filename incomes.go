package main

import (
	"context"

	"fintrack/models"
)

// validateIncomeCreate runs after alias resolution, so a description-only
// payload has already been copied into source.
func validateIncomeCreate(b incomeBody) error {
	if err := validAmount(b.Amount); err != nil {
		return err
	}
	if strVal(b.Source) == "" {
		return invalidField("source", "source or description required")
	}
	return nil
}

// CreateIncome normalizes and validates the payload, stamps the owner and
// persists the record. Date defaults to now when omitted.
func (s *Store) CreateIncome(ctx context.Context, ownerID uint, body incomeBody) (*models.Income, error) {
	b := normalizeIncomePayload(body)
	if err := validateIncomeCreate(b); err != nil {
		return nil, err
	}
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	inc := models.Income{
		UserID:      ownerID,
		Source:      strVal(b.Source),
		Description: strVal(b.Description),
		Category:    strVal(b.Category),
		Amount:      *b.Amount,
		Date:        b.Date.String(),
		Notes:       strVal(b.Notes),
	}
	if inc.Date == "" {
		inc.Date = nowISO()
	}
	if err := db.Create(&inc).Error; err != nil {
		return nil, err
	}
	return &inc, nil
}

// ListIncomes returns the owner's records matching the filter. No results
// is an empty slice, never an error.
func (s *Store) ListIncomes(ctx context.Context, ownerID uint, f listFilter) ([]models.Income, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	items := []models.Income{}
	q := f.apply(db.Where("user_id = ?", ownerID))
	if err := q.Order("date desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateIncome applies a partial patch to an owned record. Only supplied
// fields are normalized and written; id and userId are not patchable.
func (s *Store) UpdateIncome(ctx context.Context, id, ownerID uint, patch incomeBody) (*models.Income, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	var inc models.Income
	if err := db.Where("id = ? AND user_id = ?", id, ownerID).First(&inc).Error; err != nil {
		return nil, mapRecordError(err)
	}
	p := normalizeIncomePayload(patch)
	if p.Amount != nil {
		if err := validAmount(p.Amount); err != nil {
			return nil, err
		}
		inc.Amount = *p.Amount
	}
	if p.Source != nil {
		inc.Source = *p.Source
	}
	if p.Description != nil {
		inc.Description = *p.Description
	}
	if p.Category != nil {
		inc.Category = *p.Category
	}
	if p.Date.IsSet() {
		inc.Date = p.Date.String()
	}
	if p.Notes != nil {
		inc.Notes = *p.Notes
	}
	if inc.Source == "" {
		return nil, invalidField("source", "source or description required")
	}
	if err := db.Save(&inc).Error; err != nil {
		return nil, err
	}
	return &inc, nil
}

// DeleteIncome removes an owned record; a miss or another owner's record is
// ErrNotFound either way.
func (s *Store) DeleteIncome(ctx context.Context, id, ownerID uint) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	res := db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.Income{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
