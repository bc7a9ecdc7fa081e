package main

import (
	"context"

	"fintrack/models"
)

// validateTransactionCreate dispatches on kind: income-kind records follow
// the income rules (alias already resolved), expense-kind the expense rules.
func validateTransactionCreate(b transactionBody) error {
	switch strVal(b.Kind) {
	case models.KindIncome:
		if err := validAmount(b.Amount); err != nil {
			return err
		}
		if strVal(b.Source) == "" {
			return invalidField("source", "source or description required")
		}
	case models.KindExpense:
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
	default:
		return invalidField("kind", `must be "income" or "expense"`)
	}
	return nil
}

func (s *Store) CreateTransaction(ctx context.Context, ownerID uint, body transactionBody) (*models.Transaction, error) {
	b := normalizeTransactionPayload(body)
	if err := validateTransactionCreate(b); err != nil {
		return nil, err
	}
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	tx := models.Transaction{
		UserID:      ownerID,
		Kind:        strVal(b.Kind),
		Description: strVal(b.Description),
		Source:      strVal(b.Source),
		Category:    strVal(b.Category),
		Amount:      *b.Amount,
		Date:        b.Date.String(),
		Notes:       strVal(b.Notes),
	}
	if tx.Date == "" {
		tx.Date = nowISO()
	}
	if err := db.Create(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, ownerID uint, f listFilter) ([]models.Transaction, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	items := []models.Transaction{}
	q := f.apply(db.Where("user_id = ?", ownerID))
	if err := q.Order("date desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetTransaction(ctx context.Context, id, ownerID uint) (*models.Transaction, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	var tx models.Transaction
	if err := db.Where("id = ? AND user_id = ?", id, ownerID).First(&tx).Error; err != nil {
		return nil, mapRecordError(err)
	}
	return &tx, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, id, ownerID uint, patch transactionBody) (*models.Transaction, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	var tx models.Transaction
	if err := db.Where("id = ? AND user_id = ?", id, ownerID).First(&tx).Error; err != nil {
		return nil, mapRecordError(err)
	}
	if patch.Kind != nil && *patch.Kind != tx.Kind {
		return nil, invalidField("kind", "immutable")
	}
	// Resolve the alias against the record's kind, not the patch's.
	k := tx.Kind
	patch.Kind = &k
	p := normalizeTransactionPayload(patch)
	if p.Amount != nil {
		if err := validAmount(p.Amount); err != nil {
			return nil, err
		}
		tx.Amount = *p.Amount
	}
	if p.Source != nil {
		tx.Source = *p.Source
	}
	if p.Description != nil {
		tx.Description = *p.Description
	}
	if p.Category != nil {
		tx.Category = *p.Category
	}
	if p.Date.IsSet() {
		tx.Date = p.Date.String()
	}
	if p.Notes != nil {
		tx.Notes = *p.Notes
	}
	if tx.Kind == models.KindIncome && tx.Source == "" {
		return nil, invalidField("source", "source or description required")
	}
	if err := db.Save(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id, ownerID uint) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	res := db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.Transaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllTransactions removes every record owned by ownerID and returns
// the count. Zero records is a success.
func (s *Store) DeleteAllTransactions(ctx context.Context, ownerID uint) (int64, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return 0, err
	}
	res := db.Where("user_id = ?", ownerID).Delete(&models.Transaction{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
