package model

import (
	"time"

	"storefront/internal/domain/apperror"
)

const DefaultExpenseCategory = "general"

type Expense struct {
	ID          string    `bson:"_id"         json:"id"`
	Title       string    `bson:"title"       json:"title"`
	Amount      float64   `bson:"amount"      json:"amount"`
	Category    string    `bson:"category"    json:"category"`
	Description string    `bson:"description" json:"description"`
	Date        time.Time `bson:"date"        json:"date"`
	Tags        []string  `bson:"tags"        json:"tags"`
	CreatedBy   string    `bson:"created_by"  json:"createdBy,omitempty"`
	CreatedAt   time.Time `bson:"created_at"  json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at"  json:"updatedAt"`
}

func (e *Expense) ApplyDefaults(now time.Time) {
	if e.Category == "" {
		e.Category = DefaultExpenseCategory
	}
	if e.Date.IsZero() {
		e.Date = now
	}
	e.Tags = NormalizeTags(e.Tags)
}

func (e *Expense) Validate() error {
	if err := required("title", e.Title); err != nil {
		return err
	}
	if e.Amount <= 0 {
		return apperror.Validation("amount", "amount must be greater than zero")
	}

	return nil
}
