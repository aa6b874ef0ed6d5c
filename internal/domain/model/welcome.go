package model

import (
	"time"

	"storefront/internal/domain/apperror"
)

// Welcome is one onboarding screen shown to new customers.
type Welcome struct {
	ID         string    `bson:"_id"         json:"id"`
	Title      string    `bson:"title"       json:"title"`
	Subtitle   string    `bson:"subtitle"    json:"subtitle"`
	ImageURL   string    `bson:"image_url"   json:"imageUrl"`
	ButtonText string    `bson:"button_text" json:"buttonText"`
	Position   int       `bson:"position"    json:"position"`
	Active     bool      `bson:"active"      json:"active"`
	CreatedAt  time.Time `bson:"created_at"  json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at"  json:"updatedAt"`
}

func (w *Welcome) Validate() error {
	if err := required("title", w.Title); err != nil {
		return err
	}
	if w.Position < 0 {
		return apperror.Validation("position", "position must not be negative")
	}

	return nil
}
