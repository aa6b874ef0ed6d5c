package model

import (
	"time"

	"storefront/internal/domain/apperror"
)

type ProductStatus string

const (
	ProductAvailable    ProductStatus = "available"
	ProductOutOfStock   ProductStatus = "out_of_stock"
	ProductDiscontinued ProductStatus = "discontinued"

	DefaultCategory = "Uncategorized"
)

type Product struct {
	ID          string        `bson:"_id"         json:"id"`
	Name        string        `bson:"name"        json:"name"`
	Description string        `bson:"description" json:"description"`
	Price       float64       `bson:"price"       json:"price"`
	Category    string        `bson:"category"    json:"category"`
	Stock       int           `bson:"stock"       json:"stock"`
	Status      ProductStatus `bson:"status"      json:"status"`
	Images      []string      `bson:"images"      json:"images"`
	Tags        []string      `bson:"tags"        json:"tags"`
	CreatedBy   string        `bson:"created_by"  json:"createdBy,omitempty"`
	CreatedAt   time.Time     `bson:"created_at"  json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updated_at"  json:"updatedAt"`
}

// ApplyDefaults fills the fields a new product may omit.
func (p *Product) ApplyDefaults() {
	if p.Category == "" {
		p.Category = DefaultCategory
	}
	if p.Status == "" {
		p.Status = ProductAvailable
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	p.Tags = NormalizeTags(p.Tags)
}

func (p *Product) Validate() error {
	if err := required("name", p.Name); err != nil {
		return err
	}
	if p.Price < 0 {
		return apperror.Validation("price", "price must not be negative")
	}
	if p.Stock < 0 {
		return apperror.Validation("stock", "stock must not be negative")
	}

	return oneOf("status", p.Status, ProductAvailable, ProductOutOfStock, ProductDiscontinued)
}
