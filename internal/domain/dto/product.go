package dto

import "storefront/internal/domain/model"

type ProductInput struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       float64             `json:"price"`
	Category    string              `json:"category"`
	Stock       int                 `json:"stock"`
	Status      model.ProductStatus `json:"status"`
	Images      []string            `json:"images"`
	Tags        []string            `json:"tags"`
}

func (in ProductInput) Product() *model.Product {
	return &model.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Stock:       in.Stock,
		Status:      in.Status,
		Images:      in.Images,
		Tags:        in.Tags,
	}
}

type ProductPatch struct {
	Name        *string              `json:"name"`
	Description *string              `json:"description"`
	Price       *float64             `json:"price"`
	Category    *string              `json:"category"`
	Stock       *int                 `json:"stock"`
	Status      *model.ProductStatus `json:"status"`
	Images      *[]string            `json:"images"`
	Tags        *[]string            `json:"tags"`
}

// Apply merges the patch into p and returns the changed fields.
func (in ProductPatch) Apply(p *model.Product) Fields {
	fields := Fields{}
	set(fields, "name", &p.Name, in.Name)
	set(fields, "description", &p.Description, in.Description)
	set(fields, "price", &p.Price, in.Price)
	set(fields, "category", &p.Category, in.Category)
	set(fields, "stock", &p.Stock, in.Stock)
	set(fields, "status", &p.Status, in.Status)
	set(fields, "images", &p.Images, in.Images)
	if in.Tags != nil {
		tags := model.NormalizeTags(*in.Tags)
		set(fields, "tags", &p.Tags, &tags)
	}

	return fields
}
