package dto

import (
	"time"

	"storefront/internal/domain/model"
)

type ExpenseInput struct {
	Title       string    `json:"title"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Tags        []string  `json:"tags"`
}

func (in ExpenseInput) Expense() *model.Expense {
	return &model.Expense{
		Title:       in.Title,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Date:        in.Date,
		Tags:        in.Tags,
	}
}

type ExpensePatch struct {
	Title       *string    `json:"title"`
	Amount      *float64   `json:"amount"`
	Category    *string    `json:"category"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Tags        *[]string  `json:"tags"`
}

func (in ExpensePatch) Apply(e *model.Expense) Fields {
	fields := Fields{}
	set(fields, "title", &e.Title, in.Title)
	set(fields, "amount", &e.Amount, in.Amount)
	set(fields, "category", &e.Category, in.Category)
	set(fields, "description", &e.Description, in.Description)
	set(fields, "date", &e.Date, in.Date)
	if in.Tags != nil {
		tags := model.NormalizeTags(*in.Tags)
		set(fields, "tags", &e.Tags, &tags)
	}

	return fields
}
