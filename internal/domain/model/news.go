package model

import "time"

type News struct {
	ID        string    `bson:"_id"        json:"id"`
	Title     string    `bson:"title"      json:"title"`
	Content   string    `bson:"content"    json:"content"`
	Author    string    `bson:"author"     json:"author"`
	Tags      []string  `bson:"tags"       json:"tags"`
	Images    []string  `bson:"images"     json:"images"`
	Views     int64     `bson:"views"      json:"views"`
	Published bool      `bson:"published"  json:"published"`
	CreatedBy string    `bson:"created_by" json:"createdBy,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

func (n *News) ApplyDefaults() {
	n.Tags = NormalizeTags(n.Tags)
	if n.Images == nil {
		n.Images = []string{}
	}
}

func (n *News) Validate() error {
	if err := required("title", n.Title); err != nil {
		return err
	}

	return required("content", n.Content)
}
