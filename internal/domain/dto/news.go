package dto

import "storefront/internal/domain/model"

type NewsInput struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Author    string   `json:"author"`
	Tags      []string `json:"tags"`
	Images    []string `json:"images"`
	Published bool     `json:"published"`
}

func (in NewsInput) News() *model.News {
	return &model.News{
		Title:     in.Title,
		Content:   in.Content,
		Author:    in.Author,
		Tags:      in.Tags,
		Images:    in.Images,
		Published: in.Published,
	}
}

type NewsPatch struct {
	Title     *string   `json:"title"`
	Content   *string   `json:"content"`
	Author    *string   `json:"author"`
	Tags      *[]string `json:"tags"`
	Images    *[]string `json:"images"`
	Published *bool     `json:"published"`
}

func (in NewsPatch) Apply(n *model.News) Fields {
	fields := Fields{}
	set(fields, "title", &n.Title, in.Title)
	set(fields, "content", &n.Content, in.Content)
	set(fields, "author", &n.Author, in.Author)
	set(fields, "images", &n.Images, in.Images)
	set(fields, "published", &n.Published, in.Published)
	if in.Tags != nil {
		tags := model.NormalizeTags(*in.Tags)
		set(fields, "tags", &n.Tags, &tags)
	}

	return fields
}
