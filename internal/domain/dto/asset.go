package dto

import (
	"io"

	"storefront/internal/domain/model"
)

// UploadInput is one multipart upload: the file stream plus its metadata.
type UploadInput struct {
	Body         io.Reader
	OriginalName string
	DeclaredType string
	Title        string
	Description  string
	Tags         []string
}

type AssetPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
}

func (in AssetPatch) Apply(a *model.Asset) Fields {
	fields := Fields{}
	set(fields, "title", &a.Title, in.Title)
	set(fields, "description", &a.Description, in.Description)
	if in.Tags != nil {
		tags := model.NormalizeTags(*in.Tags)
		set(fields, "tags", &a.Tags, &tags)
	}

	return fields
}
