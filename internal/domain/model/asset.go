package model

import (
	"time"

	"storefront/pkg/utils"
)

type StorageKind string

const (
	StorageInline     StorageKind = "inline"
	StorageFilesystem StorageKind = "filesystem"
	StorageMinIO      StorageKind = "minio"
)

// MediaKind selects the asset collection and the accepted content types.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Accepts reports whether contentType belongs to the media kind.
func (k MediaKind) Accepts(contentType string) bool {
	return utils.MediaClass(contentType) == string(k)
}

// Asset is a stored image or video. SizeBytes always equals the stored
// content length; range arithmetic depends on it.
type Asset struct {
	ID           string      `bson:"_id"           json:"id"`
	Filename     string      `bson:"filename"      json:"filename"`
	OriginalName string      `bson:"original_name" json:"originalName"`
	ContentType  string      `bson:"content_type"  json:"contentType"`
	SizeBytes    int64       `bson:"size_bytes"    json:"sizeBytes"`
	Storage      StorageKind `bson:"storage"       json:"storage"`
	Location     string      `bson:"location"      json:"-"`
	Data         string      `bson:"data,omitempty" json:"-"`
	Title        string      `bson:"title"         json:"title"`
	Description  string      `bson:"description"   json:"description"`
	Tags         []string    `bson:"tags"          json:"tags"`
	CreatedBy    string      `bson:"created_by"    json:"createdBy,omitempty"`
	CreatedAt    time.Time   `bson:"created_at"    json:"createdAt"`
	UpdatedAt    time.Time   `bson:"updated_at"    json:"updatedAt"`
}
