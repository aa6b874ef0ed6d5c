package abstraction

import (
	"context"
	"io"

	"storefront/internal/domain/dto"
	"storefront/internal/domain/model"
	"storefront/pkg/byterange"
)

type Uploader interface {
	Upload(ctx context.Context, actor dto.Actor, in dto.UploadInput) (*model.Asset, error)
}

type Streamer interface {
	GetByFilename(ctx context.Context, filename string) (*model.Asset, error)
	Open(ctx context.Context, asset *model.Asset, rangeHeader string, withBody bool) (byterange.Plan, io.ReadCloser, error)
}

// Media is everything the image and video routes need.
type Media interface {
	Uploader
	Streamer
	Getter[model.Asset]
	Lister[model.Asset]
	Updater[model.Asset, dto.AssetPatch]
	Deleter
}
