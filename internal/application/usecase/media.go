package usecase

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"storefront/internal/domain/apperror"
	"storefront/internal/domain/dto"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/model"
	"storefront/internal/domain/repository/blobstore"
	"storefront/internal/domain/repository/database"
	"storefront/pkg/byterange"
	"storefront/pkg/logger"
	"storefront/pkg/utils"
)

const (
	// sniffLen is how much of an upload is inspected to detect its type.
	sniffLen    = 3072
	unknownType = "application/octet-stream"
)

type BlobRegistry interface {
	Default() blobstore.Backend
	For(kind model.StorageKind) (blobstore.Backend, error)
}

// Media manages one kind of asset: its metadata records and stored content.
type Media struct {
	Resource[model.Asset]
	kind   model.MediaKind
	blobs  BlobRegistry
	events *Events
}

func NewMedia(kind model.MediaKind, repo database.Repository[model.Asset], blobs BlobRegistry,
	events *Events,
) *Media {
	return &Media{
		Resource: NewResource(string(kind), repo),
		kind:     kind,
		blobs:    blobs,
		events:   events,
	}
}

func (s *Media) Upload(ctx context.Context, actor dto.Actor, in dto.UploadInput) (*model.Asset, error) {
	if in.Body == nil {
		return nil, apperror.Validation("file", "file is required")
	}

	body := bufio.NewReaderSize(in.Body, sniffLen)
	head, err := body.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, apperror.Storage("failed to read upload", err)
	}
	if len(head) == 0 {
		return nil, apperror.Validation("file", "file is empty")
	}

	detected := mimetype.Detect(head)
	contentType := s.contentType(detected.String(), in.DeclaredType)
	if !s.kind.Accepts(contentType) {
		return nil, apperror.Validationf("file", "unsupported %s type %s", s.kind, contentType)
	}

	ext := utils.ExtensionFor(contentType)
	if ext == ".bin" && detected.Extension() != "" {
		ext = detected.Extension()
	}
	filename := s.newID() + ext

	backend := s.blobs.Default()
	blob, err := backend.Put(ctx, filename, contentType, body)
	if err != nil {
		if apperror.KindOf(err) != 0 {
			return nil, err
		}

		logger.Error("failed to store upload", "kind", s.kind, "filename", filename, "err", err)

		return nil, apperror.Storage("failed to store "+string(s.kind), err)
	}

	now := s.now()
	asset := &model.Asset{
		ID:           s.newID(),
		Filename:     filename,
		OriginalName: filepath.Base(in.OriginalName),
		ContentType:  contentType,
		SizeBytes:    blob.Size,
		Storage:      backend.Kind(),
		Location:     blob.Location,
		Data:         blob.Data,
		Title:        in.Title,
		Description:  in.Description,
		Tags:         model.NormalizeTags(in.Tags),
		CreatedBy:    actor.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.write(ctx, asset); err != nil {
		if removeErr := backend.Remove(ctx, asset); removeErr != nil {
			logger.Error("failed to remove blob after saving its record failed", "filename", filename, "err", removeErr)
		}

		return nil, err
	}

	s.events.Publish(ctx, entity.Event{
		Type:       entity.EventMediaUploaded,
		ResourceID: asset.ID,
		UserID:     asset.CreatedBy,
	})

	return asset, nil
}

// contentType picks the stored type. The sniffed type wins; the type the
// client declared is only used when sniffing found nothing specific.
func (s *Media) contentType(sniffed, declared string) string {
	declared = utils.BaseType(declared)
	if declared == "" || declared == utils.BaseType(sniffed) {
		return sniffed
	}

	if utils.BaseType(sniffed) == unknownType && s.kind.Accepts(declared) {
		return declared
	}

	logger.Warn("declared content type differs from the sniffed one", "kind", s.kind,
		"declared", declared, "sniffed", sniffed)

	return sniffed
}

func (s *Media) GetByFilename(ctx context.Context, filename string) (*model.Asset, error) {
	asset, err := s.repo.GetBy(ctx, "filename", filename)
	if err != nil {
		return nil, repositoryError(s.name, "get", err)
	}

	return asset, nil
}

func (s *Media) authorize(actor dto.Actor, asset *model.Asset) error {
	if !actor.CanModify(asset.CreatedBy) {
		return apperror.Forbidden("only the creator or an admin can modify this " + string(s.kind))
	}

	return nil
}

func (s *Media) Update(ctx context.Context, actor dto.Actor, id string, patch dto.AssetPatch) (*model.Asset, error) {
	asset, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(actor, asset); err != nil {
		return nil, err
	}

	return s.update(ctx, id, patch.Apply(asset))
}

// Delete removes the record, then the content. Content removal failures
// are logged and do not fail the deletion.
func (s *Media) Delete(ctx context.Context, actor dto.Actor, id string) error {
	asset, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.authorize(actor, asset); err != nil {
		return err
	}

	if err := s.repo.Remove(ctx, id); err != nil {
		return repositoryError(s.name, "delete", err)
	}

	if backend, err := s.blobs.For(asset.Storage); err != nil {
		logger.Error("no backend for deleted asset", "id", id, "err", err)
	} else if err := backend.Remove(ctx, asset); err != nil {
		logger.Error("failed to remove asset content", "id", id, "location", asset.Location, "err", err)
	}

	s.events.Publish(ctx, entity.Event{
		Type:       entity.EventMediaDeleted,
		ResourceID: id,
		UserID:     asset.CreatedBy,
	})

	return nil
}

// Open plans the response for rangeHeader and opens the planned bytes.
// Unsatisfiable ranges return the 416 plan with an error wrapping
// byterange.ErrUnsatisfiable. With withBody false nothing is read.
func (s *Media) Open(ctx context.Context, asset *model.Asset, rangeHeader string,
	withBody bool,
) (byterange.Plan, io.ReadCloser, error) {
	plan, err := byterange.Compute(rangeHeader, asset.SizeBytes)
	if err != nil {
		return plan, nil, err
	}

	if !withBody || plan.Length == 0 {
		return plan, io.NopCloser(bytes.NewReader(nil)), nil
	}

	backend, err := s.blobs.For(asset.Storage)
	if err != nil {
		return plan, nil, apperror.Storage("failed to open "+string(s.kind), err)
	}

	rc, err := backend.Open(ctx, asset, plan.Start, plan.Length)
	if err != nil {
		logger.Error("failed to open asset content", "id", asset.ID, "err", err)

		return plan, nil, apperror.Storage("failed to open "+string(s.kind), err)
	}

	return plan, &contextReadCloser{ctx: ctx, rc: rc}, nil
}

// contextReadCloser stops reading once the request is gone.
type contextReadCloser struct {
	ctx context.Context
	rc  io.ReadCloser
}

func (c *contextReadCloser) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}

	return c.rc.Read(p)
}

func (c *contextReadCloser) Close() error {
	return c.rc.Close()
}
