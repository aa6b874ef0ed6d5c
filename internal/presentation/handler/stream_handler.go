package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"storefront/internal/application/usecase/abstraction"
	"storefront/internal/domain/model"
	"storefront/internal/presentation"
	"storefront/pkg/byterange"
	"storefront/pkg/logger"

	"github.com/labstack/echo/v4"
)

const (
	headerRange        = "Range"
	headerAcceptRanges = "Accept-Ranges"
	headerContentRange = "Content-Range"
	headerCacheControl = "Cache-Control"

	cacheControl = "public, max-age=86400"
)

type StreamSource interface {
	abstraction.Getter[model.Asset]
	abstraction.Streamer
}

type StreamHandler struct {
	media StreamSource
}

func NewStreamHandler(media StreamSource) *StreamHandler {
	return &StreamHandler{
		media: media,
	}
}

// HandleByID godoc
// @Summary Stream media by id
// @Description Serves the content honoring a single byte range. HEAD returns the headers only.
// @Tags media
// @Produce octet-stream
// @Param kind path string true "images or videos"
// @Param id path string true "Asset id"
// @Param Range header string false "bytes=<start>-<end>"
// @Success 200 {file} binary
// @Success 206 {file} binary
// @Failure 404 {object} presentation.ErrorResponse
// @Failure 416 {object} presentation.ErrorResponse
// @Router /{kind}/{id}/file [get].
func (h *StreamHandler) HandleByID(c echo.Context) error {
	asset, err := h.media.Get(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return presentation.Fail(c, err)
	}

	return h.stream(c, asset)
}

// HandleByFilename godoc
// @Summary Stream media by filename
// @Tags media
// @Produce octet-stream
// @Param kind path string true "images or videos"
// @Param filename path string true "Stored filename"
// @Param Range header string false "bytes=<start>-<end>"
// @Success 200 {file} binary
// @Success 206 {file} binary
// @Failure 404 {object} presentation.ErrorResponse
// @Failure 416 {object} presentation.ErrorResponse
// @Router /{kind}/file/{filename} [get].
func (h *StreamHandler) HandleByFilename(c echo.Context) error {
	asset, err := h.media.GetByFilename(c.Request().Context(), c.Param(presentation.FilenameParam))
	if err != nil {
		return presentation.Fail(c, err)
	}

	return h.stream(c, asset)
}

func (h *StreamHandler) stream(c echo.Context, asset *model.Asset) error {
	req := c.Request()
	withBody := req.Method != http.MethodHead

	plan, body, err := h.media.Open(req.Context(), asset, req.Header.Get(headerRange), withBody)
	if err != nil {
		if errors.Is(err, byterange.ErrUnsatisfiable) {
			c.Response().Header().Set(headerAcceptRanges, "bytes")
			c.Response().Header().Set(headerContentRange, plan.ContentRange())

			return echo.NewHTTPError(http.StatusRequestedRangeNotSatisfiable, "requested range not satisfiable")
		}

		return presentation.Fail(c, err)
	}
	defer body.Close()

	header := c.Response().Header()
	header.Set(echo.HeaderContentType, asset.ContentType)
	header.Set(echo.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, asset.Filename))
	header.Set(headerCacheControl, cacheControl)
	header.Set(headerAcceptRanges, "bytes")
	header.Set(echo.HeaderContentLength, strconv.FormatInt(plan.Length, 10))
	if plan.Partial {
		header.Set(headerContentRange, plan.ContentRange())
	}

	c.Response().WriteHeader(plan.Status)

	if !withBody {
		return nil
	}

	if _, err := io.Copy(c.Response(), body); err != nil {
		logger.Warn("media stream interrupted", "id", asset.ID, "err", err)
	}

	return nil
}
