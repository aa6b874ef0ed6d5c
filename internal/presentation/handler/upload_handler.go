package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/application/usecase/abstraction"
	"storefront/internal/domain/apperror"
	"storefront/internal/domain/dto"
	"storefront/internal/domain/model"
	"storefront/internal/presentation"
)

const fileField = "file"

type UploadHandler struct {
	uploader abstraction.Uploader
}

func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
	}
}

// HandleUpload godoc
// @Summary Upload media
// @Description Store an image or video sent as multipart form data. The content type is sniffed from the file.
// @Tags media
// @Accept multipart/form-data
// @Param kind path string true "images or videos"
// @Param file formData file true "Media file"
// @Param title formData string false "Title"
// @Param description formData string false "Description"
// @Param tags formData string false "Comma separated tags"
// @Success 201 {object} model.Asset
// @Failure 400 {object} presentation.ErrorResponse
// @Failure 500 {object} presentation.ErrorResponse
// @Router /{kind}/upload [post].
func (h *UploadHandler) HandleUpload(c echo.Context) error {
	file, err := c.FormFile(fileField)
	if err != nil {
		return presentation.Fail(c, apperror.Validation(fileField, "file is required"))
	}

	src, err := file.Open()
	if err != nil {
		return presentation.Fail(c, apperror.Storage("failed to read upload", err))
	}
	defer src.Close()

	asset, err := h.uploader.Upload(c.Request().Context(), presentation.ActorFrom(c), dto.UploadInput{
		Body:         src,
		OriginalName: file.Filename,
		DeclaredType: file.Header.Get(echo.HeaderContentType),
		Title:        c.FormValue("title"),
		Description:  c.FormValue("description"),
		Tags:         model.SplitTags(c.FormValue("tags")),
	})
	if err != nil {
		return presentation.Fail(c, err)
	}

	return c.JSON(http.StatusCreated, asset)
}
