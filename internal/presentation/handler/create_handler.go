package handler

import (
	"net/http"

	"storefront/internal/application/usecase/abstraction"
	"storefront/internal/presentation"

	"github.com/labstack/echo/v4"
)

type CreateHandler[T, In any] struct {
	creator abstraction.Creator[T, In]
}

func NewCreateHandler[T, In any](creator abstraction.Creator[T, In]) *CreateHandler[T, In] {
	return &CreateHandler[T, In]{
		creator: creator,
	}
}

// HandleCreate handles POST /<resource> requests.
func (h *CreateHandler[T, In]) HandleCreate(c echo.Context) error {
	var in In
	if err := c.Bind(&in); err != nil {
		return err
	}

	created, err := h.creator.Create(c.Request().Context(), presentation.ActorFrom(c), in)
	if err != nil {
		return presentation.Fail(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}
