package handler

import (
	"net/http"

	"storefront/internal/application/usecase/abstraction"
	"storefront/internal/presentation"

	"github.com/labstack/echo/v4"
)

type GetHandler[T any] struct {
	getter abstraction.Getter[T]
}

func NewGetHandler[T any](getter abstraction.Getter[T]) *GetHandler[T] {
	return &GetHandler[T]{
		getter: getter,
	}
}

// HandleGet handles GET /<resource>/:id requests.
func (h *GetHandler[T]) HandleGet(c echo.Context) error {
	doc, err := h.getter.Get(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return presentation.Fail(c, err)
	}

	return c.JSON(http.StatusOK, doc)
}
