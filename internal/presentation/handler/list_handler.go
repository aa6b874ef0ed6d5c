package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"storefront/internal/application/usecase/abstraction"
	"storefront/internal/domain/apperror"
	"storefront/internal/domain/dto"
	"storefront/internal/domain/model"
	"storefront/internal/presentation"

	"github.com/labstack/echo/v4"
)

// reservedParams are the query parameters every listing understands. Any
// other parameter is passed on as an exact-match filter.
var reservedParams = map[string]struct{}{
	"q":         {},
	"tags":      {},
	"createdBy": {},
	"page":      {},
	"limit":     {},
	"sortBy":    {},
	"sortOrder": {},
}

type ListHandler[T any] struct {
	lister abstraction.Lister[T]
}

func NewListHandler[T any](lister abstraction.Lister[T]) *ListHandler[T] {
	return &ListHandler[T]{
		lister: lister,
	}
}

// HandleList handles GET /<resource> requests.
func (h *ListHandler[T]) HandleList(c echo.Context) error {
	q, err := parseListQuery(c.QueryParams())
	if err != nil {
		return presentation.Fail(c, err)
	}

	page, err := h.lister.List(c.Request().Context(), q)
	if err != nil {
		return presentation.Fail(c, err)
	}

	return c.JSON(http.StatusOK, page)
}

func parseListQuery(params url.Values) (dto.ListQuery, error) {
	q := dto.ListQuery{
		Search:    strings.TrimSpace(params.Get("q")),
		CreatedBy: strings.TrimSpace(params.Get("createdBy")),
		SortBy:    strings.TrimSpace(params.Get("sortBy")),
		Filters:   map[string]string{},
	}

	if tags := params.Get("tags"); tags != "" {
		q.Tags = model.SplitTags(tags)
	}

	var err error
	if q.Page, err = intParam(params, "page"); err != nil {
		return q, err
	}

	if q.Limit, err = intParam(params, "limit"); err != nil {
		return q, err
	}

	switch order := dto.SortOrder(strings.ToLower(params.Get("sortOrder"))); order {
	case "", dto.SortAsc, dto.SortDesc:
		q.SortOrder = order
	default:
		return q, apperror.Validation("sortOrder", "sortOrder must be asc or desc")
	}

	for key, values := range params {
		if _, ok := reservedParams[key]; ok || len(values) == 0 || values[0] == "" {
			continue
		}
		q.Filters[key] = values[0]
	}

	return q, nil
}

func intParam(params url.Values, name string) (int, error) {
	raw := params.Get(name)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, apperror.Validationf(name, "%s must be a positive integer", name)
	}

	return v, nil
}
