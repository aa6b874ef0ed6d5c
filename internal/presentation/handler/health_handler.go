package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HandleHealth godoc
// @Summary Health check
// @Tags system
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get].
func HandleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
