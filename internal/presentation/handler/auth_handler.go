package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/application/usecase/abstraction"
	"storefront/internal/domain/dto"
	"storefront/internal/presentation"
)

type AuthHandler struct {
	authenticator abstraction.Authenticator
}

func NewAuthHandler(authenticator abstraction.Authenticator) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
	}
}

// HandleLogin godoc
// @Summary Login
// @Description Validate user credentials and issue a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body dto.LoginInput true "Login request"
// @Success 200 {object} dto.Token
// @Failure 400 {object} presentation.ErrorResponse
// @Failure 401 {object} presentation.ErrorResponse
// @Failure 500 {object} presentation.ErrorResponse
// @Router /auth/login [post].
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	var in dto.LoginInput
	if err := c.Bind(&in); err != nil {
		return err
	}

	token, err := h.authenticator.Login(c.Request().Context(), in)
	if err != nil {
		return presentation.Fail(c, err)
	}

	return c.JSON(http.StatusOK, token)
}
