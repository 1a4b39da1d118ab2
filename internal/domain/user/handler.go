package user

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medrec/medrec/internal/platform/apperr"
	"github.com/medrec/medrec/internal/platform/auth"
	"github.com/medrec/medrec/internal/platform/store"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Handler serves the login endpoint. It is registered outside the
// authenticated group.
type Handler struct {
	scope    store.Scope
	services func(uow *store.UnitOfWork) *Service
}

func NewHandler(scope store.Scope, jwt auth.Config) *Handler {
	return &Handler{
		scope: scope,
		services: func(uow *store.UnitOfWork) *Service {
			return NewService(NewPGRepository(uow), uow, jwt)
		},
	}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/auth/login", h.Login)
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}
	uow, err := h.scope(c.Request().Context())
	if err != nil {
		return apperr.HTTPError(err)
	}
	defer uow.Close()

	token, err := h.services(uow).Login(c.Request().Context(), req.Username, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, loginResponse{Token: token})
}
