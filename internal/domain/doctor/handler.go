package doctor

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/medrec/medrec/internal/platform/apperr"
	"github.com/medrec/medrec/internal/platform/store"
	"github.com/medrec/medrec/pkg/pagination"
)

// Handler serves the doctor endpoints. Each request opens its own unit of
// work.
type Handler struct {
	scope    store.Scope
	services func(uow *store.UnitOfWork) *Service
}

func NewHandler(scope store.Scope) *Handler {
	return &Handler{
		scope: scope,
		services: func(uow *store.UnitOfWork) *Service {
			return NewService(NewPGRepository(uow), uow)
		},
	}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/doctors", h.List)
	api.GET("/doctors/:id", h.Get)
	api.POST("/doctors", h.Create)
	api.PUT("/doctors/:id", h.Update)
	api.DELETE("/doctors/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	uow, err := h.scope(c.Request().Context())
	if err != nil {
		return apperr.HTTPError(err)
	}
	defer uow.Close()

	f := Filter{
		Name:          c.QueryParam("name"),
		LicenseNumber: c.QueryParam("licenseNumber"),
		Specialty:     c.QueryParam("specialty"),
	}
	pg := pagination.FromContext(c)
	items, total, err := h.services(uow).List(c.Request().Context(), f, pg)
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, pagination.NewPage(items, total, pg))
}

func (h *Handler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	uow, err := h.scope(c.Request().Context())
	if err != nil {
		return apperr.HTTPError(err)
	}
	defer uow.Close()

	d, err := h.services(uow).Get(c.Request().Context(), id)
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) Create(c echo.Context) error {
	var d Doctor
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	uow, err := h.scope(c.Request().Context())
	if err != nil {
		return apperr.HTTPError(err)
	}
	defer uow.Close()

	if err := h.services(uow).Create(c.Request().Context(), &d); err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var d Doctor
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	uow, err := h.scope(c.Request().Context())
	if err != nil {
		return apperr.HTTPError(err)
	}
	defer uow.Close()

	if err := h.services(uow).Update(c.Request().Context(), id, &d); err != nil {
		return apperr.HTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	uow, err := h.scope(c.Request().Context())
	if err != nil {
		return apperr.HTTPError(err)
	}
	defer uow.Close()

	if err := h.services(uow).Delete(c.Request().Context(), id); err != nil {
		return apperr.HTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
