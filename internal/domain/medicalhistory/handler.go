package medicalhistory

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medrec/medrec/internal/domain/doctor"
	"github.com/medrec/medrec/internal/domain/patient"
	"github.com/medrec/medrec/internal/platform/apperr"
	"github.com/medrec/medrec/internal/platform/store"
	"github.com/medrec/medrec/pkg/pagination"
)

// Handler serves the medical history endpoints. Each request opens its own
// unit of work shared by the history, patient and doctor repositories.
type Handler struct {
	scope    store.Scope
	services func(uow *store.UnitOfWork) *Service
}

func NewHandler(scope store.Scope) *Handler {
	return &Handler{
		scope: scope,
		services: func(uow *store.UnitOfWork) *Service {
			return NewService(
				NewPGRepository(uow),
				patient.NewPGRepository(uow),
				doctor.NewPGRepository(uow),
				uow,
			)
		},
	}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/medicalhistories", h.List)
	api.GET("/medicalhistories/:id", h.Get)
	api.POST("/medicalhistories", h.Create)
	api.PUT("/medicalhistories/:id", h.Update)
	api.DELETE("/medicalhistories/:id", h.Delete)
}

func filterFromContext(c echo.Context) (Filter, error) {
	var f Filter
	var err error
	if f.PatientID, err = optionalID(c.QueryParam("patientId")); err != nil {
		return f, echo.NewHTTPError(http.StatusBadRequest, "invalid patientId")
	}
	if f.DoctorID, err = optionalID(c.QueryParam("doctorId")); err != nil {
		return f, echo.NewHTTPError(http.StatusBadRequest, "invalid doctorId")
	}
	if f.StartDate, err = optionalDate(c.QueryParam("startDate")); err != nil {
		return f, echo.NewHTTPError(http.StatusBadRequest, "invalid startDate")
	}
	if f.EndDate, err = optionalDate(c.QueryParam("endDate")); err != nil {
		return f, echo.NewHTTPError(http.StatusBadRequest, "invalid endDate")
	}
	f.Diagnosis = c.QueryParam("diagnosis")
	return f, nil
}

func optionalID(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid date")
}

func (h *Handler) List(c echo.Context) error {
	f, err := filterFromContext(c)
	if err != nil {
		return err
	}
	uow, err := h.scope(c.Request().Context())
	if err != nil {
		return apperr.HTTPError(err)
	}
	defer uow.Close()

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

	rec, err := h.services(uow).Get(c.Request().Context(), id)
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) Create(c echo.Context) error {
	var rec MedicalHistory
	if err := c.Bind(&rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	uow, err := h.scope(c.Request().Context())
	if err != nil {
		return apperr.HTTPError(err)
	}
	defer uow.Close()

	if err := h.services(uow).Create(c.Request().Context(), &rec); err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var rec MedicalHistory
	if err := c.Bind(&rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	uow, err := h.scope(c.Request().Context())
	if err != nil {
		return apperr.HTTPError(err)
	}
	defer uow.Close()

	if err := h.services(uow).Update(c.Request().Context(), id, &rec); err != nil {
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
