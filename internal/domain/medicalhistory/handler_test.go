package medicalhistory

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/medrec/medrec/internal/platform/store"
)

func newTestHandler() (*Handler, *mockRepo, *echo.Echo) {
	repo := newMockRepo()
	h := NewHandler(store.SessionScope(nil))
	h.services = func(*store.UnitOfWork) *Service {
		patients := &mockPatients{ids: map[int64]bool{1: true}}
		doctors := &mockDoctors{ids: map[int64]bool{2: true}}
		return NewService(repo, patients, doctors, &fakeUOW{})
	}
	return h, repo, echo.New()
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected HTTP error, got %v", err)
	}
	return he.Code
}

func TestHandler_Create(t *testing.T) {
	h, _, e := newTestHandler()
	body := `{"patientId":1,"doctorId":2,"date":"2025-03-09T00:00:00Z","diagnosis":"Hypertension","treatment":"Lisinopril 10mg"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}

func TestHandler_Create_UnknownPatient(t *testing.T) {
	h, _, e := newTestHandler()
	body := `{"patientId":99,"doctorId":2,"date":"2025-03-09T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if got := httpStatus(t, h.Create(c)); got != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", got)
	}
}

func TestHandler_List_FilterParams(t *testing.T) {
	h, repo, e := newTestHandler()
	repo.records[1] = &MedicalHistory{ID: 1, PatientID: 1, DoctorID: 2}
	req := httptest.NewRequest(http.MethodGet, "/?patientId=1&startDate=2025-01-01&endDate=2025-12-31", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_List_BadPatientID(t *testing.T) {
	h, _, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/?patientId=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if got := httpStatus(t, h.List(c)); got != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", got)
	}
}

func TestHandler_List_BadDate(t *testing.T) {
	h, _, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/?startDate=not-a-date", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if got := httpStatus(t, h.List(c)); got != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", got)
	}
}

func TestHandler_Get_NotFound(t *testing.T) {
	h, _, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")
	if got := httpStatus(t, h.Get(c)); got != http.StatusNotFound {
		t.Errorf("expected 404, got %d", got)
	}
}

func TestHandler_Delete(t *testing.T) {
	h, repo, e := newTestHandler()
	repo.records[3] = &MedicalHistory{ID: 3, PatientID: 1, DoctorID: 2}
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")
	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestHandler_RegisterRoutes(t *testing.T) {
	h, _, e := newTestHandler()
	h.RegisterRoutes(e.Group("/api"))
	paths := make(map[string]bool)
	for _, r := range e.Routes() {
		paths[r.Method+":"+r.Path] = true
	}
	for _, want := range []string{
		"GET:/api/medicalhistories", "GET:/api/medicalhistories/:id",
		"POST:/api/medicalhistories", "PUT:/api/medicalhistories/:id",
		"DELETE:/api/medicalhistories/:id",
	} {
		if !paths[want] {
			t.Errorf("missing route: %s", want)
		}
	}
}
