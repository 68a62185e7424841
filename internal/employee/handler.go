package employee

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/dkhailiaAchref/spring-aop-authorization-logging/internal/intercept"
	"github.com/dkhailiaAchref/spring-aop-authorization-logging/internal/platform/httpx"
)

// Handler wires the employee REST endpoints.
type Handler struct {
	service   Operations
	advisor   *intercept.Advisor
	gate      *intercept.Gate
	validator *validator.Validate
}

// NewHandler constructs a Handler. Mutating routes are guarded by gate.
func NewHandler(service Operations, advisor *intercept.Advisor, gate *intercept.Gate) *Handler {
	return &Handler{
		service:   service,
		advisor:   advisor,
		gate:      gate,
		validator: newValidator(),
	}
}

// MountRoutes registers the employee routes on r.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/employees", intercept.Handle(h.advisor, "getAllEmployees", http.StatusOK, h.list))
	r.Get("/employees/{id}", intercept.Handle(h.advisor, "getEmployeeById", http.StatusOK, h.get))
	r.With(h.gate.Require("createEmployee")).
		Post("/employees", intercept.Handle(h.advisor, "createEmployee", http.StatusOK, h.create))
	r.With(h.gate.Require("updateEmployee")).
		Put("/employees/{id}", intercept.Handle(h.advisor, "updateEmployee", http.StatusOK, h.update))
	r.With(h.gate.Require("deleteEmployee")).
		Delete("/employees/{id}", intercept.Handle(h.advisor, "deleteEmployee", http.StatusOK, h.delete))
}

func (h *Handler) list(r *http.Request) ([]Employee, error) {
	return h.service.GetAllEmployees(r.Context())
}

func (h *Handler) get(r *http.Request) (Employee, error) {
	id, err := employeeID(r)
	if err != nil {
		return Employee{}, err
	}
	e, ok, err := h.service.GetEmployeeByID(r.Context(), id)
	if err != nil {
		return Employee{}, err
	}
	if !ok {
		return Employee{}, &NotFoundError{ID: id}
	}
	return e, nil
}

func (h *Handler) create(r *http.Request) (Employee, error) {
	form, err := h.decodeForm(r)
	if err != nil {
		return Employee{}, err
	}
	return h.service.CreateEmployee(r.Context(), form.Employee())
}

func (h *Handler) update(r *http.Request) (Employee, error) {
	id, err := employeeID(r)
	if err != nil {
		return Employee{}, err
	}
	form, err := h.decodeForm(r)
	if err != nil {
		return Employee{}, err
	}
	return h.service.UpdateEmployee(r.Context(), id, form.Employee())
}

func (h *Handler) delete(r *http.Request) (map[string]bool, error) {
	id, err := employeeID(r)
	if err != nil {
		return nil, err
	}
	return h.service.DeleteEmployee(r.Context(), id)
}

func (h *Handler) decodeForm(r *http.Request) (EmployeeForm, error) {
	var form EmployeeForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		return EmployeeForm{}, err
	}
	form = form.Normalize()
	if err := validateForm(h.validator, form); err != nil {
		return EmployeeForm{}, err
	}
	return form, nil
}

func employeeID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid employee id %q: %w", raw, httpx.ErrValidation)
	}
	return id, nil
}
