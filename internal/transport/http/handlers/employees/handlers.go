package employeeshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"docman/internal/dates"
	"docman/internal/domain/employees"
	"docman/internal/transport/http/api"
	"docman/internal/transport/http/middleware"
)

type Handler struct {
	Service *employees.Service
}

func NewHandler(service *employees.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleAdd)
		r.Get("/options", h.handleOptions)
		r.Get("/departments", h.handleDepartments)
		r.Put("/{employeeID}", h.handleUpdate)
		r.Delete("/{employeeID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	rows, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employees_list_failed", "failed to list employees", reqID)
		return
	}
	api.Success(w, rows, reqID)
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var input employees.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid employee payload", reqID)
		return
	}

	id, err := h.Service.Add(r.Context(), input)
	if err != nil {
		failEmployee(w, err, reqID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, reqID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid employee id", reqID)
		return
	}

	var input employees.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid employee payload", reqID)
		return
	}

	if err := h.Service.Update(r.Context(), id, input); err != nil {
		failEmployee(w, err, reqID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid employee id", reqID)
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		failEmployee(w, err, reqID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, reqID)
}

func (h *Handler) handleOptions(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	options, err := h.Service.IDNames(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employees_options_failed", "failed to list employee options", reqID)
		return
	}
	api.Success(w, options, reqID)
}

func (h *Handler) handleDepartments(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	departments, err := h.Service.Departments(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "departments_failed", "failed to list departments", reqID)
		return
	}
	api.Success(w, departments, reqID)
}

func failEmployee(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, employees.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
	case errors.Is(err, employees.ErrDuplicateEmail):
		api.Fail(w, http.StatusConflict, "duplicate_email", "employee email already exists", reqID)
	case errors.Is(err, dates.ErrInvalidFormat):
		api.Fail(w, http.StatusBadRequest, "invalid_date", "dates must be DD-MM-YYYY", reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "storage_error", "employee operation failed", reqID)
	}
}
