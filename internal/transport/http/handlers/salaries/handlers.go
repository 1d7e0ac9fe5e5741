package salarieshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"docman/internal/dates"
	"docman/internal/domain/salaries"
	"docman/internal/transport/http/api"
	"docman/internal/transport/http/middleware"
)

type Handler struct {
	Service *salaries.Service
}

func NewHandler(service *salaries.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/salaries", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleAdd)
		r.Get("/exists", h.handleExistsForMonth)
		r.Get("/last/{employeeID}", h.handleLast)
		r.Get("/history/{employeeID}", h.handleHistory)
		r.Put("/{salaryID}", h.handleUpdate)
		r.Delete("/{salaryID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	rows, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "salaries_list_failed", "failed to list salaries", reqID)
		return
	}
	api.Success(w, rows, reqID)
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var input salaries.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid salary payload", reqID)
		return
	}

	id, err := h.Service.Add(r.Context(), input)
	if err != nil {
		failSalary(w, err, reqID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, reqID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "salaryID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid salary id", reqID)
		return
	}

	var input salaries.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid salary payload", reqID)
		return
	}

	if err := h.Service.Update(r.Context(), id, input); err != nil {
		failSalary(w, err, reqID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "salaryID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid salary id", reqID)
		return
	}

	employeeID, paymentDate, err := h.Service.Delete(r.Context(), id)
	if err != nil {
		failSalary(w, err, reqID)
		return
	}
	api.Success(w, map[string]any{"id": id, "employeeId": employeeID, "paymentDate": paymentDate}, reqID)
}

func (h *Handler) handleExistsForMonth(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	employeeID, err := strconv.ParseInt(r.URL.Query().Get("employeeId"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "employeeId is required", reqID)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "year is required", reqID)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		api.Fail(w, http.StatusBadRequest, "bad_request", "month must be 1-12", reqID)
		return
	}

	exists, err := h.Service.ExistsForMonth(r.Context(), employeeID, year, month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to check month", reqID)
		return
	}
	api.Success(w, map[string]bool{"exists": exists}, reqID)
}

func (h *Handler) handleLast(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	employeeID, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid employee id", reqID)
		return
	}

	last, err := h.Service.LastForEmployee(r.Context(), employeeID)
	if err != nil {
		failSalary(w, err, reqID)
		return
	}
	api.Success(w, last, reqID)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	employeeID, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid employee id", reqID)
		return
	}

	history, err := h.Service.HistoryForEmployee(r.Context(), employeeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to load salary history", reqID)
		return
	}
	api.Success(w, history, reqID)
}

func failSalary(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, salaries.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "salary record not found", reqID)
	case errors.Is(err, dates.ErrInvalidFormat):
		api.Fail(w, http.StatusBadRequest, "invalid_date", "dates must be DD-MM-YYYY", reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "storage_error", "salary operation failed", reqID)
	}
}
