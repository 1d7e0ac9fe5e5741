package documentshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"docman/internal/dates"
	"docman/internal/domain/documents"
	"docman/internal/transport/http/api"
	"docman/internal/transport/http/middleware"
)

type Handler struct {
	Service *documents.Service
}

func NewHandler(service *documents.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/documents", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleAdd)
		r.Get("/categories", h.handleCategories)
		r.Put("/{documentID}", h.handleUpdate)
		r.Delete("/{documentID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	rows, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "documents_list_failed", "failed to list documents", reqID)
		return
	}
	api.Success(w, rows, reqID)
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var input documents.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid document payload", reqID)
		return
	}

	id, err := h.Service.Add(r.Context(), input)
	if err != nil {
		failDocument(w, err, reqID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, reqID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "documentID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid document id", reqID)
		return
	}

	var input documents.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid document payload", reqID)
		return
	}

	if err := h.Service.Update(r.Context(), id, input); err != nil {
		failDocument(w, err, reqID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "documentID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid document id", reqID)
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		failDocument(w, err, reqID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, reqID)
}

func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	categories, err := h.Service.Categories(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "categories_failed", "failed to list categories", reqID)
		return
	}
	api.Success(w, categories, reqID)
}

func failDocument(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, documents.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "document not found", reqID)
	case errors.Is(err, documents.ErrDuplicateNumber):
		api.Fail(w, http.StatusConflict, "duplicate_number", "document number already exists", reqID)
	case errors.Is(err, dates.ErrInvalidFormat):
		api.Fail(w, http.StatusBadRequest, "invalid_date", "dates must be DD-MM-YYYY", reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "storage_error", "document operation failed", reqID)
	}
}
