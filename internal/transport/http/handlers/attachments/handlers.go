package attachmentshandler

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"

	"docman/internal/domain/attachments"
	"docman/internal/transport/http/api"
	"docman/internal/transport/http/middleware"
)

type Handler struct {
	Service *attachments.Service
}

func NewHandler(service *attachments.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/documents/{documentID}/attachments", h.handleAttach)
	r.Get("/documents/{documentID}/attachments", h.handleList)
	r.Get("/attachments/{attachmentID}/download", h.handleDownload)
	r.Delete("/attachments/{attachmentID}", h.handleDelete)
}

// handleAttach accepts a multipart upload, spools it to a temp file, and
// hands the path to the attach operation so the copy-before-insert contract
// holds for uploads exactly as for local files.
func (h *Handler) handleAttach(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	documentID, err := strconv.ParseInt(chi.URLParam(r, "documentID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid document id", reqID)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "file field is required", reqID)
		return
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", "docman-upload-*")
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "io_error", "failed to store upload", reqID)
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		api.Fail(w, http.StatusInternalServerError, "io_error", "failed to store upload", reqID)
		return
	}
	if err := tmp.Close(); err != nil {
		api.Fail(w, http.StatusInternalServerError, "io_error", "failed to store upload", reqID)
		return
	}

	id, err := h.Service.Attach(r.Context(), documentID, tmpPath, filepath.Base(header.Filename))
	if err != nil {
		if errors.Is(err, attachments.ErrDocumentNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "document not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "io_error", "failed to attach file", reqID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, reqID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	documentID, err := strconv.ParseInt(chi.URLParam(r, "documentID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid document id", reqID)
		return
	}

	list, err := h.Service.ListForDocument(r.Context(), documentID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attachments_list_failed", "failed to list attachments", reqID)
		return
	}
	api.Success(w, list, reqID)
}

func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "attachmentID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid attachment id", reqID)
		return
	}

	att, err := h.Service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, attachments.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "attachment not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to load attachment", reqID)
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename=\""+att.FileName+"\"")
	http.ServeFile(w, r, att.FilePath)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "attachmentID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid attachment id", reqID)
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, attachments.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "attachment not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to delete attachment", reqID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, reqID)
}
