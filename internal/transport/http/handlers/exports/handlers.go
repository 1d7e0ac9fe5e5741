package exportshandler

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"docman/internal/domain/documents"
	"docman/internal/domain/exports"
	"docman/internal/domain/salaries"
	"docman/internal/transport/http/api"
	"docman/internal/transport/http/middleware"
)

type Handler struct {
	Documents *documents.Service
	Salaries  *salaries.Service
}

func NewHandler(documentsSvc *documents.Service, salariesSvc *salaries.Service) *Handler {
	return &Handler{Documents: documentsSvc, Salaries: salariesSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/exports", func(r chi.Router) {
		r.Get("/documents.csv", h.handleDocumentsCSV)
		r.Get("/documents.pdf", h.handleDocumentsPDF)
		r.Get("/salaries.csv", h.handleSalariesCSV)
		r.Get("/salaries.pdf", h.handleSalariesPDF)
	})
}

func (h *Handler) handleDocumentsCSV(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	rows, err := h.Documents.ListForExport(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export documents", reqID)
		return
	}

	var buf bytes.Buffer
	if err := exports.WriteDocumentsCSV(&buf, rows); err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export documents", reqID)
		return
	}
	serve(w, "documents.csv", "text/csv", buf.Bytes())
}

func (h *Handler) handleDocumentsPDF(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	rows, err := h.Documents.ListForExport(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export documents", reqID)
		return
	}

	data, err := exports.DocumentsPDF(rows)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export documents", reqID)
		return
	}
	serve(w, "documents.pdf", "application/pdf", data)
}

func (h *Handler) handleSalariesCSV(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	rows, err := h.Salaries.ListForExport(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export salaries", reqID)
		return
	}

	var buf bytes.Buffer
	if err := exports.WriteSalariesCSV(&buf, rows); err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export salaries", reqID)
		return
	}
	serve(w, "salaries.csv", "text/csv", buf.Bytes())
}

func (h *Handler) handleSalariesPDF(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	rows, err := h.Salaries.ListForExport(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export salaries", reqID)
		return
	}

	data, err := exports.SalariesPDF(rows)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export salaries", reqID)
		return
	}
	serve(w, "salaries.pdf", "application/pdf", data)
}

func serve(w http.ResponseWriter, filename, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename=\""+filename+"\"")
	_, _ = w.Write(data)
}
