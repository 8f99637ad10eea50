package handlers

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/document"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/logging"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

const (
	formFile     = "file"
	formTitle    = "title"
	formClass    = "class"
	formCategory = "category"

	// multipartMemory is how much of a multipart body is held in memory
	// before parts spill to temporary files.
	multipartMemory = 8 << 20
)

// DocumentHandler handles document upload, download and metadata requests.
type DocumentHandler struct {
	svc            ports.DocumentService
	maxUploadBytes int64
}

// NewDocumentHandler creates a DocumentHandler. maxUploadBytes caps the whole
// multipart body; per-class ceilings are enforced by the service.
func NewDocumentHandler(svc ports.DocumentService, maxUploadBytes int64) *DocumentHandler {
	return &DocumentHandler{svc: svc, maxUploadBytes: maxUploadBytes}
}

// ListDocuments handles GET /api/v1/documents?class=&category=.
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := document.Filter{Class: catalog.FileClass(q.str("class")), Category: q.str("category")}

	list, err := h.svc.ListDocuments(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDocumentListResponse(list))
}

// GetDocument handles GET /api/v1/documents/{id}.
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	d, err := h.svc.GetDocument(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDocumentResponse(d))
}

// UploadDocument handles POST /api/v1/documents as multipart/form-data with
// the fields title, class, category and file.
func (h *DocumentHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.maxUploadBytes {
		h.tooLarge(w, r)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.tooLarge(w, r)
			return
		}
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", "must be multipart/form-data"))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(formFile)
	if err != nil {
		dto.WriteErrorResponse(w, r, domain.NewValidationError(formFile, domain.MsgRequired))
		return
	}
	defer file.Close()

	d := &document.Document{
		Title:    r.FormValue(formTitle),
		Class:    catalog.FileClass(r.FormValue(formClass)),
		Category: r.FormValue(formCategory),
		FileName: filepath.Base(header.Filename),
		Size:     header.Size,
	}
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		d.UploadedBy = claims.UserID
	}

	created, err := h.svc.Upload(r.Context(), d, file)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToDocumentResponse(created))
}

func (h *DocumentHandler) tooLarge(w http.ResponseWriter, r *http.Request) {
	dto.WriteProblem(w, r, http.StatusRequestEntityTooLarge,
		"upload exceeds "+strconv.FormatInt(h.maxUploadBytes, 10)+" bytes")
}

// DownloadDocument handles GET /api/v1/documents/{id}/content.
func (h *DocumentHandler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	d, body, err := h.svc.Download(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", d.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(d.Size, 10))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": d.FileName}))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, body); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "document download interrupted",
			slog.Int64("id", id),
			slog.Any("error", err),
		)
	}
}

// DeleteDocument handles DELETE /api/v1/documents/{id}.
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteDocument(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
