package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/invoice"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

// InvoiceHandler handles HTTP requests for invoices.
type InvoiceHandler struct {
	svc ports.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler with the given service port.
func NewInvoiceHandler(svc ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

// ListInvoices handles GET /api/v1/invoices?status=.
func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := invoice.Filter{Status: q.str("status")}
	if err := q.err(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	list, err := h.svc.ListInvoices(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToInvoiceListResponse(list))
}

// CreateInvoice handles POST /api/v1/invoices.
func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req dto.InvoiceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateInvoice(r.Context(), req.ToInvoice())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToInvoiceResponse(created))
}

// GetInvoice handles GET /api/v1/invoices/{id}.
func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	rec, err := h.svc.GetInvoice(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToInvoiceResponse(rec))
}

// UpdateInvoice handles PUT /api/v1/invoices/{id}.
func (h *InvoiceHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.InvoiceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateInvoice(r.Context(), id, req.ToInvoice())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToInvoiceResponse(updated))
}

// DeleteInvoice handles DELETE /api/v1/invoices/{id}.
func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteInvoice(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
