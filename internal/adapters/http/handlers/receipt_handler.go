package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/receipt"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

// ReceiptHandler handles HTTP requests for receipts.
type ReceiptHandler struct {
	svc ports.ReceiptService
}

// NewReceiptHandler creates a new ReceiptHandler with the given service port.
func NewReceiptHandler(svc ports.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{svc: svc}
}

// ListReceipts handles GET /api/v1/receipts?status=&category=.
func (h *ReceiptHandler) ListReceipts(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := receipt.Filter{Status: q.str("status"), Category: q.str("category")}
	if err := q.err(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	list, err := h.svc.ListReceipts(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToReceiptListResponse(list))
}

// CreateReceipt handles POST /api/v1/receipts.
func (h *ReceiptHandler) CreateReceipt(w http.ResponseWriter, r *http.Request) {
	var req dto.ReceiptRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateReceipt(r.Context(), req.ToReceipt())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToReceiptResponse(created))
}

// GetReceipt handles GET /api/v1/receipts/{id}.
func (h *ReceiptHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	rec, err := h.svc.GetReceipt(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToReceiptResponse(rec))
}

// UpdateReceipt handles PUT /api/v1/receipts/{id}.
func (h *ReceiptHandler) UpdateReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ReceiptRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateReceipt(r.Context(), id, req.ToReceipt())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToReceiptResponse(updated))
}

// DeleteReceipt handles DELETE /api/v1/receipts/{id}.
func (h *ReceiptHandler) DeleteReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteReceipt(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
