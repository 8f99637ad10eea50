package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/inventory"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

// InventoryHandler handles HTTP requests for inventory items.
type InventoryHandler struct {
	svc ports.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler with the given service port.
func NewInventoryHandler(svc ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// ListItems handles GET /api/v1/inventory?category=&stock_status=.
func (h *InventoryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := inventory.Filter{Category: q.str("category"), StockStatus: q.str("stock_status")}
	if err := q.err(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	list, err := h.svc.ListItems(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToInventoryListResponse(list))
}

// CreateItem handles POST /api/v1/inventory.
func (h *InventoryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.InventoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateItem(r.Context(), req.ToItem())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToInventoryResponse(created))
}

// GetItem handles GET /api/v1/inventory/{id}.
func (h *InventoryHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	rec, err := h.svc.GetItem(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToInventoryResponse(rec))
}

// UpdateItem handles PUT /api/v1/inventory/{id}.
func (h *InventoryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.InventoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateItem(r.Context(), id, req.ToItem())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToInventoryResponse(updated))
}

// DeleteItem handles DELETE /api/v1/inventory/{id}.
func (h *InventoryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteItem(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
