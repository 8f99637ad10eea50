package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/staff"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

// StaffHandler handles HTTP requests for staff members.
type StaffHandler struct {
	svc ports.StaffService
}

// NewStaffHandler creates a new StaffHandler with the given service port.
func NewStaffHandler(svc ports.StaffService) *StaffHandler {
	return &StaffHandler{svc: svc}
}

// ListStaff handles GET /api/v1/staff?role=&active=.
func (h *StaffHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := staff.Filter{Role: q.str("role"), Active: q.boolean("active")}
	if err := q.err(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	list, err := h.svc.ListStaff(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToStaffListResponse(list))
}

// CreateStaff handles POST /api/v1/staff.
func (h *StaffHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req dto.StaffRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateStaff(r.Context(), req.ToStaff())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToStaffResponse(created))
}

// GetStaff handles GET /api/v1/staff/{id}.
func (h *StaffHandler) GetStaff(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	s, err := h.svc.GetStaff(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToStaffResponse(s))
}

// UpdateStaff handles PUT /api/v1/staff/{id}.
func (h *StaffHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.StaffRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateStaff(r.Context(), id, req.ToStaff())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToStaffResponse(updated))
}

// DeleteStaff handles DELETE /api/v1/staff/{id}.
func (h *StaffHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteStaff(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
