package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/mentee"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

// MenteeHandler handles HTTP requests for mentees.
type MenteeHandler struct {
	svc ports.MenteeService
}

// NewMenteeHandler creates a new MenteeHandler with the given service port.
func NewMenteeHandler(svc ports.MenteeService) *MenteeHandler {
	return &MenteeHandler{svc: svc}
}

// ListMentees handles GET /api/v1/mentees?status=&mentor_id=.
func (h *MenteeHandler) ListMentees(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := mentee.Filter{Status: q.str("status"), MentorID: q.id("mentor_id")}
	if err := q.err(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	list, err := h.svc.ListMentees(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToMenteeListResponse(list))
}

// CreateMentee handles POST /api/v1/mentees.
func (h *MenteeHandler) CreateMentee(w http.ResponseWriter, r *http.Request) {
	var req dto.MenteeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateMentee(r.Context(), req.ToMentee())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToMenteeResponse(created))
}

// GetMentee handles GET /api/v1/mentees/{id}.
func (h *MenteeHandler) GetMentee(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	rec, err := h.svc.GetMentee(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToMenteeResponse(rec))
}

// UpdateMentee handles PUT /api/v1/mentees/{id}.
func (h *MenteeHandler) UpdateMentee(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.MenteeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateMentee(r.Context(), id, req.ToMentee())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToMenteeResponse(updated))
}

// DeleteMentee handles DELETE /api/v1/mentees/{id}.
func (h *MenteeHandler) DeleteMentee(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteMentee(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
