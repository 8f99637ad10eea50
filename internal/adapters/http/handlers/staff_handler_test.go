package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/staff"
	"github.com/jsamuelsen11/mentorship-admin/mocks"
)

func newStaffHandler(t *testing.T) (*handlers.StaffHandler, *mocks.MockStaffService) {
	t.Helper()
	svc := mocks.NewMockStaffService(t)
	return handlers.NewStaffHandler(svc), svc
}

func validStaff() staff.Staff {
	return staff.Staff{
		ID:        1,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Role:      catalog.RoleMentor,
		Active:    true,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func TestListStaff_PassesFilter(t *testing.T) {
	t.Parallel()
	h, svc := newStaffHandler(t)

	active := true
	svc.EXPECT().ListStaff(mock.Anything, staff.Filter{Role: catalog.RoleMentor, Active: &active}).
		Return([]staff.Staff{validStaff()}, nil)

	rec := httptest.NewRecorder()
	h.ListStaff(rec, httptest.NewRequest(http.MethodGet, "/api/v1/staff?role=mentor&active=true", http.NoBody))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ListResponse[dto.StaffResponse]](t, rec)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Ada Lovelace", resp.Items[0].FullName)
}

func TestListStaff_BadActiveFlag(t *testing.T) {
	t.Parallel()
	h, _ := newStaffHandler(t)

	rec := httptest.NewRecorder()
	h.ListStaff(rec, httptest.NewRequest(http.MethodGet, "/api/v1/staff?active=maybe", http.NoBody))

	requireProblemFields(t, rec, "query.active")
}

func TestListStaff_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newStaffHandler(t)

	svc.EXPECT().ListStaff(mock.Anything, mock.Anything).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	h.ListStaff(rec, httptest.NewRequest(http.MethodGet, "/api/v1/staff", http.NoBody))

	requireStatus(t, rec, http.StatusBadGateway)
}

func TestCreateStaff_Success(t *testing.T) {
	t.Parallel()
	h, svc := newStaffHandler(t)

	created := validStaff()
	svc.EXPECT().CreateStaff(mock.Anything, mock.MatchedBy(func(s *staff.Staff) bool {
		return s.FirstName == "Ada" && s.Active && s.Role == catalog.RoleMentor
	})).Return(&created, nil)

	rec := httptest.NewRecorder()
	h.CreateStaff(rec, newJSONRequest(t, http.MethodPost, "/api/v1/staff", dto.StaffRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Role: catalog.RoleMentor,
	}))

	requireStatus(t, rec, http.StatusCreated)
	assert.Equal(t, int64(1), decodeJSON[dto.StaffResponse](t, rec).ID)
}

func TestCreateStaff_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newStaffHandler(t)

	rec := httptest.NewRecorder()
	h.CreateStaff(rec, httptest.NewRequest(http.MethodPost, "/api/v1/staff", strings.NewReader("{")))

	requireProblemFields(t, rec, "body")
}

func TestCreateStaff_ValidationError(t *testing.T) {
	t.Parallel()
	h, svc := newStaffHandler(t)

	svc.EXPECT().CreateStaff(mock.Anything, mock.Anything).Return(nil, errInvalid)

	rec := httptest.NewRecorder()
	h.CreateStaff(rec, newJSONRequest(t, http.MethodPost, "/api/v1/staff", dto.StaffRequest{Email: "nope"}))

	requireProblemFields(t, rec, "body.email")
}

func TestCreateStaff_DuplicateEmail(t *testing.T) {
	t.Parallel()
	h, svc := newStaffHandler(t)

	svc.EXPECT().CreateStaff(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("staff %q already exists: %w", "ada@example.com", domain.ErrConflict))

	rec := httptest.NewRecorder()
	h.CreateStaff(rec, newJSONRequest(t, http.MethodPost, "/api/v1/staff", dto.StaffRequest{Email: "ada@example.com"}))

	requireStatus(t, rec, http.StatusConflict)
}

func TestGetStaff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		setup      func(svc *mocks.MockStaffService)
		wantStatus int
	}{
		{
			name: "found",
			id:   "1",
			setup: func(svc *mocks.MockStaffService) {
				s := validStaff()
				svc.EXPECT().GetStaff(mock.Anything, int64(1)).Return(&s, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			id:   "99",
			setup: func(svc *mocks.MockStaffService) {
				svc.EXPECT().GetStaff(mock.Anything, int64(99)).Return(nil, fmt.Errorf("staff 99: %w", domain.ErrNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
		{name: "non-numeric id", id: "abc", setup: func(*mocks.MockStaffService) {}, wantStatus: http.StatusBadRequest},
		{name: "zero id", id: "0", setup: func(*mocks.MockStaffService) {}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newStaffHandler(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			h.GetStaff(rec, withID(httptest.NewRequest(http.MethodGet, "/api/v1/staff/"+tt.id, http.NoBody), tt.id))

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestUpdateStaff_Success(t *testing.T) {
	t.Parallel()
	h, svc := newStaffHandler(t)

	updated := validStaff()
	updated.Active = false
	svc.EXPECT().UpdateStaff(mock.Anything, int64(1), mock.MatchedBy(func(s *staff.Staff) bool {
		return !s.Active
	})).Return(&updated, nil)

	inactive := false
	req := newJSONRequest(t, http.MethodPut, "/api/v1/staff/1", dto.StaffRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Active: &inactive,
	})
	rec := httptest.NewRecorder()
	h.UpdateStaff(rec, withID(req, "1"))

	requireStatus(t, rec, http.StatusOK)
	assert.False(t, decodeJSON[dto.StaffResponse](t, rec).Active)
}

func TestDeleteStaff(t *testing.T) {
	t.Parallel()
	h, svc := newStaffHandler(t)

	svc.EXPECT().DeleteStaff(mock.Anything, int64(1)).Return(nil)

	rec := httptest.NewRecorder()
	h.DeleteStaff(rec, withID(httptest.NewRequest(http.MethodDelete, "/api/v1/staff/1", http.NoBody), "1"))

	requireStatus(t, rec, http.StatusNoContent)
	assert.Empty(t, rec.Body.String())
}
