package app

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/staff"
	"github.com/jsamuelsen11/mentorship-admin/mocks"
)

func TestNewStaffService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewStaffService(mocks.NewMockStaffRepository(t), testRegistry, nil, nil)
	require.NotNil(t, svc.logger)
}

func TestStaffService_ListStaff(t *testing.T) {
	t.Parallel()

	t.Run("passes the filter through", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockStaffRepository(t)
		svc := NewStaffService(repo, testRegistry, nil, discardLogger())

		active := true
		filter := staff.Filter{Role: "mentor", Active: &active}
		want := []staff.Staff{*validStaff()}
		repo.EXPECT().List(mock.Anything, filter).Return(want, nil)

		got, err := svc.ListStaff(context.Background(), filter)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("returns repository error", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockStaffRepository(t)
		svc := NewStaffService(repo, testRegistry, nil, discardLogger())

		repo.EXPECT().List(mock.Anything, staff.Filter{}).Return(nil, domain.ErrUnavailable)

		_, err := svc.ListStaff(context.Background(), staff.Filter{})
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})
}

func TestStaffService_GetStaff_NotFound(t *testing.T) {
	t.Parallel()
	repo := mocks.NewMockStaffRepository(t)
	svc := NewStaffService(repo, testRegistry, nil, discardLogger())

	repo.EXPECT().Get(mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	_, err := svc.GetStaff(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStaffService_CreateStaff(t *testing.T) {
	t.Parallel()

	t.Run("stores a valid member", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockStaffRepository(t)
		svc := NewStaffService(repo, testRegistry, nil, discardLogger())

		in := validStaff()
		created := *in
		created.ID = 1
		repo.EXPECT().Create(mock.Anything, in).Return(&created, nil)

		got, err := svc.CreateStaff(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
	})

	t.Run("rejects invalid fields without calling the repository", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockStaffRepository(t)
		m := testMetrics()
		svc := NewStaffService(repo, testRegistry, m, discardLogger())

		in := validStaff()
		in.Email = "not-an-email"
		in.Role = "janitor"

		_, err := svc.CreateStaff(context.Background(), in)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "email")
		assert.Contains(t, verr.Fields, "role")
		assert.InDelta(t, 1, testutil.ToFloat64(m.ValidationFailures.WithLabelValues("staff", "email")), 0)
	})

	t.Run("surfaces duplicate email", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockStaffRepository(t)
		svc := NewStaffService(repo, testRegistry, nil, discardLogger())

		repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrConflict)

		_, err := svc.CreateStaff(context.Background(), validStaff())
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestStaffService_UpdateStaff(t *testing.T) {
	t.Parallel()
	repo := mocks.NewMockStaffRepository(t)
	svc := NewStaffService(repo, testRegistry, nil, discardLogger())

	in := validStaff()
	repo.EXPECT().Update(mock.Anything, int64(4), in).Return(in, nil)

	_, err := svc.UpdateStaff(context.Background(), 4, in)
	require.NoError(t, err)

	bad := validStaff()
	bad.FirstName = "  "
	_, err = svc.UpdateStaff(context.Background(), 4, bad)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStaffService_DeleteStaff(t *testing.T) {
	t.Parallel()
	repo := mocks.NewMockStaffRepository(t)
	svc := NewStaffService(repo, testRegistry, nil, discardLogger())

	boom := errors.New("connection reset")
	repo.EXPECT().Delete(mock.Anything, int64(3)).Return(nil).Once()
	repo.EXPECT().Delete(mock.Anything, int64(4)).Return(boom).Once()

	require.NoError(t, svc.DeleteStaff(context.Background(), 3))
	assert.ErrorIs(t, svc.DeleteStaff(context.Background(), 4), boom)
}
