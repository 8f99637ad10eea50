package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appctx "github.com/jsamuelsen11/mentorship-admin/internal/app/context"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/mentee"
	"github.com/jsamuelsen11/mentorship-admin/mocks"
)

func TestMenteeService_CreateMentee(t *testing.T) {
	t.Parallel()

	t.Run("verifies the mentor then stores", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockMenteeRepository(t)
		staffRepo := mocks.NewMockStaffRepository(t)
		svc := NewMenteeService(repo, staffRepo, testRegistry, nil, discardLogger())

		in := validMentee()
		staffRepo.EXPECT().Get(mock.Anything, int64(7)).Return(validStaff(), nil).Once()
		repo.EXPECT().Create(mock.Anything, in).Return(in, nil)

		_, err := svc.CreateMentee(context.Background(), in)
		require.NoError(t, err)
	})

	t.Run("unknown mentor is a validation error", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockMenteeRepository(t)
		staffRepo := mocks.NewMockStaffRepository(t)
		svc := NewMenteeService(repo, staffRepo, testRegistry, nil, discardLogger())

		staffRepo.EXPECT().Get(mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)

		_, err := svc.CreateMentee(context.Background(), validMentee())

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields["mentor_id"], "does not exist")
	})

	t.Run("mentor lookup failure is wrapped", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockMenteeRepository(t)
		staffRepo := mocks.NewMockStaffRepository(t)
		svc := NewMenteeService(repo, staffRepo, testRegistry, nil, discardLogger())

		boom := errors.New("pool closed")
		staffRepo.EXPECT().Get(mock.Anything, int64(7)).Return(nil, boom)

		_, err := svc.CreateMentee(context.Background(), validMentee())
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "verifying mentor")
	})

	t.Run("no mentor skips the lookup", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockMenteeRepository(t)
		staffRepo := mocks.NewMockStaffRepository(t)
		svc := NewMenteeService(repo, staffRepo, testRegistry, nil, discardLogger())

		in := validMentee()
		in.MentorID = nil
		repo.EXPECT().Create(mock.Anything, in).Return(in, nil)

		_, err := svc.CreateMentee(context.Background(), in)
		require.NoError(t, err)
	})

	t.Run("invalid status", func(t *testing.T) {
		t.Parallel()
		svc := NewMenteeService(mocks.NewMockMenteeRepository(t), mocks.NewMockStaffRepository(t),
			testRegistry, nil, discardLogger())

		in := validMentee()
		in.Status = "graduated"

		_, err := svc.CreateMentee(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestMenteeService_MentorLookupMemoizedPerRequest(t *testing.T) {
	t.Parallel()
	repo := mocks.NewMockMenteeRepository(t)
	staffRepo := mocks.NewMockStaffRepository(t)
	svc := NewMenteeService(repo, staffRepo, testRegistry, nil, discardLogger())

	staffRepo.EXPECT().Get(mock.Anything, int64(7)).Return(validStaff(), nil).Once()
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(validMentee(), nil).Twice()

	ctx := appctx.WithRequestContext(context.Background(), appctx.New(context.Background()))
	_, err := svc.CreateMentee(ctx, validMentee())
	require.NoError(t, err)
	_, err = svc.CreateMentee(ctx, validMentee())
	require.NoError(t, err)
}

func TestMenteeService_UpdateMentee_NotFound(t *testing.T) {
	t.Parallel()
	repo := mocks.NewMockMenteeRepository(t)
	staffRepo := mocks.NewMockStaffRepository(t)
	svc := NewMenteeService(repo, staffRepo, testRegistry, nil, discardLogger())

	staffRepo.EXPECT().Get(mock.Anything, int64(7)).Return(validStaff(), nil)
	repo.EXPECT().Update(mock.Anything, int64(5), mock.Anything).Return(nil, domain.ErrNotFound)

	_, err := svc.UpdateMentee(context.Background(), 5, validMentee())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMenteeService_ListGetDelete(t *testing.T) {
	t.Parallel()
	repo := mocks.NewMockMenteeRepository(t)
	svc := NewMenteeService(repo, mocks.NewMockStaffRepository(t), testRegistry, nil, discardLogger())

	filter := mentee.Filter{Status: "on-hold", MentorID: int64Ptr(7)}
	repo.EXPECT().List(mock.Anything, filter).Return([]mentee.Mentee{*validMentee()}, nil)
	repo.EXPECT().Get(mock.Anything, int64(2)).Return(validMentee(), nil)
	repo.EXPECT().Delete(mock.Anything, int64(2)).Return(domain.ErrNotFound)

	list, err := svc.ListMentees(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	got, err := svc.GetMentee(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Alan", got.FirstName)

	assert.ErrorIs(t, svc.DeleteMentee(context.Background(), 2), domain.ErrNotFound)
}
