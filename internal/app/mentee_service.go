package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	appctx "github.com/jsamuelsen11/mentorship-admin/internal/app/context"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/mentee"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/staff"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/metrics"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

// Compile-time check that MenteeService implements ports.MenteeService.
var _ ports.MenteeService = (*MenteeService)(nil)

// MenteeService implements ports.MenteeService. Mentor references are
// resolved through the staff repository and memoized per request.
type MenteeService struct {
	repo     ports.MenteeRepository
	staff    ports.StaffRepository
	registry *catalog.Registry
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewMenteeService creates a MenteeService.
func NewMenteeService(
	repo ports.MenteeRepository,
	staffRepo ports.StaffRepository,
	reg *catalog.Registry,
	m *metrics.Metrics,
	logger *slog.Logger,
) *MenteeService {
	return &MenteeService{repo: repo, staff: staffRepo, registry: reg, metrics: m, logger: orDiscard(logger)}
}

// ListMentees returns mentees matching filter.
func (s *MenteeService) ListMentees(ctx context.Context, filter mentee.Filter) ([]mentee.Mentee, error) {
	s.logger.InfoContext(ctx, "listing mentees", slog.String("status", filter.Status))

	list, err := s.repo.List(ctx, filter)
	if err != nil {
		logFailure(ctx, s.logger, "failed to list mentees", "ListMentees", err)
		return nil, err
	}
	return list, nil
}

// GetMentee returns a single mentee.
func (s *MenteeService) GetMentee(ctx context.Context, id int64) (*mentee.Mentee, error) {
	s.logger.InfoContext(ctx, "fetching mentee", slog.Int64("id", id))

	m, err := s.repo.Get(ctx, id)
	if err != nil {
		logFailure(ctx, s.logger, "failed to fetch mentee", "GetMentee", err, slog.Int64("id", id))
		return nil, err
	}
	return m, nil
}

// CreateMentee validates the mentee, verifies the mentor and stores it.
func (s *MenteeService) CreateMentee(ctx context.Context, m *mentee.Mentee) (*mentee.Mentee, error) {
	s.logger.InfoContext(ctx, "creating mentee", slog.String("program", m.Program))

	if err := s.check(ctx, m, "CreateMentee"); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		logFailure(ctx, s.logger, "failed to create mentee", "CreateMentee", err)
		return nil, err
	}
	return created, nil
}

// UpdateMentee validates the mentee, verifies the mentor and replaces it.
func (s *MenteeService) UpdateMentee(ctx context.Context, id int64, m *mentee.Mentee) (*mentee.Mentee, error) {
	s.logger.InfoContext(ctx, "updating mentee", slog.Int64("id", id))

	if err := s.check(ctx, m, "UpdateMentee"); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, m)
	if err != nil {
		logFailure(ctx, s.logger, "failed to update mentee", "UpdateMentee", err, slog.Int64("id", id))
		return nil, err
	}
	return updated, nil
}

// DeleteMentee removes a mentee.
func (s *MenteeService) DeleteMentee(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting mentee", slog.Int64("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		logFailure(ctx, s.logger, "failed to delete mentee", "DeleteMentee", err, slog.Int64("id", id))
		return err
	}
	return nil
}

func (s *MenteeService) check(ctx context.Context, m *mentee.Mentee, operation string) error {
	if err := m.Validate(s.registry); err != nil {
		s.metrics.ObserveValidation("mentee", err)
		return err
	}
	if m.MentorID == nil {
		return nil
	}

	mentorID := *m.MentorID
	rc := appctx.FromContext(ctx)
	_, err := appctx.GetOrFetch(rc, fmt.Sprintf("staff:%d", mentorID), func(ctx context.Context) (*staff.Staff, error) {
		return s.staff.Get(ctx, mentorID)
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		verr := domain.NewValidationError("mentor_id", fmt.Sprintf("staff member %d does not exist", mentorID))
		s.metrics.ObserveValidation("mentee", verr)
		return verr
	default:
		logFailure(ctx, s.logger, "failed to verify mentor", operation, err, slog.Int64("mentor_id", mentorID))
		return fmt.Errorf("verifying mentor: %w", err)
	}
}
