package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/staff"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/metrics"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

// Compile-time check that StaffService implements ports.StaffService.
var _ ports.StaffService = (*StaffService)(nil)

// StaffService implements ports.StaffService on top of a StaffRepository.
type StaffService struct {
	repo     ports.StaffRepository
	registry *catalog.Registry
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewStaffService creates a StaffService. A nil logger discards output and
// nil metrics record nothing.
func NewStaffService(repo ports.StaffRepository, reg *catalog.Registry, m *metrics.Metrics, logger *slog.Logger) *StaffService {
	return &StaffService{repo: repo, registry: reg, metrics: m, logger: orDiscard(logger)}
}

// ListStaff returns staff members matching filter.
func (s *StaffService) ListStaff(ctx context.Context, filter staff.Filter) ([]staff.Staff, error) {
	s.logger.InfoContext(ctx, "listing staff", slog.String("role", filter.Role))

	list, err := s.repo.List(ctx, filter)
	if err != nil {
		logFailure(ctx, s.logger, "failed to list staff", "ListStaff", err)
		return nil, err
	}
	return list, nil
}

// GetStaff returns a single staff member.
func (s *StaffService) GetStaff(ctx context.Context, id int64) (*staff.Staff, error) {
	s.logger.InfoContext(ctx, "fetching staff member", slog.Int64("id", id))

	member, err := s.repo.Get(ctx, id)
	if err != nil {
		logFailure(ctx, s.logger, "failed to fetch staff member", "GetStaff", err, slog.Int64("id", id))
		return nil, err
	}
	return member, nil
}

// CreateStaff validates and stores a new staff member.
func (s *StaffService) CreateStaff(ctx context.Context, member *staff.Staff) (*staff.Staff, error) {
	s.logger.InfoContext(ctx, "creating staff member", slog.String("role", member.Role))

	if err := member.Validate(s.registry); err != nil {
		s.metrics.ObserveValidation("staff", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, member)
	if err != nil {
		logFailure(ctx, s.logger, "failed to create staff member", "CreateStaff", err)
		return nil, err
	}
	return created, nil
}

// UpdateStaff validates and replaces an existing staff member.
func (s *StaffService) UpdateStaff(ctx context.Context, id int64, member *staff.Staff) (*staff.Staff, error) {
	s.logger.InfoContext(ctx, "updating staff member", slog.Int64("id", id))

	if err := member.Validate(s.registry); err != nil {
		s.metrics.ObserveValidation("staff", err)
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, member)
	if err != nil {
		logFailure(ctx, s.logger, "failed to update staff member", "UpdateStaff", err, slog.Int64("id", id))
		return nil, err
	}
	return updated, nil
}

// DeleteStaff removes a staff member.
func (s *StaffService) DeleteStaff(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting staff member", slog.Int64("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		logFailure(ctx, s.logger, "failed to delete staff member", "DeleteStaff", err, slog.Int64("id", id))
		return err
	}
	return nil
}
