//go:generate mockgen -source=fee_service.go -destination=../mocks/fee_service_mocks.go -package=mocks

package service

import (
	"context"
	"time"

	errdefs "github.com/Majormiles/job-portal-sub004/internal/errors"
	"github.com/Majormiles/job-portal-sub004/internal/models"
	"github.com/Majormiles/job-portal-sub004/pkg/utils"
)

// One retry against a fresh read on a lost-update conflict, then surface.
const updateFeeAttempts = 2

type IFeeScheduleRepo interface {
	GetOrCreate(ctx context.Context) (*models.FeeSchedule, error)

	UpdateFee(ctx context.Context, role models.Role, previousAmount, newAmount float64, expectedVersion int64, admin models.AdminRef) (*models.FeeSchedule, error)

	ListAuditEntries(ctx context.Context, limit int) ([]models.ChangeAuditEntry, error)
}

// FeeService owns the fee schedule singleton and its audit trail.
type FeeService struct {
	repo       IFeeScheduleRepo
	retryDelay time.Duration
}

func NewFeeService(repo IFeeScheduleRepo, retryDelay time.Duration) *FeeService {
	return &FeeService{repo: repo, retryDelay: retryDelay}
}

// GetSchedule returns the current schedule, lazily creating the singleton
// with defaults on first access.
func (s *FeeService) GetSchedule(ctx context.Context) (*models.FeeSchedule, error) {
	return s.repo.GetOrCreate(ctx)
}

// UpdateFee changes one role's fee. Unknown roles and negative amounts are
// rejected synchronously and never retried. Setting the amount the role
// already has is a no-op and appends no audit entry. A lost-update conflict
// is retried once against a fresh read, so the audit entry always records the
// previous amount actually observed at write time.
func (s *FeeService) UpdateFee(ctx context.Context, input *models.UpdateFeeInput) (*models.FeeSchedule, error) {
	if !input.Role.IsValid() {
		return nil, errdefs.ErrInvalidRole
	}
	if input.NewAmount < 0 {
		return nil, errdefs.ErrInvalidAmount
	}

	return utils.RetryWithBackoff(ctx, updateFeeAttempts, s.retryDelay, func() (*models.FeeSchedule, error) {
		schedule, err := s.repo.GetOrCreate(ctx)
		if err != nil {
			return nil, err
		}

		current, _ := schedule.AmountFor(input.Role)
		if current == input.NewAmount {
			return schedule, nil
		}

		return s.repo.UpdateFee(ctx, input.Role, current, input.NewAmount, schedule.Version, input.Admin)
	})
}

// ChangeHistory returns the most recent audit entries.
func (s *FeeService) ChangeHistory(ctx context.Context, limit int) ([]models.ChangeAuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.ListAuditEntries(ctx, limit)
}
