//go:generate mockgen -source=reconciler.go -destination=../mocks/reconciler_mocks.go -package=mocks

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	errdefs "github.com/Majormiles/job-portal-sub004/internal/errors"
	"github.com/Majormiles/job-portal-sub004/internal/metrics"
	"github.com/Majormiles/job-portal-sub004/internal/models"
	"github.com/Majormiles/job-portal-sub004/pkg/logging"
)

const (
	// FallbackAmount is charged when a paid record's role is not in the
	// schedule at all. Everything else reads the persisted schedule.
	FallbackAmount = 50

	// DefaultGateway fills records confirmed before the gateway field existed.
	DefaultGateway = "paystack"

	DefaultPageSize    = 100
	DefaultWorkerCount = 4
)

type IUserPaymentRepo interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)

	ConfirmPayment(ctx context.Context, input *models.ConfirmPaymentInput) (*models.User, error)

	ListPaidWithBrokenAmount(ctx context.Context, afterID uuid.UUID, limit int) ([]*models.User, error)

	SaveRepair(ctx context.Context, userID uuid.UUID, repaired models.PaymentRecord) error

	ListStillInvalid(ctx context.Context) ([]*models.User, error)

	FindDuplicateReferences(ctx context.Context) ([]models.DuplicateReference, error)
}

// ScheduleProvider yields the current fee schedule. Repairs always price
// from the schedule as it stands at repair time, not as it stood when the
// user paid.
type ScheduleProvider interface {
	GetSchedule(ctx context.Context) (*models.FeeSchedule, error)
}

// Reconciler detects and repairs payment records that violate the
// paid-implies-valid invariant.
type Reconciler struct {
	repo        IUserPaymentRepo
	fees        ScheduleProvider
	log         *logging.Logger
	workerCount int
}

func NewReconciler(repo IUserPaymentRepo, fees ScheduleProvider, log *logging.Logger, workerCount int) *Reconciler {
	if workerCount <= 0 {
		workerCount = DefaultWorkerCount
	}
	return &Reconciler{
		repo:        repo,
		fees:        fees,
		log:         log,
		workerCount: workerCount,
	}
}

// ConfirmPayment applies a gateway confirmation. The record is marked paid
// with exactly the fields supplied; completion of anything the gateway left
// out is the scan's job, never this path's.
func (r *Reconciler) ConfirmPayment(ctx context.Context, input *models.ConfirmPaymentInput) (*models.User, error) {
	if input.UserID == uuid.Nil || input.Reference == "" {
		return nil, errdefs.ErrInvalidArgument
	}
	user, err := r.repo.ConfirmPayment(ctx, input)
	if err != nil {
		return nil, err
	}
	metrics.ConfirmationsProcessed.Inc()
	return user, nil
}

// InspectUser returns a user's payment record together with its validity.
func (r *Reconciler) InspectUser(ctx context.Context, userID uuid.UUID) (*models.User, models.ValidationResult, error) {
	user, err := r.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, models.ValidationResult{}, err
	}
	return user, Validate(user.Payment), nil
}

// RepairOne computes the repaired payment record from one read of prior
// state. Only absent or broken fields are filled; a record that already
// validates comes back unchanged, which makes re-application a no-op.
func (r *Reconciler) RepairOne(record models.PaymentRecord, role models.Role, schedule *models.FeeSchedule) (models.PaymentRecord, bool) {
	if !record.IsPaid {
		return record, false
	}
	if Validate(record).Valid {
		return record, false
	}

	repaired := record

	if repaired.Amount == nil || *repaired.Amount <= 0 {
		amount := float64(FallbackAmount)
		if a, ok := schedule.AmountFor(role); ok {
			amount = a
		}
		repaired.Amount = &amount
	}
	if repaired.Date == nil {
		now := time.Now()
		repaired.Date = &now
	}
	if repaired.Currency == nil || *repaired.Currency == "" {
		currency := schedule.Currency
		repaired.Currency = &currency
	}
	if repaired.Gateway == nil || *repaired.Gateway == "" {
		gateway := DefaultGateway
		repaired.Gateway = &gateway
	}
	if repaired.Reference == nil || *repaired.Reference == "" {
		reference := synthesizeReference()
		repaired.Reference = &reference
	}

	return repaired, true
}

// synthesizeReference builds a non-empty replacement reference. The token is
// recognisable by its prefix and not guaranteed globally unique; duplicates
// are surfaced by the scan report, not prevented here.
func synthesizeReference() string {
	return fmt.Sprintf("FIXED-%d-%s", time.Now().UnixMilli(), uuid.NewString())
}

// RepairUser loads, repairs and persists a single user's payment record.
func (r *Reconciler) RepairUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := r.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	schedule, err := r.fees.GetSchedule(ctx)
	if err != nil {
		return nil, err
	}

	repaired, changed := r.RepairOne(user.Payment, user.Role, schedule)
	if !changed {
		return user, nil
	}

	if err := r.repo.SaveRepair(ctx, user.ID, repaired); err != nil {
		metrics.RepairFailures.Inc()
		return nil, err
	}
	metrics.RepairsApplied.Inc()

	return r.repo.GetUser(ctx, userID)
}

// ScanAndRepair streams every paid record with a missing or non-positive
// amount and persists a repair for each. Records are independent, so pages
// fan out over a bounded worker pool and one record's persistence failure is
// recorded without stopping the run. The still-invalid list is re-queried
// from storage afterwards rather than inferred from the scan's own
// bookkeeping.
func (r *Reconciler) ScanAndRepair(ctx context.Context, pageSize int) (*models.ReconciliationReport, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	started := time.Now()
	report := &models.ReconciliationReport{StartedAt: started}
	defer func() {
		report.Duration = time.Since(started)
		metrics.ScanDuration.Observe(report.Duration.Seconds())
	}()

	schedule, err := r.fees.GetSchedule(ctx)
	if err != nil {
		return report, err
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		workers = make(chan struct{}, r.workerCount)
		cursor  uuid.UUID // zero UUID: scan from the beginning
	)

	for {
		// A stop between pages is always safe: repairs are idempotent and
		// the cursor is a valid resume checkpoint.
		if ctx.Err() != nil {
			break
		}

		page, err := r.repo.ListPaidWithBrokenAmount(ctx, cursor, pageSize)
		if err != nil {
			wg.Wait()
			return report, err
		}
		if len(page) == 0 {
			break
		}
		cursor = page[len(page)-1].ID

		mu.Lock()
		report.Scanned += len(page)
		mu.Unlock()

		for _, user := range page {
			wg.Add(1)
			workers <- struct{}{}
			go func(user *models.User) {
				defer func() {
					<-workers
					wg.Done()
				}()

				repaired, changed := r.RepairOne(user.Payment, user.Role, schedule)
				if !changed {
					return
				}
				if err := r.repo.SaveRepair(ctx, user.ID, repaired); err != nil {
					metrics.RepairFailures.Inc()
					r.log.Warn(ctx, "failed to persist repair",
						zap.String("user_id", user.ID.String()),
						zap.Error(err),
					)
					mu.Lock()
					report.Failures = append(report.Failures, models.RepairFailure{
						UserID: user.ID,
						Reason: err.Error(),
					})
					mu.Unlock()
					return
				}
				metrics.RepairsApplied.Inc()
				mu.Lock()
				report.Fixed++
				mu.Unlock()
			}(user)
		}

		if len(page) < pageSize {
			break
		}
	}

	wg.Wait()

	stillInvalid, err := r.repo.ListStillInvalid(ctx)
	if err != nil {
		return report, err
	}
	for _, user := range stillInvalid {
		report.StillInvalid = append(report.StillInvalid, models.InvalidRecord{
			UserID:     user.ID,
			Role:       user.Role,
			Violations: Validate(user.Payment).Violations,
		})
	}

	duplicates, err := r.repo.FindDuplicateReferences(ctx)
	if err != nil {
		return report, err
	}
	report.Warnings = duplicates

	r.log.Info(ctx, "reconciliation pass finished",
		zap.Int("scanned", report.Scanned),
		zap.Int("fixed", report.Fixed),
		zap.Int("still_invalid", len(report.StillInvalid)),
		zap.Int("failures", len(report.Failures)),
		zap.Int("duplicate_references", len(report.Warnings)),
	)

	return report, nil
}
