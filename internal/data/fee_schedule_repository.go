package data

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	errdefs "github.com/Majormiles/job-portal-sub004/internal/errors"
	"github.com/Majormiles/job-portal-sub004/internal/models"
)

// scheduleID is the fixed identity of the fee schedule singleton. Every
// create-if-absent races on this one key, so two schedules can never exist.
const scheduleID = 1

// FeeScheduleRepo stores the singleton fee schedule and its audit trail.
type FeeScheduleRepo struct {
	db Querier
}

func NewFeeScheduleRepository(db Querier) *FeeScheduleRepo {
	return &FeeScheduleRepo{db: db}
}

type feeScheduleRow struct {
	JobSeeker          float64    `db:"job_seeker"`
	Employer           float64    `db:"employer"`
	Trainer            float64    `db:"trainer"`
	Trainee            float64    `db:"trainee"`
	Currency           string     `db:"currency"`
	LastUpdatedByID    *uuid.UUID `db:"last_updated_by_id"`
	LastUpdatedByName  *string    `db:"last_updated_by_name"`
	LastUpdatedByEmail *string    `db:"last_updated_by_email"`
	Version            int64      `db:"version"`
	CreatedAt          time.Time  `db:"created_at"`
	EditedAt           time.Time  `db:"edited_at"`
}

func (r feeScheduleRow) toModel() *models.FeeSchedule {
	return &models.FeeSchedule{
		JobSeeker:          r.JobSeeker,
		Employer:           r.Employer,
		Trainer:            r.Trainer,
		Trainee:            r.Trainee,
		Currency:           r.Currency,
		LastUpdatedByID:    r.LastUpdatedByID,
		LastUpdatedByName:  r.LastUpdatedByName,
		LastUpdatedByEmail: r.LastUpdatedByEmail,
		Version:            r.Version,
		CreatedAt:          r.CreatedAt,
		EditedAt:           r.EditedAt,
	}
}

// GetOrCreate returns the schedule singleton, creating it with defaults when
// absent. The insert-if-absent is a single atomic statement, so concurrent
// first-access calls converge on one row.
func (r *FeeScheduleRepo) GetOrCreate(ctx context.Context) (*models.FeeSchedule, error) {
	defaults := models.DefaultSchedule()
	insert := `
		INSERT INTO fee_schedules (id, job_seeker, employer, trainer, trainee, currency)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.db.Exec(ctx, insert,
		scheduleID,
		defaults.JobSeeker,
		defaults.Employer,
		defaults.Trainer,
		defaults.Trainee,
		defaults.Currency,
	)
	if err != nil {
		return nil, handleError(err)
	}

	query := `
		SELECT job_seeker, employer, trainer, trainee, currency,
		       last_updated_by_id, last_updated_by_name, last_updated_by_email,
		       version, created_at, edited_at
		FROM fee_schedules
		WHERE id = $1
	`
	var row feeScheduleRow
	if err := pgxscan.Get(ctx, r.db, &row, query, scheduleID); err != nil {
		return nil, handleError(err)
	}
	return row.toModel(), nil
}

// roleColumn maps a validated role to its schedule column. Callers must have
// checked Role.IsValid first; the query is assembled only from this table.
func roleColumn(role models.Role) (string, bool) {
	switch role {
	case models.RoleJobSeeker:
		return "job_seeker", true
	case models.RoleEmployer:
		return "employer", true
	case models.RoleTrainer:
		return "trainer", true
	case models.RoleTrainee:
		return "trainee", true
	}
	return "", false
}

// UpdateFee applies a compare-and-set fee change and appends the audit row in
// the same transaction. The WHERE clause pins the version observed at read
// time: a concurrent change bumps the version, the update matches zero rows
// and the caller gets ErrConcurrencyConflict instead of an audit entry with a
// stale previous amount.
func (r *FeeScheduleRepo) UpdateFee(
	ctx context.Context,
	role models.Role,
	previousAmount, newAmount float64,
	expectedVersion int64,
	admin models.AdminRef,
) (*models.FeeSchedule, error) {
	column, ok := roleColumn(role)
	if !ok {
		return nil, errdefs.ErrInvalidRole
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, handleError(err)
	}
	defer tx.Rollback(ctx)

	update := `
		UPDATE fee_schedules
		SET ` + column + ` = $1,
		    last_updated_by_id = $2,
		    last_updated_by_name = $3,
		    last_updated_by_email = $4,
		    version = version + 1,
		    edited_at = $5
		WHERE id = $6 AND version = $7
		RETURNING job_seeker, employer, trainer, trainee, currency,
		          last_updated_by_id, last_updated_by_name, last_updated_by_email,
		          version, created_at, edited_at
	`
	now := time.Now()
	var row feeScheduleRow
	err = pgxscan.Get(ctx, tx, &row, update,
		newAmount, admin.ID, admin.Name, admin.Email, now, scheduleID, expectedVersion,
	)
	if err != nil {
		if isNotFound(err) {
			return nil, errdefs.ErrConcurrencyConflict
		}
		return nil, handleError(err)
	}

	audit := `
		INSERT INTO fee_schedule_audit
			(id, role, previous_amount, new_amount, admin_id, admin_name, admin_email, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.Exec(ctx, audit,
		uuid.New(), role.String(), previousAmount, newAmount,
		admin.ID, admin.Name, admin.Email, now,
	)
	if err != nil {
		return nil, handleError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, handleError(err)
	}
	return row.toModel(), nil
}

// ListAuditEntries returns the change history, most recent first.
func (r *FeeScheduleRepo) ListAuditEntries(ctx context.Context, limit int) ([]models.ChangeAuditEntry, error) {
	query := `
		SELECT id, role, previous_amount, new_amount,
		       admin_id, admin_name, admin_email, changed_at
		FROM fee_schedule_audit
		ORDER BY changed_at DESC
		LIMIT $1
	`
	var entries []models.ChangeAuditEntry
	if err := pgxscan.Select(ctx, r.db, &entries, query, limit); err != nil {
		return nil, handleError(err)
	}
	return entries, nil
}
