package data

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	errdefs "github.com/Majormiles/job-portal-sub004/internal/errors"
	"github.com/Majormiles/job-portal-sub004/internal/models"
)

// UserPaymentRepo reads and repairs the payment sub-record embedded in users.
type UserPaymentRepo struct {
	db Querier
}

func NewUserPaymentRepository(db Querier) *UserPaymentRepo {
	return &UserPaymentRepo{db: db}
}

type userRow struct {
	ID               uuid.UUID      `db:"id"`
	FullName         string         `db:"full_name"`
	Email            string         `db:"email"`
	Role             models.Role    `db:"role"`
	PaymentIsPaid    bool           `db:"payment_is_paid"`
	PaymentAmount    *float64       `db:"payment_amount"`
	PaymentCurrency  *string        `db:"payment_currency"`
	PaymentDate      *time.Time     `db:"payment_date"`
	PaymentReference *string        `db:"payment_reference"`
	PaymentGateway   *string        `db:"payment_gateway"`
	PaymentMetadata  map[string]any `db:"payment_metadata"`
	CreatedAt        time.Time      `db:"created_at"`
	EditedAt         time.Time      `db:"edited_at"`
}

func (r userRow) toModel() *models.User {
	return &models.User{
		ID:       r.ID,
		FullName: r.FullName,
		Email:    r.Email,
		Role:     r.Role,
		Payment: models.PaymentRecord{
			IsPaid:    r.PaymentIsPaid,
			Amount:    r.PaymentAmount,
			Currency:  r.PaymentCurrency,
			Date:      r.PaymentDate,
			Reference: r.PaymentReference,
			Gateway:   r.PaymentGateway,
			Metadata:  r.PaymentMetadata,
		},
		CreatedAt: r.CreatedAt,
		EditedAt:  r.EditedAt,
	}
}

const userColumns = `
	id, full_name, email, role,
	payment_is_paid, payment_amount, payment_currency, payment_date,
	payment_reference, payment_gateway, payment_metadata,
	created_at, edited_at
`

// GetUser retrieves a user with their payment record.
func (r *UserPaymentRepo) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	var row userRow
	if err := pgxscan.Get(ctx, r.db, &row, query, id); err != nil {
		return nil, handleError(err)
	}
	return row.toModel(), nil
}

// ConfirmPayment marks a user paid with exactly the fields the gateway
// supplied. Absent optional fields keep whatever value the record already
// holds; nothing is synthesized on this path.
func (r *UserPaymentRepo) ConfirmPayment(ctx context.Context, input *models.ConfirmPaymentInput) (*models.User, error) {
	query := `
		UPDATE users
		SET payment_is_paid = TRUE,
		    payment_reference = $2,
		    payment_date = $3,
		    payment_amount = COALESCE($4, payment_amount),
		    payment_currency = COALESCE($5, payment_currency),
		    payment_gateway = COALESCE($6, payment_gateway),
		    edited_at = $7
		WHERE id = $1
		RETURNING ` + userColumns + `
	`
	var row userRow
	err := pgxscan.Get(ctx, r.db, &row, query,
		input.UserID, input.Reference, input.PaidAt,
		input.Amount, input.Currency, input.Gateway,
		time.Now(),
	)
	if err != nil {
		return nil, handleError(err)
	}
	return row.toModel(), nil
}

// ListPaidWithBrokenAmount pages through paid records whose amount is
// missing or non-positive. Keyset pagination on id keeps the scan resumable:
// afterID is the checkpoint of the last processed user.
func (r *UserPaymentRepo) ListPaidWithBrokenAmount(ctx context.Context, afterID uuid.UUID, limit int) ([]*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE payment_is_paid
		  AND (payment_amount IS NULL OR payment_amount <= 0)
		  AND id > $1
		ORDER BY id
		LIMIT $2
	`
	var rows []userRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, afterID, limit); err != nil {
		return nil, handleError(err)
	}
	users := make([]*models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toModel())
	}
	return users, nil
}

// SaveRepair persists a repaired record fill-only: each field is written only
// where the stored value is still absent or broken, judged against the row's
// current state inside the statement. Two concurrent repairs of one user
// therefore cannot clobber each other's fields, and a reference that exists
// is never overwritten.
func (r *UserPaymentRepo) SaveRepair(ctx context.Context, userID uuid.UUID, repaired models.PaymentRecord) error {
	query := `
		UPDATE users
		SET payment_amount = CASE
		        WHEN payment_amount IS NULL OR payment_amount <= 0 THEN $2
		        ELSE payment_amount
		    END,
		    payment_date = COALESCE(payment_date, $3),
		    payment_currency = COALESCE(payment_currency, $4),
		    payment_gateway = COALESCE(payment_gateway, $5),
		    payment_reference = COALESCE(payment_reference, $6),
		    edited_at = $7
		WHERE id = $1 AND payment_is_paid
	`
	tag, err := r.db.Exec(ctx, query,
		userID,
		repaired.Amount, repaired.Date, repaired.Currency,
		repaired.Gateway, repaired.Reference,
		time.Now(),
	)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

// ListStillInvalid re-queries storage for every paid record that still
// violates the validity invariant, so post-pass reporting reflects what was
// actually persisted.
func (r *UserPaymentRepo) ListStillInvalid(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE payment_is_paid
		  AND (payment_amount IS NULL OR payment_amount <= 0
		       OR payment_date IS NULL
		       OR payment_reference IS NULL OR payment_reference = '')
		ORDER BY id
	`
	var rows []userRow
	if err := pgxscan.Select(ctx, r.db, &rows, query); err != nil {
		return nil, handleError(err)
	}
	users := make([]*models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toModel())
	}
	return users, nil
}

type duplicateReferenceRow struct {
	Reference string      `db:"payment_reference"`
	UserIDs   []uuid.UUID `db:"user_ids"`
}

// FindDuplicateReferences reports references shared by more than one paid
// record. Duplicates are never auto-resolved, only surfaced.
func (r *UserPaymentRepo) FindDuplicateReferences(ctx context.Context) ([]models.DuplicateReference, error) {
	query := `
		SELECT payment_reference, array_agg(id ORDER BY id) AS user_ids
		FROM users
		WHERE payment_is_paid AND payment_reference IS NOT NULL AND payment_reference <> ''
		GROUP BY payment_reference
		HAVING COUNT(*) > 1
	`
	var rows []duplicateReferenceRow
	if err := pgxscan.Select(ctx, r.db, &rows, query); err != nil {
		return nil, handleError(err)
	}
	duplicates := make([]models.DuplicateReference, 0, len(rows))
	for _, row := range rows {
		duplicates = append(duplicates, models.DuplicateReference{
			Reference: row.Reference,
			UserIDs:   row.UserIDs,
		})
	}
	return duplicates, nil
}
