package data

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errdefs "github.com/Majormiles/job-portal-sub004/internal/errors"
	"github.com/Majormiles/job-portal-sub004/internal/models"
)

var userRowColumns = []string{
	"id", "full_name", "email", "role",
	"payment_is_paid", "payment_amount", "payment_currency", "payment_date",
	"payment_reference", "payment_gateway", "payment_metadata",
	"created_at", "edited_at",
}

func paidUserRow(id uuid.UUID, role string, amount *float64, reference *string) []any {
	now := time.Now()
	return []any{
		id, "Kofi Mensah", "kofi@example.com", role,
		true, amount, nil, nil,
		reference, nil, nil,
		now, now,
	}
}

func TestUserPaymentRepo_GetUser(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewUserPaymentRepository(mockPool)
	ctx := context.Background()
	id := uuid.New()
	amount := 100.0

	mockPool.ExpectQuery("SELECT .* FROM users WHERE id =").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(userRowColumns).
			AddRow(paidUserRow(id, "employer", &amount, ptr("PS-1"))...))

	user, err := repo.GetUser(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, models.RoleEmployer, user.Role)
	assert.True(t, user.Payment.IsPaid)
	require.NotNil(t, user.Payment.Amount)
	assert.Equal(t, 100.0, *user.Payment.Amount)
}

func TestUserPaymentRepo_GetUser_NotFound(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewUserPaymentRepository(mockPool)
	id := uuid.New()

	mockPool.ExpectQuery("SELECT .* FROM users WHERE id =").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.GetUser(context.Background(), id)
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestUserPaymentRepo_ConfirmPayment(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewUserPaymentRepository(mockPool)
	ctx := context.Background()
	id := uuid.New()
	paidAt := time.Now()
	amount := 100.0

	input := &models.ConfirmPaymentInput{
		UserID:    id,
		Reference: "PS-77",
		Amount:    &amount,
		PaidAt:    paidAt,
	}

	mockPool.ExpectQuery("UPDATE users").
		WithArgs(id, "PS-77", paidAt, &amount, (*string)(nil), (*string)(nil), AnyTime{}).
		WillReturnRows(pgxmock.NewRows(userRowColumns).
			AddRow(paidUserRow(id, "job_seeker", &amount, ptr("PS-77"))...))

	user, err := repo.ConfirmPayment(ctx, input)
	assert.NoError(t, err)
	assert.True(t, user.Payment.IsPaid)
	require.NotNil(t, user.Payment.Reference)
	assert.Equal(t, "PS-77", *user.Payment.Reference)
}

func TestUserPaymentRepo_ConfirmPayment_UnknownUser(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewUserPaymentRepository(mockPool)
	id := uuid.New()

	mockPool.ExpectQuery("UPDATE users").
		WithArgs(id, "PS-77", AnyTime{}, (*float64)(nil), (*string)(nil), (*string)(nil), AnyTime{}).
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.ConfirmPayment(context.Background(), &models.ConfirmPaymentInput{
		UserID:    id,
		Reference: "PS-77",
		PaidAt:    time.Now(),
	})
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestUserPaymentRepo_ListPaidWithBrokenAmount(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewUserPaymentRepository(mockPool)
	ctx := context.Background()
	first := uuid.New()
	second := uuid.New()
	zero := 0.0

	mockPool.ExpectQuery("SELECT .* FROM users").
		WithArgs(uuid.Nil, 50).
		WillReturnRows(pgxmock.NewRows(userRowColumns).
			AddRow(paidUserRow(first, "employer", nil, nil)...).
			AddRow(paidUserRow(second, "trainee", &zero, ptr("PS-2"))...))

	users, err := repo.ListPaidWithBrokenAmount(ctx, uuid.Nil, 50)
	assert.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, first, users[0].ID)
	assert.Nil(t, users[0].Payment.Amount)
	assert.Equal(t, second, users[1].ID)
}

func TestUserPaymentRepo_SaveRepair(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewUserPaymentRepository(mockPool)
	ctx := context.Background()
	id := uuid.New()
	amount := 100.0
	now := time.Now()

	repaired := models.PaymentRecord{
		IsPaid:    true,
		Amount:    &amount,
		Date:      &now,
		Currency:  ptr("GHS"),
		Gateway:   ptr("paystack"),
		Reference: ptr("FIXED-1-abc"),
	}

	mockPool.ExpectExec("UPDATE users").
		WithArgs(id, &amount, &now, repaired.Currency, repaired.Gateway, repaired.Reference, AnyTime{}).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.SaveRepair(ctx, id, repaired)
	assert.NoError(t, err)
}

func TestUserPaymentRepo_SaveRepair_NoMatchingRow(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewUserPaymentRepository(mockPool)
	id := uuid.New()
	amount := 100.0

	// Unknown user, or a record flipped back to unpaid between scan and repair.
	mockPool.ExpectExec("UPDATE users").
		WithArgs(id, &amount, (*time.Time)(nil), (*string)(nil), (*string)(nil), (*string)(nil), AnyTime{}).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.SaveRepair(context.Background(), id, models.PaymentRecord{IsPaid: true, Amount: &amount})
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestUserPaymentRepo_ListStillInvalid(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewUserPaymentRepository(mockPool)
	ctx := context.Background()
	id := uuid.New()

	mockPool.ExpectQuery("SELECT .* FROM users").
		WillReturnRows(pgxmock.NewRows(userRowColumns).
			AddRow(paidUserRow(id, "trainer", nil, nil)...))

	users, err := repo.ListStillInvalid(ctx)
	assert.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, id, users[0].ID)
}

func TestUserPaymentRepo_FindDuplicateReferences(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewUserPaymentRepository(mockPool)
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	mockPool.ExpectQuery("SELECT payment_reference, array_agg").
		WillReturnRows(pgxmock.NewRows([]string{"payment_reference", "user_ids"}).
			AddRow("PS-DUP", []uuid.UUID{a, b}))

	duplicates, err := repo.FindDuplicateReferences(ctx)
	assert.NoError(t, err)
	require.Len(t, duplicates, 1)
	assert.Equal(t, "PS-DUP", duplicates[0].Reference)
	assert.Equal(t, []uuid.UUID{a, b}, duplicates[0].UserIDs)
}
