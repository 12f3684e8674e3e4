package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	errdefs "github.com/Majormiles/job-portal-sub004/internal/errors"
	"github.com/Majormiles/job-portal-sub004/internal/mocks"
	"github.com/Majormiles/job-portal-sub004/internal/models"
	"github.com/Majormiles/job-portal-sub004/internal/service"
)

func setupFeeService(t *testing.T) (*gomock.Controller, *service.FeeService, *mocks.MockIFeeScheduleRepo) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockIFeeScheduleRepo(ctrl)
	svc := service.NewFeeService(mockRepo, time.Millisecond)
	return ctrl, svc, mockRepo
}

func testAdmin() models.AdminRef {
	return models.AdminRef{
		ID:    uuid.New(),
		Name:  "Ama Mensah",
		Email: "ama@example.com",
	}
}

func TestGetSchedule(t *testing.T) {
	t.Run("ReturnsDefaultsOnFirstAccess", func(t *testing.T) {
		ctrl, svc, mockRepo := setupFeeService(t)
		defer ctrl.Finish()

		defaults := models.DefaultSchedule()
		mockRepo.EXPECT().GetOrCreate(gomock.Any()).Return(&defaults, nil)

		schedule, err := svc.GetSchedule(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, float64(50), schedule.JobSeeker)
		assert.Equal(t, float64(100), schedule.Employer)
		assert.Equal(t, float64(100), schedule.Trainer)
		assert.Equal(t, float64(50), schedule.Trainee)
		assert.Equal(t, "GHS", schedule.Currency)
	})
}

func TestUpdateFee(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl, svc, mockRepo := setupFeeService(t)
		defer ctrl.Finish()

		admin := testAdmin()
		current := models.DefaultSchedule()
		current.Version = 3

		updated := current
		updated.Employer = 120
		updated.Version = 4

		mockRepo.EXPECT().GetOrCreate(gomock.Any()).Return(&current, nil)
		mockRepo.EXPECT().
			UpdateFee(gomock.Any(), models.RoleEmployer, float64(100), float64(120), int64(3), admin).
			Return(&updated, nil)

		schedule, err := svc.UpdateFee(context.Background(), &models.UpdateFeeInput{
			Role:      models.RoleEmployer,
			NewAmount: 120,
			Admin:     admin,
		})
		assert.NoError(t, err)
		assert.Equal(t, float64(120), schedule.Employer)
	})

	t.Run("NoOpWhenAmountUnchanged", func(t *testing.T) {
		ctrl, svc, mockRepo := setupFeeService(t)
		defer ctrl.Finish()

		current := models.DefaultSchedule()
		mockRepo.EXPECT().GetOrCreate(gomock.Any()).Return(&current, nil)
		// No UpdateFee call expected: same amount appends no audit entry.

		schedule, err := svc.UpdateFee(context.Background(), &models.UpdateFeeInput{
			Role:      models.RoleEmployer,
			NewAmount: 100,
			Admin:     testAdmin(),
		})
		assert.NoError(t, err)
		assert.Equal(t, float64(100), schedule.Employer)
	})

	t.Run("Error_InvalidRole", func(t *testing.T) {
		_, svc, _ := setupFeeService(t)

		_, err := svc.UpdateFee(context.Background(), &models.UpdateFeeInput{
			Role:      models.Role("astronaut"),
			NewAmount: 10,
			Admin:     testAdmin(),
		})
		assert.True(t, errors.Is(err, errdefs.ErrInvalidRole))
	})

	t.Run("Error_NegativeAmount", func(t *testing.T) {
		_, svc, _ := setupFeeService(t)

		_, err := svc.UpdateFee(context.Background(), &models.UpdateFeeInput{
			Role:      models.RoleEmployer,
			NewAmount: -5,
			Admin:     testAdmin(),
		})
		assert.True(t, errors.Is(err, errdefs.ErrInvalidAmount))
	})

	t.Run("ConflictRetriedAgainstFreshRead", func(t *testing.T) {
		ctrl, svc, mockRepo := setupFeeService(t)
		defer ctrl.Finish()

		admin := testAdmin()

		first := models.DefaultSchedule()
		first.Version = 3

		// Another admin bumped employer to 110 in between.
		second := models.DefaultSchedule()
		second.Employer = 110
		second.Version = 4

		final := second
		final.Employer = 120
		final.Version = 5

		gomock.InOrder(
			mockRepo.EXPECT().GetOrCreate(gomock.Any()).Return(&first, nil),
			mockRepo.EXPECT().
				UpdateFee(gomock.Any(), models.RoleEmployer, float64(100), float64(120), int64(3), admin).
				Return(nil, errdefs.ErrConcurrencyConflict),
			mockRepo.EXPECT().GetOrCreate(gomock.Any()).Return(&second, nil),
			mockRepo.EXPECT().
				UpdateFee(gomock.Any(), models.RoleEmployer, float64(110), float64(120), int64(4), admin).
				Return(&final, nil),
		)

		schedule, err := svc.UpdateFee(context.Background(), &models.UpdateFeeInput{
			Role:      models.RoleEmployer,
			NewAmount: 120,
			Admin:     admin,
		})
		assert.NoError(t, err)
		assert.Equal(t, float64(120), schedule.Employer)
	})

	t.Run("ConflictSurfacedAfterRetry", func(t *testing.T) {
		ctrl, svc, mockRepo := setupFeeService(t)
		defer ctrl.Finish()

		current := models.DefaultSchedule()
		mockRepo.EXPECT().GetOrCreate(gomock.Any()).Return(&current, nil).Times(2)
		mockRepo.EXPECT().
			UpdateFee(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errdefs.ErrConcurrencyConflict).
			Times(2)

		_, err := svc.UpdateFee(context.Background(), &models.UpdateFeeInput{
			Role:      models.RoleEmployer,
			NewAmount: 120,
			Admin:     testAdmin(),
		})
		assert.True(t, errors.Is(err, errdefs.ErrConcurrencyConflict))
	})
}

func TestChangeHistory(t *testing.T) {
	ctrl, svc, mockRepo := setupFeeService(t)
	defer ctrl.Finish()

	entries := []models.ChangeAuditEntry{
		{Role: models.RoleEmployer, PreviousAmount: 100, NewAmount: 120},
	}
	mockRepo.EXPECT().ListAuditEntries(gomock.Any(), 50).Return(entries, nil)

	// Non-positive limit falls back to the default.
	got, err := svc.ChangeHistory(context.Background(), 0)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
}
