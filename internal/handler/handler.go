//go:generate mockgen -source=handler.go -destination=../mocks/handler_mocks.go -package=mocks

// Package handler is the thin admin-facing HTTP adapter over the fee and
// reconciliation services. It only translates: validation, repair and all
// schedule logic live below it.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	errdefs "github.com/Majormiles/job-portal-sub004/internal/errors"
	"github.com/Majormiles/job-portal-sub004/internal/models"
	"github.com/Majormiles/job-portal-sub004/internal/service"
	"github.com/Majormiles/job-portal-sub004/pkg/ctxdata"
	"github.com/Majormiles/job-portal-sub004/pkg/logging"
)

type FeeService interface {
	GetSchedule(ctx context.Context) (*models.FeeSchedule, error)
	UpdateFee(ctx context.Context, input *models.UpdateFeeInput) (*models.FeeSchedule, error)
	ChangeHistory(ctx context.Context, limit int) ([]models.ChangeAuditEntry, error)
}

type ReconcilerService interface {
	ScanAndRepair(ctx context.Context, pageSize int) (*models.ReconciliationReport, error)
	InspectUser(ctx context.Context, userID uuid.UUID) (*models.User, models.ValidationResult, error)
	RepairUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

type AdminServer struct {
	fees       FeeService
	reconciler ReconcilerService
}

func NewAdminServer(fees FeeService, reconciler ReconcilerService) *AdminServer {
	return &AdminServer{fees: fees, reconciler: reconciler}
}

func (h *AdminServer) Register(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/fees", h.getFees)
		r.Put("/fees/{role}", h.updateFee)
		r.Post("/reconciliation/run", h.runReconciliation)
		r.Get("/users/{id}/payment", h.getUserPayment)
		r.Post("/users/{id}/payment/repair", h.repairUserPayment)
	})
}

type scheduleResponse struct {
	JobSeeker         float64              `json:"jobSeeker"`
	Employer          float64              `json:"employer"`
	Trainer           float64              `json:"trainer"`
	Trainee           float64              `json:"trainee"`
	Currency          string               `json:"currency"`
	LastUpdatedByID   *uuid.UUID           `json:"lastUpdatedById,omitempty"`
	LastUpdatedByName *string              `json:"lastUpdatedByName,omitempty"`
	ChangeHistory     []changeHistoryEntry `json:"changeHistory"`
}

type changeHistoryEntry struct {
	Role           models.Role `json:"role"`
	PreviousAmount float64     `json:"previousAmount"`
	NewAmount      float64     `json:"newAmount"`
	AdminID        uuid.UUID   `json:"adminId"`
	AdminName      string      `json:"adminName"`
	AdminEmail     string      `json:"adminEmail"`
	ChangedAt      string      `json:"changedAt"`
}

func toScheduleResponse(schedule *models.FeeSchedule, history []models.ChangeAuditEntry) *scheduleResponse {
	resp := &scheduleResponse{
		JobSeeker:         schedule.JobSeeker,
		Employer:          schedule.Employer,
		Trainer:           schedule.Trainer,
		Trainee:           schedule.Trainee,
		Currency:          schedule.Currency,
		LastUpdatedByID:   schedule.LastUpdatedByID,
		LastUpdatedByName: schedule.LastUpdatedByName,
		ChangeHistory:     make([]changeHistoryEntry, 0, len(history)),
	}
	for _, entry := range history {
		resp.ChangeHistory = append(resp.ChangeHistory, changeHistoryEntry{
			Role:           entry.Role,
			PreviousAmount: entry.PreviousAmount,
			NewAmount:      entry.NewAmount,
			AdminID:        entry.AdminID,
			AdminName:      entry.AdminName,
			AdminEmail:     entry.AdminEmail,
			ChangedAt:      entry.ChangedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return resp
}

func (h *AdminServer) getFees(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	schedule, err := h.fees.GetSchedule(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	history, err := h.fees.ChangeHistory(ctx, 50)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toScheduleResponse(schedule, history))
}

type updateFeeRequest struct {
	Amount float64 `json:"amount"`
	Admin  struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"admin"`
}

func (h *AdminServer) updateFee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req updateFeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, errdefs.ErrInvalidArgument)
		return
	}
	adminID, err := uuid.Parse(req.Admin.ID)
	if err != nil {
		writeError(ctx, w, errdefs.ErrInvalidArgument)
		return
	}
	ctx = ctxdata.WithAdminID(ctx, adminID.String())

	input := &models.UpdateFeeInput{
		Role:      models.Role(chi.URLParam(r, "role")),
		NewAmount: req.Amount,
		Admin: models.AdminRef{
			ID:    adminID,
			Name:  req.Admin.Name,
			Email: req.Admin.Email,
		},
	}

	schedule, err := h.fees.UpdateFee(ctx, input)
	if err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Error(ctx, "failed to update fee",
				zap.String("role", input.Role.String()),
				zap.Float64("amount", input.NewAmount),
				zap.Error(err),
			)
		}
		writeError(ctx, w, err)
		return
	}
	history, err := h.fees.ChangeHistory(ctx, 50)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toScheduleResponse(schedule, history))
}

type runReconciliationRequest struct {
	PageSize int `json:"pageSize"`
}

func (h *AdminServer) runReconciliation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req runReconciliationRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(ctx, w, errdefs.ErrInvalidArgument)
			return
		}
	}

	report, err := h.reconciler.ScanAndRepair(ctx, req.PageSize)
	if err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Error(ctx, "reconciliation run failed", zap.Error(err))
		}
		writeError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

type userPaymentResponse struct {
	UserID   uuid.UUID               `json:"userId"`
	Role     models.Role             `json:"role"`
	Payment  models.PaymentRecord    `json:"payment"`
	Validity models.ValidationResult `json:"validity"`
}

func (h *AdminServer) getUserPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(ctx, w, errdefs.ErrInvalidArgument)
		return
	}

	user, validity, err := h.reconciler.InspectUser(ctx, userID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusOK, &userPaymentResponse{
		UserID:   user.ID,
		Role:     user.Role,
		Payment:  user.Payment,
		Validity: validity,
	})
}

func (h *AdminServer) repairUserPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(ctx, w, errdefs.ErrInvalidArgument)
		return
	}

	user, err := h.reconciler.RepairUser(ctx, userID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusOK, &userPaymentResponse{
		UserID:   user.ID,
		Role:     user.Role,
		Payment:  user.Payment,
		Validity: service.Validate(user.Payment),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errdefs.ErrInvalidRole),
		errors.Is(err, errdefs.ErrInvalidAmount),
		errors.Is(err, errdefs.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, errdefs.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errdefs.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, errdefs.ErrConcurrencyConflict):
		status = http.StatusConflict
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
