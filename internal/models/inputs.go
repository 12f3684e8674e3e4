package models

import (
	"time"

	"github.com/google/uuid"
)

type UpdateFeeInput struct {
	Role      Role
	NewAmount float64
	Admin     AdminRef
}

// ConfirmPaymentInput mirrors the gateway confirmation callback. Optional
// fields stay nil when the gateway did not send them; the confirmation path
// stores them as-is and leaves completion to the reconciliation engine.
type ConfirmPaymentInput struct {
	UserID    uuid.UUID
	Reference string
	Amount    *float64
	Currency  *string
	Gateway   *string
	PaidAt    time.Time
}

type GetPaymentInput struct {
	UserID uuid.UUID
}
