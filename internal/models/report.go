package models

import (
	"time"

	"github.com/google/uuid"
)

// Violation is one way a paid record can break the paid-implies-complete
// invariant. Violations are only ever reported for records with IsPaid set.
type Violation string

const (
	ViolationMissingAmount     Violation = "missing_amount"
	ViolationNonPositiveAmount Violation = "non_positive_amount"
	ViolationMissingDate       Violation = "missing_date"
	ViolationMissingReference  Violation = "missing_reference"
)

// ValidationResult is the outcome of validating a single payment record.
type ValidationResult struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations,omitempty"`
}

// RepairFailure records one user whose repair could not be persisted during a
// reconciliation pass. Failures are local: the pass continues past them.
type RepairFailure struct {
	UserID uuid.UUID `json:"user_id"`
	Reason string    `json:"reason"`
}

// InvalidRecord describes a record that is still violating after a pass,
// with the concrete violations so an operator can diagnose it.
type InvalidRecord struct {
	UserID     uuid.UUID   `json:"user_id"`
	Role       Role        `json:"role"`
	Violations []Violation `json:"violations"`
}

// DuplicateReference flags payment records sharing one reference. Which
// record is authoritative needs a human decision, so this is reported and
// never auto-resolved.
type DuplicateReference struct {
	Reference string      `json:"reference"`
	UserIDs   []uuid.UUID `json:"user_ids"`
}

// ReconciliationReport summarises one scan-and-repair pass. StillInvalid is
// re-queried from storage after the pass, so it reflects true persisted state
// even when some repairs failed.
type ReconciliationReport struct {
	Scanned      int                  `json:"scanned"`
	Fixed        int                  `json:"fixed"`
	StillInvalid []InvalidRecord      `json:"still_invalid"`
	Failures     []RepairFailure      `json:"failures"`
	Warnings     []DuplicateReference `json:"warnings"`
	StartedAt    time.Time            `json:"started_at"`
	Duration     time.Duration        `json:"duration"`
}
