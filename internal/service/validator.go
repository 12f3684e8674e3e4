package service

import (
	"github.com/Majormiles/job-portal-sub004/internal/models"
)

// Validate decides whether a payment record satisfies the paid-implies-valid
// invariant. Records that are not paid carry no obligations, so they are
// always valid regardless of what the other fields hold.
func Validate(record models.PaymentRecord) models.ValidationResult {
	if !record.IsPaid {
		return models.ValidationResult{Valid: true}
	}

	var violations []models.Violation
	switch {
	case record.Amount == nil:
		violations = append(violations, models.ViolationMissingAmount)
	case *record.Amount <= 0:
		violations = append(violations, models.ViolationNonPositiveAmount)
	}
	if record.Date == nil {
		violations = append(violations, models.ViolationMissingDate)
	}
	if record.Reference == nil || *record.Reference == "" {
		violations = append(violations, models.ViolationMissingReference)
	}

	return models.ValidationResult{
		Valid:      len(violations) == 0,
		Violations: violations,
	}
}
