package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the user category that determines the one-time onboarding fee.
type Role string

const (
	RoleJobSeeker Role = "jobSeeker"
	RoleEmployer  Role = "employer"
	RoleTrainer   Role = "trainer"
	RoleTrainee   Role = "trainee"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleJobSeeker, RoleEmployer, RoleTrainer, RoleTrainee:
		return true
	}
	return false
}

// Roles lists every valid role in a stable order.
func Roles() []Role {
	return []Role{RoleJobSeeker, RoleEmployer, RoleTrainer, RoleTrainee}
}

// AdminRef identifies the administrator performing a fee change. The fields
// are snapshotted into the audit trail at write time and never updated
// retroactively.
type AdminRef struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// FeeSchedule is the singleton record of current per-role onboarding fees.
// Exactly one row exists; it is created lazily with defaults on first access.
type FeeSchedule struct {
	JobSeeker float64
	Employer  float64
	Trainer   float64
	Trainee   float64
	Currency  string

	LastUpdatedByID    *uuid.UUID `db:"last_updated_by_id"`
	LastUpdatedByName  *string    `db:"last_updated_by_name"`
	LastUpdatedByEmail *string    `db:"last_updated_by_email"`

	// Version increments on every fee change and backs the compare-and-set
	// that keeps concurrent updates from recording a stale previous amount.
	Version int64

	CreatedAt time.Time `db:"created_at"`
	EditedAt  time.Time `db:"edited_at"`
}

// Default fee schedule, applied when the singleton is first created. This is
// the single source of truth for fallback pricing: every repair path consults
// the persisted schedule seeded from here, never a local copy.
const (
	DefaultJobSeekerFee = 50
	DefaultEmployerFee  = 100
	DefaultTrainerFee   = 100
	DefaultTraineeFee   = 50
	DefaultCurrency     = "GHS"
)

// DefaultSchedule returns the schedule the store creates on first access.
func DefaultSchedule() FeeSchedule {
	return FeeSchedule{
		JobSeeker: DefaultJobSeekerFee,
		Employer:  DefaultEmployerFee,
		Trainer:   DefaultTrainerFee,
		Trainee:   DefaultTraineeFee,
		Currency:  DefaultCurrency,
	}
}

// AmountFor returns the current fee for role and whether the role is known.
func (s *FeeSchedule) AmountFor(role Role) (float64, bool) {
	switch role {
	case RoleJobSeeker:
		return s.JobSeeker, true
	case RoleEmployer:
		return s.Employer, true
	case RoleTrainer:
		return s.Trainer, true
	case RoleTrainee:
		return s.Trainee, true
	}
	return 0, false
}

// ChangeAuditEntry is one immutable row of the fee schedule's append-only
// change history. Never written when the amount did not actually change.
type ChangeAuditEntry struct {
	ID             uuid.UUID
	Role           Role
	PreviousAmount float64   `db:"previous_amount"`
	NewAmount      float64   `db:"new_amount"`
	AdminID        uuid.UUID `db:"admin_id"`
	AdminName      string    `db:"admin_name"`
	AdminEmail     string    `db:"admin_email"`
	ChangedAt      time.Time `db:"changed_at"`
}

// PaymentRecord is the payment sub-record embedded in a user. Optional fields
// are pointers: nil means the gateway (or an older write path) never supplied
// the value. Fields are only ever added or corrected, never cleared.
type PaymentRecord struct {
	IsPaid    bool           `db:"payment_is_paid" json:"isPaid"`
	Amount    *float64       `db:"payment_amount" json:"amount,omitempty"`
	Currency  *string        `db:"payment_currency" json:"currency,omitempty"`
	Date      *time.Time     `db:"payment_date" json:"date,omitempty"`
	Reference *string        `db:"payment_reference" json:"reference,omitempty"`
	Gateway   *string        `db:"payment_gateway" json:"gateway,omitempty"`
	Metadata  map[string]any `db:"payment_metadata" json:"metadata,omitempty"`
}

// User is the slice of the platform user this subsystem reads and repairs.
type User struct {
	ID       uuid.UUID
	FullName string `db:"full_name"`
	Email    string
	Role     Role

	Payment PaymentRecord

	CreatedAt time.Time `db:"created_at"`
	EditedAt  time.Time `db:"edited_at"`
}
