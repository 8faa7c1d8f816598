package repository

import (
	"context"
	"errors"

	"farha/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOwnerNotFound is returned when an owner account does not exist.
var ErrOwnerNotFound = errors.New("owner not found")

// OwnerRepository persists vendor accounts. Identity-document images are
// mandatory columns; their absence surfaces as a constraint violation.
type OwnerRepository interface {
	// Create persists a new owner account, status pending by default.
	Create(ctx context.Context, owner *entity.Owner) error

	// FindByID retrieves a single owner account.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Owner, error)
}

// OTPRepository persists one-time codes issued to accounts. Delivery is an
// external collaborator's concern.
type OTPRepository interface {
	// Create persists a freshly generated code row.
	Create(ctx context.Context, otp *entity.UserOTP) error
}
