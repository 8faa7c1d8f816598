package repository

import (
	"context"
	"errors"

	"farha/internal/domain/entity"
)

// ErrServiceNotFound is returned when no service root row carries the id.
var ErrServiceNotFound = errors.New("service not found")

// ServiceRepository exposes kind-scoped queries over the shared service root.
// Rich per-kind operations live on the kind's own repository; this one serves
// cross-kind discovery over the discriminator.
type ServiceRepository interface {
	// FindByKind retrieves every service root row of the given kind.
	FindByKind(ctx context.Context, kind entity.ServiceKind) ([]*entity.Service, error)

	// FindByID retrieves a service root row regardless of kind.
	FindByID(ctx context.Context, id uint) (*entity.Service, error)
}
