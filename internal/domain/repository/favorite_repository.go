package repository

import (
	"context"
	"errors"

	"farha/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFavoriteNotFound is returned when a (customer, service) favorite pair
// does not exist.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository persists customer-to-service bookmarks and serves the
// favorite index used to annotate discovery results.
type FavoriteRepository interface {
	// ServiceIDsOf returns the set of service identifiers the customer has
	// favorited. Read-only; used to annotate, never to filter.
	ServiceIDsOf(ctx context.Context, customerID uuid.UUID) (map[uint]struct{}, error)

	// Create persists a new favorite. A duplicate (customer, service) pair is
	// a conflict, enforced by the store's unique index.
	Create(ctx context.Context, favorite *entity.FavoriteService) error

	// Delete removes the favorite for the given pair.
	Delete(ctx context.Context, customerID uuid.UUID, serviceID uint) error
}
