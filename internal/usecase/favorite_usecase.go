package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FavoriteUsecase mutates customer-to-service bookmarks. Favorites only
// annotate discovery; they never filter it.
type FavoriteUsecase interface {
	// Add bookmarks a service for a customer. A duplicate pair is a conflict.
	Add(ctx context.Context, customerID uuid.UUID, serviceID uint) *Response[*FavoriteDTO]

	// Remove deletes the bookmark for the given pair.
	Remove(ctx context.Context, customerID uuid.UUID, serviceID uint) *Response[*FavoriteDTO]
}

// FavoriteDTO is the wire-level shape of a favorite.
type FavoriteDTO struct {
	ID         uint      `json:"id"`
	CustomerID uuid.UUID `json:"customerId"`
	ServiceID  uint      `json:"serviceId"`
	CreatedAt  time.Time `json:"createdAt"`
}
