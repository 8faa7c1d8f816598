package entity

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteService is a customer-to-service bookmark. A (customer, service)
// pair is unique; duplicate inserts are rejected at the store boundary.
type FavoriteService struct {
	ID         uint
	CustomerID uuid.UUID
	ServiceID  uint
	CreatedAt  time.Time
}
