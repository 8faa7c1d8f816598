package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteServiceModel marks one offering as a favorite of one customer.
// The composite unique index makes the pair idempotent at the database
// level regardless of how many callers race on it.
type FavoriteServiceModel struct {
	ID         uint      `gorm:"primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_customer_service"`
	ServiceID  uint      `gorm:"not null;uniqueIndex:idx_favorite_customer_service"`
	CreatedAt  time.Time

	Customer *CustomerModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteServiceModel) TableName() string {
	return "favorite_services"
}
