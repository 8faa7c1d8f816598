package model

import (
	"time"

	"github.com/google/uuid"
)

// OwnerModel is a provider account. Both identity document columns are
// non-nullable so an owner row can never exist without its paperwork.
type OwnerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone        string    `gorm:"type:varchar(32);not null"`
	IDFrontImage string    `gorm:"type:varchar(512);not null"`
	IDBackImage  string    `gorm:"type:varchar(512);not null"`
	Status       string    `gorm:"type:varchar(16);not null;default:'pending'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OwnerModel) TableName() string {
	return "owners"
}

// CustomerModel is a consumer account.
type CustomerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone     string    `gorm:"type:varchar(32)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// UserOTPModel stores a one-time verification code issued to an account.
type UserOTPModel struct {
	ID        uint      `gorm:"primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Code      string    `gorm:"type:varchar(16);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserOTPModel) TableName() string {
	return "user_otps"
}
