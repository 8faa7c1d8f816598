package entity

import (
	"time"

	"github.com/google/uuid"
)

// OwnerAccountStatus is the review state of a vendor account.
type OwnerAccountStatus string

const (
	OwnerStatusPending  OwnerAccountStatus = "pending"
	OwnerStatusApproved OwnerAccountStatus = "approved"
	OwnerStatusRejected OwnerAccountStatus = "rejected"
)

// String returns the string representation of the OwnerAccountStatus.
func (s OwnerAccountStatus) String() string {
	return string(s)
}

// Owner is a vendor account. Identity-document images are mandatory at
// creation; their absence is a constraint violation, not a soft validation.
type Owner struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Phone        string
	IDFrontImage string // Stored media path of the identity document, front side.
	IDBackImage  string // Stored media path of the identity document, back side.
	Status       OwnerAccountStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Customer is a buyer account browsing and favoriting offerings.
// Authentication and session management live outside this module.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// UserOTP is a persisted one-time code issued to an account.
// Code delivery (SMS/email) is an external collaborator's concern.
type UserOTP struct {
	ID        uint
	AccountID uuid.UUID
	Code      string
	ExpiresAt time.Time
	CreatedAt time.Time
}
