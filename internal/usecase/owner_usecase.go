package usecase

import (
	"context"

	"farha/internal/domain/service"

	"github.com/google/uuid"
)

// OwnerUsecase registers vendor accounts. Authentication itself is owned by
// an external identity provider; this module owns the account record, its
// mandatory identity documents and the issued verification code row.
type OwnerUsecase interface {
	// Register places the identity-document images, persists the owner with a
	// pending status and issues a one-time code row. Code delivery is external.
	Register(ctx context.Context, input *RegisterOwnerInput) *Response[*OwnerDTO]
}

// RegisterOwnerInput carries the owner's profile plus the two mandatory
// identity-document uploads.
type RegisterOwnerInput struct {
	Name         string         `json:"name" validate:"required"`
	Email        string         `json:"email" validate:"required,email"`
	Phone        string         `json:"phone"`
	IDFrontImage service.Upload `json:"-"`
	IDBackImage  service.Upload `json:"-"`
}

// OwnerDTO is the wire-level shape of an owner account.
type OwnerDTO struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Phone  string    `json:"phone"`
	Status string    `json:"status"`
}
