package usecase

import (
	"context"

	"farha/internal/domain/entity"
)

// CatalogUsecase serves cross-kind discovery over the shared service root.
type CatalogUsecase interface {
	// ListByKind returns a deterministic page of service roots of one kind.
	ListByKind(ctx context.Context, kind entity.ServiceKind, page, pageSize int) *Response[[]ServiceSummaryDTO]

	// GetByID serves the root-level detail of one offering. A row whose
	// discriminator differs from the requested kind is reported as not found.
	GetByID(ctx context.Context, kind entity.ServiceKind, id uint) *Response[*ServiceSummaryDTO]
}

// ServiceSummaryDTO is the root-level shape shared by every offering kind.
type ServiceSummaryDTO struct {
	ID            uint   `json:"id"`
	Kind          string `json:"kind"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	GovernorateID int    `json:"governorateId"`
	CityID        int    `json:"cityId"`
}
