// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"farha/internal/domain/service"

	"github.com/google/uuid"
)

// BeautyUsecase is the catalog orchestrator for the beauty center kind:
// discovery, detail, create, update, delete and sub-service attach/detach,
// each wrapped in the uniform response envelope.
type BeautyUsecase interface {
	// List serves paginated, filtered discovery. A governorate or city of 0
	// means "no filter". IsFavorite is stamped per requesting customer.
	List(ctx context.Context, customerID uuid.UUID, page, pageSize, governorateID, cityID int) *Response[[]BeautyCenterDTO]

	// GetByName retrieves the beauty centers whose name matches the fragment.
	GetByName(ctx context.Context, name string) *Response[[]BeautyCenterDTO]

	// GetByID serves the detail view. Its IsFavorite flag is true when any
	// customer has favorited the center, unlike the per-customer discovery
	// flag of the same name.
	GetByID(ctx context.Context, id uint) *Response[*BeautyCenterDTO]

	// Add places uploaded images, then inserts the center with one image row
	// per returned path as a single unit of work.
	Add(ctx context.Context, input *AddBeautyCenterInput) *Response[*BeautyCenterDTO]

	// Update overwrites scalar fields and appends newly uploaded images to the
	// existing collection. Images are additive through this path; there is no
	// single-image removal operation.
	Update(ctx context.Context, input *AddBeautyCenterInput, id uint) *Response[*BeautyCenterDTO]

	// DeleteByID removes the center; the store cascades dependent rows.
	DeleteByID(ctx context.Context, id uint) *Response[*BeautyCenterDTO]

	// AddSubServices attaches each listed sub-offering, batched in one commit.
	AddSubServices(ctx context.Context, inputs []SubServiceInput) *Response[[]SubServiceDTO]

	// RemoveSubService detaches an existing sub-offering.
	RemoveSubService(ctx context.Context, beautyCenterID, subServiceID uint) *Response[*SubServiceDTO]
}

// --- Transfer objects ---

// BeautyCenterDTO is the wire-level shape of a beauty center.
type BeautyCenterDTO struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	GovernorateID int             `json:"governorateId"`
	CityID        int             `json:"cityId"`
	ImageURLs     []string        `json:"imageUrls"`
	IsFavorite    bool            `json:"isFavorite"`
	SubServices   []SubServiceDTO `json:"subServices"`
}

// AddBeautyCenterInput mirrors the creatable/updatable fields plus raw
// image uploads.
type AddBeautyCenterInput struct {
	Name          string           `json:"name" validate:"required"`
	Description   string           `json:"description"`
	OwnerID       uuid.UUID        `json:"ownerId" validate:"required"`
	GovernorateID int              `json:"governorateId"`
	CityID        int              `json:"cityId"`
	Images        []service.Upload `json:"-"`
}

// SubServiceInput is a single sub-offering to attach.
type SubServiceInput struct {
	BeautyCenterID uint    `json:"beautyCenterId" validate:"required"`
	Name           string  `json:"name" validate:"required"`
	Description    string  `json:"description"`
	Price          float64 `json:"price" validate:"gte=0"`
}

// SubServiceDTO is the wire-level shape of a sub-service.
type SubServiceDTO struct {
	ID             uint    `json:"id"`
	BeautyCenterID uint    `json:"beautyCenterId"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
}
