// Package entity contains the core business objects of the marketplace catalog.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ServiceKind discriminates the concrete offering behind a Service root record.
// Every concrete kind stores its extra attributes in its own table, keyed by
// the shared service identifier, so identifiers are unique across all kinds.
type ServiceKind string

const (
	KindBeautyCenter ServiceKind = "beauty_center"
	KindHall         ServiceKind = "hall"
	KindPhotography  ServiceKind = "photography"
	KindCar          ServiceKind = "car"
	KindShopDresses  ServiceKind = "shop_dresses"
)

// Kinds lists every concrete service kind the catalog knows about.
func Kinds() []ServiceKind {
	return []ServiceKind{KindBeautyCenter, KindHall, KindPhotography, KindCar, KindShopDresses}
}

// String returns the string representation of the ServiceKind.
func (k ServiceKind) String() string {
	return string(k)
}

// Valid reports whether k names a known concrete kind.
func (k ServiceKind) Valid() bool {
	switch k {
	case KindBeautyCenter, KindHall, KindPhotography, KindCar, KindShopDresses:
		return true
	}

	return false
}

// Service is the shared identity and ownership record underlying every
// bookable offering. A Service cannot exist without a valid owner reference.
type Service struct {
	ID            uint        // Identifier, unique across all concrete kinds.
	Kind          ServiceKind // Which concrete table carries the kind-specific payload.
	Name          string      // Display name of the offering.
	Description   string      // Free-text description.
	OwnerID       uuid.UUID   // The vendor account that owns this offering.
	GovernorateID int         // Governorate the offering is located in.
	CityID        int         // City the offering is located in.
	CreatedAt     time.Time   // Timestamp of when this offering was created.
	UpdatedAt     time.Time   // Timestamp of the last modification.
}
