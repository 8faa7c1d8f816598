package entity

import (
	"time"

	"github.com/google/uuid"
)

// BeautyCenter is a concrete service offering. Its image rows, sub-services
// and reviews live and die with the parent record.
type BeautyCenter struct {
	Service

	Images      []BeautyCenterImage
	SubServices []SubService
	Reviews     []Review
	Favorites   []FavoriteService
}

// ImagePaths returns the stored media paths in attachment order.
func (b *BeautyCenter) ImagePaths() []string {
	paths := make([]string, 0, len(b.Images))
	for _, img := range b.Images {
		paths = append(paths, img.Path)
	}

	return paths
}

// BeautyCenterImage is a single stored media path attached to a beauty center.
type BeautyCenterImage struct {
	ID             uint
	BeautyCenterID uint
	Path           string // Relative path returned by media placement.
}

// SubService is a named sub-offering of a beauty center, e.g. a haircut.
type SubService struct {
	ID             uint
	BeautyCenterID uint
	Name           string
	Description    string
	Price          float64
}

// Review is a customer review attached to a beauty center. Aggregation is
// out of scope; only the association exists here.
type Review struct {
	ID             uint
	BeautyCenterID uint
	CustomerID     uuid.UUID
	Rating         int
	Comment        string
	CreatedAt      time.Time
}
