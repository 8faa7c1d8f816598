// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"farha/internal/domain/entity"
)

// ErrBeautyCenterNotFound is returned when a beauty center does not exist.
// Absence is a normal query result, distinct from store failures.
var ErrBeautyCenterNotFound = errors.New("beauty center not found")

// ErrSubServiceNotFound is returned when a sub-service association does not exist.
var ErrSubServiceNotFound = errors.New("sub-service not found")

// BeautyRepository defines the catalog store operations for the beauty
// center kind. Mutations flow through a TransactionManager-scoped instance
// and are committed as one unit of work when the enclosing Execute returns.
type BeautyRepository interface {
	// FindAll retrieves every beauty center with its images and sub-services.
	FindAll(ctx context.Context) ([]*entity.BeautyCenter, error)

	// FindByName retrieves the beauty centers whose name contains the given fragment.
	FindByName(ctx context.Context, name string) ([]*entity.BeautyCenter, error)

	// FindByID retrieves a single beauty center with its dependent collections,
	// favorites included.
	FindByID(ctx context.Context, id uint) (*entity.BeautyCenter, error)

	// Create persists a new beauty center together with its image and
	// sub-service rows as one logical unit.
	Create(ctx context.Context, center *entity.BeautyCenter) error

	// Update overwrites the scalar fields of an existing beauty center.
	Update(ctx context.Context, center *entity.BeautyCenter) error

	// Delete removes a beauty center; dependent images, sub-services, reviews
	// and favorites are cascaded by the store's referential actions.
	Delete(ctx context.Context, id uint) error

	// ImagePaths returns the stored media paths of a beauty center in
	// attachment order.
	ImagePaths(ctx context.Context, id uint) ([]string, error)

	// AddImages attaches one image row per path to an existing beauty center.
	AddImages(ctx context.Context, id uint, paths []string) error

	// CreateSubService attaches a named sub-offering to a beauty center.
	CreateSubService(ctx context.Context, sub *entity.SubService) error

	// FindSubService retrieves a sub-service by parent and own identifier.
	FindSubService(ctx context.Context, beautyCenterID, subServiceID uint) (*entity.SubService, error)

	// RemoveSubService detaches a sub-service association.
	RemoveSubService(ctx context.Context, sub *entity.SubService) error
}
