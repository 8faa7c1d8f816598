package model

import (
	"time"

	"github.com/google/uuid"
)

// BeautyCenterModel extends a services row with the beauty-center payload.
// The primary key doubles as the foreign key to the root row, so the
// concrete row disappears together with its root.
type BeautyCenterModel struct {
	ServiceID uint          `gorm:"primaryKey"`
	Service   *ServiceModel `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`

	Images      []BeautyCenterImageModel `gorm:"foreignKey:BeautyCenterID;constraint:OnDelete:CASCADE"`
	SubServices []SubServiceModel        `gorm:"foreignKey:BeautyCenterID;constraint:OnDelete:CASCADE"`
	Reviews     []ReviewModel            `gorm:"foreignKey:BeautyCenterID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BeautyCenterModel) TableName() string {
	return "beauty_centers"
}

// BeautyCenterImageModel stores one bucket key of a beauty center's gallery.
type BeautyCenterImageModel struct {
	ID             uint   `gorm:"primaryKey"`
	BeautyCenterID uint   `gorm:"not null;index"`
	Path           string `gorm:"type:varchar(512);not null"`
}

// TableName explicitly sets the table name for GORM.
func (BeautyCenterImageModel) TableName() string {
	return "beauty_center_images"
}

// SubServiceModel is a priced line item offered by one beauty center.
type SubServiceModel struct {
	ID             uint    `gorm:"primaryKey"`
	BeautyCenterID uint    `gorm:"not null;index"`
	Name           string  `gorm:"type:varchar(255);not null"`
	Description    string  `gorm:"type:text"`
	Price          float64 `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SubServiceModel) TableName() string {
	return "sub_services"
}

// ReviewModel is a customer review of a beauty center. The customer FK is
// restrictive because the center is already a cascade path to this row.
type ReviewModel struct {
	ID             uint           `gorm:"primaryKey"`
	BeautyCenterID uint           `gorm:"not null;index"`
	CustomerID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Customer       *CustomerModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
	Rating         int            `gorm:"not null"`
	Comment        string         `gorm:"type:text"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
