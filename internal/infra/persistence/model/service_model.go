// Package model holds the GORM-specific persistence structs.
//
// Delete behavior is declared per foreign key, never inherited, so each
// relation's rule stays independently reviewable:
//
//	services.owner_id            -> owners     RESTRICT
//	beauty_centers.service_id    -> services   CASCADE
//	halls/photographies/cars/shop_dresses likewise CASCADE
//	*_images/*_pictures/dresses  -> parent     CASCADE
//	sub_services.beauty_center_id-> parent     CASCADE
//	reviews.beauty_center_id     -> parent     CASCADE
//	reviews.customer_id          -> customers  RESTRICT
//	favorite_services.service_id -> services   CASCADE
//	favorite_services.customer_id-> customers  RESTRICT
//	chats.owner_id               -> owners     CASCADE
//	chats.customer_id            -> customers  RESTRICT
//	chat_messages.sender_id      -> customers  CASCADE
//	chat_messages.receiver_id    -> customers  RESTRICT
//	chat_messages.chat_id        -> chats      RESTRICT
//
// Relations reachable through more than one FK path keep the second path
// restrictive, so no row is ever the target of two cascade paths.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceModel is the shared root row of every offering kind; identifiers
// are unique across all kinds because every concrete row points here.
type ServiceModel struct {
	ID            uint      `gorm:"primaryKey"`
	Kind          string    `gorm:"type:varchar(32);not null;index"`
	Name          string    `gorm:"type:varchar(255);not null;index"`
	Description   string    `gorm:"type:text"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	GovernorateID int       `gorm:"not null;default:0;index"`
	CityID        int       `gorm:"not null;default:0;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Owner     *OwnerModel            `gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT"`
	Favorites []FavoriteServiceModel `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}
