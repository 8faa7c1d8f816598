package postgres

import (
	"farha/internal/errors"
	"farha/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the catalog schema. Parents are listed before
// the rows that reference them so the declared constraints can be created in
// one pass.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.OwnerModel{},
		&model.CustomerModel{},
		&model.ServiceModel{},
		&model.BeautyCenterModel{},
		&model.BeautyCenterImageModel{},
		&model.SubServiceModel{},
		&model.ReviewModel{},
		&model.HallModel{},
		&model.HallPictureModel{},
		&model.PhotographyModel{},
		&model.PortfolioImageModel{},
		&model.CarModel{},
		&model.CarPictureModel{},
		&model.ShopDressesModel{},
		&model.DressModel{},
		&model.FavoriteServiceModel{},
		&model.ChatModel{},
		&model.ChatMessageModel{},
		&model.UserOTPModel{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to migrate catalog schema")
	}

	return nil
}
